package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"roomify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ConfirmTransactionally transitions a Pending booking to Confirmed inside a
// multi-document transaction. The overlap check and the status write commit
// atomically, so of two racing confirmations for overlapping windows on the
// same room exactly one succeeds; the loser gets ErrConflict and its booking
// stays Pending.
func (r *MongoBookingRepo) ConfirmTransactionally(ctx context.Context, bookingID string) (*models.Booking, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var confirmed *models.Booking

	txnFn := func(sc mongo.SessionContext) error {
		var b models.Booking
		if err := r.coll.FindOne(sc, bson.M{"id": bookingID}).Decode(&b); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return fmt.Errorf("fetch booking failed: %w", err)
		}

		switch b.Status {
		case models.BookingConfirmed:
			// Already confirmed, e.g. by a duplicate payment event.
			confirmed = &b
			return nil
		case models.BookingCancelled:
			return ErrTerminal
		}

		count, err := r.coll.CountDocuments(sc, bson.M{
			"id":            bson.M{"$ne": b.ID},
			"roomId":        b.RoomID,
			"bookingStatus": models.BookingConfirmed,
			"checkInDate":   bson.M{"$lt": b.CheckOutDate},
			"checkOutDate":  bson.M{"$gt": b.CheckInDate},
		})
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrConflict
		}

		now := time.Now()
		update := bson.M{"$set": bson.M{"bookingStatus": models.BookingConfirmed, "updatedAt": now}}
		res, err := r.coll.UpdateOne(sc, bson.M{"id": b.ID, "bookingStatus": models.BookingPending}, update)
		if err != nil {
			return fmt.Errorf("confirm update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrConflict
		}

		b.Status = models.BookingConfirmed
		b.UpdatedAt = now
		confirmed = &b
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, err
	}

	return confirmed, nil
}
