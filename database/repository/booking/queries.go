package bookingRepo

import (
	"fmt"
	"time"

	"roomify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindOverlapping returns bookings on the given rooms whose stay window
// overlaps w under half-open semantics: checkInDate < w.CheckOut AND
// checkOutDate > w.CheckIn. A booking checking out on w's check-in day does
// not match, which allows same-day turnover. Served by the compound
// (roomId, bookingStatus, checkInDate, checkOutDate) index.
func (r *MongoBookingRepo) FindOverlapping(roomIDs []string, w models.StayWindow, statuses []models.BookingStatus) ([]models.Booking, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	return r.find(bson.M{
		"roomId":        bson.M{"$in": roomIDs},
		"bookingStatus": bson.M{"$in": statuses},
		"checkInDate":   bson.M{"$lt": w.CheckOut},
		"checkOutDate":  bson.M{"$gt": w.CheckIn},
	})
}

// StatsForRooms aggregates booking counts per status and confirmed revenue
// over the given rooms.
func (r *MongoBookingRepo) StatsForRooms(roomIDs []string) (*models.HotelBookingStats, error) {
	stats := &models.HotelBookingStats{}
	if len(roomIDs) == 0 {
		return stats, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"roomId": bson.M{"$in": roomIDs}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$bookingStatus",
			"count": bson.M{"$sum": 1},
			"total": bson.M{"$sum": "$totalAmount"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status models.BookingStatus `bson:"_id"`
		Count  int64                `bson:"count"`
		Total  float64              `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode booking stats: %w", err)
	}

	for _, row := range rows {
		stats.TotalBookings += row.Count
		switch row.Status {
		case models.BookingPending:
			stats.Pending = row.Count
		case models.BookingConfirmed:
			stats.Confirmed = row.Count
			stats.Revenue = row.Total
		case models.BookingCancelled:
			stats.Cancelled = row.Count
		}
	}
	return stats, nil
}

// UpcomingCheckIns retrieves confirmed bookings checking in within [from, to).
func (r *MongoBookingRepo) UpcomingCheckIns(from, to time.Time) ([]models.Booking, error) {
	return r.find(bson.M{
		"bookingStatus": models.BookingConfirmed,
		"checkInDate":   bson.M{"$gte": from, "$lt": to},
	}, options.Find().SetSort(bson.D{{Key: "checkInDate", Value: 1}}))
}

// UpcomingCheckOuts retrieves confirmed bookings checking out within [from, to).
func (r *MongoBookingRepo) UpcomingCheckOuts(from, to time.Time) ([]models.Booking, error) {
	return r.find(bson.M{
		"bookingStatus": models.BookingConfirmed,
		"checkOutDate":  bson.M{"$gte": from, "$lt": to},
	}, options.Find().SetSort(bson.D{{Key: "checkOutDate", Value: 1}}))
}

// FindStalePending retrieves Pending bookings created before the cutoff,
// candidates for the expiry sweep.
func (r *MongoBookingRepo) FindStalePending(cutoff time.Time) ([]models.Booking, error) {
	return r.find(bson.M{
		"bookingStatus": models.BookingPending,
		"createdAt":     bson.M{"$lt": cutoff},
	})
}
