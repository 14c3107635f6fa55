package booking

import (
	"context"
	"errors"

	bookingRepo "roomify/database/repository/booking"
	"roomify/models"
)

// ConfirmBooking transitions a Pending booking to Confirmed. The overlap
// invariant is re-validated inside a storage transaction so that of two
// racing confirmations for overlapping windows on the same room exactly one
// wins; the loser receives ErrBookingConflict and its booking stays Pending
// for manual resolution or retry.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	confirmed, err := s.Repo.ConfirmTransactionally(ctx, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, bookingRepo.ErrConflict):
			return nil, ErrBookingConflict
		case errors.Is(err, bookingRepo.ErrTerminal):
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	s.invalidateAvailabilityForRoom(ctx, confirmed.RoomID)
	s.notifyConfirmed(confirmed)
	return confirmed, nil
}

// CancelBooking transitions a booking to Cancelled. Owners may cancel their
// own Pending bookings; cancelling a Confirmed booking requires an
// administrator. Cancelled is terminal, and cancelling an already-Cancelled
// booking is a well-defined no-op success.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string, actor Actor) error {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNotFound
	}
	if !actor.Admin && b.UserID != actor.UserID {
		return ErrForbidden
	}

	switch b.Status {
	case models.BookingCancelled:
		return nil
	case models.BookingConfirmed:
		if !actor.Admin {
			return ErrForbidden
		}
	}

	if err := s.Repo.UpdateStatus(bookingID, models.BookingCancelled); err != nil {
		return err
	}
	s.invalidateAvailabilityForRoom(ctx, b.RoomID)
	return nil
}

// SetStatus applies an administrator's manual status edit. Transitions are
// routed through the same lifecycle rules: confirmation re-validates the
// overlap invariant, cancellation is terminal, and no transition leaves the
// Cancelled state.
func (s *DefaultBookingService) SetStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	if !status.Valid() {
		return ErrInvalidTransition
	}

	switch status {
	case models.BookingConfirmed:
		_, err := s.ConfirmBooking(ctx, bookingID)
		return err
	case models.BookingCancelled:
		return s.CancelBooking(ctx, bookingID, Actor{Admin: true})
	}

	// Reverting to Pending: only meaningful from Pending itself (a no-op);
	// Confirmed and Cancelled never move back.
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNotFound
	}
	if b.Status != models.BookingPending {
		return ErrInvalidTransition
	}
	return nil
}
