package booking

import "fmt"

// Error is a typed booking error with a stable machine-readable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrInvalidDateRange is returned when check-out is not after check-in.
	ErrInvalidDateRange = &Error{Code: "invalidDateRange", Message: "check-out date must be after check-in date"}
	// ErrPastCheckIn is returned when check-in precedes today by the server clock.
	ErrPastCheckIn = &Error{Code: "pastCheckIn", Message: "check-in date cannot be in the past"}
	// ErrBookingConflict is returned when a competing booking already claimed
	// an overlapping window. Surfaced distinctly so callers can offer
	// rebooking instead of a blind retry.
	ErrBookingConflict = &Error{Code: "bookingConflict", Message: "an overlapping booking already claimed this window"}
	// ErrRoomUnavailable is returned when the room carries the administrative
	// unavailability override.
	ErrRoomUnavailable = &Error{Code: "roomUnavailable", Message: "room is not open for booking"}
	// ErrPaymentMismatch is returned when a payment amount does not match the
	// booking total.
	ErrPaymentMismatch = &Error{Code: "paymentMismatch", Message: "payment amount does not match booking total"}
	// ErrAlreadyPaid is returned when a payment intent is requested for a
	// booking whose payment already completed.
	ErrAlreadyPaid = &Error{Code: "alreadyPaid", Message: "booking payment has already been completed"}
	// ErrNotFound is returned when the referenced booking, room or user is absent.
	ErrNotFound = &Error{Code: "notFound", Message: "resource not found"}
	// ErrForbidden is returned when the caller does not own the booking and is
	// not an administrator.
	ErrForbidden = &Error{Code: "forbidden", Message: "operation not permitted for this caller"}
	// ErrInvalidTransition is returned for lifecycle transitions that are not
	// allowed, e.g. confirming a cancelled booking.
	ErrInvalidTransition = &Error{Code: "invalidTransition", Message: "booking status transition not allowed"}
)
