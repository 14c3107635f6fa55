package payment

import (
	"context"
	"time"

	"roomify/models"
)

// CreateIntentInput carries the client's payment-intent request. Amount is
// what the client believes it owes; it is validated against the booking's
// stored total before any charge is initiated.
type CreateIntentInput struct {
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"`
	UserID    string  `json:"-"`
}

// IntentResult is returned to the client to drive the gateway checkout.
type IntentResult struct {
	PaymentID    string `json:"paymentId"`
	ClientSecret string `json:"clientSecret"`
}

// PaymentService manages payment records and their linkage to bookings.
type PaymentService interface {
	// CreateIntent validates the amount against the booking total, creates a
	// gateway payment intent and persists a Pending payment record.
	CreateIntent(ctx context.Context, in CreateIntentInput) (*IntentResult, error)

	// RecordOutcome applies a verified gateway outcome. A Completed outcome
	// atomically confirms the linked booking; a duplicate Completed outcome is
	// a no-op. A Failed outcome leaves the booking Pending.
	RecordOutcome(ctx context.Context, transactionID string, status models.PaymentStatus, paidAt time.Time) error

	// SetStatusByBooking applies an administrator's manual payment status edit,
	// keyed by booking. Routed through the same linkage rules as webhooks.
	SetStatusByBooking(ctx context.Context, bookingID string, status models.PaymentStatus) error

	// GetPayment retrieves a payment by ID.
	GetPayment(paymentID string) (*models.Payment, error)
	// GetByBooking retrieves the payment linked to a booking, if any.
	GetByBooking(bookingID string) (*models.Payment, error)
	// ListPayments retrieves all payments.
	ListPayments() ([]models.Payment, error)
	// ListPaymentsByUser retrieves a user's payments.
	ListPaymentsByUser(userID string) ([]models.Payment, error)
}
