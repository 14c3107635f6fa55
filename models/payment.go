package models

import "time"

// PaymentStatus enumerates the gateway-reported payment outcomes.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// Payment records the outcome of an external gateway charge for a booking.
// A booking has at most one payment; split payments are not modelled.
// UserID is denormalised from the booking for per-user payment listings.
type Payment struct {
	ID            string        `bson:"id" json:"paymentId"`
	BookingID     string        `bson:"bookingId" json:"bookingId"`
	UserID        string        `bson:"userId" json:"userId"`
	Amount        float64       `bson:"amount" json:"amount"`
	PaymentMethod string        `bson:"paymentMethod" json:"paymentMethod"`
	Status        PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	TransactionID string        `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaymentDate   *time.Time    `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
