package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	bookingRepo "roomify/database/repository/booking"
	paymentRepo "roomify/database/repository/payment"
	"roomify/models"
	"roomify/services/booking"
	"roomify/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// BookingConfirmer is the slice of the booking lifecycle the payment linkage
// needs: atomically confirming a booking when its payment completes.
type BookingConfirmer interface {
	ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}

// DefaultPaymentService is the standard implementation of PaymentService.
type DefaultPaymentService struct {
	Payments  paymentRepo.PaymentRepository
	Bookings  bookingRepo.BookingRepository
	Lifecycle BookingConfirmer
	Currency  string
	// NewIntent creates the gateway payment intent. Defaults to the Stripe
	// API; tests substitute a stub.
	NewIntent func(amountCents int64, currency, bookingID string) (id, clientSecret string, err error)
	// Now is the authoritative server clock; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultPaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultPaymentService) newIntent(amountCents int64, currency, bookingID string) (string, string, error) {
	if s.NewIntent != nil {
		return s.NewIntent(amountCents, currency, bookingID)
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", bookingID)
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ID, pi.ClientSecret, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateIntent validates the client's amount against the booking's stored
// total, creates a gateway payment intent and persists a Pending payment
// record linked to the booking. A second intent for the same booking reuses
// the existing payment record unless the payment already completed.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, in CreateIntentInput) (*IntentResult, error) {
	b, err := s.Bookings.GetByID(in.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, booking.ErrNotFound
	}
	if b.Status == models.BookingCancelled {
		return nil, booking.ErrInvalidTransition
	}
	// The stored total is authoritative; a client-side amount that disagrees
	// to the cent is rejected before the gateway is involved.
	if toCents(in.Amount) != toCents(b.TotalAmount) {
		return nil, booking.ErrPaymentMismatch
	}

	existing, err := s.Payments.GetByBooking(in.BookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == models.PaymentCompleted {
		return nil, booking.ErrAlreadyPaid
	}

	intentID, clientSecret, err := s.newIntent(toCents(b.TotalAmount), s.Currency, b.ID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.TransactionID = intentID
		existing.Status = models.PaymentPending
		existing.UpdatedAt = s.now()
		if err := s.Payments.Update(existing); err != nil {
			return nil, err
		}
		return &IntentResult{PaymentID: existing.ID, ClientSecret: clientSecret}, nil
	}

	p := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     b.ID,
		UserID:        b.UserID,
		Amount:        b.TotalAmount,
		PaymentMethod: "card",
		Status:        models.PaymentPending,
		TransactionID: intentID,
	}
	if err := s.Payments.Create(p); err != nil {
		return nil, err
	}
	return &IntentResult{PaymentID: p.ID, ClientSecret: clientSecret}, nil
}

// RecordOutcome applies a verified gateway outcome to the payment carrying
// the transaction ID. Completed confirms the linked booking; receiving the
// same Completed outcome twice is a no-op, so webhook redelivery is safe.
// Failed leaves the booking Pending so the guest can retry.
func (s *DefaultPaymentService) RecordOutcome(ctx context.Context, transactionID string, status models.PaymentStatus, paidAt time.Time) error {
	p, err := s.Payments.GetByTransaction(transactionID)
	if err != nil {
		return err
	}
	if p == nil {
		return booking.ErrNotFound
	}
	return s.applyOutcome(ctx, p, status, paidAt)
}

// SetStatusByBooking applies an administrator's manual payment status edit.
func (s *DefaultPaymentService) SetStatusByBooking(ctx context.Context, bookingID string, status models.PaymentStatus) error {
	if !status.Valid() {
		return booking.ErrInvalidTransition
	}
	p, err := s.Payments.GetByBooking(bookingID)
	if err != nil {
		return err
	}
	if p == nil {
		return booking.ErrNotFound
	}
	return s.applyOutcome(ctx, p, status, s.now())
}

func (s *DefaultPaymentService) applyOutcome(ctx context.Context, p *models.Payment, status models.PaymentStatus, paidAt time.Time) error {
	if p.Status == models.PaymentCompleted && status == models.PaymentCompleted {
		return nil
	}

	p.Status = status
	if status == models.PaymentCompleted {
		at := paidAt
		p.PaymentDate = &at
	}
	p.UpdatedAt = s.now()
	if err := s.Payments.Update(p); err != nil {
		return err
	}

	if status != models.PaymentCompleted {
		return nil
	}

	if _, err := s.Lifecycle.ConfirmBooking(ctx, p.BookingID); err != nil {
		// The money moved but the booking could not confirm. Surface loudly;
		// support resolves via refund or manual confirmation.
		utils.GetLogger().Error("payment completed but booking confirmation failed",
			zap.String("bookingId", p.BookingID),
			zap.String("paymentId", p.ID),
			zap.Error(err))
		return err
	}
	return nil
}

// GetPayment retrieves a payment by ID.
func (s *DefaultPaymentService) GetPayment(paymentID string) (*models.Payment, error) {
	p, err := s.Payments.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, booking.ErrNotFound
	}
	return p, nil
}

// GetByBooking retrieves the payment linked to a booking, if any.
func (s *DefaultPaymentService) GetByBooking(bookingID string) (*models.Payment, error) {
	return s.Payments.GetByBooking(bookingID)
}

// ListPayments retrieves all payments.
func (s *DefaultPaymentService) ListPayments() ([]models.Payment, error) {
	return s.Payments.GetAll()
}

// ListPaymentsByUser retrieves a user's payments.
func (s *DefaultPaymentService) ListPaymentsByUser(userID string) ([]models.Payment, error) {
	return s.Payments.GetByUser(userID)
}
