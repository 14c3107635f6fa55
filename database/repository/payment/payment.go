package paymentRepo

import (
	"errors"

	"roomify/models"
)

// ErrNotFound indicates the payment does not exist.
var ErrNotFound = errors.New("payment not found")

// PaymentRepository defines methods for payment data access.
type PaymentRepository interface {
	// Create inserts a new payment record.
	Create(p *models.Payment) error
	// GetByID retrieves a payment by its unique ID.
	GetByID(id string) (*models.Payment, error)
	// GetByBooking retrieves the payment of a booking, or nil if none exists.
	GetByBooking(bookingID string) (*models.Payment, error)
	// GetByTransaction retrieves the payment carrying the given gateway
	// transaction ID, or nil if none exists.
	GetByTransaction(transactionID string) (*models.Payment, error)
	// GetByUser retrieves the payments made by a user, newest first.
	GetByUser(userID string) ([]models.Payment, error)
	// GetAll retrieves all payments.
	GetAll() ([]models.Payment, error)
	// Update replaces an existing payment record.
	Update(p *models.Payment) error
}
