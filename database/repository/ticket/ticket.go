package ticketRepo

import "roomify/models"

// TicketRepository defines methods for support ticket data access.
type TicketRepository interface {
	// Create inserts a new ticket record.
	Create(t *models.SupportTicket) error
	// GetByID retrieves a ticket by its unique ID.
	GetByID(id string) (*models.SupportTicket, error)
	// GetByUser retrieves the tickets opened by a user, newest first.
	GetByUser(userID string) ([]models.SupportTicket, error)
	// GetByStatus retrieves all tickets in the given state.
	GetByStatus(status models.TicketStatus) ([]models.SupportTicket, error)
	// GetAll retrieves all tickets.
	GetAll() ([]models.SupportTicket, error)
	// Update replaces an existing ticket record.
	Update(t *models.SupportTicket) error
	// Delete removes a ticket record by its ID.
	Delete(id string) error
}
