package ticket

import (
	"strings"
	"time"

	ticketRepo "roomify/database/repository/ticket"
	"roomify/models"
	"roomify/services/booking"

	"github.com/google/uuid"
)

var errInvalidTicket = &booking.Error{Code: "invalidTicket", Message: "subject and description are required"}

// TicketService manages guest support tickets.
type TicketService interface {
	// OpenTicket files a new support ticket for a user.
	OpenTicket(userID, subject, description string) (*models.SupportTicket, error)
	GetTicket(ticketID string, actor booking.Actor) (*models.SupportTicket, error)
	ListTickets() ([]models.SupportTicket, error)
	ListTicketsByUser(userID string) ([]models.SupportTicket, error)
	ListTicketsByStatus(status models.TicketStatus) ([]models.SupportTicket, error)
	// UpdateTicket edits a ticket's subject and description. Owners may edit
	// while the ticket is still Open; admins may edit any ticket.
	UpdateTicket(ticketID, subject, description string, actor booking.Actor) (*models.SupportTicket, error)
	// SetStatus moves a ticket through its workflow. Admin only.
	SetStatus(ticketID string, status models.TicketStatus) (*models.SupportTicket, error)
	DeleteTicket(ticketID string) error
}

// DefaultTicketService is the standard implementation of TicketService.
type DefaultTicketService struct {
	Repo ticketRepo.TicketRepository
}

// OpenTicket files a new support ticket in the Open state.
func (s *DefaultTicketService) OpenTicket(userID, subject, description string) (*models.SupportTicket, error) {
	subject = strings.TrimSpace(subject)
	description = strings.TrimSpace(description)
	if subject == "" || description == "" {
		return nil, errInvalidTicket
	}

	now := time.Now()
	t := &models.SupportTicket{
		ID:          uuid.New().String(),
		UserID:      userID,
		Subject:     subject,
		Description: description,
		Status:      models.TicketOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTicket retrieves a ticket. Non-admins may only read their own tickets.
func (s *DefaultTicketService) GetTicket(ticketID string, actor booking.Actor) (*models.SupportTicket, error) {
	t, err := s.Repo.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, booking.ErrNotFound
	}
	if !actor.Admin && t.UserID != actor.UserID {
		return nil, booking.ErrForbidden
	}
	return t, nil
}

// ListTickets retrieves all tickets.
func (s *DefaultTicketService) ListTickets() ([]models.SupportTicket, error) {
	return s.Repo.GetAll()
}

// ListTicketsByUser retrieves a user's tickets.
func (s *DefaultTicketService) ListTicketsByUser(userID string) ([]models.SupportTicket, error) {
	return s.Repo.GetByUser(userID)
}

// ListTicketsByStatus retrieves tickets in the given workflow state.
func (s *DefaultTicketService) ListTicketsByStatus(status models.TicketStatus) ([]models.SupportTicket, error) {
	if !status.Valid() {
		return nil, booking.ErrInvalidTransition
	}
	return s.Repo.GetByStatus(status)
}

// UpdateTicket edits a ticket's subject and description.
func (s *DefaultTicketService) UpdateTicket(ticketID, subject, description string, actor booking.Actor) (*models.SupportTicket, error) {
	subject = strings.TrimSpace(subject)
	description = strings.TrimSpace(description)
	if subject == "" || description == "" {
		return nil, errInvalidTicket
	}

	t, err := s.Repo.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, booking.ErrNotFound
	}
	if !actor.Admin {
		if t.UserID != actor.UserID {
			return nil, booking.ErrForbidden
		}
		if t.Status != models.TicketOpen {
			return nil, booking.ErrInvalidTransition
		}
	}

	t.Subject = subject
	t.Description = description
	t.UpdatedAt = time.Now()
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// SetStatus moves a ticket through its workflow.
func (s *DefaultTicketService) SetStatus(ticketID string, status models.TicketStatus) (*models.SupportTicket, error) {
	if !status.Valid() {
		return nil, booking.ErrInvalidTransition
	}
	t, err := s.Repo.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, booking.ErrNotFound
	}
	t.Status = status
	t.UpdatedAt = time.Now()
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTicket removes a ticket.
func (s *DefaultTicketService) DeleteTicket(ticketID string) error {
	t, err := s.Repo.GetByID(ticketID)
	if err != nil {
		return err
	}
	if t == nil {
		return booking.ErrNotFound
	}
	return s.Repo.Delete(ticketID)
}
