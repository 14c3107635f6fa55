package models

import "time"

// TicketStatus enumerates the support ticket lifecycle, independent of bookings.
type TicketStatus string

const (
	TicketOpen     TicketStatus = "Open"
	TicketPending  TicketStatus = "Pending"
	TicketResolved TicketStatus = "Resolved"
	TicketClosed   TicketStatus = "Closed"
)

// Valid reports whether s is a known ticket status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketPending, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// SupportTicket represents a guest support request.
type SupportTicket struct {
	ID          string       `bson:"id" json:"ticketId"`
	UserID      string       `bson:"userId" json:"userId"`
	Subject     string       `bson:"subject" json:"subject"`
	Description string       `bson:"description" json:"description"`
	Status      TicketStatus `bson:"status" json:"status"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time    `bson:"updatedAt" json:"updatedAt"`
}
