package handlers

import (
	"net/http"

	"roomify/middleware"
	"roomify/models"
	"roomify/services/ticket"

	"github.com/gin-gonic/gin"
)

// OpenTicketHandler files a support ticket for the caller.
func OpenTicketHandler(tickets ticket.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Subject     string `json:"subject"`
			Description string `json:"description"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		t, err := tickets.OpenTicket(middleware.CallerID(c), in.Subject, in.Description)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ticket": t})
	}
}

// MyTicketsHandler returns the caller's tickets.
func MyTicketsHandler(tickets ticket.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := tickets.ListTicketsByUser(middleware.CallerID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tickets": list})
	}
}

// GetTicketHandler returns one ticket. Owners only, unless admin.
func GetTicketHandler(tickets ticket.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := tickets.GetTicket(c.Param("id"), callerActor(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ticket": t})
	}
}

// UpdateTicketHandler edits a ticket's subject and description.
func UpdateTicketHandler(tickets ticket.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Subject     string `json:"subject"`
			Description string `json:"description"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		t, err := tickets.UpdateTicket(c.Param("id"), in.Subject, in.Description, callerActor(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ticket": t})
	}
}

// ListTicketsHandler returns all tickets. Admin only.
func ListTicketsHandler(tickets ticket.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := tickets.ListTickets()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tickets": list})
	}
}

// ListTicketsByStatusHandler returns tickets in one workflow state. Admin only.
func ListTicketsByStatusHandler(tickets ticket.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := tickets.ListTicketsByStatus(models.TicketStatus(c.Param("status")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tickets": list})
	}
}

// SetTicketStatusHandler moves a ticket through its workflow. Admin only.
func SetTicketStatusHandler(tickets ticket.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Status models.TicketStatus `json:"status"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		t, err := tickets.SetStatus(c.Param("id"), in.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ticket": t})
	}
}

// DeleteTicketHandler removes a ticket. Admin only.
func DeleteTicketHandler(tickets ticket.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := tickets.DeleteTicket(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ticket deleted"})
	}
}
