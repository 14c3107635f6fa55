package handlers

import (
	"errors"
	"net/http"

	"roomify/services/booking"
	"roomify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates service errors into HTTP responses. Typed booking
// errors map by code; anything else is an internal error and is logged with
// its cause, which is never echoed to the client.
func respondError(c *gin.Context, err error) {
	var be *booking.Error
	if errors.As(err, &be) {
		c.JSON(statusForCode(be.Code), gin.H{"error": be.Message, "code": be.Code})
		return
	}

	utils.GetLogger().Error("request failed",
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func statusForCode(code string) int {
	switch code {
	case "notFound":
		return http.StatusNotFound
	case "forbidden":
		return http.StatusForbidden
	case "invalidCredentials":
		return http.StatusUnauthorized
	case "bookingConflict", "emailTaken", "hotelNotEmpty", "roomNotEmpty", "alreadyPaid":
		return http.StatusConflict
	case "invalidTransition", "roomUnavailable":
		return http.StatusUnprocessableEntity
	default:
		// Validation codes: invalidDateRange, pastCheckIn, paymentMismatch,
		// weakPassword, invalidHotel, invalidRoom, invalidTicket.
		return http.StatusBadRequest
	}
}
