package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"roomify/config"
	"roomify/middleware"
	"roomify/models"
	"roomify/services/payment"
	"roomify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// CreatePaymentIntentHandler creates a gateway payment intent for a booking.
// The amount is validated server-side against the booking's stored total.
func CreatePaymentIntentHandler(payments payment.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in payment.CreateIntentInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		in.UserID = middleware.CallerID(c)
		result, err := payments.CreateIntent(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// StripeWebhookHandler verifies and applies gateway events. Signature
// verification is the trust boundary: only events signed with the webhook
// secret reach the payment linkage.
func StripeWebhookHandler(payments payment.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const maxBodyBytes = int64(65536)
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			return
		}

		event, err := webhook.ConstructEvent(body, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
		if err != nil {
			utils.GetLogger().Warn("stripe webhook signature verification failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}

		var outcome models.PaymentStatus
		switch event.Type {
		case "payment_intent.succeeded":
			outcome = models.PaymentCompleted
		case "payment_intent.payment_failed":
			outcome = models.PaymentFailed
		default:
			// Unhandled event types are acknowledged so Stripe stops retrying.
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			utils.GetLogger().Error("failed to parse payment intent from webhook", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
			return
		}

		if err := payments.RecordOutcome(c.Request.Context(), intent.ID, outcome, time.Unix(event.Created, 0)); err != nil {
			// Non-2xx makes Stripe redeliver; RecordOutcome is idempotent for
			// Completed so redelivery is safe.
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

// ListPaymentsHandler returns all payments. Admin only.
func ListPaymentsHandler(payments payment.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := payments.ListPayments()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": list})
	}
}

// ListUserPaymentsHandler returns a user's payments. Owners only, unless admin.
func ListUserPaymentsHandler(payments payment.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if !middleware.CallerIsAdmin(c) && userID != middleware.CallerID(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "operation not permitted for this caller"})
			return
		}
		list, err := payments.ListPaymentsByUser(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": list})
	}
}

// UpdatePaymentStatusHandler applies a manual payment status edit, keyed by
// booking. Admin only.
func UpdatePaymentStatusHandler(payments payment.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			BookingID string               `json:"bookingId"`
			Status    models.PaymentStatus `json:"status"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || in.BookingID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bookingId and status are required"})
			return
		}
		if err := payments.SetStatusByBooking(c.Request.Context(), in.BookingID, in.Status); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "payment status updated"})
	}
}
