package handlers

import (
	"net/http"
	"strconv"
	"time"

	"roomify/middleware"
	"roomify/models"
	"roomify/services/booking"

	"github.com/gin-gonic/gin"
)

type bookingRequest struct {
	RoomID       string `json:"roomId"`
	UserID       string `json:"userId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

func (r bookingRequest) window(c *gin.Context) (models.StayWindow, bool) {
	checkIn, err := time.ParseInLocation(dateLayout, r.CheckInDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkInDate, expected YYYY-MM-DD"})
		return models.StayWindow{}, false
	}
	checkOut, err := time.ParseInLocation(dateLayout, r.CheckOutDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkOutDate, expected YYYY-MM-DD"})
		return models.StayWindow{}, false
	}
	return models.StayWindow{CheckIn: checkIn, CheckOut: checkOut}, true
}

// CreateBookingHandler creates a Pending booking for the caller. Admins may
// book on behalf of another user by supplying userId.
func CreateBookingHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		w, ok := req.window(c)
		if !ok {
			return
		}

		userID := middleware.CallerID(c)
		if req.UserID != "" && req.UserID != userID {
			if !middleware.CallerIsAdmin(c) {
				c.JSON(http.StatusForbidden, gin.H{"error": "cannot book on behalf of another user"})
				return
			}
			userID = req.UserID
		}

		b, err := bookings.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
			UserID: userID,
			RoomID: req.RoomID,
			Window: w,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

// GetBookingHandler returns one booking with guest and room context. Owners
// see their own bookings; admins see all.
func GetBookingHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := bookings.GetBookingDetail(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		if !middleware.CallerIsAdmin(c) && d.UserID != middleware.CallerID(c) {
			respondError(c, booking.ErrForbidden)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// ListBookingsHandler returns all bookings. Admin only.
func ListBookingsHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := bookings.ListBookings()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// ListUserBookingsHandler returns a user's bookings. Owners only, unless admin.
func ListUserBookingsHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if !middleware.CallerIsAdmin(c) && userID != middleware.CallerID(c) {
			respondError(c, booking.ErrForbidden)
			return
		}
		list, err := bookings.ListBookingsByUser(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// ListBookingsByStatusHandler returns bookings in one lifecycle state. Admin only.
func ListBookingsByStatusHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.BookingStatus(c.Param("status"))
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking status"})
			return
		}
		list, err := bookings.ListBookingsByStatus(status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// SearchBookingsByDateRangeHandler returns bookings whose window intersects
// [start, end). Admin only.
func SearchBookingsByDateRangeHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, err := time.ParseInLocation(dateLayout, c.Query("start"), time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing start, expected YYYY-MM-DD"})
			return
		}
		end, err := time.ParseInLocation(dateLayout, c.Query("end"), time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing end, expected YYYY-MM-DD"})
			return
		}
		list, err := bookings.ListBookingsByDateRange(start, end)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// RoomAvailabilityHandler reports whether one room is free over the window.
func RoomAvailabilityHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, ok := parseStayWindow(c)
		if !ok {
			return
		}
		available, err := bookings.CheckRoomAvailability(c.Request.Context(), c.Param("roomId"), w)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"roomId": c.Param("roomId"), "isAvailable": available})
	}
}

// ConfirmBookingHandler confirms a Pending booking. Admin only; payment-driven
// confirmation flows through the payments webhook instead.
func ConfirmBookingHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := bookings.ConfirmBooking(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// CancelBookingHandler cancels a booking under the caller's authority.
func CancelBookingHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := bookings.CancelBooking(c.Request.Context(), c.Param("id"), callerActor(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
	}
}

// SetBookingStatusHandler applies a manual status edit. Admin only.
func SetBookingStatusHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Status models.BookingStatus `json:"bookingStatus"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		if err := bookings.SetStatus(c.Request.Context(), c.Param("id"), in.Status); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "booking status updated"})
	}
}

// UpdateBookingHandler moves a Pending booking to a new stay window. Admin only.
func UpdateBookingHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		w, ok := req.window(c)
		if !ok {
			return
		}
		b, err := bookings.UpdateBookingWindow(c.Request.Context(), c.Param("id"), w)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// DeleteBookingHandler hard-deletes a booking. Admin only.
func DeleteBookingHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := bookings.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
	}
}

// HotelStatsHandler aggregates booking counts and revenue for a hotel. Admin only.
func HotelStatsHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := bookings.HotelStats(c.Param("hotelId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

const defaultReportHorizon = 7 * 24 * time.Hour

func reportHorizon(c *gin.Context) time.Duration {
	if days, err := strconv.Atoi(c.Query("days")); err == nil && days > 0 {
		return time.Duration(days) * 24 * time.Hour
	}
	return defaultReportHorizon
}

// UpcomingCheckInsHandler lists confirmed bookings checking in soon. Admin only.
func UpcomingCheckInsHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := bookings.UpcomingCheckIns(reportHorizon(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// UpcomingCheckOutsHandler lists confirmed bookings checking out soon. Admin only.
func UpcomingCheckOutsHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := bookings.UpcomingCheckOuts(reportHorizon(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
