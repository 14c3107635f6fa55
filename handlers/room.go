package handlers

import (
	"net/http"
	"time"

	"roomify/models"
	"roomify/services/booking"
	"roomify/services/room"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// parseStayWindow reads checkInDate/checkOutDate query params as YYYY-MM-DD.
func parseStayWindow(c *gin.Context) (models.StayWindow, bool) {
	checkIn, err := time.ParseInLocation(dateLayout, c.Query("checkInDate"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing checkInDate, expected YYYY-MM-DD"})
		return models.StayWindow{}, false
	}
	checkOut, err := time.ParseInLocation(dateLayout, c.Query("checkOutDate"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing checkOutDate, expected YYYY-MM-DD"})
		return models.StayWindow{}, false
	}
	return models.StayWindow{CheckIn: checkIn, CheckOut: checkOut}, true
}

// ListRoomsHandler returns the room inventory.
func ListRoomsHandler(rooms room.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := rooms.ListRooms()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"rooms": list})
	}
}

// GetRoomHandler returns a single room.
func GetRoomHandler(rooms room.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := rooms.GetRoom(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

// AvailableRoomsHandler resolves which rooms are free over the requested
// window, optionally scoped to one hotel.
func AvailableRoomsHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, ok := parseStayWindow(c)
		if !ok {
			return
		}
		list, err := bookings.AvailableRooms(c.Request.Context(), c.Query("hotelId"), w)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"rooms": list})
	}
}

// CreateRoomHandler adds a room to a hotel's inventory. Admin only.
func CreateRoomHandler(rooms room.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			HotelID       string   `json:"hotelId"`
			RoomType      string   `json:"roomType"`
			PricePerNight float64  `json:"pricePerNight"`
			Capacity      int      `json:"capacity"`
			Amenities     []string `json:"amenities"`
			RoomImg       string   `json:"roomImg"`
			// Pointer so an omitted field defaults to open.
			IsAvailable *bool `json:"isAvailable"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		available := true
		if in.IsAvailable != nil {
			available = *in.IsAvailable
		}
		r, err := rooms.CreateRoom(models.Room{
			HotelID:       in.HotelID,
			RoomType:      in.RoomType,
			PricePerNight: in.PricePerNight,
			Capacity:      in.Capacity,
			Amenities:     in.Amenities,
			RoomImg:       in.RoomImg,
			IsAvailable:   available,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"room": r})
	}
}

// UpdateRoomHandler replaces a room's inventory fields. Admin only.
func UpdateRoomHandler(rooms room.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.Room
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		r, err := rooms.UpdateRoom(c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

// SetRoomAvailabilityHandler flips the administrative availability override.
// Admin only.
func SetRoomAvailabilityHandler(rooms room.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			IsAvailable *bool `json:"isAvailable"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || in.IsAvailable == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "isAvailable boolean is required"})
			return
		}
		r, err := rooms.SetAvailability(c.Param("id"), *in.IsAvailable)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

// DeleteRoomHandler removes a room. Admin only.
func DeleteRoomHandler(rooms room.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rooms.DeleteRoom(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
	}
}
