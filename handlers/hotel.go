package handlers

import (
	"net/http"

	"roomify/models"
	"roomify/services/hotel"
	"roomify/services/room"

	"github.com/gin-gonic/gin"
)

// ListHotelsHandler returns the hotel catalogue.
func ListHotelsHandler(hotels hotel.HotelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := hotels.ListHotels()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"hotels": list})
	}
}

// GetHotelHandler returns a single hotel.
func GetHotelHandler(hotels hotel.HotelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		h, err := hotels.GetHotel(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"hotel": h})
	}
}

// ListHotelRoomsHandler returns a hotel's rooms.
func ListHotelRoomsHandler(hotels hotel.HotelService, rooms room.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := hotels.GetHotel(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		list, err := rooms.ListRoomsByHotel(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"rooms": list})
	}
}

// CreateHotelHandler registers a new hotel. Admin only.
func CreateHotelHandler(hotels hotel.HotelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.Hotel
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		h, err := hotels.CreateHotel(in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"hotel": h})
	}
}

// UpdateHotelHandler replaces a hotel's catalogue fields. Admin only.
func UpdateHotelHandler(hotels hotel.HotelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.Hotel
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		h, err := hotels.UpdateHotel(c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"hotel": h})
	}
}

// DeleteHotelHandler removes a hotel. Admin only.
func DeleteHotelHandler(hotels hotel.HotelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := hotels.DeleteHotel(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "hotel deleted"})
	}
}
