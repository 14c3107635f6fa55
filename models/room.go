package models

import "time"

// Room represents a bookable room owned by exactly one hotel.
// IsAvailable is a manual admin override, independent of booking-derived
// availability: a room marked false is never offered regardless of bookings.
type Room struct {
	ID            string    `bson:"id" json:"roomId"`
	HotelID       string    `bson:"hotelId" json:"hotelId"`
	RoomType      string    `bson:"roomType" json:"roomType"`
	PricePerNight float64   `bson:"pricePerNight" json:"pricePerNight"`
	Capacity      int       `bson:"capacity" json:"capacity"`
	Amenities     []string  `bson:"amenities" json:"amenities"`
	IsAvailable   bool      `bson:"isAvailable" json:"isAvailable"`
	RoomImg       string    `bson:"roomImg,omitempty" json:"roomImg,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RoomDetail is a room joined with its owning hotel, as embedded in booking
// detail responses.
type RoomDetail struct {
	Room
	Hotel *Hotel `json:"hotel,omitempty"`
}
