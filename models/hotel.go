package models

import "time"

// Hotel represents a property whose rooms can be booked.
type Hotel struct {
	ID           string    `bson:"id" json:"hotelId"`
	Name         string    `bson:"name" json:"name"`
	Location     string    `bson:"location" json:"location"`
	Address      string    `bson:"address" json:"address"`
	ContactPhone string    `bson:"contactPhone" json:"contactPhone"`
	Category     string    `bson:"category" json:"category"`
	Rating       float64   `bson:"rating" json:"rating"`
	HotelImg     string    `bson:"hotelImg,omitempty" json:"hotelImg,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
