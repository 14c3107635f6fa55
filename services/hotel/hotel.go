package hotel

import (
	"strings"
	"time"

	hotelRepo "roomify/database/repository/hotel"
	roomRepo "roomify/database/repository/room"
	"roomify/models"
	"roomify/services/booking"

	"github.com/google/uuid"
)

var errMissingName = &booking.Error{Code: "invalidHotel", Message: "hotel name and location are required"}

// HotelService manages the hotel catalogue.
type HotelService interface {
	CreateHotel(h models.Hotel) (*models.Hotel, error)
	GetHotel(hotelID string) (*models.Hotel, error)
	ListHotels() ([]models.Hotel, error)
	UpdateHotel(hotelID string, h models.Hotel) (*models.Hotel, error)
	// DeleteHotel removes a hotel; refused while the hotel still owns rooms.
	DeleteHotel(hotelID string) error
}

// DefaultHotelService is the standard implementation of HotelService.
type DefaultHotelService struct {
	Repo  hotelRepo.HotelRepository
	Rooms roomRepo.RoomRepository
}

// CreateHotel registers a new hotel in the catalogue.
func (s *DefaultHotelService) CreateHotel(h models.Hotel) (*models.Hotel, error) {
	if strings.TrimSpace(h.Name) == "" || strings.TrimSpace(h.Location) == "" {
		return nil, errMissingName
	}
	now := time.Now()
	h.ID = uuid.New().String()
	h.CreatedAt = now
	h.UpdatedAt = now
	if err := s.Repo.Create(&h); err != nil {
		return nil, err
	}
	return &h, nil
}

// GetHotel retrieves a hotel by ID.
func (s *DefaultHotelService) GetHotel(hotelID string) (*models.Hotel, error) {
	h, err := s.Repo.GetByID(hotelID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, booking.ErrNotFound
	}
	return h, nil
}

// ListHotels retrieves the full hotel catalogue.
func (s *DefaultHotelService) ListHotels() ([]models.Hotel, error) {
	return s.Repo.GetAll()
}

// UpdateHotel replaces a hotel's catalogue fields.
func (s *DefaultHotelService) UpdateHotel(hotelID string, h models.Hotel) (*models.Hotel, error) {
	existing, err := s.Repo.GetByID(hotelID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, booking.ErrNotFound
	}
	if strings.TrimSpace(h.Name) == "" || strings.TrimSpace(h.Location) == "" {
		return nil, errMissingName
	}

	h.ID = existing.ID
	h.CreatedAt = existing.CreatedAt
	h.UpdatedAt = time.Now()
	if err := s.Repo.Update(&h); err != nil {
		return nil, err
	}
	return &h, nil
}

// DeleteHotel removes a hotel. Rooms must be removed first so bookings never
// dangle against a deleted hotel.
func (s *DefaultHotelService) DeleteHotel(hotelID string) error {
	h, err := s.Repo.GetByID(hotelID)
	if err != nil {
		return err
	}
	if h == nil {
		return booking.ErrNotFound
	}
	rooms, err := s.Rooms.GetByHotel(hotelID)
	if err != nil {
		return err
	}
	if len(rooms) > 0 {
		return &booking.Error{Code: "hotelNotEmpty", Message: "hotel still has rooms; remove them first"}
	}
	return s.Repo.Delete(hotelID)
}
