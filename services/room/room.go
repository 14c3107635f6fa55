package room

import (
	"context"
	"strings"
	"time"

	hotelRepo "roomify/database/repository/hotel"
	roomRepo "roomify/database/repository/room"
	"roomify/models"
	"roomify/services/booking"

	"github.com/google/uuid"
)

var (
	errInvalidRoom     = &booking.Error{Code: "invalidRoom", Message: "room type, positive price and positive capacity are required"}
	errRoomHasBookings = &booking.Error{Code: "roomNotEmpty", Message: "room still has pending or confirmed bookings"}
)

// BookingLookup is the slice of the booking store the room service needs to
// guard deletions against live bookings.
type BookingLookup interface {
	GetByRoom(roomID string) ([]models.Booking, error)
}

// AvailabilityInvalidator bumps the availability cache generation for a hotel.
// Inventory mutations call it so cached resolver results never outlive an
// administrative override flip.
type AvailabilityInvalidator interface {
	InvalidateHotelAvailability(ctx context.Context, hotelID string)
}

// RoomService manages the room inventory.
type RoomService interface {
	CreateRoom(r models.Room) (*models.Room, error)
	GetRoom(roomID string) (*models.Room, error)
	ListRooms() ([]models.Room, error)
	ListRoomsByHotel(hotelID string) ([]models.Room, error)
	UpdateRoom(roomID string, r models.Room) (*models.Room, error)
	// SetAvailability flips the administrative availability override.
	SetAvailability(roomID string, available bool) (*models.Room, error)
	DeleteRoom(roomID string) error
}

// DefaultRoomService is the standard implementation of RoomService.
type DefaultRoomService struct {
	Repo         roomRepo.RoomRepository
	Hotels       hotelRepo.HotelRepository
	Bookings     BookingLookup
	Availability AvailabilityInvalidator
}

func validateRoom(r models.Room) error {
	if strings.TrimSpace(r.RoomType) == "" || r.PricePerNight <= 0 || r.Capacity <= 0 {
		return errInvalidRoom
	}
	return nil
}

func (s *DefaultRoomService) invalidate(hotelID string) {
	if s.Availability != nil {
		s.Availability.InvalidateHotelAvailability(context.Background(), hotelID)
	}
}

// CreateRoom adds a room to a hotel's inventory. New rooms are open for
// booking unless explicitly created under the availability override.
func (s *DefaultRoomService) CreateRoom(r models.Room) (*models.Room, error) {
	if err := validateRoom(r); err != nil {
		return nil, err
	}
	hotel, err := s.Hotels.GetByID(r.HotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, booking.ErrNotFound
	}

	now := time.Now()
	r.ID = uuid.New().String()
	r.CreatedAt = now
	r.UpdatedAt = now
	if err := s.Repo.Create(&r); err != nil {
		return nil, err
	}
	s.invalidate(r.HotelID)
	return &r, nil
}

// GetRoom retrieves a room by ID.
func (s *DefaultRoomService) GetRoom(roomID string) (*models.Room, error) {
	r, err := s.Repo.GetByID(roomID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, booking.ErrNotFound
	}
	return r, nil
}

// ListRooms retrieves the full room inventory.
func (s *DefaultRoomService) ListRooms() ([]models.Room, error) {
	return s.Repo.GetAll()
}

// ListRoomsByHotel retrieves a hotel's rooms.
func (s *DefaultRoomService) ListRoomsByHotel(hotelID string) ([]models.Room, error) {
	return s.Repo.GetByHotel(hotelID)
}

// UpdateRoom replaces a room's inventory fields. Existing bookings keep the
// total computed at creation time; price edits only affect future bookings.
func (s *DefaultRoomService) UpdateRoom(roomID string, r models.Room) (*models.Room, error) {
	existing, err := s.Repo.GetByID(roomID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, booking.ErrNotFound
	}
	if err := validateRoom(r); err != nil {
		return nil, err
	}

	r.ID = existing.ID
	r.HotelID = existing.HotelID
	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = time.Now()
	if err := s.Repo.Update(&r); err != nil {
		return nil, err
	}
	s.invalidate(r.HotelID)
	return &r, nil
}

// SetAvailability flips the administrative availability override. A room
// marked unavailable is excluded from every availability result regardless
// of its booking state, so the cache generation is bumped along with the
// write to keep cached resolver results from outliving the flip.
func (s *DefaultRoomService) SetAvailability(roomID string, available bool) (*models.Room, error) {
	r, err := s.Repo.GetByID(roomID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, booking.ErrNotFound
	}
	r.IsAvailable = available
	r.UpdatedAt = time.Now()
	if err := s.Repo.Update(r); err != nil {
		return nil, err
	}
	s.invalidate(r.HotelID)
	return r, nil
}

// DeleteRoom removes a room from the inventory. Rooms with pending or
// confirmed bookings are refused so guest bookings never dangle against a
// deleted room.
func (s *DefaultRoomService) DeleteRoom(roomID string) error {
	r, err := s.Repo.GetByID(roomID)
	if err != nil {
		return err
	}
	if r == nil {
		return booking.ErrNotFound
	}

	bookings, err := s.Bookings.GetByRoom(roomID)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		if b.Status == models.BookingPending || b.Status == models.BookingConfirmed {
			return errRoomHasBookings
		}
	}

	if err := s.Repo.Delete(roomID); err != nil {
		return err
	}
	s.invalidate(r.HotelID)
	return nil
}
