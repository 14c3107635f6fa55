package roomRepo

import "roomify/models"

// RoomRepository defines methods for room data access.
type RoomRepository interface {
	// GetByID retrieves a room by its unique ID.
	GetByID(id string) (*models.Room, error)
	// GetByIDs retrieves the rooms with the given IDs.
	GetByIDs(ids []string) ([]models.Room, error)
	// GetAll retrieves all rooms.
	GetAll() ([]models.Room, error)
	// GetByHotel retrieves the rooms owned by a hotel.
	GetByHotel(hotelID string) ([]models.Room, error)
	// Create inserts a new room record.
	Create(room *models.Room) error
	// Update replaces an existing room record.
	Update(room *models.Room) error
	// Delete removes a room record by its ID.
	Delete(id string) error
}
