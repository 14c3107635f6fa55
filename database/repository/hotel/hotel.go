package hotelRepo

import "roomify/models"

// HotelRepository defines methods for hotel data access.
type HotelRepository interface {
	// GetByID retrieves a hotel by its unique ID.
	GetByID(id string) (*models.Hotel, error)
	// GetByIDs retrieves the hotels with the given IDs.
	GetByIDs(ids []string) ([]models.Hotel, error)
	// GetAll retrieves all hotels.
	GetAll() ([]models.Hotel, error)
	// Create inserts a new hotel record.
	Create(hotel *models.Hotel) error
	// Update replaces an existing hotel record.
	Update(hotel *models.Hotel) error
	// Delete removes a hotel record by its ID.
	Delete(id string) error
}
