package booking

import (
	"time"

	"roomify/models"
)

// GetBookingDetail retrieves a booking joined with its guest and room context.
func (s *DefaultBookingService) GetBookingDetail(bookingID string) (*models.BookingDetail, error) {
	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	details, err := s.assembleDetails([]models.Booking{*b})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// ListBookings retrieves all bookings with guest and room context.
func (s *DefaultBookingService) ListBookings() ([]models.BookingDetail, error) {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.assembleDetails(bookings)
}

// ListBookingsByUser retrieves a user's bookings with room context.
func (s *DefaultBookingService) ListBookingsByUser(userID string) ([]models.BookingDetail, error) {
	bookings, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.assembleDetails(bookings)
}

// ListBookingsByStatus retrieves bookings in the given lifecycle state.
func (s *DefaultBookingService) ListBookingsByStatus(status models.BookingStatus) ([]models.BookingDetail, error) {
	if !status.Valid() {
		return nil, ErrInvalidTransition
	}
	bookings, err := s.Repo.GetByStatus(status)
	if err != nil {
		return nil, err
	}
	return s.assembleDetails(bookings)
}

// ListBookingsByDateRange retrieves bookings whose window intersects [start, end).
func (s *DefaultBookingService) ListBookingsByDateRange(start, end time.Time) ([]models.BookingDetail, error) {
	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}
	bookings, err := s.Repo.GetByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.assembleDetails(bookings)
}

// assembleDetails joins bookings with their guests, rooms and hotels using
// one batched lookup per collection rather than a query per booking.
func (s *DefaultBookingService) assembleDetails(bookings []models.Booking) ([]models.BookingDetail, error) {
	userIDs := make([]string, 0, len(bookings))
	roomIDs := make([]string, 0, len(bookings))
	seenUser := make(map[string]bool, len(bookings))
	seenRoom := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if !seenUser[b.UserID] {
			seenUser[b.UserID] = true
			userIDs = append(userIDs, b.UserID)
		}
		if !seenRoom[b.RoomID] {
			seenRoom[b.RoomID] = true
			roomIDs = append(roomIDs, b.RoomID)
		}
	}

	users, err := s.Users.GetByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[string]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	rooms, err := s.Rooms.GetByIDs(roomIDs)
	if err != nil {
		return nil, err
	}
	roomsByID := make(map[string]models.Room, len(rooms))
	hotelIDs := make([]string, 0, len(rooms))
	seenHotel := make(map[string]bool, len(rooms))
	for _, r := range rooms {
		roomsByID[r.ID] = r
		if r.HotelID != "" && !seenHotel[r.HotelID] {
			seenHotel[r.HotelID] = true
			hotelIDs = append(hotelIDs, r.HotelID)
		}
	}

	hotels, err := s.Hotels.GetByIDs(hotelIDs)
	if err != nil {
		return nil, err
	}
	hotelsByID := make(map[string]models.Hotel, len(hotels))
	for _, h := range hotels {
		hotelsByID[h.ID] = h
	}

	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		d := models.BookingDetail{Booking: b}
		if u, ok := usersByID[b.UserID]; ok {
			d.User = u.Summary()
		}
		if r, ok := roomsByID[b.RoomID]; ok {
			rd := models.RoomDetail{Room: r}
			if h, ok := hotelsByID[r.HotelID]; ok {
				hotel := h
				rd.Hotel = &hotel
			}
			d.Room = &rd
		}
		details = append(details, d)
	}
	return details, nil
}
