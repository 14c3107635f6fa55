package booking

import (
	"context"

	"roomify/models"
)

// blockingStatuses are the lifecycle states that block a room's window.
// Cancelled bookings never block re-booking.
var blockingStatuses = []models.BookingStatus{models.BookingPending, models.BookingConfirmed}

// CheckRoomAvailability reports whether a single room is free over the
// window: the room must not carry the administrative unavailability override
// and no Pending or Confirmed booking may overlap the window.
func (s *DefaultBookingService) CheckRoomAvailability(ctx context.Context, roomID string, w models.StayWindow) (bool, error) {
	if err := ValidateStayWindow(w, s.now()); err != nil {
		return false, err
	}

	room, err := s.Rooms.GetByID(roomID)
	if err != nil {
		return false, err
	}
	if room == nil {
		return false, ErrNotFound
	}
	if !room.IsAvailable {
		return false, nil
	}

	overlapping, err := s.Repo.FindOverlapping([]string{roomID}, w, blockingStatuses)
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}

// AvailableRooms resolves which of a hotel's rooms (all rooms when hotelID is
// empty) are free over the window. One indexed range query covers the whole
// candidate set; rooms under the administrative override are excluded before
// the query runs. Results are cached per (hotel, window) with a version key
// bumped on every booking and room-inventory mutation, so a stale cache can
// never report a booked or overridden room as free.
func (s *DefaultBookingService) AvailableRooms(ctx context.Context, hotelID string, w models.StayWindow) ([]models.Room, error) {
	if err := ValidateStayWindow(w, s.now()); err != nil {
		return nil, err
	}

	if cached, ok := s.cachedAvailability(ctx, hotelID, w); ok {
		return cached, nil
	}

	var (
		rooms []models.Room
		err   error
	)
	if hotelID == "" {
		rooms, err = s.Rooms.GetAll()
	} else {
		rooms, err = s.Rooms.GetByHotel(hotelID)
	}
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Room, 0, len(rooms))
	ids := make([]string, 0, len(rooms))
	for _, r := range rooms {
		if !r.IsAvailable {
			continue
		}
		candidates = append(candidates, r)
		ids = append(ids, r.ID)
	}

	overlapping, err := s.Repo.FindOverlapping(ids, w, blockingStatuses)
	if err != nil {
		return nil, err
	}
	busy := make(map[string]bool, len(overlapping))
	for _, b := range overlapping {
		busy[b.RoomID] = true
	}

	free := make([]models.Room, 0, len(candidates))
	for _, r := range candidates {
		if !busy[r.ID] {
			free = append(free, r)
		}
	}

	s.storeAvailability(ctx, hotelID, w, free)
	return free, nil
}
