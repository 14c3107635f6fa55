package room

import (
	"context"
	"errors"
	"testing"

	"roomify/models"
	"roomify/services/booking"
)

type fakeRoomRepo struct {
	rooms map[string]models.Room
}

func newFakeRoomRepo(rooms ...models.Room) *fakeRoomRepo {
	f := &fakeRoomRepo{rooms: make(map[string]models.Room)}
	for _, r := range rooms {
		f.rooms[r.ID] = r
	}
	return f
}

func (f *fakeRoomRepo) GetByID(id string) (*models.Room, error) {
	if r, ok := f.rooms[id]; ok {
		copied := r
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeRoomRepo) GetByIDs(ids []string) ([]models.Room, error) {
	var out []models.Room
	for _, id := range ids {
		if r, ok := f.rooms[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) GetAll() ([]models.Room, error) {
	out := make([]models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) GetByHotel(hotelID string) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) Create(r *models.Room) error {
	f.rooms[r.ID] = *r
	return nil
}

func (f *fakeRoomRepo) Update(r *models.Room) error {
	f.rooms[r.ID] = *r
	return nil
}

func (f *fakeRoomRepo) Delete(id string) error {
	delete(f.rooms, id)
	return nil
}

type fakeHotelRepo struct {
	hotels map[string]models.Hotel
}

func newFakeHotelRepo(hotels ...models.Hotel) *fakeHotelRepo {
	f := &fakeHotelRepo{hotels: make(map[string]models.Hotel)}
	for _, h := range hotels {
		f.hotels[h.ID] = h
	}
	return f
}

func (f *fakeHotelRepo) GetByID(id string) (*models.Hotel, error) {
	if h, ok := f.hotels[id]; ok {
		copied := h
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeHotelRepo) GetByIDs(ids []string) ([]models.Hotel, error) { return nil, nil }
func (f *fakeHotelRepo) GetAll() ([]models.Hotel, error)              { return nil, nil }
func (f *fakeHotelRepo) Create(h *models.Hotel) error                 { return nil }
func (f *fakeHotelRepo) Update(h *models.Hotel) error                 { return nil }
func (f *fakeHotelRepo) Delete(id string) error                       { return nil }

type fakeBookingLookup struct {
	byRoom map[string][]models.Booking
}

func (f *fakeBookingLookup) GetByRoom(roomID string) ([]models.Booking, error) {
	return f.byRoom[roomID], nil
}

// fakeInvalidator records the hotel scopes whose cache generation was bumped.
type fakeInvalidator struct {
	bumped []string
}

func (f *fakeInvalidator) InvalidateHotelAvailability(ctx context.Context, hotelID string) {
	f.bumped = append(f.bumped, hotelID)
}

func newTestService(rooms *fakeRoomRepo, bookings *fakeBookingLookup, inv *fakeInvalidator) *DefaultRoomService {
	if bookings == nil {
		bookings = &fakeBookingLookup{}
	}
	return &DefaultRoomService{
		Repo:         rooms,
		Hotels:       newFakeHotelRepo(models.Hotel{ID: "hotel-1", Name: "Harbor View"}),
		Bookings:     bookings,
		Availability: inv,
	}
}

func validRoom() models.Room {
	return models.Room{HotelID: "hotel-1", RoomType: "Deluxe", PricePerNight: 120, Capacity: 2, IsAvailable: true}
}

func TestSetAvailabilityBumpsCacheGeneration(t *testing.T) {
	rooms := newFakeRoomRepo(models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true})
	inv := &fakeInvalidator{}
	svc := newTestService(rooms, nil, inv)

	r, err := svc.SetAvailability("room-1", false)
	if err != nil {
		t.Fatalf("SetAvailability() error = %v", err)
	}
	if r.IsAvailable {
		t.Fatal("override not applied")
	}
	if len(inv.bumped) != 1 || inv.bumped[0] != "hotel-1" {
		t.Fatalf("invalidated scopes = %v, want [hotel-1]", inv.bumped)
	}
}

func TestInventoryMutationsInvalidateAvailability(t *testing.T) {
	rooms := newFakeRoomRepo()
	inv := &fakeInvalidator{}
	svc := newTestService(rooms, nil, inv)

	created, err := svc.CreateRoom(validRoom())
	if err != nil {
		t.Fatalf("CreateRoom() error = %v", err)
	}
	updated := validRoom()
	updated.PricePerNight = 150
	if _, err := svc.UpdateRoom(created.ID, updated); err != nil {
		t.Fatalf("UpdateRoom() error = %v", err)
	}
	if err := svc.DeleteRoom(created.ID); err != nil {
		t.Fatalf("DeleteRoom() error = %v", err)
	}

	if len(inv.bumped) != 3 {
		t.Fatalf("invalidations = %d (%v), want one per mutation", len(inv.bumped), inv.bumped)
	}
	for _, scope := range inv.bumped {
		if scope != "hotel-1" {
			t.Fatalf("invalidated scope = %q, want hotel-1", scope)
		}
	}
}

func TestDeleteRoomWithLiveBookings(t *testing.T) {
	tests := []struct {
		name     string
		status   models.BookingStatus
		wantCode string
	}{
		{name: "pending booking blocks", status: models.BookingPending, wantCode: "roomNotEmpty"},
		{name: "confirmed booking blocks", status: models.BookingConfirmed, wantCode: "roomNotEmpty"},
		{name: "cancelled booking does not block", status: models.BookingCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := newFakeRoomRepo(models.Room{ID: "room-1", HotelID: "hotel-1"})
			bookings := &fakeBookingLookup{byRoom: map[string][]models.Booking{
				"room-1": {{ID: "b1", RoomID: "room-1", Status: tt.status}},
			}}
			inv := &fakeInvalidator{}
			svc := newTestService(rooms, bookings, inv)

			err := svc.DeleteRoom("room-1")
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("DeleteRoom() error = %v", err)
				}
				if r, _ := rooms.GetByID("room-1"); r != nil {
					t.Fatal("room not deleted")
				}
				return
			}

			var be *booking.Error
			if !errors.As(err, &be) || be.Code != tt.wantCode {
				t.Fatalf("DeleteRoom() error = %v, want code %q", err, tt.wantCode)
			}
			if r, _ := rooms.GetByID("room-1"); r == nil {
				t.Fatal("room deleted despite live bookings")
			}
			if len(inv.bumped) != 0 {
				t.Fatalf("invalidations = %v, want none for a refused delete", inv.bumped)
			}
		})
	}
}

func TestCreateRoomUnknownHotel(t *testing.T) {
	svc := newTestService(newFakeRoomRepo(), nil, &fakeInvalidator{})

	r := validRoom()
	r.HotelID = "missing"
	if _, err := svc.CreateRoom(r); !errors.Is(err, booking.ErrNotFound) {
		t.Fatalf("CreateRoom() error = %v, want %v", err, booking.ErrNotFound)
	}
}
