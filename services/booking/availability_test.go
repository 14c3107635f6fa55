package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomify/models"
)

var testNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeBookingRepo, rooms *fakeRoomRepo, hotels *fakeHotelRepo, users *fakeUserRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:   repo,
		Rooms:  rooms,
		Hotels: hotels,
		Users:  users,
		Now:    func() time.Time { return testNow },
	}
}

func testBooking(id, roomID string, status models.BookingStatus, in, out time.Time) models.Booking {
	return models.Booking{
		ID:           id,
		UserID:       "guest-1",
		RoomID:       roomID,
		CheckInDate:  in,
		CheckOutDate: out,
		Status:       status,
		CreatedAt:    testNow,
		UpdatedAt:    testNow,
	}
}

func TestCheckRoomAvailability(t *testing.T) {
	window := models.StayWindow{CheckIn: day(2026, time.June, 10), CheckOut: day(2026, time.June, 15)}

	tests := []struct {
		name     string
		room     models.Room
		existing []models.Booking
		want     bool
	}{
		{
			name: "no bookings",
			room: models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true},
			want: true,
		},
		{
			name: "pending booking blocks",
			room: models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true},
			existing: []models.Booking{
				testBooking("b1", "room-1", models.BookingPending, day(2026, time.June, 12), day(2026, time.June, 14)),
			},
			want: false,
		},
		{
			name: "confirmed booking blocks",
			room: models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true},
			existing: []models.Booking{
				testBooking("b1", "room-1", models.BookingConfirmed, day(2026, time.June, 14), day(2026, time.June, 20)),
			},
			want: false,
		},
		{
			name: "cancelled booking does not block",
			room: models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true},
			existing: []models.Booking{
				testBooking("b1", "room-1", models.BookingCancelled, day(2026, time.June, 10), day(2026, time.June, 15)),
			},
			want: true,
		},
		{
			name: "same-day turnover allowed",
			room: models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true},
			existing: []models.Booking{
				testBooking("b1", "room-1", models.BookingConfirmed, day(2026, time.June, 5), day(2026, time.June, 10)),
				testBooking("b2", "room-1", models.BookingConfirmed, day(2026, time.June, 15), day(2026, time.June, 18)),
			},
			want: true,
		},
		{
			name: "admin override wins over free calendar",
			room: models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: false},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo()
			for _, b := range tt.existing {
				if err := repo.Create(&b); err != nil {
					t.Fatal(err)
				}
			}
			svc := newTestService(repo, newFakeRoomRepo(tt.room), newFakeHotelRepo(), newFakeUserRepo())

			got, err := svc.CheckRoomAvailability(context.Background(), tt.room.ID, window)
			if err != nil {
				t.Fatalf("CheckRoomAvailability() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("CheckRoomAvailability() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckRoomAvailabilityUnknownRoom(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(), newFakeHotelRepo(), newFakeUserRepo())
	window := models.StayWindow{CheckIn: day(2026, time.June, 10), CheckOut: day(2026, time.June, 15)}

	if _, err := svc.CheckRoomAvailability(context.Background(), "missing", window); !errors.Is(err, ErrNotFound) {
		t.Fatalf("CheckRoomAvailability() error = %v, want %v", err, ErrNotFound)
	}
}

func TestAvailableRooms(t *testing.T) {
	rooms := newFakeRoomRepo(
		models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true},
		models.Room{ID: "room-2", HotelID: "hotel-1", IsAvailable: true},
		models.Room{ID: "room-3", HotelID: "hotel-1", IsAvailable: false},
		models.Room{ID: "room-4", HotelID: "hotel-2", IsAvailable: true},
	)
	repo := newFakeBookingRepo()
	busy := testBooking("b1", "room-2", models.BookingConfirmed, day(2026, time.June, 12), day(2026, time.June, 14))
	if err := repo.Create(&busy); err != nil {
		t.Fatal(err)
	}
	svc := newTestService(repo, rooms, newFakeHotelRepo(), newFakeUserRepo())
	window := models.StayWindow{CheckIn: day(2026, time.June, 10), CheckOut: day(2026, time.June, 15)}

	got, err := svc.AvailableRooms(context.Background(), "hotel-1", window)
	if err != nil {
		t.Fatalf("AvailableRooms() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "room-1" {
		t.Fatalf("AvailableRooms() = %v, want only room-1", got)
	}

	// Unscoped search spans hotels.
	all, err := svc.AvailableRooms(context.Background(), "", window)
	if err != nil {
		t.Fatalf("AvailableRooms() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("AvailableRooms(all) returned %d rooms, want 2", len(all))
	}
}

func TestAvailableRoomsRejectsBadWindow(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(), newFakeHotelRepo(), newFakeUserRepo())
	window := models.StayWindow{CheckIn: day(2026, time.June, 15), CheckOut: day(2026, time.June, 10)}

	if _, err := svc.AvailableRooms(context.Background(), "hotel-1", window); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("AvailableRooms() error = %v, want %v", err, ErrInvalidDateRange)
	}
}
