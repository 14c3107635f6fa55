package booking

import (
	"testing"
	"time"

	"roomify/models"
)

func TestGetBookingDetailJoinsContext(t *testing.T) {
	repo := newFakeBookingRepo()
	b := testBooking("b1", "room-1", models.BookingConfirmed, day(2026, time.June, 10), day(2026, time.June, 15))
	if err := repo.Create(&b); err != nil {
		t.Fatal(err)
	}
	rooms := newFakeRoomRepo(models.Room{ID: "room-1", HotelID: "hotel-1", RoomType: "Deluxe", IsAvailable: true})
	hotels := newFakeHotelRepo(models.Hotel{ID: "hotel-1", Name: "Harbor View"})
	users := newFakeUserRepo(models.User{ID: "guest-1", FirstName: "Ada", Email: "ada@example.com"})
	svc := newTestService(repo, rooms, hotels, users)

	d, err := svc.GetBookingDetail("b1")
	if err != nil {
		t.Fatalf("GetBookingDetail() error = %v", err)
	}
	if d.User == nil || d.User.Email != "ada@example.com" {
		t.Fatalf("user context = %+v", d.User)
	}
	if d.Room == nil || d.Room.RoomType != "Deluxe" {
		t.Fatalf("room context = %+v", d.Room)
	}
	if d.Room.Hotel == nil || d.Room.Hotel.Name != "Harbor View" {
		t.Fatalf("hotel context = %+v", d.Room.Hotel)
	}
}

func TestGetBookingDetailMissingReferences(t *testing.T) {
	repo := newFakeBookingRepo()
	b := testBooking("b1", "room-gone", models.BookingPending, day(2026, time.June, 10), day(2026, time.June, 15))
	b.UserID = "user-gone"
	if err := repo.Create(&b); err != nil {
		t.Fatal(err)
	}
	svc := newTestService(repo, newFakeRoomRepo(), newFakeHotelRepo(), newFakeUserRepo())

	// Dangling references degrade to a bare booking instead of failing.
	d, err := svc.GetBookingDetail("b1")
	if err != nil {
		t.Fatalf("GetBookingDetail() error = %v", err)
	}
	if d.User != nil || d.Room != nil {
		t.Fatalf("detail = %+v, want nil user and room context", d)
	}
}

func TestHotelStats(t *testing.T) {
	repo := newFakeBookingRepo()
	seed := []models.Booking{
		testBooking("b1", "room-1", models.BookingConfirmed, day(2026, time.June, 1), day(2026, time.June, 3)),
		testBooking("b2", "room-1", models.BookingPending, day(2026, time.June, 5), day(2026, time.June, 7)),
		testBooking("b3", "room-2", models.BookingCancelled, day(2026, time.June, 1), day(2026, time.June, 2)),
		testBooking("b4", "other-hotel-room", models.BookingConfirmed, day(2026, time.June, 1), day(2026, time.June, 2)),
	}
	seed[0].TotalAmount = 300
	for _, b := range seed {
		copied := b
		if err := repo.Create(&copied); err != nil {
			t.Fatal(err)
		}
	}
	rooms := newFakeRoomRepo(
		models.Room{ID: "room-1", HotelID: "hotel-1"},
		models.Room{ID: "room-2", HotelID: "hotel-1"},
		models.Room{ID: "other-hotel-room", HotelID: "hotel-2"},
	)
	svc := newTestService(repo, rooms, newFakeHotelRepo(), newFakeUserRepo())

	stats, err := svc.HotelStats("hotel-1")
	if err != nil {
		t.Fatalf("HotelStats() error = %v", err)
	}
	if stats.HotelID != "hotel-1" {
		t.Fatalf("hotelId = %q", stats.HotelID)
	}
	if stats.TotalBookings != 3 || stats.Confirmed != 1 || stats.Pending != 1 || stats.Cancelled != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.Revenue != 300 {
		t.Fatalf("revenue = %v, want 300", stats.Revenue)
	}
}
