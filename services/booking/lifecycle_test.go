package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"roomify/models"
)

func TestCreateBooking(t *testing.T) {
	room := models.Room{ID: "room-1", HotelID: "hotel-1", PricePerNight: 120.50, IsAvailable: true}
	repo := newFakeBookingRepo()
	svc := newTestService(repo, newFakeRoomRepo(room), newFakeHotelRepo(), newFakeUserRepo())

	b, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "guest-1",
		RoomID: "room-1",
		Window: models.StayWindow{CheckIn: day(2026, time.June, 10), CheckOut: day(2026, time.June, 13)},
	})
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if b.Status != models.BookingPending {
		t.Fatalf("new booking status = %q, want Pending", b.Status)
	}
	if b.TotalAmount != 361.50 {
		t.Fatalf("total = %v, want 361.50", b.TotalAmount)
	}

	// A second overlapping booking on the same room is refused outright.
	_, err = svc.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "guest-2",
		RoomID: "room-1",
		Window: models.StayWindow{CheckIn: day(2026, time.June, 12), CheckOut: day(2026, time.June, 14)},
	})
	if !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("overlapping CreateBooking() error = %v, want %v", err, ErrBookingConflict)
	}

	// Back-to-back with same-day turnover is fine.
	if _, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "guest-2",
		RoomID: "room-1",
		Window: models.StayWindow{CheckIn: day(2026, time.June, 13), CheckOut: day(2026, time.June, 14)},
	}); err != nil {
		t.Fatalf("back-to-back CreateBooking() error = %v", err)
	}
}

func TestCreateBookingClosedRoom(t *testing.T) {
	room := models.Room{ID: "room-1", HotelID: "hotel-1", PricePerNight: 80, IsAvailable: false}
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(room), newFakeHotelRepo(), newFakeUserRepo())

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "guest-1",
		RoomID: "room-1",
		Window: models.StayWindow{CheckIn: day(2026, time.June, 10), CheckOut: day(2026, time.June, 12)},
	})
	if !errors.Is(err, ErrRoomUnavailable) {
		t.Fatalf("CreateBooking() error = %v, want %v", err, ErrRoomUnavailable)
	}
}

func TestConfirmBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	b := testBooking("b1", "room-1", models.BookingPending, day(2026, time.June, 10), day(2026, time.June, 15))
	if err := repo.Create(&b); err != nil {
		t.Fatal(err)
	}
	svc := newTestService(repo, newFakeRoomRepo(models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true}), newFakeHotelRepo(), newFakeUserRepo())

	confirmed, err := svc.ConfirmBooking(context.Background(), "b1")
	if err != nil {
		t.Fatalf("ConfirmBooking() error = %v", err)
	}
	if confirmed.Status != models.BookingConfirmed {
		t.Fatalf("status = %q, want Confirmed", confirmed.Status)
	}

	// Confirming again is a no-op success.
	if _, err := svc.ConfirmBooking(context.Background(), "b1"); err != nil {
		t.Fatalf("second ConfirmBooking() error = %v", err)
	}

	if _, err := svc.ConfirmBooking(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ConfirmBooking(missing) error = %v, want %v", err, ErrNotFound)
	}
}

func TestConfirmBookingConflict(t *testing.T) {
	repo := newFakeBookingRepo()
	winner := testBooking("winner", "room-1", models.BookingConfirmed, day(2026, time.June, 10), day(2026, time.June, 15))
	loser := testBooking("loser", "room-1", models.BookingPending, day(2026, time.June, 12), day(2026, time.June, 17))
	for _, b := range []models.Booking{winner, loser} {
		copied := b
		if err := repo.Create(&copied); err != nil {
			t.Fatal(err)
		}
	}
	svc := newTestService(repo, newFakeRoomRepo(models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true}), newFakeHotelRepo(), newFakeUserRepo())

	_, err := svc.ConfirmBooking(context.Background(), "loser")
	if !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("ConfirmBooking() error = %v, want %v", err, ErrBookingConflict)
	}

	// The loser stays Pending for manual resolution.
	got, _ := repo.GetByID("loser")
	if got.Status != models.BookingPending {
		t.Fatalf("loser status = %q, want Pending", got.Status)
	}
}

func TestConfirmBookingRace(t *testing.T) {
	repo := newFakeBookingRepo()
	a := testBooking("a", "room-1", models.BookingPending, day(2026, time.June, 10), day(2026, time.June, 15))
	b := testBooking("b", "room-1", models.BookingPending, day(2026, time.June, 12), day(2026, time.June, 17))
	for _, bk := range []models.Booking{a, b} {
		copied := bk
		if err := repo.Create(&copied); err != nil {
			t.Fatal(err)
		}
	}
	svc := newTestService(repo, newFakeRoomRepo(models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true}), newFakeHotelRepo(), newFakeUserRepo())

	var wg sync.WaitGroup
	results := make(map[string]error, 2)
	var mu sync.Mutex
	for _, id := range []string{"a", "b"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.ConfirmBooking(context.Background(), id)
			mu.Lock()
			results[id] = err
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	winners := 0
	for id, err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, ErrBookingConflict):
		default:
			t.Fatalf("ConfirmBooking(%s) unexpected error %v", id, err)
		}
	}
	if winners != 1 {
		t.Fatalf("got %d confirmed bookings, want exactly 1", winners)
	}
}

func TestConfirmCancelledBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	b := testBooking("b1", "room-1", models.BookingCancelled, day(2026, time.June, 10), day(2026, time.June, 15))
	if err := repo.Create(&b); err != nil {
		t.Fatal(err)
	}
	svc := newTestService(repo, newFakeRoomRepo(), newFakeHotelRepo(), newFakeUserRepo())

	if _, err := svc.ConfirmBooking(context.Background(), "b1"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("ConfirmBooking(cancelled) error = %v, want %v", err, ErrInvalidTransition)
	}
}

func TestCancelBooking(t *testing.T) {
	owner := Actor{UserID: "guest-1"}
	stranger := Actor{UserID: "guest-2"}
	admin := Actor{UserID: "staff-1", Admin: true}

	tests := []struct {
		name    string
		status  models.BookingStatus
		actor   Actor
		wantErr error
		want    models.BookingStatus
	}{
		{name: "owner cancels pending", status: models.BookingPending, actor: owner, want: models.BookingCancelled},
		{name: "stranger cannot cancel", status: models.BookingPending, actor: stranger, wantErr: ErrForbidden, want: models.BookingPending},
		{name: "owner cannot cancel confirmed", status: models.BookingConfirmed, actor: owner, wantErr: ErrForbidden, want: models.BookingConfirmed},
		{name: "admin cancels confirmed", status: models.BookingConfirmed, actor: admin, want: models.BookingCancelled},
		{name: "cancel of cancelled is a no-op", status: models.BookingCancelled, actor: owner, want: models.BookingCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo()
			b := testBooking("b1", "room-1", tt.status, day(2026, time.June, 10), day(2026, time.June, 15))
			if err := repo.Create(&b); err != nil {
				t.Fatal(err)
			}
			svc := newTestService(repo, newFakeRoomRepo(models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true}), newFakeHotelRepo(), newFakeUserRepo())

			err := svc.CancelBooking(context.Background(), "b1", tt.actor)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CancelBooking() error = %v, want %v", err, tt.wantErr)
			}
			got, _ := repo.GetByID("b1")
			if got.Status != tt.want {
				t.Fatalf("status after cancel = %q, want %q", got.Status, tt.want)
			}
		})
	}
}

func TestSetStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	b := testBooking("b1", "room-1", models.BookingPending, day(2026, time.June, 10), day(2026, time.June, 15))
	if err := repo.Create(&b); err != nil {
		t.Fatal(err)
	}
	svc := newTestService(repo, newFakeRoomRepo(models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true}), newFakeHotelRepo(), newFakeUserRepo())
	ctx := context.Background()

	if err := svc.SetStatus(ctx, "b1", models.BookingStatus("Bogus")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("SetStatus(bogus) error = %v, want %v", err, ErrInvalidTransition)
	}

	if err := svc.SetStatus(ctx, "b1", models.BookingConfirmed); err != nil {
		t.Fatalf("SetStatus(Confirmed) error = %v", err)
	}
	got, _ := repo.GetByID("b1")
	if got.Status != models.BookingConfirmed {
		t.Fatalf("status = %q, want Confirmed", got.Status)
	}

	// Confirmed never moves back to Pending.
	if err := svc.SetStatus(ctx, "b1", models.BookingPending); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("SetStatus(Pending) error = %v, want %v", err, ErrInvalidTransition)
	}

	if err := svc.SetStatus(ctx, "b1", models.BookingCancelled); err != nil {
		t.Fatalf("SetStatus(Cancelled) error = %v", err)
	}
	got, _ = repo.GetByID("b1")
	if got.Status != models.BookingCancelled {
		t.Fatalf("status = %q, want Cancelled", got.Status)
	}
}

func TestUpdateBookingWindow(t *testing.T) {
	room := models.Room{ID: "room-1", HotelID: "hotel-1", PricePerNight: 100, IsAvailable: true}
	repo := newFakeBookingRepo()
	pending := testBooking("b1", "room-1", models.BookingPending, day(2026, time.June, 10), day(2026, time.June, 12))
	confirmed := testBooking("b2", "room-1", models.BookingConfirmed, day(2026, time.June, 20), day(2026, time.June, 25))
	for _, b := range []models.Booking{pending, confirmed} {
		copied := b
		if err := repo.Create(&copied); err != nil {
			t.Fatal(err)
		}
	}
	svc := newTestService(repo, newFakeRoomRepo(room), newFakeHotelRepo(), newFakeUserRepo())
	ctx := context.Background()

	// Moving into the confirmed booking's window conflicts.
	_, err := svc.UpdateBookingWindow(ctx, "b1", models.StayWindow{CheckIn: day(2026, time.June, 22), CheckOut: day(2026, time.June, 24)})
	if !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("UpdateBookingWindow() error = %v, want %v", err, ErrBookingConflict)
	}

	// A clear window moves and reprices the booking.
	got, err := svc.UpdateBookingWindow(ctx, "b1", models.StayWindow{CheckIn: day(2026, time.June, 14), CheckOut: day(2026, time.June, 18)})
	if err != nil {
		t.Fatalf("UpdateBookingWindow() error = %v", err)
	}
	if got.TotalAmount != 400 {
		t.Fatalf("total = %v, want 400", got.TotalAmount)
	}

	// Confirmed bookings are immutable.
	_, err = svc.UpdateBookingWindow(ctx, "b2", models.StayWindow{CheckIn: day(2026, time.July, 1), CheckOut: day(2026, time.July, 3)})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("UpdateBookingWindow(confirmed) error = %v, want %v", err, ErrInvalidTransition)
	}
}

func TestExpireStalePending(t *testing.T) {
	repo := newFakeBookingRepo()
	stale := testBooking("stale", "room-1", models.BookingPending, day(2026, time.June, 10), day(2026, time.June, 12))
	stale.CreatedAt = testNow.Add(-2 * time.Hour)
	fresh := testBooking("fresh", "room-1", models.BookingPending, day(2026, time.June, 20), day(2026, time.June, 22))
	fresh.CreatedAt = testNow.Add(-5 * time.Minute)
	for _, b := range []models.Booking{stale, fresh} {
		copied := b
		if err := repo.Create(&copied); err != nil {
			t.Fatal(err)
		}
	}
	svc := newTestService(repo, newFakeRoomRepo(models.Room{ID: "room-1", HotelID: "hotel-1", IsAvailable: true}), newFakeHotelRepo(), newFakeUserRepo())

	expired, err := svc.ExpireStalePending(context.Background(), 30*time.Minute)
	if err != nil {
		t.Fatalf("ExpireStalePending() error = %v", err)
	}
	if expired != 1 {
		t.Fatalf("expired = %d, want 1", expired)
	}
	gotStale, _ := repo.GetByID("stale")
	if gotStale.Status != models.BookingCancelled {
		t.Fatalf("stale status = %q, want Cancelled", gotStale.Status)
	}
	gotFresh, _ := repo.GetByID("fresh")
	if gotFresh.Status != models.BookingPending {
		t.Fatalf("fresh status = %q, want Pending", gotFresh.Status)
	}

	// Zero TTL disables the sweep.
	if n, err := svc.ExpireStalePending(context.Background(), 0); err != nil || n != 0 {
		t.Fatalf("ExpireStalePending(0) = %d, %v; want 0, nil", n, err)
	}
}
