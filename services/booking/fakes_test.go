package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "roomify/database/repository/booking"
	"roomify/models"
)

// fakeBookingRepo is an in-memory BookingRepository. ConfirmTransactionally
// mirrors the storage transaction semantics under a single mutex.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.bookings[id]; ok {
		copied := b
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByRoom(roomID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByStatus(status models.BookingStatus) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByDateRange(start, end time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w := models.StayWindow{CheckIn: start, CheckOut: end}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Window().Overlaps(w) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[b.ID]; !ok {
		return bookingRepo.ErrNotFound
	}
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Status = status
	f.bookings[id] = b
	return nil
}

func (f *fakeBookingRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) FindOverlapping(roomIDs []string, w models.StayWindow, statuses []models.BookingStatus) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rooms := make(map[string]bool, len(roomIDs))
	for _, id := range roomIDs {
		rooms[id] = true
	}
	wanted := make(map[models.BookingStatus]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if rooms[b.RoomID] && wanted[b.Status] && b.Window().Overlaps(w) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ConfirmTransactionally(ctx context.Context, bookingID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	switch b.Status {
	case models.BookingConfirmed:
		copied := b
		return &copied, nil
	case models.BookingCancelled:
		return nil, bookingRepo.ErrTerminal
	}

	for _, other := range f.bookings {
		if other.ID == b.ID || other.RoomID != b.RoomID || other.Status != models.BookingConfirmed {
			continue
		}
		if other.Window().Overlaps(b.Window()) {
			return nil, bookingRepo.ErrConflict
		}
	}

	b.Status = models.BookingConfirmed
	b.UpdatedAt = time.Now()
	f.bookings[bookingID] = b
	copied := b
	return &copied, nil
}

func (f *fakeBookingRepo) StatsForRooms(roomIDs []string) (*models.HotelBookingStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rooms := make(map[string]bool, len(roomIDs))
	for _, id := range roomIDs {
		rooms[id] = true
	}
	stats := &models.HotelBookingStats{}
	for _, b := range f.bookings {
		if !rooms[b.RoomID] {
			continue
		}
		stats.TotalBookings++
		switch b.Status {
		case models.BookingPending:
			stats.Pending++
		case models.BookingConfirmed:
			stats.Confirmed++
			stats.Revenue += b.TotalAmount
		case models.BookingCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func (f *fakeBookingRepo) UpcomingCheckIns(from, to time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.BookingConfirmed && !b.CheckInDate.Before(from) && b.CheckInDate.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpcomingCheckOuts(from, to time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.BookingConfirmed && !b.CheckOutDate.Before(from) && b.CheckOutDate.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindStalePending(cutoff time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.BookingPending && b.CreatedAt.Before(cutoff) {
			out = append(out, b)
		}
	}
	return out, nil
}

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

func (f *fakeHotelRepo) GetByIDs(ids []string) ([]models.Hotel, error) {
	var out []models.Hotel
	for _, id := range ids {
		if h, ok := f.hotels[id]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHotelRepo) GetAll() ([]models.Hotel, error) {
	out := make([]models.Hotel, 0, len(f.hotels))
	for _, h := range f.hotels {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHotelRepo) Create(h *models.Hotel) error {
	f.hotels[h.ID] = *h
	return nil
}

func (f *fakeHotelRepo) Update(h *models.Hotel) error {
	f.hotels[h.ID] = *h
	return nil
}

func (f *fakeHotelRepo) Delete(id string) error {
	delete(f.hotels, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDs(ids []string) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}
