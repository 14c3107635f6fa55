package booking

import (
	"context"
	"math"
	"time"

	bookingRepo "roomify/database/repository/booking"
	hotelRepo "roomify/database/repository/hotel"
	roomRepo "roomify/database/repository/room"
	userRepo "roomify/database/repository/user"
	"roomify/models"
	"roomify/services/notification"
	"roomify/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the standard implementation of BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Rooms     roomRepo.RoomRepository
	Hotels    hotelRepo.HotelRepository
	Users     userRepo.UserRepository
	Cache     *redis.Client
	Notify    notification.NotificationService
	Reminders ReminderScheduler
	// Now is the authoritative server clock; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateBooking validates the window, checks the room is open and free, and
// persists a new Pending booking. Bookings are always created Pending and
// only confirmed on verified payment or by an administrator.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	if err := ValidateStayWindow(in.Window, s.now()); err != nil {
		return nil, err
	}

	room, err := s.Rooms.GetByID(in.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrNotFound
	}
	if !room.IsAvailable {
		// Administrative override always wins over booking-derived availability.
		return nil, ErrRoomUnavailable
	}

	overlapping, err := s.Repo.FindOverlapping(
		[]string{room.ID}, in.Window,
		[]models.BookingStatus{models.BookingPending, models.BookingConfirmed},
	)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, ErrBookingConflict
	}

	nights := in.Window.Nights()
	total := roundAmount(room.PricePerNight * float64(nights))

	now := s.now()
	b := &models.Booking{
		ID:           uuid.New().String(),
		UserID:       in.UserID,
		RoomID:       room.ID,
		CheckInDate:  in.Window.CheckIn,
		CheckOutDate: in.Window.CheckOut,
		TotalAmount:  total,
		Status:       models.BookingPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, room.HotelID)
	return b, nil
}

// UpdateBookingWindow moves a Pending booking to a new stay window. Confirmed
// and Cancelled bookings are immutable; cancel and rebook instead. The total
// is recomputed from the room's current rate.
func (s *DefaultBookingService) UpdateBookingWindow(ctx context.Context, bookingID string, w models.StayWindow) (*models.Booking, error) {
	if err := ValidateStayWindow(w, s.now()); err != nil {
		return nil, err
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if b.Status != models.BookingPending {
		return nil, ErrInvalidTransition
	}

	room, err := s.Rooms.GetByID(b.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrNotFound
	}

	overlapping, err := s.Repo.FindOverlapping(
		[]string{b.RoomID}, w,
		[]models.BookingStatus{models.BookingPending, models.BookingConfirmed},
	)
	if err != nil {
		return nil, err
	}
	for _, other := range overlapping {
		if other.ID != b.ID {
			return nil, ErrBookingConflict
		}
	}

	b.CheckInDate = w.CheckIn
	b.CheckOutDate = w.CheckOut
	b.TotalAmount = roundAmount(room.PricePerNight * float64(w.Nights()))
	b.UpdatedAt = s.now()
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, room.HotelID)
	return b, nil
}

// GetBooking retrieves a booking by ID.
func (s *DefaultBookingService) GetBooking(bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// DeleteBooking hard-deletes a booking, bypassing the lifecycle. Admin only;
// irreversible.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNotFound
	}
	if err := s.Repo.Delete(bookingID); err != nil {
		return err
	}
	s.invalidateAvailabilityForRoom(ctx, b.RoomID)
	return nil
}

// HotelStats aggregates booking counts and confirmed revenue over a hotel's rooms.
func (s *DefaultBookingService) HotelStats(hotelID string) (*models.HotelBookingStats, error) {
	rooms, err := s.Rooms.GetByHotel(hotelID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	stats, err := s.Repo.StatsForRooms(ids)
	if err != nil {
		return nil, err
	}
	stats.HotelID = hotelID
	return stats, nil
}

// UpcomingCheckIns lists confirmed bookings checking in within the horizon.
func (s *DefaultBookingService) UpcomingCheckIns(horizon time.Duration) ([]models.BookingDetail, error) {
	from := truncateToDay(s.now())
	bookings, err := s.Repo.UpcomingCheckIns(from, from.Add(horizon))
	if err != nil {
		return nil, err
	}
	return s.assembleDetails(bookings)
}

// UpcomingCheckOuts lists confirmed bookings checking out within the horizon.
func (s *DefaultBookingService) UpcomingCheckOuts(horizon time.Duration) ([]models.BookingDetail, error) {
	from := truncateToDay(s.now())
	bookings, err := s.Repo.UpcomingCheckOuts(from, from.Add(horizon))
	if err != nil {
		return nil, err
	}
	return s.assembleDetails(bookings)
}

// ExpireStalePending cancels Pending bookings older than ttl. Fills the gap
// left by the gateway: a booking whose payment never completes would
// otherwise block its window indefinitely.
func (s *DefaultBookingService) ExpireStalePending(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}
	stale, err := s.Repo.FindStalePending(s.now().Add(-ttl))
	if err != nil {
		return 0, err
	}
	expired := 0
	for _, b := range stale {
		if err := s.Repo.UpdateStatus(b.ID, models.BookingCancelled); err != nil {
			zap.L().Warn("failed to expire stale pending booking",
				zap.String("bookingId", b.ID), zap.Error(err))
			continue
		}
		s.invalidateAvailabilityForRoom(ctx, b.RoomID)
		expired++
	}
	return expired, nil
}

func (s *DefaultBookingService) notifyConfirmed(b *models.Booking) {
	if s.Notify == nil {
		return
	}
	usr, err := s.Users.GetByID(b.UserID)
	if err != nil || usr == nil {
		return
	}
	room, err := s.Rooms.GetByID(b.RoomID)
	if err != nil || room == nil {
		return
	}
	hotelName := ""
	if hotel, err := s.Hotels.GetByID(room.HotelID); err == nil && hotel != nil {
		hotelName = hotel.Name
	}

	if err := s.Notify.SendBookingConfirmation(usr.Email, *b, *room, hotelName); err != nil {
		utils.GetLogger().Warn("failed to send booking confirmation email",
			zap.String("bookingId", b.ID), zap.Error(err))
	}

	if s.Reminders != nil {
		fireAt := b.CheckInDate.Add(-24 * time.Hour)
		if fireAt.After(s.now()) {
			if err := s.Reminders.ScheduleCheckinReminder(*b, usr.Email, hotelName, fireAt); err != nil {
				utils.GetLogger().Warn("failed to schedule check-in reminder",
					zap.String("bookingId", b.ID), zap.Error(err))
			}
		}
	}
}

func roundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
