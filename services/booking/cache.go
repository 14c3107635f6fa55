package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"roomify/models"
	"roomify/utils"

	"go.uber.org/zap"
)

const (
	availabilityTTL        = 10 * time.Minute
	availabilityVersionKey = "avail:ver:%s"
	availabilityResultKey  = "avail:%s:%d:%s:%s"
)

// allHotelsScope versions availability queries not scoped to a single hotel.
const allHotelsScope = "all"

func scopeKey(hotelID string) string {
	if hotelID == "" {
		return allHotelsScope
	}
	return hotelID
}

// availabilityVersion reads the current cache generation for a hotel scope.
// A missing key reads as generation 0.
func (s *DefaultBookingService) availabilityVersion(ctx context.Context, hotelID string) int64 {
	ver, err := s.Cache.Get(ctx, fmt.Sprintf(availabilityVersionKey, scopeKey(hotelID))).Int64()
	if err != nil {
		return 0
	}
	return ver
}

func (s *DefaultBookingService) availabilityKey(ctx context.Context, hotelID string, w models.StayWindow) string {
	return fmt.Sprintf(availabilityResultKey,
		scopeKey(hotelID),
		s.availabilityVersion(ctx, hotelID),
		w.CheckIn.UTC().Format("20060102"),
		w.CheckOut.UTC().Format("20060102"),
	)
}

func (s *DefaultBookingService) cachedAvailability(ctx context.Context, hotelID string, w models.StayWindow) ([]models.Room, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, s.availabilityKey(ctx, hotelID, w)).Result()
	if err != nil {
		return nil, false
	}
	var rooms []models.Room
	if err := json.Unmarshal([]byte(raw), &rooms); err != nil {
		return nil, false
	}
	return rooms, true
}

func (s *DefaultBookingService) storeAvailability(ctx context.Context, hotelID string, w models.StayWindow, rooms []models.Room) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, s.availabilityKey(ctx, hotelID, w), raw, availabilityTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability result",
			zap.String("hotelId", hotelID), zap.Error(err))
	}
}

// invalidateAvailability bumps the hotel's cache generation so cached
// availability results for the old generation are never read again. The
// unscoped generation is bumped too, covering cross-hotel searches.
func (s *DefaultBookingService) invalidateAvailability(ctx context.Context, hotelID string) {
	if s.Cache == nil {
		return
	}
	keys := []string{fmt.Sprintf(availabilityVersionKey, allHotelsScope)}
	if hotelID != "" {
		keys = append(keys, fmt.Sprintf(availabilityVersionKey, hotelID))
	}
	for _, key := range keys {
		if err := s.Cache.Incr(ctx, key).Err(); err != nil {
			utils.GetLogger().Warn("failed to invalidate availability cache",
				zap.String("key", key), zap.Error(err))
		}
	}
}

// InvalidateHotelAvailability bumps the availability cache generation for a
// hotel. Room-inventory mutations call this so an administrative override
// flip is visible immediately instead of after the cache TTL.
func (s *DefaultBookingService) InvalidateHotelAvailability(ctx context.Context, hotelID string) {
	s.invalidateAvailability(ctx, hotelID)
}

// invalidateAvailabilityForRoom resolves the room's hotel before bumping the
// cache generation. Used where only the room ID is at hand.
func (s *DefaultBookingService) invalidateAvailabilityForRoom(ctx context.Context, roomID string) {
	if s.Cache == nil {
		return
	}
	hotelID := ""
	if room, err := s.Rooms.GetByID(roomID); err == nil && room != nil {
		hotelID = room.HotelID
	}
	s.invalidateAvailability(ctx, hotelID)
}
