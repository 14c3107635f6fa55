package booking

import (
	"time"

	"roomify/models"
)

// ValidateStayWindow checks a stay window against the authoritative server
// clock. Pure validation, no side effects: ErrInvalidDateRange when check-out
// is not after check-in, ErrPastCheckIn when check-in precedes today. The
// server clock is authoritative to close client clock-skew exploits.
func ValidateStayWindow(w models.StayWindow, now time.Time) error {
	if !w.CheckOut.After(w.CheckIn) {
		return ErrInvalidDateRange
	}
	today := truncateToDay(now)
	if w.CheckIn.Before(today) {
		return ErrPastCheckIn
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
