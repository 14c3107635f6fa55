package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"roomify/models"

	"github.com/hibiken/asynq"
)

// TypeCheckinReminder is the task type for guest check-in reminder emails.
const TypeCheckinReminder = "reminder:checkin"

// CheckinReminderPayload is the serialized payload of a check-in reminder task.
type CheckinReminderPayload struct {
	BookingID   string    `json:"bookingId"`
	Email       string    `json:"email"`
	HotelName   string    `json:"hotelName"`
	CheckInDate time.Time `json:"checkInDate"`
}

// NewCheckinReminderTask builds an asynq task carrying the reminder payload.
func NewCheckinReminderTask(p CheckinReminderPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	return asynq.NewTask(TypeCheckinReminder, payload), nil
}

// Scheduler enqueues delayed tasks on the shared Redis-backed queue.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler wraps an asynq client for task scheduling.
func NewScheduler(client *asynq.Client) *Scheduler {
	return &Scheduler{client: client}
}

// ScheduleCheckinReminder enqueues a reminder email to fire at the given time.
func (s *Scheduler) ScheduleCheckinReminder(b models.Booking, email, hotelName string, fireAt time.Time) error {
	task, err := NewCheckinReminderTask(CheckinReminderPayload{
		BookingID:   b.ID,
		Email:       email,
		HotelName:   hotelName,
		CheckInDate: b.CheckInDate,
	})
	if err != nil {
		return err
	}
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue check-in reminder: %w", err)
	}
	return nil
}
