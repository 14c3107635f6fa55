package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"roomify/config"
	bookingRepo "roomify/database/repository/booking"
	"roomify/models"
	"roomify/services/notification"
	"roomify/services/tasks"

	"github.com/hibiken/asynq"
)

// NewQueueClient builds the asynq client used to enqueue delayed tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(queueRedisOpts())
}

func queueRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService, bookings bookingRepo.BookingRepository) {
	srv := asynq.NewServer(
		queueRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCheckinReminder, handleCheckinReminder(notifSvc, bookings))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleCheckinReminder(notifSvc notification.NotificationService, bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.CheckinReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderWorker] invalid payload: %v", err)
			return err
		}

		// The booking may have been cancelled since the reminder was enqueued.
		b, err := bookings.GetByID(p.BookingID)
		if err != nil {
			return err
		}
		if b == nil || b.Status != models.BookingConfirmed {
			log.Printf("[ReminderWorker] skipping reminder for booking %s: no longer confirmed", p.BookingID)
			return nil
		}

		return notifSvc.SendCheckInReminder(p.Email, *b, p.HotelName)
	}
}
