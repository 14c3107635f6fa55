package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomify/config"
	"roomify/cron"
	"roomify/database"
	bookingRepoPkg "roomify/database/repository/booking"
	hotelRepoPkg "roomify/database/repository/hotel"
	paymentRepoPkg "roomify/database/repository/payment"
	roomRepoPkg "roomify/database/repository/room"
	ticketRepoPkg "roomify/database/repository/ticket"
	userRepoPkg "roomify/database/repository/user"
	"roomify/handlers"
	"roomify/routes"
	"roomify/services/booking"
	"roomify/services/hotel"
	"roomify/services/notification"
	"roomify/services/payment"
	"roomify/services/room"
	"roomify/services/tasks"
	"roomify/services/ticket"
	"roomify/services/user"
	"roomify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	var imageStore utils.ImageStore
	if store, err := utils.NewCloudinaryStore(); err != nil {
		logger.Sugar().Warnf("main: image storage disabled: %v", err)
	} else {
		imageStore = store
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	hotelRepo := hotelRepoPkg.NewMongoHotelRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	ticketRepo := ticketRepoPkg.NewMongoTicketRepo()

	// services.
	notificationService := notification.NewEmailNotificationService()
	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Rooms:     roomRepo,
		Hotels:    hotelRepo,
		Users:     userRepo,
		Cache:     utils.GetCacheClient(),
		Notify:    notificationService,
		Reminders: tasks.NewScheduler(queueClient),
	}
	paymentService := &payment.DefaultPaymentService{
		Payments:  paymentRepo,
		Bookings:  bookingRepo,
		Lifecycle: bookingService,
		Currency:  config.AppConfig.PaymentCurrency,
	}
	userService := &user.DefaultUserService{Repo: userRepo}
	hotelService := &hotel.DefaultHotelService{Repo: hotelRepo, Rooms: roomRepo}
	roomService := &room.DefaultRoomService{
		Repo:         roomRepo,
		Hotels:       hotelRepo,
		Bookings:     bookingRepo,
		Availability: bookingService,
	}
	ticketService := &ticket.DefaultTicketService{Repo: ticketRepo}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(handlers.BundleDeps{
		UserRepo: userRepo,
		Users:    userService,
		Hotels:   hotelService,
		Rooms:    roomService,
		Bookings: bookingService,
		Payments: paymentService,
		Tickets:  ticketService,
		Images:   imageStore,
	})
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(notificationService, bookingRepo)
	startPendingExpirySweep(bookingService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// startPendingExpirySweep periodically cancels Pending bookings whose payment
// never completed, so abandoned checkouts stop blocking their windows.
func startPendingExpirySweep(svc booking.BookingService) {
	ttl := time.Duration(config.AppConfig.PendingBookingTTLMin) * time.Minute
	if ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			expired, err := svc.ExpireStalePending(ctx, ttl)
			cancel()
			if err != nil {
				utils.GetLogger().Sugar().Warnf("pending expiry sweep failed: %v", err)
				continue
			}
			if expired > 0 {
				utils.GetLogger().Sugar().Infof("pending expiry sweep cancelled %d stale bookings", expired)
			}
		}
	}()
}
