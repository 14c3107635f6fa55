package routes

import (
	"net/http"
	"time"

	"roomify/handlers"
	"roomify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account registration and login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Register)
		api.POST("/login", hb.Login)
	}
}

// RegisterHotelRoutes registers hotel catalogue endpoints. Reads are public;
// writes require an admin.
func RegisterHotelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hotels")
	{
		api.GET("", hb.ListHotels)
		api.GET("/:id", hb.GetHotel)
		api.GET("/:id/rooms", hb.ListHotelRooms)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.AdminMiddleware())
		admin.POST("", hb.CreateHotel)
		admin.PUT("/:id", hb.UpdateHotel)
		admin.DELETE("/:id", hb.DeleteHotel)
	}
}

// RegisterRoomRoutes registers room inventory endpoints. Reads and
// availability search are public; writes require an admin.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.ListRooms)
		api.GET("/available", hb.AvailableRooms)
		api.GET("/:id", hb.GetRoom)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.AdminMiddleware())
		admin.POST("", hb.CreateRoom)
		admin.PUT("/:id", hb.UpdateRoom)
		admin.PATCH("/:id/availability", hb.SetRoomAvailability)
		admin.DELETE("/:id", hb.DeleteRoom)
	}
}

// RegisterBookingRoutes registers the booking engine endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	api.Use(middleware.AuthMiddleware(hb.UserRepo))
	{
		api.POST("", hb.CreateBooking)
		api.GET("/:id", hb.GetBooking)
		api.GET("/user/:userId", hb.ListUserBookings)
		api.GET("/room/:roomId/availability", hb.RoomAvailability)
		api.PATCH("/:id/cancel", hb.CancelBooking)

		admin := api.Group("")
		admin.Use(middleware.AdminMiddleware())
		admin.GET("", hb.ListBookings)
		admin.GET("/status/:status", hb.ListBookingsByStatus)
		admin.GET("/search/date-range", hb.SearchBookingsByDate)
		admin.PATCH("/:id/confirm", hb.ConfirmBooking)
		admin.PATCH("/:id/status", hb.SetBookingStatus)
		admin.PUT("/:id", hb.UpdateBooking)
		admin.DELETE("/:id", hb.DeleteBooking)
		admin.GET("/hotel/:hotelId/stats", hb.HotelStats)
		admin.GET("/reports/upcoming-checkins", hb.UpcomingCheckIns)
		admin.GET("/reports/upcoming-checkouts", hb.UpcomingCheckOuts)
	}
}

// RegisterPaymentRoutes registers payment endpoints. The webhook is
// authenticated by gateway signature, not by bearer token.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/payments/webhook", hb.StripeWebhook)

	authed := r.Group("/api")
	authed.Use(middleware.AuthMiddleware(hb.UserRepo))
	{
		authed.POST("/create-payment-intent", hb.CreatePaymentIntent)
		authed.GET("/payments/user/:userId", hb.ListUserPayments)

		admin := authed.Group("/payments")
		admin.Use(middleware.AdminMiddleware())
		admin.GET("", hb.ListPayments)
		admin.PATCH("/status", hb.UpdatePaymentStatus)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.AuthMiddleware(hb.UserRepo))
	{
		api.GET("/me", hb.GetProfile)
		api.PUT("/me", hb.UpdateProfile)

		admin := api.Group("")
		admin.Use(middleware.AdminMiddleware())
		admin.GET("", hb.ListUsers)
		admin.GET("/:id", hb.GetUser)
		admin.PUT("/:id", hb.UpdateUser)
		admin.DELETE("/:id", hb.DeleteUser)
	}
}

// RegisterTicketRoutes registers support ticket endpoints.
func RegisterTicketRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tickets")
	api.Use(middleware.AuthMiddleware(hb.UserRepo))
	{
		api.POST("", hb.OpenTicket)
		api.GET("/me", hb.MyTickets)
		api.GET("/:id", hb.GetTicket)
		api.PUT("/:id", hb.UpdateTicket)

		admin := api.Group("")
		admin.Use(middleware.AdminMiddleware())
		admin.GET("", hb.ListTickets)
		admin.GET("/status/:status", hb.ListTicketsByStatus)
		admin.PATCH("/:id/status", hb.SetTicketStatus)
		admin.DELETE("/:id", hb.DeleteTicket)
	}
}

// RegisterStorageRoutes registers image upload endpoints. Admin only.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	api.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.AdminMiddleware())
	{
		api.POST("/upload", hb.UploadImage)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterHotelRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterTicketRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
