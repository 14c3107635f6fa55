package handlers

import (
	userRepoPkg "roomify/database/repository/user"
	"roomify/services/booking"
	"roomify/services/hotel"
	"roomify/services/payment"
	"roomify/services/room"
	"roomify/services/ticket"
	"roomify/services/user"
	"roomify/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct, wired once in
// main and consumed by the route registrar.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	Register gin.HandlerFunc
	Login    gin.HandlerFunc

	// Hotel endpoints
	ListHotels     gin.HandlerFunc
	GetHotel       gin.HandlerFunc
	ListHotelRooms gin.HandlerFunc
	CreateHotel    gin.HandlerFunc
	UpdateHotel    gin.HandlerFunc
	DeleteHotel    gin.HandlerFunc

	// Room endpoints
	ListRooms           gin.HandlerFunc
	GetRoom             gin.HandlerFunc
	AvailableRooms      gin.HandlerFunc
	CreateRoom          gin.HandlerFunc
	UpdateRoom          gin.HandlerFunc
	SetRoomAvailability gin.HandlerFunc
	DeleteRoom          gin.HandlerFunc

	// Booking endpoints
	CreateBooking           gin.HandlerFunc
	GetBooking              gin.HandlerFunc
	ListBookings            gin.HandlerFunc
	ListUserBookings        gin.HandlerFunc
	ListBookingsByStatus    gin.HandlerFunc
	SearchBookingsByDate    gin.HandlerFunc
	RoomAvailability        gin.HandlerFunc
	ConfirmBooking          gin.HandlerFunc
	CancelBooking           gin.HandlerFunc
	SetBookingStatus        gin.HandlerFunc
	UpdateBooking           gin.HandlerFunc
	DeleteBooking           gin.HandlerFunc
	HotelStats              gin.HandlerFunc
	UpcomingCheckIns        gin.HandlerFunc
	UpcomingCheckOuts       gin.HandlerFunc

	// Payment endpoints
	CreatePaymentIntent gin.HandlerFunc
	StripeWebhook       gin.HandlerFunc
	ListPayments        gin.HandlerFunc
	ListUserPayments    gin.HandlerFunc
	UpdatePaymentStatus gin.HandlerFunc

	// User endpoints
	GetProfile    gin.HandlerFunc
	UpdateProfile gin.HandlerFunc
	ListUsers     gin.HandlerFunc
	GetUser       gin.HandlerFunc
	UpdateUser    gin.HandlerFunc
	DeleteUser    gin.HandlerFunc

	// Ticket endpoints
	OpenTicket          gin.HandlerFunc
	MyTickets           gin.HandlerFunc
	GetTicket           gin.HandlerFunc
	UpdateTicket        gin.HandlerFunc
	ListTickets         gin.HandlerFunc
	ListTicketsByStatus gin.HandlerFunc
	SetTicketStatus     gin.HandlerFunc
	DeleteTicket        gin.HandlerFunc

	// Storage endpoints
	UploadImage gin.HandlerFunc
}

// BundleDeps carries the wired services the bundle is built from.
type BundleDeps struct {
	UserRepo userRepoPkg.UserRepository
	Users    user.UserService
	Hotels   hotel.HotelService
	Rooms    room.RoomService
	Bookings booking.BookingService
	Payments payment.PaymentService
	Tickets  ticket.TicketService
	Images   utils.ImageStore
}

// NewHandlerBundle wires every endpoint handler to its service.
func NewHandlerBundle(d BundleDeps) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: d.UserRepo,

		Register: RegisterHandler(d.Users),
		Login:    LoginHandler(d.Users),

		ListHotels:     ListHotelsHandler(d.Hotels),
		GetHotel:       GetHotelHandler(d.Hotels),
		ListHotelRooms: ListHotelRoomsHandler(d.Hotels, d.Rooms),
		CreateHotel:    CreateHotelHandler(d.Hotels),
		UpdateHotel:    UpdateHotelHandler(d.Hotels),
		DeleteHotel:    DeleteHotelHandler(d.Hotels),

		ListRooms:           ListRoomsHandler(d.Rooms),
		GetRoom:             GetRoomHandler(d.Rooms),
		AvailableRooms:      AvailableRoomsHandler(d.Bookings),
		CreateRoom:          CreateRoomHandler(d.Rooms),
		UpdateRoom:          UpdateRoomHandler(d.Rooms),
		SetRoomAvailability: SetRoomAvailabilityHandler(d.Rooms),
		DeleteRoom:          DeleteRoomHandler(d.Rooms),

		CreateBooking:        CreateBookingHandler(d.Bookings),
		GetBooking:           GetBookingHandler(d.Bookings),
		ListBookings:         ListBookingsHandler(d.Bookings),
		ListUserBookings:     ListUserBookingsHandler(d.Bookings),
		ListBookingsByStatus: ListBookingsByStatusHandler(d.Bookings),
		SearchBookingsByDate: SearchBookingsByDateRangeHandler(d.Bookings),
		RoomAvailability:     RoomAvailabilityHandler(d.Bookings),
		ConfirmBooking:       ConfirmBookingHandler(d.Bookings),
		CancelBooking:        CancelBookingHandler(d.Bookings),
		SetBookingStatus:     SetBookingStatusHandler(d.Bookings),
		UpdateBooking:        UpdateBookingHandler(d.Bookings),
		DeleteBooking:        DeleteBookingHandler(d.Bookings),
		HotelStats:           HotelStatsHandler(d.Bookings),
		UpcomingCheckIns:     UpcomingCheckInsHandler(d.Bookings),
		UpcomingCheckOuts:    UpcomingCheckOutsHandler(d.Bookings),

		CreatePaymentIntent: CreatePaymentIntentHandler(d.Payments),
		StripeWebhook:       StripeWebhookHandler(d.Payments),
		ListPayments:        ListPaymentsHandler(d.Payments),
		ListUserPayments:    ListUserPaymentsHandler(d.Payments),
		UpdatePaymentStatus: UpdatePaymentStatusHandler(d.Payments),

		GetProfile:    GetProfileHandler(d.Users),
		UpdateProfile: UpdateProfileHandler(d.Users),
		ListUsers:     ListUsersHandler(d.Users),
		GetUser:       GetUserHandler(d.Users),
		UpdateUser:    UpdateUserHandler(d.Users),
		DeleteUser:    DeleteUserHandler(d.Users),

		OpenTicket:          OpenTicketHandler(d.Tickets),
		MyTickets:           MyTicketsHandler(d.Tickets),
		GetTicket:           GetTicketHandler(d.Tickets),
		UpdateTicket:        UpdateTicketHandler(d.Tickets),
		ListTickets:         ListTicketsHandler(d.Tickets),
		ListTicketsByStatus: ListTicketsByStatusHandler(d.Tickets),
		SetTicketStatus:     SetTicketStatusHandler(d.Tickets),
		DeleteTicket:        DeleteTicketHandler(d.Tickets),

		UploadImage: UploadImageHandler(d.Images),
	}
}
