package notification

import (
	"fmt"

	"roomify/config"
	"roomify/models"

	"gopkg.in/gomail.v2"
)

// NotificationService delivers guest-facing messages.
type NotificationService interface {
	// SendBookingConfirmation emails the guest after their booking is confirmed.
	SendBookingConfirmation(email string, b models.Booking, room models.Room, hotelName string) error
	// SendCheckInReminder emails the guest ahead of their check-in date.
	SendCheckInReminder(email string, b models.Booking, hotelName string) error
}

// EmailNotificationService sends mail through the configured SMTP relay.
type EmailNotificationService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailNotificationService builds the SMTP-backed notification service
// from the loaded application config.
func NewEmailNotificationService() *EmailNotificationService {
	cfg := config.AppConfig
	return &EmailNotificationService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (s *EmailNotificationService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func (s *EmailNotificationService) SendBookingConfirmation(email string, b models.Booking, room models.Room, hotelName string) error {
	subject := fmt.Sprintf("Booking confirmed: %s", hotelName)
	body := fmt.Sprintf(
		`<p>Your booking is confirmed.</p>
<ul>
  <li>Booking reference: %s</li>
  <li>Hotel: %s</li>
  <li>Room type: %s</li>
  <li>Check-in: %s</li>
  <li>Check-out: %s</li>
  <li>Total: %.2f</li>
</ul>
<p>We look forward to welcoming you.</p>`,
		b.ID, hotelName, room.RoomType,
		b.CheckInDate.Format("Mon, 02 Jan 2006"),
		b.CheckOutDate.Format("Mon, 02 Jan 2006"),
		b.TotalAmount,
	)
	return s.send(email, subject, body)
}

func (s *EmailNotificationService) SendCheckInReminder(email string, b models.Booking, hotelName string) error {
	subject := fmt.Sprintf("Check-in reminder: %s", hotelName)
	body := fmt.Sprintf(
		`<p>A reminder that your stay at %s begins on %s.</p>
<p>Booking reference: %s</p>`,
		hotelName, b.CheckInDate.Format("Mon, 02 Jan 2006"), b.ID,
	)
	return s.send(email, subject, body)
}
