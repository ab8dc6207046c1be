// Package mail sends transactional email over SMTP. Delivery is best
// effort: the booking flow logs failures and carries on, so senders here
// must never be load-bearing for request success.
package mail

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"
)

// Config holds SMTP settings. When Enabled is false the sender becomes a
// logged no-op, which is the expected mode in development.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Enabled  bool
}

// Confirmation carries everything the appointment confirmation email needs.
type Confirmation struct {
	PatientName   string
	PatientEmail  string
	DoctorName    string
	Specialty     string
	AppointmentAt time.Time
	Price         float64
}

// Sender delivers appointment confirmation messages.
type Sender struct {
	cfg    Config
	dialer *gomail.Dialer
	logger zerolog.Logger
}

func NewSender(cfg Config, logger zerolog.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger,
	}
}

// SendAppointmentConfirmation renders and delivers the confirmation email.
// The send runs in its own goroutine so a slow SMTP server cannot hold the
// request beyond the context deadline.
func (s *Sender) SendAppointmentConfirmation(ctx context.Context, conf Confirmation) error {
	if !s.cfg.Enabled {
		s.logger.Debug().
			Str("recipient", conf.PatientEmail).
			Msg("mail disabled, skipping confirmation")
		return nil
	}

	subject, text, html := renderConfirmation(conf)

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.From)
	msg.SetHeader("To", conf.PatientEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		s.logger.Info().
			Str("recipient", conf.PatientEmail).
			Msg("confirmation email sent")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
