package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c Config) Configured() bool {
	return c.Host != "" && c.From != ""
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPSender struct {
	from   string
	dialer dialer
	logger *zap.Logger
}

func NewSMTPSender(cfg Config, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger,
	}
}

func (s *SMTPSender) SendBookingConfirmation(ctx context.Context, msg domain.BookingEmail) error {
	subject := fmt.Sprintf("Booking received for %s", msg.EventDate)
	return s.send(ctx, msg.To, subject, customerTmpl, msg)
}

func (s *SMTPSender) SendInternalNotification(ctx context.Context, msg domain.BookingEmail) error {
	subject := fmt.Sprintf("New booking: %s on %s", msg.Customer.Name, msg.EventDate)
	if msg.NeedsReview {
		subject = "[REVIEW] " + subject
	}
	return s.send(ctx, msg.To, subject, internalTmpl, msg)
}

func (s *SMTPSender) send(ctx context.Context, to, subject string, tmpl *template.Template, msg domain.BookingEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, msg); err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	s.logger.Info("email sent", zap.String("booking_id", msg.BookingID), zap.String("subject", subject))
	return nil
}
