package ports

import (
	"context"
	"time"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

type CalendarProvider interface {
	ListEvents(ctx context.Context, from, to time.Time) ([]domain.ExternalEvent, error)
}

// BookingWebhook posts a flattened booking to the intake automation.
type BookingWebhook interface {
	Send(ctx context.Context, payload domain.WebhookPayload) error
}

type WebhookQueue interface {
	Enqueue(ctx context.Context, item domain.QueuedWebhook) error
	Dequeue(ctx context.Context, limit int) ([]domain.QueuedWebhook, error)
	DeadLetter(ctx context.Context, item domain.QueuedWebhook) error
}

type EmailSender interface {
	SendBookingConfirmation(ctx context.Context, msg domain.BookingEmail) error
	SendInternalNotification(ctx context.Context, msg domain.BookingEmail) error
}

type AvailabilityCache interface {
	GetMonth(ctx context.Context, month string) ([]domain.CalendarDay, bool, error)
	SetMonth(ctx context.Context, month string, days []domain.CalendarDay) error
	InvalidateMonths(ctx context.Context, months ...string) error
}

type QuoteRenderer interface {
	Render(quote domain.QuoteDocument) ([]byte, error)
}
