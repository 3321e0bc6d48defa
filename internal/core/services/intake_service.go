package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/core/domain"
	"github.com/srgjo27/catering_booking/internal/core/ports"
)

const retryBatchSize = 20

// IntakeService forwards bookings to the intake webhook and keeps failed
// deliveries on a retry queue.
type IntakeService struct {
	webhook ports.BookingWebhook
	queue   ports.WebhookQueue
	logger  *zap.Logger
}

func NewIntakeService(webhook ports.BookingWebhook, queue ports.WebhookQueue, logger *zap.Logger) *IntakeService {
	return &IntakeService{
		webhook: webhook,
		queue:   queue,
		logger:  logger,
	}
}

func (s *IntakeService) Submit(ctx context.Context, payload domain.WebhookPayload) {
	if s.webhook == nil {
		s.logger.Warn("booking webhook not configured, skipping", zap.String("booking_id", payload.BookingID))
		return
	}

	err := s.webhook.Send(ctx, payload)
	if err == nil {
		return
	}

	s.logger.Warn("booking webhook failed, queueing for retry",
		zap.String("booking_id", payload.BookingID),
		zap.Error(err),
	)
	item := domain.QueuedWebhook{
		Payload:   payload,
		Attempts:  1,
		LastError: err.Error(),
		QueuedAt:  time.Now().UTC(),
	}
	if qerr := s.queue.Enqueue(ctx, item); qerr != nil {
		s.logger.Error("failed to queue booking webhook",
			zap.String("booking_id", payload.BookingID),
			zap.Error(qerr),
		)
	}
}

type RetryResult struct {
	Sent     int
	Requeued int
	Dead     int
}

// RetryPending resends queued payloads. A payload that has failed
// MaxWebhookAttempts times is moved to the dead list.
func (s *IntakeService) RetryPending(ctx context.Context) (RetryResult, error) {
	var res RetryResult
	if s.webhook == nil {
		return res, domain.ErrNotConfigured
	}

	items, err := s.queue.Dequeue(ctx, retryBatchSize)
	if err != nil {
		return res, err
	}

	for _, item := range items {
		err := s.webhook.Send(ctx, item.Payload)
		if err == nil {
			res.Sent++
			continue
		}

		item.Attempts++
		item.LastError = err.Error()
		if item.Attempts >= domain.MaxWebhookAttempts {
			if derr := s.queue.DeadLetter(ctx, item); derr != nil {
				s.logger.Error("failed to dead-letter webhook", zap.String("booking_id", item.Payload.BookingID), zap.Error(derr))
			}
			s.logger.Error("booking webhook gave up",
				zap.String("booking_id", item.Payload.BookingID),
				zap.Int("attempts", item.Attempts),
				zap.Error(err),
			)
			res.Dead++
			continue
		}

		if qerr := s.queue.Enqueue(ctx, item); qerr != nil {
			s.logger.Error("failed to requeue webhook", zap.String("booking_id", item.Payload.BookingID), zap.Error(qerr))
			continue
		}
		res.Requeued++
	}

	if len(items) > 0 {
		s.logger.Info("webhook retry run",
			zap.Int("sent", res.Sent),
			zap.Int("requeued", res.Requeued),
			zap.Int("dead", res.Dead),
		)
	}
	return res, nil
}
