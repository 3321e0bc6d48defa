package cache

import "time"

const (
	// Month calendar view: availability:{YYYY-MM} -> []CalendarDay JSON
	KeyAvailabilityMonth = "availability:%s"

	// Webhook payloads waiting for another attempt, oldest first.
	KeyWebhookRetry = "webhook:booking:retry"

	// Webhook payloads that exhausted their attempts.
	KeyWebhookDead = "webhook:booking:dead"
)

var TTLAvailabilityMonth = 5 * time.Minute
