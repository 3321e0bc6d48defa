package cache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

// WebhookQueue keeps failed webhook deliveries on Redis lists.
type WebhookQueue struct {
	rdb *redis.Client
}

func NewWebhookQueue(rdb *redis.Client) *WebhookQueue {
	return &WebhookQueue{rdb: rdb}
}

func (q *WebhookQueue) Enqueue(ctx context.Context, item domain.QueuedWebhook) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return q.rdb.RPush(ctx, KeyWebhookRetry, raw).Err()
}

// Dequeue pops up to limit items from the head of the retry list. Entries
// that no longer decode are dropped.
func (q *WebhookQueue) Dequeue(ctx context.Context, limit int) ([]domain.QueuedWebhook, error) {
	vals, err := q.rdb.LPopCount(ctx, KeyWebhookRetry, limit).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items := make([]domain.QueuedWebhook, 0, len(vals))
	for _, v := range vals {
		var item domain.QueuedWebhook
		if err := json.Unmarshal([]byte(v), &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (q *WebhookQueue) DeadLetter(ctx context.Context, item domain.QueuedWebhook) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return q.rdb.RPush(ctx, KeyWebhookDead, raw).Err()
}
