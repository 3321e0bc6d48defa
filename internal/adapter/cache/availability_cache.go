package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb}
}

func (c *AvailabilityCache) GetMonth(ctx context.Context, month string) ([]domain.CalendarDay, bool, error) {
	raw, err := c.rdb.Get(ctx, fmt.Sprintf(KeyAvailabilityMonth, month)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var days []domain.CalendarDay
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached month %s: %w", month, err)
	}
	return days, true, nil
}

func (c *AvailabilityCache) SetMonth(ctx context.Context, month string, days []domain.CalendarDay) error {
	raw, err := json.Marshal(days)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, fmt.Sprintf(KeyAvailabilityMonth, month), raw, TTLAvailabilityMonth).Err()
}

func (c *AvailabilityCache) InvalidateMonths(ctx context.Context, months ...string) error {
	if len(months) == 0 {
		return nil
	}
	keys := make([]string, len(months))
	for i, m := range months {
		keys[i] = fmt.Sprintf(KeyAvailabilityMonth, m)
	}
	return c.rdb.Del(ctx, keys...).Err()
}
