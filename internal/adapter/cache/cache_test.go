package cache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/catering_booking/internal/adapter/cache"
	"github.com/srgjo27/catering_booking/internal/core/domain"
)

func TestAvailabilityCache_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db)

	mock.ExpectGet("availability:2026-05").RedisNil()

	days, ok, err := c.GetMonth(context.Background(), "2026-05")

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, days)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityCache_SetAndGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db)
	ctx := context.Background()

	days := []domain.CalendarDay{
		{Date: domain.Date{Year: 2026, Month: time.May, Day: 2}, State: domain.StateFree, Available: true, MaxEvents: 2},
	}
	raw, _ := json.Marshal(days)

	mock.ExpectSet("availability:2026-05", raw, cache.TTLAvailabilityMonth).SetVal("OK")
	mock.ExpectGet("availability:2026-05").SetVal(string(raw))

	require.NoError(t, c.SetMonth(ctx, "2026-05", days))

	got, ok, err := c.GetMonth(ctx, "2026-05")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, days, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityCache_Invalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db)

	mock.ExpectDel("availability:2026-05", "availability:2026-06").SetVal(2)

	assert.NoError(t, c.InvalidateMonths(context.Background(), "2026-05", "2026-06"))
	assert.NoError(t, c.InvalidateMonths(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookQueue_RoundTrip(t *testing.T) {
	db, mock := redismock.NewClientMock()
	q := cache.NewWebhookQueue(db)
	ctx := context.Background()

	item := domain.QueuedWebhook{
		Payload:  domain.WebhookPayload{BookingID: "b-1", TotalPrice: 12500},
		Attempts: 1,
		QueuedAt: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
	}
	raw, _ := json.Marshal(item)

	mock.ExpectRPush(cache.KeyWebhookRetry, raw).SetVal(1)
	mock.ExpectLPopCount(cache.KeyWebhookRetry, 20).SetVal([]string{string(raw), "not-json"})
	mock.ExpectRPush(cache.KeyWebhookDead, raw).SetVal(1)

	require.NoError(t, q.Enqueue(ctx, item))

	items, err := q.Dequeue(ctx, 20)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b-1", items[0].Payload.BookingID)
	assert.Equal(t, 1, items[0].Attempts)

	require.NoError(t, q.DeadLetter(ctx, item))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookQueue_DequeueEmpty(t *testing.T) {
	db, mock := redismock.NewClientMock()
	q := cache.NewWebhookQueue(db)

	mock.ExpectLPopCount(cache.KeyWebhookRetry, 20).RedisNil()

	items, err := q.Dequeue(context.Background(), 20)

	assert.NoError(t, err)
	assert.Empty(t, items)
}
