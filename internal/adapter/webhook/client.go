package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

// Client posts booking payloads to the intake automation URL.
type Client struct {
	url    string
	http   *http.Client
	logger *zap.Logger
}

func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:    url,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *Client) Send(ctx context.Context, payload domain.WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("webhook rejected",
			zap.String("booking_id", payload.BookingID),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(snippet)),
		)
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	c.logger.Debug("webhook delivered", zap.String("booking_id", payload.BookingID), zap.Int("status", resp.StatusCode))
	return nil
}
