package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

const (
	DefaultAPIBase = "https://www.googleapis.com/calendar/v3"
	calendarScope  = "https://www.googleapis.com/auth/calendar.readonly"
	requestTimeout = 20 * time.Second
)

// GoogleCalendar lists events from one calendar using a service account.
type GoogleCalendar struct {
	calendarID string
	apiBase    string
	loc        *time.Location
	http       *http.Client
	logger     *zap.Logger
}

// NewGoogleCalendar builds a client from service account key JSON. The
// returned client fetches and refreshes its own access tokens.
func NewGoogleCalendar(ctx context.Context, serviceAccountJSON []byte, calendarID, apiBase string, loc *time.Location, logger *zap.Logger) (*GoogleCalendar, error) {
	conf, err := google.JWTConfigFromJSON(serviceAccountJSON, calendarScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account json: %w", err)
	}
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	if loc == nil {
		loc = time.UTC
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: requestTimeout})
	client := conf.Client(ctx)
	client.Timeout = requestTimeout

	return &GoogleCalendar{
		calendarID: calendarID,
		apiBase:    strings.TrimRight(apiBase, "/"),
		loc:        loc,
		http:       client,
		logger:     logger,
	}, nil
}

type eventTime struct {
	Date     string `json:"date"`
	DateTime string `json:"dateTime"`
}

type apiEvent struct {
	ID      string    `json:"id"`
	Status  string    `json:"status"`
	Summary string    `json:"summary"`
	Start   eventTime `json:"start"`
	End     eventTime `json:"end"`
}

type eventsPage struct {
	Items         []apiEvent `json:"items"`
	NextPageToken string     `json:"nextPageToken"`
}

func (g *GoogleCalendar) ListEvents(ctx context.Context, from, to time.Time) ([]domain.ExternalEvent, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events", g.apiBase, url.PathEscape(g.calendarID))
	var out []domain.ExternalEvent
	pageToken := ""
	for {
		q := url.Values{}
		q.Set("timeMin", from.UTC().Format(time.RFC3339))
		q.Set("timeMax", to.UTC().Format(time.RFC3339))
		q.Set("singleEvents", "true")
		q.Set("orderBy", "startTime")
		q.Set("maxResults", "250")
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var page eventsPage
		if err := g.getJSON(ctx, endpoint+"?"+q.Encode(), &page); err != nil {
			return nil, err
		}

		for _, e := range page.Items {
			if e.Status == "cancelled" {
				continue
			}
			ev, err := g.toDomain(e)
			if err != nil {
				g.logger.Warn("skipping calendar event with bad time", zap.String("event_id", e.ID), zap.Error(err))
				continue
			}
			out = append(out, ev)
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}
	return out, nil
}

func (g *GoogleCalendar) toDomain(e apiEvent) (domain.ExternalEvent, error) {
	start, err := g.parseTime(e.Start)
	if err != nil {
		return domain.ExternalEvent{}, err
	}
	end, err := g.parseTime(e.End)
	if err != nil {
		end = start
	}
	return domain.ExternalEvent{ID: e.ID, Summary: e.Summary, Start: start, End: end}, nil
}

// All-day events carry a date in the calendar's own zone.
func (g *GoogleCalendar) parseTime(t eventTime) (time.Time, error) {
	if t.DateTime != "" {
		return time.Parse(time.RFC3339, t.DateTime)
	}
	if t.Date != "" {
		return time.ParseInLocation(domain.DateLayout, t.Date, g.loc)
	}
	return time.Time{}, errors.New("event has no start time")
}

func (g *GoogleCalendar) getJSON(ctx context.Context, u string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("calendar request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("calendar api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
