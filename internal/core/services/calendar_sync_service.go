package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/core/domain"
	"github.com/srgjo27/catering_booking/internal/core/ports"
)

const SyncWindow = 90 * 24 * time.Hour

var ErrSyncInProgress = errors.New("calendar sync already running")

type SyncResult struct {
	EventsSynced int `json:"eventsSynced"`
	DatesUpdated int `json:"datesUpdated"`
}

type CalendarSyncService struct {
	provider     ports.CalendarProvider
	availRepo    ports.AvailabilityRepository
	statusRepo   ports.SyncStatusRepository
	availability *AvailabilityService
	logger       *zap.Logger
	loc          *time.Location
	clock        clockwork.Clock

	mu sync.Mutex
}

func NewCalendarSyncService(
	provider ports.CalendarProvider,
	availRepo ports.AvailabilityRepository,
	statusRepo ports.SyncStatusRepository,
	availability *AvailabilityService,
	logger *zap.Logger,
	loc *time.Location,
) *CalendarSyncService {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarSyncService{
		provider:     provider,
		availRepo:    availRepo,
		statusRepo:   statusRepo,
		availability: availability,
		logger:       logger,
		loc:          loc,
		clock:        clockwork.NewRealClock(),
	}
}

func (s *CalendarSyncService) SetClock(c clockwork.Clock) {
	s.clock = c
}

// Sync pulls the next 90 days of external events into the availability
// table. Only one run is active at a time.
func (s *CalendarSyncService) Sync(ctx context.Context) (*SyncResult, error) {
	if !s.mu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.mu.Unlock()

	now := s.clock.Now().UTC()
	if s.provider == nil {
		s.saveStatus(ctx, domain.SyncStatus{LastSync: now, Status: domain.SyncError, ErrorMessage: "calendar credentials not configured"})
		return nil, domain.ErrNotConfigured
	}

	s.saveStatus(ctx, domain.SyncStatus{LastSync: now, Status: domain.SyncPending})

	events, err := s.provider.ListEvents(ctx, now, now.Add(SyncWindow))
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to list calendar events: %w", err))
	}

	records := GroupEventsByDate(events, s.loc)
	if err := s.availRepo.UpsertSynced(ctx, records); err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to store availability: %w", err))
	}

	dates := make([]domain.Date, 0, len(records))
	for _, r := range records {
		dates = append(dates, r.Date)
	}
	s.availability.Invalidate(ctx, dates...)

	s.saveStatus(ctx, domain.SyncStatus{LastSync: s.clock.Now().UTC(), Status: domain.SyncSuccess, EventsSynced: len(events)})
	s.logger.Info("calendar sync complete", zap.Int("events", len(events)), zap.Int("dates", len(records)))

	return &SyncResult{EventsSynced: len(events), DatesUpdated: len(records)}, nil
}

func (s *CalendarSyncService) Status(ctx context.Context) (*domain.SyncStatus, error) {
	st, err := s.statusRepo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.SyncStatus{Status: domain.SyncPending}, nil
	}
	return st, err
}

func (s *CalendarSyncService) fail(ctx context.Context, err error) error {
	s.logger.Error("calendar sync failed", zap.Error(err))
	s.saveStatus(ctx, domain.SyncStatus{LastSync: s.clock.Now().UTC(), Status: domain.SyncError, ErrorMessage: err.Error()})
	return err
}

func (s *CalendarSyncService) saveStatus(ctx context.Context, st domain.SyncStatus) {
	if err := s.statusRepo.Save(ctx, st); err != nil {
		s.logger.Warn("failed to save sync status", zap.String("status", string(st.Status)), zap.Error(err))
	}
}

// GroupEventsByDate buckets events by their local start date. Each record
// counts its events and is unavailable when it has any.
func GroupEventsByDate(events []domain.ExternalEvent, loc *time.Location) []domain.AvailabilityRecord {
	if loc == nil {
		loc = time.UTC
	}
	byDate := map[domain.Date][]domain.ExternalEvent{}
	for _, e := range events {
		d := domain.NewDate(e.Start.In(loc))
		byDate[d] = append(byDate[d], e)
	}

	records := make([]domain.AvailabilityRecord, 0, len(byDate))
	for d, evs := range byDate {
		records = append(records, domain.AvailabilityRecord{
			Date:           d,
			IsAvailable:    len(evs) == 0,
			BookedEvents:   len(evs),
			MaxEvents:      domain.DefaultMaxEvents,
			ExternalEvents: evs,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records
}
