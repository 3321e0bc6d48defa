package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/core/domain"
	"github.com/srgjo27/catering_booking/internal/core/ports"
)

type AvailabilityService struct {
	bookingRepo ports.BookingRepository
	availRepo   ports.AvailabilityRepository
	blockedRepo ports.BlockedDateRepository
	cache       ports.AvailabilityCache
	logger      *zap.Logger
	loc         *time.Location
	clock       clockwork.Clock
}

func NewAvailabilityService(
	bookingRepo ports.BookingRepository,
	availRepo ports.AvailabilityRepository,
	blockedRepo ports.BlockedDateRepository,
	cache ports.AvailabilityCache,
	logger *zap.Logger,
	loc *time.Location,
) *AvailabilityService {
	if loc == nil {
		loc = time.UTC
	}
	return &AvailabilityService{
		bookingRepo: bookingRepo,
		availRepo:   availRepo,
		blockedRepo: blockedRepo,
		cache:       cache,
		logger:      logger,
		loc:         loc,
		clock:       clockwork.NewRealClock(),
	}
}

// SetClock replaces the time source. Used by tests.
func (s *AvailabilityService) SetClock(c clockwork.Clock) {
	s.clock = c
}

func (s *AvailabilityService) Today() domain.Date {
	return domain.NewDate(s.clock.Now().In(s.loc))
}

// Assess classifies a date for a candidate venue. Store errors are returned.
func (s *AvailabilityService) Assess(ctx context.Context, date domain.Date, postalCode string) (domain.DateAssessment, error) {
	today := s.Today()
	if domain.Unbookable(date, today) {
		return domain.ClassifyDate(domain.DateInput{Date: date, Today: today}), nil
	}

	blocked, err := s.blockedRepo.IsBlocked(ctx, date)
	if err != nil {
		return domain.DateAssessment{}, fmt.Errorf("failed to check blocked dates: %w", err)
	}

	bookings, err := s.bookingRepo.ListActiveByDate(ctx, date)
	if err != nil {
		return domain.DateAssessment{}, fmt.Errorf("failed to list bookings: %w", err)
	}

	maxEvents := domain.DefaultMaxEvents
	rec, err := s.availRepo.GetByDate(ctx, date)
	switch {
	case err == nil:
		maxEvents = rec.EffectiveMaxEvents()
	case errors.Is(err, domain.ErrNotFound):
	default:
		return domain.DateAssessment{}, fmt.Errorf("failed to load availability: %w", err)
	}

	area, _ := domain.AreaNameByPostalCode(postalCode)
	return domain.ClassifyDate(domain.DateInput{
		Date:           date,
		Today:          today,
		Blocked:        blocked,
		ActiveBookings: bookings,
		MaxEvents:      maxEvents,
		CandidateArea:  area,
	}), nil
}

// CheckConflict is Assess with the fail-open policy applied: any store
// failure lets the customer continue and asks them to confirm manually.
func (s *AvailabilityService) CheckConflict(ctx context.Context, date domain.Date, postalCode string) domain.DateAssessment {
	res, err := s.Assess(ctx, date, postalCode)
	if err != nil {
		s.logger.Warn("availability check failed, failing open",
			zap.String("date", date.String()),
			zap.Error(err),
		)
		return s.FailOpen(date)
	}
	return res
}

// FailOpen is the assessment used when the stores can't be read.
func (s *AvailabilityService) FailOpen(date domain.Date) domain.DateAssessment {
	return domain.FailOpen(date, s.Today())
}

func (s *AvailabilityService) Month(ctx context.Context, month string) ([]domain.CalendarDay, error) {
	first, last, err := domain.MonthRange(month)
	if err != nil {
		return nil, domain.ValidationErrors{"month": "Month must be formatted as YYYY-MM."}
	}
	key := first.MonthKey()

	if s.cache != nil {
		days, ok, err := s.cache.GetMonth(ctx, key)
		if err != nil {
			s.logger.Warn("availability cache read failed", zap.String("month", key), zap.Error(err))
		} else if ok {
			return days, nil
		}
	}

	records, err := s.availRepo.ListRange(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	blocked, err := s.blockedRepo.ListRange(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked dates: %w", err)
	}
	counts, err := s.bookingRepo.CountActiveByRange(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	byDate := make(map[domain.Date]*domain.AvailabilityRecord, len(records))
	for i := range records {
		byDate[records[i].Date] = &records[i]
	}
	blockedSet := make(map[domain.Date]bool, len(blocked))
	for _, b := range blocked {
		blockedSet[b.Date] = true
	}

	today := s.Today()
	var days []domain.CalendarDay
	for d := first; !d.After(last); d = d.AddDays(1) {
		days = append(days, domain.ClassifyCalendarDay(d, today, blockedSet[d], counts[d], byDate[d]))
	}

	if s.cache != nil {
		if err := s.cache.SetMonth(ctx, key, days); err != nil {
			s.logger.Warn("availability cache write failed", zap.String("month", key), zap.Error(err))
		}
	}
	return days, nil
}

// Invalidate drops cached month views that contain any of the dates.
func (s *AvailabilityService) Invalidate(ctx context.Context, dates ...domain.Date) {
	if s.cache == nil || len(dates) == 0 {
		return
	}
	seen := map[string]bool{}
	var months []string
	for _, d := range dates {
		k := d.MonthKey()
		if !seen[k] {
			seen[k] = true
			months = append(months, k)
		}
	}
	if err := s.cache.InvalidateMonths(ctx, months...); err != nil {
		s.logger.Warn("availability cache invalidation failed", zap.Strings("months", months), zap.Error(err))
	}
}

func (s *AvailabilityService) ListBlocked(ctx context.Context, from, to domain.Date) ([]domain.BlockedDate, error) {
	return s.blockedRepo.ListRange(ctx, from, to)
}

func (s *AvailabilityService) BlockDate(ctx context.Context, blocked domain.BlockedDate) error {
	if blocked.Date.IsZero() {
		return domain.ValidationErrors{"date": "Date is required."}
	}
	if err := s.blockedRepo.Add(ctx, blocked); err != nil {
		return fmt.Errorf("failed to block date: %w", err)
	}
	s.Invalidate(ctx, blocked.Date)
	s.logger.Info("date blocked", zap.String("date", blocked.Date.String()), zap.String("reason", blocked.Reason))
	return nil
}

func (s *AvailabilityService) UnblockDate(ctx context.Context, date domain.Date) error {
	if err := s.blockedRepo.Remove(ctx, date); err != nil {
		return err
	}
	s.Invalidate(ctx, date)
	s.logger.Info("date unblocked", zap.String("date", date.String()))
	return nil
}
