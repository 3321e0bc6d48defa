package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/core/domain"
	"github.com/srgjo27/catering_booking/internal/core/ports"
)

type CreateBookingInput struct {
	EventDate domain.Date
	Customer  domain.Customer
	Selection domain.MenuSelection
}

type CreateBookingResponse struct {
	BookingID      string                `json:"bookingId"`
	Status         string                `json:"status"`
	EventDate      string                `json:"eventDate"`
	Quote          domain.Quote          `json:"quote"`
	RequiresReview bool                  `json:"requiresReview"`
	Availability   domain.DateAssessment `json:"availability"`
}

type BookingService struct {
	bookingRepo  ports.BookingRepository
	availRepo    ports.AvailabilityRepository
	quotes       *QuoteService
	availability *AvailabilityService
	intake       *IntakeService
	mailer       ports.EmailSender
	notifyEmail  string
	logger       *zap.Logger

	background sync.WaitGroup
}

const backgroundTimeout = 30 * time.Second

func NewBookingService(
	bookingRepo ports.BookingRepository,
	availRepo ports.AvailabilityRepository,
	quotes *QuoteService,
	availability *AvailabilityService,
	intake *IntakeService,
	mailer ports.EmailSender,
	notifyEmail string,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		availRepo:    availRepo,
		quotes:       quotes,
		availability: availability,
		intake:       intake,
		mailer:       mailer,
		notifyEmail:  notifyEmail,
		logger:       logger,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResponse, error) {
	quote, catalog, err := s.quotes.Evaluate(ctx, in.Selection)
	if err != nil {
		return nil, err
	}
	if !quote.Valid {
		return nil, quote.Errors
	}

	assessment, err := s.availability.Assess(ctx, in.EventDate, in.Selection.PostalCode)
	if err != nil {
		// The transactional reserve below still enforces the daily cap.
		s.logger.Warn("pre-booking availability check failed", zap.String("date", in.EventDate.String()), zap.Error(err))
		assessment = s.availability.FailOpen(in.EventDate)
	}
	switch assessment.State {
	case domain.StateBlocked:
		return nil, domain.ErrDateUnavailable
	case domain.StateAtCapacity:
		return nil, domain.ErrDateFull
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New(),
		EventDate:       in.EventDate,
		VenuePostalCode: strings.TrimSpace(in.Selection.PostalCode),
		Status:          domain.BookingPending,
		TotalPrice:      quote.Quote.Total,
		GuestCount:      in.Selection.NumGuests,
		EventType:       in.Selection.EventType,
		MenuSelection:   in.Selection,
		Customer:        in.Customer,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.bookingRepo.ReserveAndCreate(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrDateFull) || errors.Is(err, domain.ErrDateUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	s.availability.Invalidate(ctx, booking.EventDate)

	s.logger.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("event_date", booking.EventDate.String()),
		zap.Int64("total", booking.TotalPrice),
		zap.Bool("requires_review", assessment.HasConflict),
	)

	if s.intake != nil {
		payload := BuildWebhookPayload(booking, catalog, quote.Quote, assessment.HasConflict)
		s.goBackground(func(ctx context.Context) {
			s.intake.Submit(ctx, payload)
		})
	}
	s.sendEmails(booking, catalog, quote.Quote, assessment.HasConflict)

	return &CreateBookingResponse{
		BookingID:      booking.ID.String(),
		Status:         string(booking.Status),
		EventDate:      booking.EventDate.String(),
		Quote:          quote.Quote,
		RequiresReview: assessment.HasConflict,
		Availability:   assessment,
	}, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListBookings(ctx context.Context, statuses []domain.BookingStatus) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx, statuses)
}

func (s *BookingService) Stats(ctx context.Context) (*domain.BookingStats, error) {
	return s.bookingRepo.Stats(ctx)
}

// UpdateStatus moves a booking along its lifecycle. Confirmation also
// counts the event on the date's availability record.
func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, to domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == to {
		return booking, nil
	}
	if !booking.Status.CanTransition(to) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, booking.Status, to)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, booking.Status, to); err != nil {
		return nil, err
	}

	if to == domain.BookingConfirmed {
		if err := s.availRepo.IncrementBooked(ctx, booking.EventDate); err != nil {
			s.logger.Error("failed to record confirmed booking on availability",
				zap.String("booking_id", id.String()),
				zap.Error(err),
			)
		}
	}
	s.availability.Invalidate(ctx, booking.EventDate)

	s.logger.Info("booking status updated",
		zap.String("booking_id", id.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(to)),
	)
	booking.Status = to
	return booking, nil
}

func (s *BookingService) sendEmails(booking *domain.Booking, catalog Catalog, quote domain.Quote, needsReview bool) {
	if s.mailer == nil {
		return
	}

	menuName := booking.MenuSelection.SelectedMenu
	if o, ok := catalog[menuName]; ok {
		menuName = o.Name
	}
	msg := domain.BookingEmail{
		To:          booking.Customer.Email,
		BookingID:   booking.ID.String(),
		Customer:    booking.Customer,
		EventDate:   booking.EventDate.String(),
		EventType:   booking.EventType,
		MenuName:    menuName,
		GuestCount:  booking.GuestCount,
		ServiceArea: quote.ServiceArea,
		Quote:       quote,
		NeedsReview: needsReview,
	}

	s.goBackground(func(ctx context.Context) {
		if err := s.mailer.SendBookingConfirmation(ctx, msg); err != nil {
			s.logger.Error("confirmation email failed", zap.String("booking_id", msg.BookingID), zap.Error(err))
		}
		if s.notifyEmail == "" {
			return
		}
		internal := msg
		internal.To = s.notifyEmail
		if err := s.mailer.SendInternalNotification(ctx, internal); err != nil {
			s.logger.Error("internal notification email failed", zap.String("booking_id", msg.BookingID), zap.Error(err))
		}
	})
}

// goBackground runs fn outside the request on its own deadline.
func (s *BookingService) goBackground(fn func(ctx context.Context)) {
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		fn(ctx)
	}()
}

// Wait blocks until in-flight webhook submissions and emails finish or
// ctx is done.
func (s *BookingService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.background.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func BuildWebhookPayload(b *domain.Booking, catalog Catalog, q domain.Quote, requiresReview bool) domain.WebhookPayload {
	sel := b.MenuSelection
	menuName := sel.SelectedMenu
	if o, ok := catalog[sel.SelectedMenu]; ok {
		menuName = o.Name
	}
	return domain.WebhookPayload{
		BookingID:       b.ID.String(),
		Status:          string(b.Status),
		EventDate:       b.EventDate.String(),
		EventType:       b.EventType,
		CustomerName:    b.Customer.Name,
		CustomerEmail:   b.Customer.Email,
		CustomerPhone:   b.Customer.Phone,
		VenuePostalCode: b.VenuePostalCode,
		ServiceArea:     q.ServiceArea,
		Menu:            menuName,
		GuestCount:      b.GuestCount,
		Season:          sel.SelectedSeason,
		Starters:        optionNames(sel.SelectedStarters, catalog),
		Sides:           optionNames(sel.SelectedSides, catalog),
		Desserts:        optionNames(sel.SelectedDesserts, catalog),
		Extras:          optionNames(sel.SelectedExtras, catalog),
		ExtraSaladType:  sel.ExtraSaladType,
		IncludeCutlery:  sel.IncludeCutlery,
		MenuSubtotal:    q.MenuSubtotal,
		TravelFee:       q.TravelFee,
		TotalPrice:      q.Total,
		DiscountApplied: q.DiscountApplied,
		RequiresReview:  requiresReview,
		SubmittedAt:     b.CreatedAt,
	}
}
