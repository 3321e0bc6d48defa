package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

type AvailabilityRepository struct {
	db *sql.DB
}

func NewAvailabilityRepository(db *sql.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) GetByDate(ctx context.Context, date domain.Date) (*domain.AvailabilityRecord, error) {
	query := `
	SELECT date, is_available, booked_events, max_events, external_events, notes
	FROM event_availability
	WHERE date = $1
	`

	rec, err := scanAvailability(r.db.QueryRowContext(ctx, query, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *AvailabilityRepository) ListRange(ctx context.Context, from, to domain.Date) ([]domain.AvailabilityRecord, error) {
	query := `
	SELECT date, is_available, booked_events, max_events, external_events, notes
	FROM event_availability
	WHERE date BETWEEN $1 AND $2
	ORDER BY date
	`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var records []domain.AvailabilityRecord
	for rows.Next() {
		rec, err := scanAvailability(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

// UpsertSynced writes calendar-sync results. max_events and notes on
// existing rows are left alone.
func (r *AvailabilityRepository) UpsertSynced(ctx context.Context, records []domain.AvailabilityRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO event_availability (date, is_available, booked_events, max_events, external_events, updated_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	ON CONFLICT (date) DO UPDATE
	SET is_available = EXCLUDED.is_available,
		booked_events = EXCLUDED.booked_events,
		external_events = EXCLUDED.external_events,
		updated_at = NOW()
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert statement: %w", err)
	}

	defer stmt.Close()

	for _, rec := range records {
		events, err := json.Marshal(nonNilEvents(rec.ExternalEvents))
		if err != nil {
			return fmt.Errorf("failed to encode events for %s: %w", rec.Date, err)
		}
		if _, err := stmt.ExecContext(ctx, rec.Date, rec.IsAvailable, rec.BookedEvents, rec.EffectiveMaxEvents(), events); err != nil {
			return fmt.Errorf("failed to upsert availability %s: %w", rec.Date, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *AvailabilityRepository) IncrementBooked(ctx context.Context, date domain.Date) error {
	query := `
	INSERT INTO event_availability (date, is_available, booked_events, max_events, updated_at)
	VALUES ($1, TRUE, 1, $2, NOW())
	ON CONFLICT (date) DO UPDATE
	SET booked_events = event_availability.booked_events + 1,
		is_available = event_availability.booked_events + 1 < event_availability.max_events,
		updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query, date, domain.DefaultMaxEvents)
	return err
}

func scanAvailability(s rowScanner) (*domain.AvailabilityRecord, error) {
	var rec domain.AvailabilityRecord
	var events []byte
	var notes sql.NullString

	if err := s.Scan(&rec.Date, &rec.IsAvailable, &rec.BookedEvents, &rec.MaxEvents, &events, &notes); err != nil {
		return nil, err
	}

	rec.Notes = notes.String
	if len(events) > 0 {
		if err := json.Unmarshal(events, &rec.ExternalEvents); err != nil {
			return nil, fmt.Errorf("failed to decode external events for %s: %w", rec.Date, err)
		}
	}
	return &rec, nil
}

func nonNilEvents(events []domain.ExternalEvent) []domain.ExternalEvent {
	if events == nil {
		return []domain.ExternalEvent{}
	}
	return events
}
