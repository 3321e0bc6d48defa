package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

const bookingColumns = `id, event_date, venue_postal_code, status, total_price, guest_count, event_type,
	menu_selection, customer_name, customer_email, customer_phone, created_at, updated_at`

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// ReserveAndCreate locks the date's availability row, rejects blocked
// dates and inserts the booking only while the date is under its cap.
func (r *BookingRepository) ReserveAndCreate(ctx context.Context, booking *domain.Booking) error {
	selection, err := json.Marshal(booking.MenuSelection)
	if err != nil {
		return fmt.Errorf("failed to encode menu selection: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
	INSERT INTO event_availability (date, is_available, booked_events, max_events)
	VALUES ($1, TRUE, 0, $2)
	ON CONFLICT (date) DO NOTHING
	`, booking.EventDate, domain.DefaultMaxEvents)
	if err != nil {
		return fmt.Errorf("failed to ensure availability row: %w", err)
	}

	var maxEvents int
	err = tx.QueryRowContext(ctx, `SELECT max_events FROM event_availability WHERE date = $1 FOR UPDATE`, booking.EventDate).Scan(&maxEvents)
	if err != nil {
		return fmt.Errorf("failed to lock availability row: %w", err)
	}
	if maxEvents < 1 {
		maxEvents = domain.DefaultMaxEvents
	}

	var blocked bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM blocked_dates WHERE date = $1)`, booking.EventDate).Scan(&blocked)
	if err != nil {
		return fmt.Errorf("failed to check blocked dates: %w", err)
	}
	if blocked {
		return domain.ErrDateUnavailable
	}

	var active int
	err = tx.QueryRowContext(ctx, `
	SELECT COUNT(*) FROM bookings
	WHERE event_date = $1 AND status = ANY($2)
	`, booking.EventDate, pq.Array(statusStrings(domain.ActiveStatuses))).Scan(&active)
	if err != nil {
		return fmt.Errorf("failed to count bookings: %w", err)
	}
	if active >= maxEvents {
		return domain.ErrDateFull
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO bookings (`+bookingColumns+`)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		booking.ID,
		booking.EventDate,
		nullString(booking.VenuePostalCode),
		booking.Status,
		booking.TotalPrice,
		booking.GuestCount,
		booking.EventType,
		selection,
		booking.Customer.Name,
		booking.Customer.Email,
		booking.Customer.Phone,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *BookingRepository) ListActiveByDate(ctx context.Context, date domain.Date) ([]domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + `
	FROM bookings
	WHERE event_date = $1 AND status = ANY($2)
	ORDER BY created_at
	`
	return r.queryBookings(ctx, query, date, pq.Array(statusStrings(domain.ActiveStatuses)))
}

func (r *BookingRepository) CountActiveByRange(ctx context.Context, from, to domain.Date) (map[domain.Date]int, error) {
	query := `
	SELECT event_date, COUNT(*)
	FROM bookings
	WHERE event_date BETWEEN $1 AND $2 AND status = ANY($3)
	GROUP BY event_date
	`
	rows, err := r.db.QueryContext(ctx, query, from, to, pq.Array(statusStrings(domain.ActiveStatuses)))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	counts := map[domain.Date]int{}
	for rows.Next() {
		var d domain.Date
		var n int
		if err := rows.Scan(&d, &n); err != nil {
			return nil, err
		}
		counts[d] = n
	}

	return counts, rows.Err()
}

// List returns bookings newest first, filtered by status when any are given.
func (r *BookingRepository) List(ctx context.Context, statuses []domain.BookingStatus) ([]domain.Booking, error) {
	if len(statuses) == 0 {
		return r.queryBookings(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY event_date DESC, created_at DESC`)
	}
	query := `
	SELECT ` + bookingColumns + `
	FROM bookings
	WHERE status = ANY($1)
	ORDER BY event_date DESC, created_at DESC
	`
	return r.queryBookings(ctx, query, pq.Array(statusStrings(statuses)))
}

// UpdateStatus only applies when the stored status still equals from.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) error {
	query := `
	UPDATE bookings
	SET status = $1, updated_at = NOW()
	WHERE id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: booking %s is no longer %s", domain.ErrInvalidTransition, id, from)
	}

	return nil
}

func (r *BookingRepository) Stats(ctx context.Context) (*domain.BookingStats, error) {
	query := `
	SELECT
		COALESCE(SUM(total_price) FILTER (WHERE status IN ('confirmed', 'completed')), 0),
		COUNT(*) FILTER (WHERE status IN ('pending', 'pending_payment')),
		COUNT(*) FILTER (WHERE status = 'confirmed'),
		COUNT(*)
	FROM bookings
	`

	var s domain.BookingStats
	if err := r.db.QueryRowContext(ctx, query).Scan(&s.Revenue, &s.PendingCount, &s.ConfirmedCount, &s.TotalCount); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}

	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(s rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var postal sql.NullString
	var selection []byte

	err := s.Scan(
		&b.ID,
		&b.EventDate,
		&postal,
		&b.Status,
		&b.TotalPrice,
		&b.GuestCount,
		&b.EventType,
		&selection,
		&b.Customer.Name,
		&b.Customer.Email,
		&b.Customer.Phone,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.VenuePostalCode = postal.String
	if len(selection) > 0 {
		if err := json.Unmarshal(selection, &b.MenuSelection); err != nil {
			return nil, fmt.Errorf("failed to decode menu selection for booking %s: %w", b.ID, err)
		}
	}
	return &b, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
