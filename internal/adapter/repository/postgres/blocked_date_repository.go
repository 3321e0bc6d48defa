package postgres

import (
	"context"
	"database/sql"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

type BlockedDateRepository struct {
	db *sql.DB
}

func NewBlockedDateRepository(db *sql.DB) *BlockedDateRepository {
	return &BlockedDateRepository{db: db}
}

func (r *BlockedDateRepository) IsBlocked(ctx context.Context, date domain.Date) (bool, error) {
	var blocked bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM blocked_dates WHERE date = $1)`, date).Scan(&blocked)
	return blocked, err
}

func (r *BlockedDateRepository) ListRange(ctx context.Context, from, to domain.Date) ([]domain.BlockedDate, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT date, reason FROM blocked_dates
	WHERE date BETWEEN $1 AND $2
	ORDER BY date
	`, from, to)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var out []domain.BlockedDate
	for rows.Next() {
		var b domain.BlockedDate
		var reason sql.NullString
		if err := rows.Scan(&b.Date, &reason); err != nil {
			return nil, err
		}
		b.Reason = reason.String
		out = append(out, b)
	}

	return out, rows.Err()
}

func (r *BlockedDateRepository) Add(ctx context.Context, blocked domain.BlockedDate) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO blocked_dates (date, reason)
	VALUES ($1, $2)
	ON CONFLICT (date) DO UPDATE SET reason = EXCLUDED.reason
	`, blocked.Date, nullString(blocked.Reason))
	return err
}

func (r *BlockedDateRepository) Remove(ctx context.Context, date domain.Date) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blocked_dates WHERE date = $1`, date)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
