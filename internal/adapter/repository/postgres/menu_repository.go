package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

const menuColumns = `id, name, price, category, event_type, min_guests, seasonal`

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// ListOptions returns options for an event type plus those shared by all
// types. An empty event type returns everything.
func (r *MenuRepository) ListOptions(ctx context.Context, eventType string) ([]domain.MenuOption, error) {
	if eventType == "" {
		return r.query(ctx, `SELECT `+menuColumns+` FROM menu_options ORDER BY category, price, name`)
	}
	return r.query(ctx, `
	SELECT `+menuColumns+` FROM menu_options
	WHERE event_type = $1 OR event_type = ''
	ORDER BY category, price, name
	`, eventType)
}

func (r *MenuRepository) GetOptions(ctx context.Context, ids []string) ([]domain.MenuOption, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.query(ctx, `SELECT `+menuColumns+` FROM menu_options WHERE id = ANY($1)`, pq.Array(ids))
}

func (r *MenuRepository) query(ctx context.Context, query string, args ...any) ([]domain.MenuOption, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var out []domain.MenuOption
	for rows.Next() {
		var o domain.MenuOption
		var minGuests sql.NullInt64
		if err := rows.Scan(&o.ID, &o.Name, &o.Price, &o.Category, &o.EventType, &minGuests, &o.Seasonal); err != nil {
			return nil, err
		}
		o.MinGuests = int(minGuests.Int64)
		out = append(out, o)
	}

	return out, rows.Err()
}
