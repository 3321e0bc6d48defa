package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

// SyncStatusRepository stores the single calendar_sync row (id = 1).
type SyncStatusRepository struct {
	db *sql.DB
}

func NewSyncStatusRepository(db *sql.DB) *SyncStatusRepository {
	return &SyncStatusRepository{db: db}
}

func (r *SyncStatusRepository) Get(ctx context.Context) (*domain.SyncStatus, error) {
	var st domain.SyncStatus
	var msg sql.NullString
	var last sql.NullTime

	err := r.db.QueryRowContext(ctx, `
	SELECT last_sync, status, error_message, events_synced
	FROM calendar_sync WHERE id = 1
	`).Scan(&last, &st.Status, &msg, &st.EventsSynced)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	st.LastSync = last.Time
	st.ErrorMessage = msg.String
	return &st, nil
}

func (r *SyncStatusRepository) Save(ctx context.Context, st domain.SyncStatus) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO calendar_sync (id, last_sync, status, error_message, events_synced)
	VALUES (1, $1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE
	SET last_sync = EXCLUDED.last_sync,
		status = EXCLUDED.status,
		error_message = EXCLUDED.error_message,
		events_synced = EXCLUDED.events_synced
	`, st.LastSync, string(st.Status), nullString(st.ErrorMessage), st.EventsSynced)
	return err
}
