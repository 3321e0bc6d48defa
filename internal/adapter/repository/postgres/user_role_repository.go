package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type UserRoleRepository struct {
	db *sql.DB
}

func NewUserRoleRepository(db *sql.DB) *UserRoleRepository {
	return &UserRoleRepository{db: db}
}

func (r *UserRoleRepository) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
	SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)
	`, userID, role).Scan(&ok)
	return ok, err
}
