package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/catering_booking/internal/core/domain"
)

type BookingRepository interface {
	// ReserveAndCreate inserts the booking only if the date is still under
	// its daily cap, checked and written in one transaction.
	ReserveAndCreate(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListActiveByDate(ctx context.Context, date domain.Date) ([]domain.Booking, error)
	CountActiveByRange(ctx context.Context, from, to domain.Date) (map[domain.Date]int, error)
	List(ctx context.Context, statuses []domain.BookingStatus) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) error
	Stats(ctx context.Context) (*domain.BookingStats, error)
}

type AvailabilityRepository interface {
	GetByDate(ctx context.Context, date domain.Date) (*domain.AvailabilityRecord, error)
	ListRange(ctx context.Context, from, to domain.Date) ([]domain.AvailabilityRecord, error)
	UpsertSynced(ctx context.Context, records []domain.AvailabilityRecord) error
	IncrementBooked(ctx context.Context, date domain.Date) error
}

type BlockedDateRepository interface {
	IsBlocked(ctx context.Context, date domain.Date) (bool, error)
	ListRange(ctx context.Context, from, to domain.Date) ([]domain.BlockedDate, error)
	Add(ctx context.Context, blocked domain.BlockedDate) error
	Remove(ctx context.Context, date domain.Date) error
}

type SyncStatusRepository interface {
	Get(ctx context.Context) (*domain.SyncStatus, error)
	Save(ctx context.Context, status domain.SyncStatus) error
}

type MenuRepository interface {
	ListOptions(ctx context.Context, eventType string) ([]domain.MenuOption, error)
	GetOptions(ctx context.Context, ids []string) ([]domain.MenuOption, error)
}

type UserRoleRepository interface {
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
}
