package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

// BookingRepository is a mock type for the BookingRepository port.
type BookingRepository struct {
	mock.Mock
}

func (_m *BookingRepository) ReserveAndCreate(ctx context.Context, booking *domain.Booking) error {
	ret := _m.Called(ctx, booking)

	if len(ret) == 0 {
		panic("no return value specified for ReserveAndCreate")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Booking) error); ok {
		r0 = rf(ctx, booking)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 *domain.Booking
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*domain.Booking, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *domain.Booking); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Booking)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *BookingRepository) ListActiveByDate(ctx context.Context, date domain.Date) ([]domain.Booking, error) {
	ret := _m.Called(ctx, date)

	if len(ret) == 0 {
		panic("no return value specified for ListActiveByDate")
	}

	var r0 []domain.Booking
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date) ([]domain.Booking, error)); ok {
		return rf(ctx, date)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date) []domain.Booking); ok {
		r0 = rf(ctx, date)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Booking)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Date) error); ok {
		r1 = rf(ctx, date)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *BookingRepository) CountActiveByRange(ctx context.Context, from domain.Date, to domain.Date) (map[domain.Date]int, error) {
	ret := _m.Called(ctx, from, to)

	if len(ret) == 0 {
		panic("no return value specified for CountActiveByRange")
	}

	var r0 map[domain.Date]int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date, domain.Date) (map[domain.Date]int, error)); ok {
		return rf(ctx, from, to)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date, domain.Date) map[domain.Date]int); ok {
		r0 = rf(ctx, from, to)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[domain.Date]int)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Date, domain.Date) error); ok {
		r1 = rf(ctx, from, to)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *BookingRepository) List(ctx context.Context, statuses []domain.BookingStatus) ([]domain.Booking, error) {
	ret := _m.Called(ctx, statuses)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []domain.Booking
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []domain.BookingStatus) ([]domain.Booking, error)); ok {
		return rf(ctx, statuses)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []domain.BookingStatus) []domain.Booking); ok {
		r0 = rf(ctx, statuses)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Booking)
	}

	if rf, ok := ret.Get(1).(func(context.Context, []domain.BookingStatus) error); ok {
		r1 = rf(ctx, statuses)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from domain.BookingStatus, to domain.BookingStatus) error {
	ret := _m.Called(ctx, id, from, to)

	if len(ret) == 0 {
		panic("no return value specified for UpdateStatus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, domain.BookingStatus, domain.BookingStatus) error); ok {
		r0 = rf(ctx, id, from, to)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *BookingRepository) Stats(ctx context.Context) (*domain.BookingStats, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Stats")
	}

	var r0 *domain.BookingStats
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*domain.BookingStats, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *domain.BookingStats); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.BookingStats)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewBookingRepository creates a new instance of BookingRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewBookingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *BookingRepository {
	m := &BookingRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// AvailabilityRepository is a mock type for the AvailabilityRepository port.
type AvailabilityRepository struct {
	mock.Mock
}

func (_m *AvailabilityRepository) GetByDate(ctx context.Context, date domain.Date) (*domain.AvailabilityRecord, error) {
	ret := _m.Called(ctx, date)

	if len(ret) == 0 {
		panic("no return value specified for GetByDate")
	}

	var r0 *domain.AvailabilityRecord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date) (*domain.AvailabilityRecord, error)); ok {
		return rf(ctx, date)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date) *domain.AvailabilityRecord); ok {
		r0 = rf(ctx, date)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.AvailabilityRecord)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Date) error); ok {
		r1 = rf(ctx, date)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *AvailabilityRepository) ListRange(ctx context.Context, from domain.Date, to domain.Date) ([]domain.AvailabilityRecord, error) {
	ret := _m.Called(ctx, from, to)

	if len(ret) == 0 {
		panic("no return value specified for ListRange")
	}

	var r0 []domain.AvailabilityRecord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date, domain.Date) ([]domain.AvailabilityRecord, error)); ok {
		return rf(ctx, from, to)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date, domain.Date) []domain.AvailabilityRecord); ok {
		r0 = rf(ctx, from, to)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.AvailabilityRecord)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Date, domain.Date) error); ok {
		r1 = rf(ctx, from, to)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *AvailabilityRepository) UpsertSynced(ctx context.Context, records []domain.AvailabilityRecord) error {
	ret := _m.Called(ctx, records)

	if len(ret) == 0 {
		panic("no return value specified for UpsertSynced")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []domain.AvailabilityRecord) error); ok {
		r0 = rf(ctx, records)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *AvailabilityRepository) IncrementBooked(ctx context.Context, date domain.Date) error {
	ret := _m.Called(ctx, date)

	if len(ret) == 0 {
		panic("no return value specified for IncrementBooked")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date) error); ok {
		r0 = rf(ctx, date)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewAvailabilityRepository creates a new instance of AvailabilityRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewAvailabilityRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AvailabilityRepository {
	m := &AvailabilityRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// BlockedDateRepository is a mock type for the BlockedDateRepository port.
type BlockedDateRepository struct {
	mock.Mock
}

func (_m *BlockedDateRepository) IsBlocked(ctx context.Context, date domain.Date) (bool, error) {
	ret := _m.Called(ctx, date)

	if len(ret) == 0 {
		panic("no return value specified for IsBlocked")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date) (bool, error)); ok {
		return rf(ctx, date)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date) bool); ok {
		r0 = rf(ctx, date)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Date) error); ok {
		r1 = rf(ctx, date)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *BlockedDateRepository) ListRange(ctx context.Context, from domain.Date, to domain.Date) ([]domain.BlockedDate, error) {
	ret := _m.Called(ctx, from, to)

	if len(ret) == 0 {
		panic("no return value specified for ListRange")
	}

	var r0 []domain.BlockedDate
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date, domain.Date) ([]domain.BlockedDate, error)); ok {
		return rf(ctx, from, to)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date, domain.Date) []domain.BlockedDate); ok {
		r0 = rf(ctx, from, to)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.BlockedDate)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Date, domain.Date) error); ok {
		r1 = rf(ctx, from, to)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *BlockedDateRepository) Add(ctx context.Context, blocked domain.BlockedDate) error {
	ret := _m.Called(ctx, blocked)

	if len(ret) == 0 {
		panic("no return value specified for Add")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.BlockedDate) error); ok {
		r0 = rf(ctx, blocked)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *BlockedDateRepository) Remove(ctx context.Context, date domain.Date) error {
	ret := _m.Called(ctx, date)

	if len(ret) == 0 {
		panic("no return value specified for Remove")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Date) error); ok {
		r0 = rf(ctx, date)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewBlockedDateRepository creates a new instance of BlockedDateRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewBlockedDateRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *BlockedDateRepository {
	m := &BlockedDateRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// SyncStatusRepository is a mock type for the SyncStatusRepository port.
type SyncStatusRepository struct {
	mock.Mock
}

func (_m *SyncStatusRepository) Get(ctx context.Context) (*domain.SyncStatus, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *domain.SyncStatus
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*domain.SyncStatus, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *domain.SyncStatus); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.SyncStatus)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *SyncStatusRepository) Save(ctx context.Context, status domain.SyncStatus) error {
	ret := _m.Called(ctx, status)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.SyncStatus) error); ok {
		r0 = rf(ctx, status)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewSyncStatusRepository creates a new instance of SyncStatusRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewSyncStatusRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *SyncStatusRepository {
	m := &SyncStatusRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MenuRepository is a mock type for the MenuRepository port.
type MenuRepository struct {
	mock.Mock
}

func (_m *MenuRepository) ListOptions(ctx context.Context, eventType string) ([]domain.MenuOption, error) {
	ret := _m.Called(ctx, eventType)

	if len(ret) == 0 {
		panic("no return value specified for ListOptions")
	}

	var r0 []domain.MenuOption
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.MenuOption, error)); ok {
		return rf(ctx, eventType)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.MenuOption); ok {
		r0 = rf(ctx, eventType)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuOption)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, eventType)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MenuRepository) GetOptions(ctx context.Context, ids []string) ([]domain.MenuOption, error) {
	ret := _m.Called(ctx, ids)

	if len(ret) == 0 {
		panic("no return value specified for GetOptions")
	}

	var r0 []domain.MenuOption
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []string) ([]domain.MenuOption, error)); ok {
		return rf(ctx, ids)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []string) []domain.MenuOption); ok {
		r0 = rf(ctx, ids)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuOption)
	}

	if rf, ok := ret.Get(1).(func(context.Context, []string) error); ok {
		r1 = rf(ctx, ids)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMenuRepository creates a new instance of MenuRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// UserRoleRepository is a mock type for the UserRoleRepository port.
type UserRoleRepository struct {
	mock.Mock
}

func (_m *UserRoleRepository) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	ret := _m.Called(ctx, userID, role)

	if len(ret) == 0 {
		panic("no return value specified for HasRole")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) (bool, error)); ok {
		return rf(ctx, userID, role)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) bool); ok {
		r0 = rf(ctx, userID, role)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, string) error); ok {
		r1 = rf(ctx, userID, role)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewUserRoleRepository creates a new instance of UserRoleRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewUserRoleRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRoleRepository {
	m := &UserRoleRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
