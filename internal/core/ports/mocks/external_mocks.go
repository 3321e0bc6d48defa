package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

// CalendarProvider is a mock type for the CalendarProvider port.
type CalendarProvider struct {
	mock.Mock
}

func (_m *CalendarProvider) ListEvents(ctx context.Context, from time.Time, to time.Time) ([]domain.ExternalEvent, error) {
	ret := _m.Called(ctx, from, to)

	if len(ret) == 0 {
		panic("no return value specified for ListEvents")
	}

	var r0 []domain.ExternalEvent
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, time.Time) ([]domain.ExternalEvent, error)); ok {
		return rf(ctx, from, to)
	}
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, time.Time) []domain.ExternalEvent); ok {
		r0 = rf(ctx, from, to)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ExternalEvent)
	}

	if rf, ok := ret.Get(1).(func(context.Context, time.Time, time.Time) error); ok {
		r1 = rf(ctx, from, to)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewCalendarProvider creates a new instance of CalendarProvider. It also registers a cleanup
// function to assert the mocks expectations.
func NewCalendarProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *CalendarProvider {
	m := &CalendarProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// BookingWebhook is a mock type for the BookingWebhook port.
type BookingWebhook struct {
	mock.Mock
}

func (_m *BookingWebhook) Send(ctx context.Context, payload domain.WebhookPayload) error {
	ret := _m.Called(ctx, payload)

	if len(ret) == 0 {
		panic("no return value specified for Send")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.WebhookPayload) error); ok {
		r0 = rf(ctx, payload)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewBookingWebhook creates a new instance of BookingWebhook. It also registers a cleanup
// function to assert the mocks expectations.
func NewBookingWebhook(t interface {
	mock.TestingT
	Cleanup(func())
}) *BookingWebhook {
	m := &BookingWebhook{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// WebhookQueue is a mock type for the WebhookQueue port.
type WebhookQueue struct {
	mock.Mock
}

func (_m *WebhookQueue) Enqueue(ctx context.Context, item domain.QueuedWebhook) error {
	ret := _m.Called(ctx, item)

	if len(ret) == 0 {
		panic("no return value specified for Enqueue")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.QueuedWebhook) error); ok {
		r0 = rf(ctx, item)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *WebhookQueue) Dequeue(ctx context.Context, limit int) ([]domain.QueuedWebhook, error) {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for Dequeue")
	}

	var r0 []domain.QueuedWebhook
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]domain.QueuedWebhook, error)); ok {
		return rf(ctx, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []domain.QueuedWebhook); ok {
		r0 = rf(ctx, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.QueuedWebhook)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *WebhookQueue) DeadLetter(ctx context.Context, item domain.QueuedWebhook) error {
	ret := _m.Called(ctx, item)

	if len(ret) == 0 {
		panic("no return value specified for DeadLetter")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.QueuedWebhook) error); ok {
		r0 = rf(ctx, item)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewWebhookQueue creates a new instance of WebhookQueue. It also registers a cleanup
// function to assert the mocks expectations.
func NewWebhookQueue(t interface {
	mock.TestingT
	Cleanup(func())
}) *WebhookQueue {
	m := &WebhookQueue{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EmailSender is a mock type for the EmailSender port.
type EmailSender struct {
	mock.Mock
}

func (_m *EmailSender) SendBookingConfirmation(ctx context.Context, msg domain.BookingEmail) error {
	ret := _m.Called(ctx, msg)

	if len(ret) == 0 {
		panic("no return value specified for SendBookingConfirmation")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.BookingEmail) error); ok {
		r0 = rf(ctx, msg)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *EmailSender) SendInternalNotification(ctx context.Context, msg domain.BookingEmail) error {
	ret := _m.Called(ctx, msg)

	if len(ret) == 0 {
		panic("no return value specified for SendInternalNotification")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.BookingEmail) error); ok {
		r0 = rf(ctx, msg)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewEmailSender creates a new instance of EmailSender. It also registers a cleanup
// function to assert the mocks expectations.
func NewEmailSender(t interface {
	mock.TestingT
	Cleanup(func())
}) *EmailSender {
	m := &EmailSender{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// AvailabilityCache is a mock type for the AvailabilityCache port.
type AvailabilityCache struct {
	mock.Mock
}

func (_m *AvailabilityCache) GetMonth(ctx context.Context, month string) ([]domain.CalendarDay, bool, error) {
	ret := _m.Called(ctx, month)

	if len(ret) == 0 {
		panic("no return value specified for GetMonth")
	}

	var r0 []domain.CalendarDay
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.CalendarDay, bool, error)); ok {
		return rf(ctx, month)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.CalendarDay); ok {
		r0 = rf(ctx, month)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.CalendarDay)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) bool); ok {
		r1 = rf(ctx, month)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string) error); ok {
		r2 = rf(ctx, month)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

func (_m *AvailabilityCache) SetMonth(ctx context.Context, month string, days []domain.CalendarDay) error {
	ret := _m.Called(ctx, month, days)

	if len(ret) == 0 {
		panic("no return value specified for SetMonth")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []domain.CalendarDay) error); ok {
		r0 = rf(ctx, month, days)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *AvailabilityCache) InvalidateMonths(ctx context.Context, months ...string) error {
	_ca := []interface{}{ctx}
	for _, _v := range months {
		_ca = append(_ca, _v)
	}
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for InvalidateMonths")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, ...string) error); ok {
		r0 = rf(ctx, months...)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewAvailabilityCache creates a new instance of AvailabilityCache. It also registers a cleanup
// function to assert the mocks expectations.
func NewAvailabilityCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *AvailabilityCache {
	m := &AvailabilityCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// QuoteRenderer is a mock type for the QuoteRenderer port.
type QuoteRenderer struct {
	mock.Mock
}

func (_m *QuoteRenderer) Render(quote domain.QuoteDocument) ([]byte, error) {
	ret := _m.Called(quote)

	if len(ret) == 0 {
		panic("no return value specified for Render")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(domain.QuoteDocument) ([]byte, error)); ok {
		return rf(quote)
	}
	if rf, ok := ret.Get(0).(func(domain.QuoteDocument) []byte); ok {
		r0 = rf(quote)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	if rf, ok := ret.Get(1).(func(domain.QuoteDocument) error); ok {
		r1 = rf(quote)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewQuoteRenderer creates a new instance of QuoteRenderer. It also registers a cleanup
// function to assert the mocks expectations.
func NewQuoteRenderer(t interface {
	mock.TestingT
	Cleanup(func())
}) *QuoteRenderer {
	m := &QuoteRenderer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
