package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/adapter/handler"
	"github.com/srgjo27/catering_booking/internal/core/domain"
	"github.com/srgjo27/catering_booking/internal/core/ports/mocks"
	"github.com/srgjo27/catering_booking/internal/core/services"
)

const (
	jwtSecret  = "test-secret"
	passphrase = "salt-and-pepper"
	merchantID = "10000100"
)

var saturday = domain.Date{Year: 2026, Month: time.May, Day: 2}

type testServer struct {
	router      http.Handler
	bookingRepo *mocks.BookingRepository
	availRepo   *mocks.AvailabilityRepository
	blockedRepo *mocks.BlockedDateRepository
	menuRepo    *mocks.MenuRepository
	statusRepo  *mocks.SyncStatusRepository
	roles       *mocks.UserRoleRepository
}

func newTestServer(t *testing.T) *testServer {
	s := &testServer{
		bookingRepo: mocks.NewBookingRepository(t),
		availRepo:   mocks.NewAvailabilityRepository(t),
		blockedRepo: mocks.NewBlockedDateRepository(t),
		menuRepo:    mocks.NewMenuRepository(t),
		statusRepo:  mocks.NewSyncStatusRepository(t),
		roles:       mocks.NewUserRoleRepository(t),
	}
	logger := zap.NewNop()

	availability := services.NewAvailabilityService(s.bookingRepo, s.availRepo, s.blockedRepo, nil, logger, time.UTC)
	availability.SetClock(clockwork.NewFakeClockAt(time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)))
	quotes := services.NewQuoteService(s.menuRepo, nil, domain.DefaultMenuRules)
	bookings := services.NewBookingService(s.bookingRepo, s.availRepo, quotes, availability, nil, nil, "", logger)
	payments := services.NewPaymentService(services.PayFastConfig{
		MerchantID:  merchantID,
		MerchantKey: "46f0cd694581a",
		Passphrase:  passphrase,
		ProcessURL:  "https://sandbox.payfast.co.za/eng/process",
	}, bookings, logger)
	calendarSync := services.NewCalendarSyncService(nil, s.availRepo, s.statusRepo, availability, logger, time.UTC)

	s.router = handler.NewRouter(
		handler.NewPublicHandler(quotes, availability, logger),
		handler.NewBookingHandler(bookings, payments, logger),
		handler.NewAdminHandler(bookings, availability, calendarSync, logger),
		handler.NewAuthenticator(jwtSecret, s.roles, logger),
		logger,
	)
	return s
}

func (s *testServer) do(t *testing.T, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func signToken(t *testing.T, sub string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := tok.SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return signed
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func menuOptions() []domain.MenuOption {
	return []domain.MenuOption{
		{ID: "classic-spit-braai", Name: "Classic Spit Braai", Price: 250, Category: domain.CategoryMenu},
		{ID: "potato-salad", Name: "Potato Salad", Category: domain.CategorySide},
	}
}

func selection() domain.MenuSelection {
	return domain.MenuSelection{
		EventType:     "birthday",
		SelectedMenu:  "classic-spit-braai",
		NumGuests:     50,
		SelectedSides: []string{"potato-salad"},
		PostalCode:    "7600",
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/healthz", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestTravelFee(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/travel-fee?postal_code=7690", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, true, body["known"])
	assert.Equal(t, "Franschhoek", body["area"])
	assert.Equal(t, float64(450), body["fee"])
}

func TestTravelFee_MissingPostalCode(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/travel-fee", nil, "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, rec, &body)
	assert.Contains(t, body.Fields, "postal_code")
}

func TestTravelAreas(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/travel-areas", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var areas []domain.TravelArea
	decodeBody(t, rec, &areas)
	assert.Len(t, areas, len(domain.TravelAreas()))
}

func TestQuote(t *testing.T) {
	s := newTestServer(t)
	s.menuRepo.On("GetOptions", mock.Anything, mock.Anything).Return(menuOptions(), nil)

	rec := s.do(t, http.MethodPost, "/api/quote", selection(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var res services.QuoteResult
	decodeBody(t, rec, &res)
	assert.True(t, res.Valid)
	assert.Equal(t, int64(12500), res.Quote.Total)
}

func TestQuotePDF_NotConfigured(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/quote/pdf", map[string]any{"selection": selection()}, "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCheckDate_FailsOpen(t *testing.T) {
	s := newTestServer(t)
	s.blockedRepo.On("IsBlocked", mock.Anything, saturday).Return(false, errors.New("connection reset"))

	rec := s.do(t, http.MethodGet, "/api/availability/check?date=2026-05-02&postal_code=7600", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var res domain.DateAssessment
	decodeBody(t, rec, &res)
	assert.True(t, res.CanProceed)
	assert.Equal(t, domain.MsgVerifyManually, res.Message)
}

func TestCheckDate_ClosedDayStaysBlockedOnStoreError(t *testing.T) {
	s := newTestServer(t)
	s.blockedRepo.On("IsBlocked", mock.Anything, mock.Anything).Return(false, errors.New("connection reset")).Maybe()

	rec := s.do(t, http.MethodGet, "/api/availability/check?date=2026-05-03&postal_code=7600", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var res domain.DateAssessment
	decodeBody(t, rec, &res)
	assert.Equal(t, domain.StateBlocked, res.State)
	assert.False(t, res.CanProceed)
}

func TestMonth_InvalidFormat(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/availability?month=May", nil, "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateBooking_InvalidJSON(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/bookings", "{not json", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBooking_MissingCustomerEmail(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/bookings", map[string]any{
		"eventDate": "2026-05-02",
		"customer":  map[string]string{"name": "Anna", "phone": "0821234567"},
		"selection": selection(),
	}, "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, rec, &body)
	assert.Contains(t, body.Fields, "customer.email")
}

func TestCreateBooking_BlockedDate(t *testing.T) {
	s := newTestServer(t)
	s.menuRepo.On("GetOptions", mock.Anything, mock.Anything).Return(menuOptions(), nil)
	s.blockedRepo.On("IsBlocked", mock.Anything, saturday).Return(true, nil)
	s.bookingRepo.On("ListActiveByDate", mock.Anything, saturday).Return(nil, nil)
	s.availRepo.On("GetByDate", mock.Anything, saturday).Return(nil, domain.ErrNotFound)

	rec := s.do(t, http.MethodPost, "/api/bookings", map[string]any{
		"eventDate": "2026-05-02",
		"customer":  map[string]string{"name": "Anna", "email": "anna@example.com", "phone": "0821234567"},
		"selection": selection(),
	}, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateBooking_Created(t *testing.T) {
	s := newTestServer(t)
	s.menuRepo.On("GetOptions", mock.Anything, mock.Anything).Return(menuOptions(), nil)
	s.blockedRepo.On("IsBlocked", mock.Anything, saturday).Return(false, nil)
	s.bookingRepo.On("ListActiveByDate", mock.Anything, saturday).Return(nil, nil)
	s.availRepo.On("GetByDate", mock.Anything, saturday).Return(nil, domain.ErrNotFound)
	s.bookingRepo.On("ReserveAndCreate", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Customer.Email == "anna@example.com" && b.EventDate == saturday
	})).Return(nil)

	rec := s.do(t, http.MethodPost, "/api/bookings", map[string]any{
		"eventDate": "2026-05-02",
		"customer":  map[string]string{"name": " Anna ", "email": "anna@example.com", "phone": "0821234567"},
		"selection": selection(),
	}, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp services.CreateBookingResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-05-02", resp.EventDate)
}

func TestPaymentForm_NotFound(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.bookingRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	rec := s.do(t, http.MethodGet, "/api/bookings/"+id.String()+"/payment", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func notifyBody(id uuid.UUID, amount string) string {
	fields := []domain.FormField{
		{Name: "m_payment_id", Value: id.String()},
		{Name: "pf_payment_id", Value: "1089250"},
		{Name: "payment_status", Value: services.PayFastComplete},
		{Name: "item_name", Value: "Catering booking 2026-05-02"},
		{Name: "amount_gross", Value: amount},
		{Name: "merchant_id", Value: merchantID},
	}
	fields = append(fields, domain.FormField{Name: "signature", Value: services.Signature(fields, passphrase, true)})

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name + "=" + url.QueryEscape(f.Value)
	}
	return strings.Join(parts, "&")
}

func TestPayFastNotify_ConfirmsBooking(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.bookingRepo.On("GetByID", mock.Anything, id).
		Return(&domain.Booking{ID: id, EventDate: saturday, Status: domain.BookingPendingPayment, TotalPrice: 12500}, nil)
	s.bookingRepo.On("UpdateStatus", mock.Anything, id, domain.BookingPendingPayment, domain.BookingConfirmed).Return(nil)
	s.availRepo.On("IncrementBooked", mock.Anything, saturday).Return(nil)

	rec := s.do(t, http.MethodPost, "/api/payments/payfast/notify", notifyBody(id, "12500.00"), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPayFastNotify_TamperedBody(t *testing.T) {
	s := newTestServer(t)
	body := strings.Replace(notifyBody(uuid.New(), "12500.00"), "amount_gross=12500.00", "amount_gross=1.00", 1)

	rec := s.do(t, http.MethodPost, "/api/payments/payfast/notify", body, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdmin_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/admin/bookings", nil, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdmin_RejectsWrongSecret(t *testing.T) {
	s := newTestServer(t)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := tok.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	rec := s.do(t, http.MethodGet, "/api/admin/bookings", nil, signed)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdmin_RequiresAdminRole(t *testing.T) {
	s := newTestServer(t)
	user := uuid.New()
	s.roles.On("HasRole", mock.Anything, user, handler.RoleAdmin).Return(false, nil)

	rec := s.do(t, http.MethodGet, "/api/admin/bookings", nil, signToken(t, user.String()))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func adminServer(t *testing.T) (*testServer, string) {
	s := newTestServer(t)
	user := uuid.New()
	s.roles.On("HasRole", mock.Anything, user, handler.RoleAdmin).Return(true, nil)
	return s, signToken(t, user.String())
}

func TestAdmin_ListBookingsByStatus(t *testing.T) {
	s, token := adminServer(t)
	s.bookingRepo.On("List", mock.Anything, []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}).
		Return([]domain.Booking{{ID: uuid.New(), Status: domain.BookingPending}}, nil)

	rec := s.do(t, http.MethodGet, "/api/admin/bookings?status=pending,confirmed", nil, token)

	require.Equal(t, http.StatusOK, rec.Code)
	var bookings []domain.Booking
	decodeBody(t, rec, &bookings)
	assert.Len(t, bookings, 1)
}

func TestAdmin_ListBookingsUnknownStatus(t *testing.T) {
	s, token := adminServer(t)

	rec := s.do(t, http.MethodGet, "/api/admin/bookings?status=archived", nil, token)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAdmin_UpdateStatus(t *testing.T) {
	s, token := adminServer(t)
	id := uuid.New()
	s.bookingRepo.On("GetByID", mock.Anything, id).Return(&domain.Booking{ID: id, EventDate: saturday, Status: domain.BookingPending}, nil)
	s.bookingRepo.On("UpdateStatus", mock.Anything, id, domain.BookingPending, domain.BookingCancelled).Return(nil)

	rec := s.do(t, http.MethodPatch, "/api/admin/bookings/"+id.String()+"/status", map[string]string{"status": "cancelled"}, token)

	require.Equal(t, http.StatusOK, rec.Code)
	var b domain.Booking
	decodeBody(t, rec, &b)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestAdmin_UpdateStatusRejectsUnknown(t *testing.T) {
	s, token := adminServer(t)

	rec := s.do(t, http.MethodPatch, "/api/admin/bookings/"+uuid.NewString()+"/status", map[string]string{"status": "archived"}, token)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAdmin_UpdateStatusInvalidTransition(t *testing.T) {
	s, token := adminServer(t)
	id := uuid.New()
	s.bookingRepo.On("GetByID", mock.Anything, id).Return(&domain.Booking{ID: id, Status: domain.BookingCompleted}, nil)

	rec := s.do(t, http.MethodPatch, "/api/admin/bookings/"+id.String()+"/status", map[string]string{"status": "pending"}, token)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdmin_Stats(t *testing.T) {
	s, token := adminServer(t)
	s.bookingRepo.On("Stats", mock.Anything).Return(&domain.BookingStats{Revenue: 50000, PendingCount: 2, TotalCount: 5}, nil)

	rec := s.do(t, http.MethodGet, "/api/admin/stats", nil, token)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats domain.BookingStats
	decodeBody(t, rec, &stats)
	assert.Equal(t, int64(50000), stats.Revenue)
}

func TestAdmin_BlockAndUnblock(t *testing.T) {
	s, token := adminServer(t)
	s.blockedRepo.On("Add", mock.Anything, domain.BlockedDate{Date: saturday, Reason: "family wedding"}).Return(nil)
	s.blockedRepo.On("Remove", mock.Anything, saturday).Return(domain.ErrNotFound)

	rec := s.do(t, http.MethodPost, "/api/admin/blocked-dates", map[string]string{"date": "2026-05-02", "reason": "family wedding"}, token)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/admin/blocked-dates/2026-05-02", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdmin_ListBlockedDefaultsToNextYear(t *testing.T) {
	s, token := adminServer(t)
	today := domain.Date{Year: 2026, Month: time.April, Day: 1}
	s.blockedRepo.On("ListRange", mock.Anything, today, today.AddDays(365)).Return(nil, nil)

	rec := s.do(t, http.MethodGet, "/api/admin/blocked-dates", nil, token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestAdmin_SyncNotConfigured(t *testing.T) {
	s, token := adminServer(t)
	s.statusRepo.On("Save", mock.Anything, mock.MatchedBy(func(st domain.SyncStatus) bool {
		return st.Status == domain.SyncError
	})).Return(nil)

	rec := s.do(t, http.MethodPost, "/api/admin/calendar/sync", nil, token)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAdmin_SyncStatus(t *testing.T) {
	s, token := adminServer(t)
	s.statusRepo.On("Get", mock.Anything).Return(&domain.SyncStatus{Status: domain.SyncSuccess, EventsSynced: 4}, nil)

	rec := s.do(t, http.MethodGet, "/api/admin/calendar/sync-status", nil, token)

	require.Equal(t, http.StatusOK, rec.Code)
	var st domain.SyncStatus
	decodeBody(t, rec, &st)
	assert.Equal(t, 4, st.EventsSynced)
}

func TestUserID(t *testing.T) {
	_, ok := handler.UserID(context.Background())
	assert.False(t, ok)
}
