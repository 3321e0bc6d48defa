package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/core/domain"
	"github.com/srgjo27/catering_booking/internal/core/services"
)

const defaultBlockedRangeDays = 365

type AdminHandler struct {
	bookings     *services.BookingService
	availability *services.AvailabilityService
	sync         *services.CalendarSyncService
	logger       *zap.Logger
}

func NewAdminHandler(
	bookings *services.BookingService,
	availability *services.AvailabilityService,
	sync *services.CalendarSyncService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		bookings:     bookings,
		availability: availability,
		sync:         sync,
		logger:       logger,
	}
}

func (h *AdminHandler) Register(r chi.Router) {
	r.Get("/bookings", h.listBookings)
	r.Patch("/bookings/{id}/status", h.updateStatus)
	r.Get("/stats", h.stats)
	r.Get("/blocked-dates", h.listBlocked)
	r.Post("/blocked-dates", h.blockDate)
	r.Delete("/blocked-dates/{date}", h.unblockDate)
	r.Post("/calendar/sync", h.syncCalendar)
	r.Get("/calendar/sync-status", h.syncStatus)
}

func (h *AdminHandler) listBookings(w http.ResponseWriter, r *http.Request) {
	var q bookingListQuery
	if err := decodeQuery(r.URL.Query(), &q); err != nil {
		writeError(w, h.logger, err)
		return
	}

	var statuses []domain.BookingStatus
	for _, s := range splitList(q.Status) {
		st, ok := domain.ParseBookingStatus(s)
		if !ok {
			writeError(w, h.logger, domain.ValidationErrors{"status": "Unknown booking status " + s + "."})
			return
		}
		statuses = append(statuses, st)
	}

	bookings, err := h.bookings.ListBookings(r.Context(), statuses)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *AdminHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, badRequest("invalid booking id"))
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	booking, err := h.bookings.UpdateStatus(r.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *AdminHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.bookings.Stats(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) listBlocked(w http.ResponseWriter, r *http.Request) {
	var q dateRangeQuery
	if err := decodeQuery(r.URL.Query(), &q); err != nil {
		writeError(w, h.logger, err)
		return
	}

	from := h.availability.Today()
	if q.From != "" {
		from, _ = domain.ParseDate(q.From)
	}
	to := from.AddDays(defaultBlockedRangeDays)
	if q.To != "" {
		to, _ = domain.ParseDate(q.To)
	}

	blocked, err := h.availability.ListBlocked(r.Context(), from, to)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if blocked == nil {
		blocked = []domain.BlockedDate{}
	}
	writeJSON(w, http.StatusOK, blocked)
}

func (h *AdminHandler) blockDate(w http.ResponseWriter, r *http.Request) {
	var req blockDateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		writeError(w, h.logger, domain.ValidationErrors{"date": "Use the YYYY-MM-DD format."})
		return
	}

	blocked := domain.BlockedDate{Date: date, Reason: req.Reason}
	if err := h.availability.BlockDate(r.Context(), blocked); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, blocked)
}

func (h *AdminHandler) unblockDate(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, h.logger, badRequest("invalid date"))
		return
	}

	if err := h.availability.UnblockDate(r.Context(), date); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) syncCalendar(w http.ResponseWriter, r *http.Request) {
	res, err := h.sync.Sync(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *AdminHandler) syncStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.sync.Status(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
