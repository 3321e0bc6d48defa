package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/core/domain"
	"github.com/srgjo27/catering_booking/internal/core/services"
)

type BookingHandler struct {
	bookings *services.BookingService
	payments *services.PaymentService
	logger   *zap.Logger
}

func NewBookingHandler(bookings *services.BookingService, payments *services.PaymentService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		payments: payments,
		logger:   logger,
	}
}

func (h *BookingHandler) Register(r chi.Router) {
	r.Post("/bookings", h.CreateBooking)
	r.Get("/bookings/{id}/payment", h.PaymentForm)
	r.Post("/payments/payfast/notify", h.PayFastNotify)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	date, err := domain.ParseDate(req.EventDate)
	if err != nil {
		writeError(w, h.logger, domain.ValidationErrors{"eventDate": "Use the YYYY-MM-DD format."})
		return
	}

	resp, err := h.bookings.CreateBooking(r.Context(), services.CreateBookingInput{
		EventDate: date,
		Customer:  req.Customer.toDomain(),
		Selection: req.Selection,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *BookingHandler) PaymentForm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, badRequest("invalid booking id"))
		return
	}

	form, err := h.payments.BuildForm(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

// PayFastNotify handles the server-to-server payment notification. The raw
// body is parsed by hand because the signature covers fields in posted order.
func (h *BookingHandler) PayFastNotify(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, h.logger, badRequest("unreadable body"))
		return
	}
	fields, err := parseOrderedForm(string(body))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if _, err := h.payments.HandleNotification(r.Context(), fields); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
