package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/core/domain"
	"github.com/srgjo27/catering_booking/internal/core/services"
)

// PublicHandler serves the read-only endpoints the booking flow calls
// before a booking exists.
type PublicHandler struct {
	quotes       *services.QuoteService
	availability *services.AvailabilityService
	logger       *zap.Logger
}

func NewPublicHandler(quotes *services.QuoteService, availability *services.AvailabilityService, logger *zap.Logger) *PublicHandler {
	return &PublicHandler{
		quotes:       quotes,
		availability: availability,
		logger:       logger,
	}
}

func (h *PublicHandler) Register(r chi.Router) {
	r.Get("/travel-areas", h.travelAreas)
	r.Get("/travel-fee", h.travelFee)
	r.Get("/menu-options", h.menuOptions)
	r.Post("/quote", h.quote)
	r.Post("/quote/pdf", h.quotePDF)
	r.Get("/availability", h.month)
	r.Get("/availability/check", h.checkDate)
}

func (h *PublicHandler) travelAreas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.TravelAreas())
}

type travelFeeResponse struct {
	PostalCode string `json:"postalCode"`
	Known      bool   `json:"known"`
	Area       string `json:"area,omitempty"`
	Fee        int64  `json:"fee"`
}

func (h *PublicHandler) travelFee(w http.ResponseWriter, r *http.Request) {
	var q travelFeeQuery
	if err := decodeQuery(r.URL.Query(), &q); err != nil {
		writeError(w, h.logger, err)
		return
	}

	code := strings.TrimSpace(q.PostalCode)
	fee, known := domain.TravelFee(code)
	area, _ := domain.AreaNameByPostalCode(code)
	writeJSON(w, http.StatusOK, travelFeeResponse{PostalCode: code, Known: known, Area: area, Fee: fee})
}

func (h *PublicHandler) menuOptions(w http.ResponseWriter, r *http.Request) {
	var q menuOptionsQuery
	if err := decodeQuery(r.URL.Query(), &q); err != nil {
		writeError(w, h.logger, err)
		return
	}

	options, err := h.quotes.MenuOptions(r.Context(), q.EventType)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if options == nil {
		options = []domain.MenuOption{}
	}
	writeJSON(w, http.StatusOK, options)
}

func (h *PublicHandler) quote(w http.ResponseWriter, r *http.Request) {
	var sel domain.MenuSelection
	if err := decodeJSON(w, r, &sel); err != nil {
		writeError(w, h.logger, err)
		return
	}

	res, _, err := h.quotes.Evaluate(r.Context(), sel)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *PublicHandler) quotePDF(w http.ResponseWriter, r *http.Request) {
	var req quotePDFRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	doc, err := h.quotes.RenderPDF(r.Context(), req.Selection, req.Customer, req.EventDate)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	name := "quote.pdf"
	if req.EventDate != "" {
		name = fmt.Sprintf("quote-%s.pdf", req.EventDate)
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *PublicHandler) month(w http.ResponseWriter, r *http.Request) {
	var q monthQuery
	if err := decodeQuery(r.URL.Query(), &q); err != nil {
		writeError(w, h.logger, err)
		return
	}

	days, err := h.availability.Month(r.Context(), q.Month)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

// checkDate never fails on store errors; the service answers fail-open.
func (h *PublicHandler) checkDate(w http.ResponseWriter, r *http.Request) {
	var q checkDateQuery
	if err := decodeQuery(r.URL.Query(), &q); err != nil {
		writeError(w, h.logger, err)
		return
	}
	date, err := domain.ParseDate(q.Date)
	if err != nil {
		writeError(w, h.logger, domain.ValidationErrors{"date": "Use the YYYY-MM-DD format."})
		return
	}

	writeJSON(w, http.StatusOK, h.availability.CheckConflict(r.Context(), date, q.PostalCode))
}
