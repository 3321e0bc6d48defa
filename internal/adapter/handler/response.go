package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/core/domain"
	"github.com/srgjo27/catering_booking/internal/core/services"
)

type errorResponse struct {
	Error  string                  `json:"error"`
	Fields domain.ValidationErrors `json:"fields,omitempty"`
}

// requestError is returned for bodies and parameters that cannot be parsed.
type requestError struct {
	msg string
}

func (e requestError) Error() string { return e.msg }

func badRequest(msg string) error {
	return requestError{msg: msg}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var reqErr requestError
	if errors.As(err, &reqErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: reqErr.msg})
		return
	}
	if v, ok := domain.AsValidation(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: v})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrDateFull):
		writeJSON(w, http.StatusConflict, errorResponse{Error: domain.MsgAtCapacity})
	case errors.Is(err, domain.ErrDateUnavailable):
		writeJSON(w, http.StatusConflict, errorResponse{Error: domain.MsgBlocked})
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, services.ErrSyncInProgress):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotConfigured):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service not configured"})
	case errors.Is(err, domain.ErrInvalidSignature), errors.Is(err, domain.ErrAmountMismatch):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	default:
		logger.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
