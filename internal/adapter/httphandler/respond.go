package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/shop/internal/core/domain"
)

func writeResponse(w http.ResponseWriter, log *slog.Logger, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func writeData(
	w http.ResponseWriter, log *slog.Logger,
	status int, message string, data any,
) {
	writeResponse(w, log, Response{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

// writeFailure maps a service failure onto the envelope. Failure kinds get
// a stable generic error string; anything else is logged and reported as an
// internal error without driver detail.
func writeFailure(w http.ResponseWriter, log *slog.Logger, err error) {
	status, errStr := http.StatusInternalServerError, "internal error"

	switch {
	case errors.Is(err, domain.ErrValidation):
		status, errStr = http.StatusBadRequest, "invalid input"
	case errors.Is(err, domain.ErrNotFound):
		status, errStr = http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, errStr = http.StatusConflict, "insufficient stock"
	case errors.Is(err, domain.ErrEmailTaken):
		status, errStr = http.StatusConflict, "email already registered"
	case errors.Is(err, domain.ErrAuthentication):
		status, errStr = http.StatusUnauthorized, "not authenticated"
	default:
		log.Error("request failed", "err", err)
	}

	writeResponse(w, log, Response{StatusCode: status, Error: errStr})
}
