package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"retail-cli/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service error onto an HTTP response: domain
// errors carry their code and a 4xx status, everything else is a 500.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Msg("internal error")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   model.ErrCodeInternalError,
			Message: "internal server error",
		})
		return
	}

	status := http.StatusBadRequest
	switch domainErr.Code {
	case model.ErrCodeProductNotFound,
		model.ErrCodeCustomerNotFound,
		model.ErrCodeOrderNotFound,
		model.ErrCodePaymentNotFound:
		status = http.StatusNotFound
	case model.ErrCodeDuplicateSKU,
		model.ErrCodeDuplicateEmail,
		model.ErrCodeCustomerHasOrders,
		model.ErrCodeOrderNotCancellable,
		model.ErrCodeOrderNotCompletable,
		model.ErrCodeOrderNotPayable,
		model.ErrCodeInsufficientStock:
		status = http.StatusConflict
	}

	logger.Warn().Str("code", domainErr.Code).Int("status", status).Msg("domain error")
	writeJSON(w, status, ErrorResponse{
		Error:   domainErr.Code,
		Message: domainErr.Message,
	})
}
