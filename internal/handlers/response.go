package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"notebook-ai/internal/contextutil"
	"notebook-ai/internal/service"
)

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func handleServiceError(ctx context.Context, w http.ResponseWriter, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	statusCode, message := serviceErrorStatus(err, defaultMsg)
	writeError(w, statusCode, message)
}

// serviceErrorStatus picks the status code and client message for a service error.
func serviceErrorStatus(err error, defaultMsg string) (int, string) {
	var missingErr *service.MissingContextError
	if errors.As(err, &missingErr) {
		return http.StatusBadRequest, missingErr.Error()
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error())
	}

	// Check for wrapped errors
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid input"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, "Conflicting state change"
	case errors.Is(err, service.ErrExternalService):
		return http.StatusBadGateway, "External service error"
	}

	// Default to internal server error
	return http.StatusInternalServerError, defaultMsg
}
