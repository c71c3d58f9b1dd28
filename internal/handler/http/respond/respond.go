// Package respond writes JSON responses and maps errors to client-safe
// messages.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"newsportal/internal/domain/entity"
)

const internalMessage = "internal server error"

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v with status code. A nil v writes headers only.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", slog.Int("status_code", code), slog.Any("error", err))
	}
}

// Error writes err's message verbatim. Use SafeError for anything that may
// carry store or driver details.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, errorBody{Error: err.Error()})
}

// clientPhrases mark hand-written handler errors as safe to echo.
var clientPhrases = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"cannot be",
	"too long",
	"too short",
	"in use",
}

// SafeError writes err for the client without leaking internals.
//   - 5xx: a generic message; the sanitized error is logged.
//   - 401, 403, 429: the status text; the cause is logged at debug.
//   - other 4xx: the message when it is a domain error or reads like
//     input feedback, otherwise the generic message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	switch {
	case code >= http.StatusInternalServerError:
	case code == http.StatusUnauthorized, code == http.StatusForbidden, code == http.StatusTooManyRequests:
		slog.Debug("request rejected", slog.Int("code", code), slog.String("cause", SanitizeError(err)))
		Error(w, code, errors.New(strings.ToLower(http.StatusText(code))))
		return
	case clientSafe(err):
		Error(w, code, err)
		return
	}

	slog.Error("internal server error",
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, errorBody{Error: internalMessage})
}

func clientSafe(err error) bool {
	if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrConflict) ||
		errors.Is(err, entity.ErrValidationFailed) || errors.Is(err, entity.ErrInvalidInput) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, p := range clientPhrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// StatusFor maps domain errors to HTTP status codes: not found to 404,
// conflicts to 409, validation failures to 400 and everything else to 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entity.ErrValidationFailed), errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// DomainError writes err with the status code chosen by StatusFor.
func DomainError(w http.ResponseWriter, err error) {
	SafeError(w, StatusFor(err), err)
}
