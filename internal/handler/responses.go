package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it onto a status code.
// Business outcomes log at warn, everything else at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err, "status", status)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."

	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgRewardNotFoundError  = "Reward not found"
	ErrMsgChestNotFoundError   = "Chest not found"
	ErrMsgProfileNotFoundError = "Profile not found. Claim it first."
	ErrMsgEmptyCatalogError    = "There is nothing to win right now"
	ErrMsgAlreadyOwnedError    = "You already own that item"
	ErrMsgNotOwnedError        = "You don't own that item"
	ErrMsgChestOpenedError     = "That chest was already opened"
	ErrMsgWelcomeClaimedError  = "Welcome chest already claimed"
	ErrMsgNotEnoughCoinsError  = "Not enough coins"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, validationMessage(err)
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrRewardNotFound):
		return http.StatusNotFound, ErrMsgRewardNotFoundError
	case errors.Is(err, domain.ErrChestNotFound):
		return http.StatusNotFound, ErrMsgChestNotFoundError
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFoundError
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusConflict, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrChestAlreadyOpened):
		return http.StatusConflict, ErrMsgChestOpenedError
	case errors.Is(err, domain.ErrWelcomeAlreadyClaimed):
		return http.StatusConflict, ErrMsgWelcomeClaimedError
	case errors.Is(err, domain.ErrNotOwned):
		return http.StatusConflict, ErrMsgNotOwnedError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrEmptyCatalog):
		return http.StatusServiceUnavailable, ErrMsgEmptyCatalogError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// validationMessage surfaces the detail of an invalid-input error.
// Services wrap ErrInvalidInput with a short description of the offending field.
func validationMessage(err error) string {
	msg := err.Error()
	if msg == "" || len(msg) > maxValidationMessageLength {
		return ErrMsgInvalidInputError
	}
	return msg
}

const maxValidationMessageLength = 200
