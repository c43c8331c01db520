package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
)

// HeaderUserID carries the caller identity resolved by the upstream auth layer
const HeaderUserID = "X-User-ID"

// maxRequestBodyBytes bounds decoded JSON bodies
const maxRequestBodyBytes = 1 << 20

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req PurchaseRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// RequireUserID reads and validates the caller identity header.
// If ok is false, the HTTP response has already been written.
// On success the user id is attached to the request context for logging.
func RequireUserID(w http.ResponseWriter, r *http.Request) (string, *http.Request, bool) {
	userID := r.Header.Get(HeaderUserID)
	if userID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingUserID)
		return "", r, false
	}
	if err := domain.ValidateUserID(userID); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
		return "", r, false
	}
	return userID, r.WithContext(logger.WithUserID(r.Context(), userID)), true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
//
// Example usage:
//
//	filter := GetOptionalQueryParam(r, "filter", "all")
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetOptionalIntQueryParam parses an optional integer query parameter.
// If ok is false, the HTTP response has already been written.
func GetOptionalIntQueryParam(w http.ResponseWriter, r *http.Request, paramName string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return 0, false
	}
	return n, true
}

// optionalItemType parses the "type" query parameter. A missing parameter yields nil.
func optionalItemType(w http.ResponseWriter, r *http.Request) (*domain.ItemType, bool) {
	raw := r.URL.Query().Get(QueryParamType)
	if raw == "" {
		return nil, true
	}
	t, err := domain.ParseItemType(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, QueryParamType))
		return nil, false
	}
	return &t, true
}

// optionalRewardType parses the "type" query parameter. A missing parameter yields nil.
func optionalRewardType(w http.ResponseWriter, r *http.Request) (*domain.RewardType, bool) {
	raw := r.URL.Query().Get(QueryParamType)
	if raw == "" {
		return nil, true
	}
	t, err := domain.ParseRewardType(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, QueryParamType))
		return nil, false
	}
	return &t, true
}

// Query parameter names
const (
	QueryParamType   = "type"
	QueryParamFilter = "filter"
	QueryParamLimit  = "limit"
	QueryParamUserID = "user_id"
)
