package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/oliverftrep03/La-Penada-Real/internal/chest"
	"github.com/oliverftrep03/La-Penada-Real/internal/economy"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
)

// QueryParamUnopened restricts chest listings to unopened chests
const QueryParamUnopened = "unopened"

// HandleListChests lists the caller's chests, oldest first
// @Summary List chests
// @Tags chests
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Param unopened query bool false "Only unopened chests"
// @Success 200 {array} domain.Chest
// @Router /chests [get]
func HandleListChests(svc chest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}
		unopened, err := strconv.ParseBool(GetOptionalQueryParam(r, QueryParamUnopened, "false"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		chests, err := svc.ListChests(r.Context(), userID, unopened)
		if err != nil {
			respondServiceError(w, r, ErrMsgListChestsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, chests)
	}
}

// HandleOpenChest opens one of the caller's chests and grants the resolved item
// @Summary Open chest
// @Description A chest opens exactly once. Drawing an owned item still consumes the chest.
// @Tags chests
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Param chestID path string true "Chest ID"
// @Success 200 {object} domain.ChestOpenResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /chests/{chestID}/open [post]
func HandleOpenChest(svc chest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}
		chestID := chi.URLParam(r, "chestID")

		result, err := svc.Open(r.Context(), chestID, userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgOpenChestFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Chest opened via API",
			"chest_id", chestID,
			"item_id", result.Item.ID,
			"already_owned", result.AlreadyOwned)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleClaimWelcomeChest issues the one-time welcome chest
// @Summary Claim welcome chest
// @Tags chests
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Success 201 {object} domain.Chest
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /chests/welcome [post]
func HandleClaimWelcomeChest(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		c, err := svc.ClaimWelcomeChest(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgWelcomeChestFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, c)
	}
}
