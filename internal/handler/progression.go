package handler

import (
	"net/http"

	"github.com/oliverftrep03/La-Penada-Real/internal/economy"
	"github.com/oliverftrep03/La-Penada-Real/internal/progression"
)

// GrantXPRequest awards XP for an in-app action
type GrantXPRequest struct {
	Amount int    `json:"amount" validate:"gt=0,max=100000"`
	Source string `json:"source" validate:"max=64,excludesall=\x00\n\r\t"`
}

// HandleGetProgression returns the caller's level, XP and title
// @Summary Get progression
// @Tags progression
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Success 200 {object} domain.ProgressView
// @Failure 404 {object} ErrorResponse
// @Router /progression [get]
func HandleGetProgression(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		view, err := svc.GetProgress(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetProgressionFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleGrantXP awards XP to the caller. Level-up bonuses and milestone chests are applied.
// @Summary Grant XP
// @Tags progression
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Param request body GrantXPRequest true "XP amount and source"
// @Success 200 {object} domain.AwardXPResult
// @Failure 400 {object} ErrorResponse
// @Router /progression/xp [post]
func HandleGrantXP(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		var req GrantXPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant XP"); err != nil {
			return
		}

		result, err := svc.AwardXP(r.Context(), userID, req.Amount, req.Source)
		if err != nil {
			respondServiceError(w, r, ErrMsgGrantXPFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
