package handler

import (
	"fmt"
	"net/http"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/unlock"
)

// UnlockRewardRequest names the trophy or achievement to unlock
type UnlockRewardRequest struct {
	RewardID string `json:"reward_id" validate:"required,max=100"`
}

// UnlockRewardResponse reports whether the unlock was new
type UnlockRewardResponse struct {
	RewardID string               `json:"reward_id"`
	Outcome  domain.UnlockOutcome `json:"outcome"`
}

// HandleGetRewardBoard returns the caller's board for one reward type
// @Summary Get reward board
// @Tags rewards
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Param type query string true "trophy or achievement"
// @Success 200 {array} domain.RewardSlot
// @Failure 400 {object} ErrorResponse
// @Router /rewards/board [get]
func HandleGetRewardBoard(svc unlock.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}
		rewardType, ok := optionalRewardType(w, r)
		if !ok {
			return
		}
		if rewardType == nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, QueryParamType))
			return
		}

		slots, err := svc.Board(r.Context(), userID, *rewardType)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetBoardFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, slots)
	}
}

// HandleUnlockReward permanently unlocks a reward for the caller. Repeating it is harmless.
// @Summary Unlock reward
// @Tags rewards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Param request body UnlockRewardRequest true "Reward to unlock"
// @Success 200 {object} UnlockRewardResponse
// @Failure 404 {object} ErrorResponse
// @Router /rewards/unlock [post]
func HandleUnlockReward(svc unlock.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		var req UnlockRewardRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Unlock reward"); err != nil {
			return
		}

		outcome, err := svc.Unlock(r.Context(), userID, req.RewardID)
		if err != nil {
			respondServiceError(w, r, ErrMsgUnlockRewardFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, UnlockRewardResponse{RewardID: req.RewardID, Outcome: outcome})
	}
}
