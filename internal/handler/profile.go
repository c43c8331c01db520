package handler

import (
	"net/http"

	"github.com/oliverftrep03/La-Penada-Real/internal/economy"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
)

// ClaimProfileRequest is the optional body of a profile claim
type ClaimProfileRequest struct {
	Username string `json:"username" validate:"max=50,excludesall=\x00\n\r\t"`
}

// HandleClaimProfile idempotently creates the caller's profile, wallet and progression
// @Summary Claim profile
// @Description Creates the profile on first call and returns it unchanged afterwards
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Param request body ClaimProfileRequest false "Display name"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /profile/claim [post]
func HandleClaimProfile(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		var req ClaimProfileRequest
		if r.ContentLength != 0 {
			if err := DecodeAndValidateRequest(r, w, &req, "Claim profile"); err != nil {
				return
			}
		}

		profile, err := svc.ClaimProfile(r.Context(), userID, req.Username)
		if err != nil {
			respondServiceError(w, r, ErrMsgClaimProfileFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Profile claimed", "username", profile.Username)
		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleGetProfile returns the caller's economy summary
// @Summary Get profile summary
// @Description Coins, level, owned item count and unlocked reward count
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Success 200 {object} domain.ProfileSummary
// @Failure 404 {object} ErrorResponse
// @Router /profile [get]
func HandleGetProfile(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		summary, err := svc.GetProfileSummary(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetProfileFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}
