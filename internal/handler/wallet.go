package handler

import (
	"net/http"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/ledger"
)

// HandleGetWallet returns the caller's coin balance
// @Summary Get wallet
// @Tags wallet
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Success 200 {object} domain.Wallet
// @Failure 503 {object} ErrorResponse
// @Router /wallet [get]
func HandleGetWallet(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		coins, err := svc.GetBalance(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetBalanceFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, domain.Wallet{UserID: userID, Coins: coins})
	}
}

// HandleGetWalletHistory returns the caller's ledger, newest first
// @Summary Get wallet history
// @Tags wallet
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Param limit query int false "Maximum entries (default 50, max 200)"
// @Success 200 {array} domain.LedgerEntry
// @Failure 400 {object} ErrorResponse
// @Router /wallet/history [get]
func HandleGetWalletHistory(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}
		limit, ok := GetOptionalIntQueryParam(w, r, QueryParamLimit, ledger.DefaultHistoryLimit)
		if !ok {
			return
		}

		entries, err := svc.History(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetHistoryFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}
