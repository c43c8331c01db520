package handler

import (
	"net/http"

	"github.com/oliverftrep03/La-Penada-Real/internal/economy"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
)

// PurchaseRequest names the item to buy
type PurchaseRequest struct {
	ItemID string `json:"item_id" validate:"required,max=100"`
}

// HandleGetShop lists purchasable items with the caller's ownership flags
// @Summary Get shop
// @Tags shop
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Param filter query string false "all or an item type"
// @Success 200 {array} domain.ShopEntry
// @Failure 400 {object} ErrorResponse
// @Router /shop [get]
func HandleGetShop(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}
		filter := GetOptionalQueryParam(r, QueryParamFilter, economy.ShopFilterAll)

		entries, err := svc.Shop(r.Context(), userID, filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetShopFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// HandlePurchase buys an item: the price is debited and the item granted, or neither happens
// @Summary Purchase item
// @Tags shop
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Param request body PurchaseRequest true "Item to buy"
// @Success 200 {object} domain.PurchaseResult
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /shop/purchase [post]
func HandlePurchase(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		var req PurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
			return
		}

		result, err := svc.Purchase(r.Context(), userID, req.ItemID)
		if err != nil {
			respondServiceError(w, r, ErrMsgPurchaseFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Purchase completed", "item_id", req.ItemID, "balance", result.Balance)
		respondJSON(w, http.StatusOK, result)
	}
}
