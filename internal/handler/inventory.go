package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oliverftrep03/La-Penada-Real/internal/inventory"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
)

// HandleGetInventory lists the caller's owned items
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Param type query string false "Item type filter"
// @Success 200 {array} domain.Item
// @Failure 400 {object} ErrorResponse
// @Router /inventory [get]
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}
		itemType, ok := optionalItemType(w, r)
		if !ok {
			return
		}

		items, err := svc.List(r.Context(), userID, itemType)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetInventoryFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleRevokeItem removes an owned item. Coins are not refunded.
// @Summary Remove item from inventory
// @Tags inventory
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller identity"
// @Param itemID path string true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 409 {object} ErrorResponse
// @Router /inventory/{itemID} [delete]
func HandleRevokeItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := RequireUserID(w, r)
		if !ok {
			return
		}
		itemID := chi.URLParam(r, "itemID")

		if err := svc.Revoke(r.Context(), userID, itemID); err != nil {
			respondServiceError(w, r, ErrMsgRevokeItemFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Item removed", "item_id", itemID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemRemoved})
	}
}
