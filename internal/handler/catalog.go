package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oliverftrep03/La-Penada-Real/internal/catalog"
	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// HandleListItems lists active catalog items, optionally of one type
// @Summary List catalog items
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "Item type (frame, map_icon, collectible, title, sticker)"
// @Success 200 {array} domain.Item
// @Failure 400 {object} ErrorResponse
// @Router /catalog/items [get]
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemType, ok := optionalItemType(w, r)
		if !ok {
			return
		}

		var (
			items []domain.Item
			err   error
		)
		if itemType != nil {
			items, err = svc.ListItemsByType(r.Context(), *itemType)
		} else {
			items, err = svc.ListItems(r.Context())
		}
		if err != nil {
			respondServiceError(w, r, ErrMsgListItemsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleGetItem returns one catalog item
// @Summary Get catalog item
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Item ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /catalog/items/{id} [get]
func HandleGetItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := svc.GetItem(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleListRewards lists reward definitions ordered by slot
// @Summary List reward definitions
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "Reward type (trophy, achievement)"
// @Success 200 {array} domain.RewardDefinition
// @Failure 400 {object} ErrorResponse
// @Router /catalog/rewards [get]
func HandleListRewards(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rewardType, ok := optionalRewardType(w, r)
		if !ok {
			return
		}

		defs, err := svc.GetRewardDefinitions(r.Context(), rewardType)
		if err != nil {
			respondServiceError(w, r, ErrMsgListRewardsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, defs)
	}
}
