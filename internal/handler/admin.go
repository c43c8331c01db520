package handler

import (
	"context"
	"net/http"

	"github.com/oliverftrep03/La-Penada-Real/internal/catalog"
	"github.com/oliverftrep03/La-Penada-Real/internal/chest"
	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/economy"
	"github.com/oliverftrep03/La-Penada-Real/internal/eventlog"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// AdminGrantCoinsRequest credits coins to a user
type AdminGrantCoinsRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Amount int    `json:"amount" validate:"gt=0,max=1000000"`
}

// AdminGrantCoinsResponse carries the balance after the credit
type AdminGrantCoinsResponse struct {
	UserID  string `json:"user_id"`
	Balance int    `json:"balance"`
}

// AdminAwardXPRequest awards XP on behalf of a user
type AdminAwardXPRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Amount int    `json:"amount" validate:"gt=0,max=1000000"`
	Source string `json:"source" validate:"max=64"`
}

// AdminUpsertItemRequest creates or replaces a catalog item
type AdminUpsertItemRequest struct {
	ID       string  `json:"id" validate:"required,max=64"`
	Name     string  `json:"name" validate:"required,max=100"`
	Type     string  `json:"type" validate:"required,itemtype"`
	Rarity   string  `json:"rarity" validate:"required,rarity"`
	Price    int     `json:"price" validate:"min=0"`
	Content  string  `json:"content" validate:"max=500"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Active   *bool   `json:"active"`
}

// toDomain converts the request. Items are active unless stated otherwise.
func (req AdminUpsertItemRequest) toDomain() domain.Item {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return domain.Item{
		ID:       req.ID,
		Name:     req.Name,
		Type:     domain.ItemType(req.Type),
		Rarity:   domain.Rarity(req.Rarity),
		Price:    req.Price,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Active:   active,
	}
}

// AdminUpsertRewardRequest creates or replaces a reward definition
type AdminUpsertRewardRequest struct {
	ID          string `json:"id" validate:"required,max=64"`
	Type        string `json:"type" validate:"required,rewardtype"`
	SlotIndex   int    `json:"slot_index" validate:"min=0,max=29"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Icon        string `json:"icon" validate:"max=100"`
}

// AdminIssueChestRequest issues a chest of the given tier
type AdminIssueChestRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Tier   string `json:"tier" validate:"required,chesttier"`
}

// CatalogReloader re-reads the catalog files into storage and drops cached reads
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

// HandleAdminGrantCoins credits coins to any user
// @Summary Grant coins (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AdminGrantCoinsRequest true "Credit"
// @Success 200 {object} AdminGrantCoinsResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/coins [post]
func HandleAdminGrantCoins(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminGrantCoinsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin grant coins"); err != nil {
			return
		}

		balance, err := svc.AdminGrantCoins(r.Context(), req.UserID, req.Amount)
		if err != nil {
			respondServiceError(w, r, ErrMsgAdminGrantCoinsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, AdminGrantCoinsResponse{UserID: req.UserID, Balance: balance})
	}
}

// HandleAdminAwardXP awards XP to any user, with level-up rewards
// @Summary Award XP (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AdminAwardXPRequest true "XP award"
// @Success 200 {object} domain.AwardXPResult
// @Failure 400 {object} ErrorResponse
// @Router /admin/xp [post]
func HandleAdminAwardXP(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminAwardXPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin award XP"); err != nil {
			return
		}
		source := req.Source
		if source == "" {
			source = AdminXPSource
		}

		result, err := svc.AwardXP(r.Context(), req.UserID, req.Amount, source)
		if err != nil {
			respondServiceError(w, r, ErrMsgAdminAwardXPFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// AdminXPSource tags XP awarded through the admin API without an explicit source
const AdminXPSource = "admin"

// HandleAdminUpsertItem creates or replaces a catalog item
// @Summary Save catalog item (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AdminUpsertItemRequest true "Item"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/items [post]
func HandleAdminUpsertItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminUpsertItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin upsert item"); err != nil {
			return
		}

		if err := svc.UpsertItem(r.Context(), req.toDomain()); err != nil {
			respondServiceError(w, r, ErrMsgAdminUpsertItemFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemSaved})
	}
}

// HandleAdminUpsertReward creates or replaces a reward definition
// @Summary Save reward definition (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AdminUpsertRewardRequest true "Reward definition"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/rewards [post]
func HandleAdminUpsertReward(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminUpsertRewardRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin upsert reward"); err != nil {
			return
		}

		def := domain.RewardDefinition{
			ID:          req.ID,
			Type:        domain.RewardType(req.Type),
			SlotIndex:   req.SlotIndex,
			Name:        req.Name,
			Description: req.Description,
			Icon:        req.Icon,
		}
		if err := svc.UpsertRewardDefinition(r.Context(), def); err != nil {
			respondServiceError(w, r, ErrMsgAdminUpsertRewardFail, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRewardSaved})
	}
}

// HandleAdminIssueChest issues a chest to any user
// @Summary Issue chest (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AdminIssueChestRequest true "Chest"
// @Success 201 {object} domain.Chest
// @Failure 400 {object} ErrorResponse
// @Router /admin/chests [post]
func HandleAdminIssueChest(svc chest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminIssueChestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin issue chest"); err != nil {
			return
		}
		tier, err := domain.ParseChestTier(req.Tier)
		if err != nil {
			respondServiceError(w, r, ErrMsgAdminIssueChestFailed, err)
			return
		}

		c, err := svc.Issue(r.Context(), req.UserID, tier, domain.ChestSourceAdmin)
		if err != nil {
			respondServiceError(w, r, ErrMsgAdminIssueChestFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, c)
	}
}

// HandleAdminReloadCatalog re-syncs the catalog files and invalidates the cache
// @Summary Reload catalog (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/catalog/reload [post]
func HandleAdminReloadCatalog(reloader CatalogReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := reloader.Reload(r.Context()); err != nil {
			respondServiceError(w, r, ErrMsgReloadCatalogFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Catalog reloaded via admin API")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCatalogReloaded})
	}
}

// AdminEventsResponse lists audit log entries newest first
type AdminEventsResponse struct {
	Events []repository.EventLogEntry `json:"events"`
}

// HandleAdminListEvents returns recent engine events from the audit log
// @Summary List logged events (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string false "Only events for this user"
// @Param type query string false "Only events of this type"
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {object} AdminEventsResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/events [get]
func HandleAdminListEvents(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetOptionalIntQueryParam(w, r, QueryParamLimit, 0)
		if !ok {
			return
		}

		entries, err := svc.Recent(r.Context(), repository.EventLogFilter{
			UserID:    GetOptionalQueryParam(r, QueryParamUserID, ""),
			EventType: GetOptionalQueryParam(r, QueryParamType, ""),
			Limit:     limit,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgAdminListEventsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, AdminEventsResponse{Events: entries})
	}
}
