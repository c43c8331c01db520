package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

const testUser = "user-1"

func newRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
	}
	req.Header.Set(HeaderUserID, testUser)
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRequireUserID(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{"missing", "", http.StatusBadRequest, ErrMsgMissingUserID},
		{"too long", strings.Repeat("u", domain.MaxUserIDLength+1), http.StatusBadRequest, ErrMsgInvalidUserID},
		{"blank", "   ", http.StatusBadRequest, ErrMsgInvalidUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockEconomyService{}
			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}

			w := serve(HandleGetProfile(svc), req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertNotCalled(t, "GetProfileSummary", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleClaimProfile(t *testing.T) {
	InitValidator()
	profile := &domain.Profile{UserID: testUser, Username: "Paco"}

	t.Run("With username", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("ClaimProfile", mock.Anything, testUser, "Paco").Return(profile, nil)

		w := serve(HandleClaimProfile(svc), newRequest(t, http.MethodPost, "/profile/claim", ClaimProfileRequest{Username: "Paco"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"Paco"`)
		svc.AssertExpectations(t)
	})

	t.Run("Empty body", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("ClaimProfile", mock.Anything, testUser, "").Return(&domain.Profile{UserID: testUser, Username: testUser}, nil)

		w := serve(HandleClaimProfile(svc), newRequest(t, http.MethodPost, "/profile/claim", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Username wider than column", func(t *testing.T) {
		svc := &MockEconomyService{}

		w := serve(HandleClaimProfile(svc), newRequest(t, http.MethodPost, "/profile/claim", ClaimProfileRequest{Username: strings.Repeat("p", 51)}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "ClaimProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown field rejected", func(t *testing.T) {
		svc := &MockEconomyService{}
		req := httptest.NewRequest(http.MethodPost, "/profile/claim", strings.NewReader(`{"nickname":"x"}`))
		req.Header.Set(HeaderUserID, testUser)

		w := serve(HandleClaimProfile(svc), req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}

func TestHandlePurchase(t *testing.T) {
	InitValidator()
	item := domain.Item{ID: "frame_gold", Name: "Marco dorado", Type: domain.ItemTypeFrame, Rarity: domain.RarityEpic, Price: 200, Active: true}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockEconomyService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: PurchaseRequest{ItemID: "frame_gold"},
			setupMock: func(m *MockEconomyService) {
				m.On("Purchase", mock.Anything, testUser, "frame_gold").Return(&domain.PurchaseResult{Item: item, Balance: 50}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"balance":50`,
		},
		{
			name:           "Missing item id",
			body:           PurchaseRequest{},
			setupMock:      func(m *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name: "Insufficient funds",
			body: PurchaseRequest{ItemID: "frame_gold"},
			setupMock: func(m *MockEconomyService) {
				m.On("Purchase", mock.Anything, testUser, "frame_gold").Return(nil, fmt.Errorf("debit: %w", domain.ErrInsufficientFunds))
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedBody:   ErrMsgNotEnoughCoinsError,
		},
		{
			name: "Already owned",
			body: PurchaseRequest{ItemID: "frame_gold"},
			setupMock: func(m *MockEconomyService) {
				m.On("Purchase", mock.Anything, testUser, "frame_gold").Return(nil, domain.ErrAlreadyOwned)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgAlreadyOwnedError,
		},
		{
			name: "Unknown item",
			body: PurchaseRequest{ItemID: "nope"},
			setupMock: func(m *MockEconomyService) {
				m.On("Purchase", mock.Anything, testUser, "nope").Return(nil, domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFoundError,
		},
		{
			name: "Storage down",
			body: PurchaseRequest{ItemID: "frame_gold"},
			setupMock: func(m *MockEconomyService) {
				m.On("Purchase", mock.Anything, testUser, "frame_gold").Return(nil, domain.ErrStorageUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgUnavailableError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockEconomyService{}
			tt.setupMock(svc)

			w := serve(HandlePurchase(svc), newRequest(t, http.MethodPost, "/shop/purchase", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetShop_DefaultFilter(t *testing.T) {
	svc := &MockEconomyService{}
	svc.On("Shop", mock.Anything, testUser, "all").Return([]domain.ShopEntry{}, nil)
	svc.On("Shop", mock.Anything, testUser, "hat").Return(nil, fmt.Errorf("%w: unknown filter", domain.ErrInvalidInput))

	w := serve(HandleGetShop(svc), newRequest(t, http.MethodGet, "/shop", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())

	w = serve(HandleGetShop(svc), newRequest(t, http.MethodGet, "/shop?filter=hat", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleOpenChest(t *testing.T) {
	openedAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	result := &domain.ChestOpenResult{
		Chest:        domain.Chest{ID: "c-1", UserID: testUser, Tier: domain.ChestTierRare, OpenedAt: &openedAt},
		Item:         domain.Item{ID: "frame_oak", Rarity: domain.RarityRare},
		AlreadyOwned: true,
	}

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"Opened", nil, http.StatusOK, `"already_owned":true`},
		{"Already opened", domain.ErrChestAlreadyOpened, http.StatusConflict, ErrMsgChestOpenedError},
		{"Not found", domain.ErrChestNotFound, http.StatusNotFound, ErrMsgChestNotFoundError},
		{"Empty catalog", domain.ErrEmptyCatalog, http.StatusServiceUnavailable, ErrMsgEmptyCatalogError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockChestService{}
			if tt.err != nil {
				svc.On("Open", mock.Anything, "c-1", testUser).Return(nil, tt.err)
			} else {
				svc.On("Open", mock.Anything, "c-1", testUser).Return(result, nil)
			}
			r := chi.NewRouter()
			r.Post("/chests/{chestID}/open", HandleOpenChest(svc))

			w := serve(r, newRequest(t, http.MethodPost, "/chests/c-1/open", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleListChests(t *testing.T) {
	svc := &MockChestService{}
	svc.On("ListChests", mock.Anything, testUser, true).Return([]domain.Chest{{ID: "c-1"}}, nil)

	w := serve(HandleListChests(svc), newRequest(t, http.MethodGet, "/chests?unopened=true", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"c-1"`)

	w = serve(HandleListChests(svc), newRequest(t, http.MethodGet, "/chests?unopened=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleClaimWelcomeChest(t *testing.T) {
	svc := &MockEconomyService{}
	svc.On("ClaimWelcomeChest", mock.Anything, testUser).Return(&domain.Chest{ID: "w-1", Tier: domain.ChestTierWelcome}, nil).Once()
	svc.On("ClaimWelcomeChest", mock.Anything, testUser).Return(nil, domain.ErrWelcomeAlreadyClaimed).Once()

	w := serve(HandleClaimWelcomeChest(svc), newRequest(t, http.MethodPost, "/chests/welcome", nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(HandleClaimWelcomeChest(svc), newRequest(t, http.MethodPost, "/chests/welcome", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgWelcomeClaimedError)
	svc.AssertExpectations(t)
}

func TestHandleGrantXP(t *testing.T) {
	InitValidator()
	svc := &MockEconomyService{}
	svc.On("AwardXP", mock.Anything, testUser, 15, "photo").Return(&domain.AwardXPResult{
		XPGrantResult: domain.XPGrantResult{UserID: testUser, XPGained: 15, OldLevel: 1, NewLevel: 2, XP: 5},
		BonusCoins:    20,
		Balance:       20,
	}, nil)

	w := serve(HandleGrantXP(svc), newRequest(t, http.MethodPost, "/progression/xp", GrantXPRequest{Amount: 15, Source: "photo"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"new_level":2`)
	assert.Contains(t, w.Body.String(), `"bonus_coins":20`)

	w = serve(HandleGrantXP(svc), newRequest(t, http.MethodPost, "/progression/xp", GrantXPRequest{Amount: 0}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleGetRewardBoard(t *testing.T) {
	svc := &MockUnlockService{}
	svc.On("Board", mock.Anything, testUser, domain.RewardTypeTrophy).Return([]domain.RewardSlot{
		{Definition: domain.RewardDefinition{ID: "trophy_00"}, Unlocked: true},
	}, nil)

	w := serve(HandleGetRewardBoard(svc), newRequest(t, http.MethodGet, "/rewards/board?type=trophy", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unlocked":true`)

	w = serve(HandleGetRewardBoard(svc), newRequest(t, http.MethodGet, "/rewards/board", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(HandleGetRewardBoard(svc), newRequest(t, http.MethodGet, "/rewards/board?type=medal", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleUnlockReward(t *testing.T) {
	InitValidator()
	svc := &MockUnlockService{}
	svc.On("Unlock", mock.Anything, testUser, "trophy_00").Return(domain.UnlockAlreadyUnlocked, nil)
	svc.On("Unlock", mock.Anything, testUser, "ghost").Return(domain.UnlockOutcome(""), domain.ErrRewardNotFound)

	w := serve(HandleUnlockReward(svc), newRequest(t, http.MethodPost, "/rewards/unlock", UnlockRewardRequest{RewardID: "trophy_00"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"outcome":"already_unlocked"`)

	w = serve(HandleUnlockReward(svc), newRequest(t, http.MethodPost, "/rewards/unlock", UnlockRewardRequest{RewardID: "ghost"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleWallet(t *testing.T) {
	svc := &MockLedgerService{}
	svc.On("GetBalance", mock.Anything, testUser).Return(120, nil)
	svc.On("History", mock.Anything, testUser, 10).Return([]domain.LedgerEntry{{ID: "e-1", Delta: -80}}, nil)

	w := serve(HandleGetWallet(svc), newRequest(t, http.MethodGet, "/wallet", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user-1","coins":120}`, w.Body.String())

	w = serve(HandleGetWalletHistory(svc), newRequest(t, http.MethodGet, "/wallet/history?limit=10", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"delta":-80`)

	w = serve(HandleGetWalletHistory(svc), newRequest(t, http.MethodGet, "/wallet/history?limit=ten", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleListItems(t *testing.T) {
	svc := &MockCatalogService{}
	svc.On("ListItems", mock.Anything).Return([]domain.Item{{ID: "a"}, {ID: "b"}}, nil)
	svc.On("ListItemsByType", mock.Anything, domain.ItemTypeTitle).Return([]domain.Item{{ID: "t"}}, nil)

	w := serve(HandleListItems(svc), httptest.NewRequest(http.MethodGet, "/catalog/items", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"b"`)

	w = serve(HandleListItems(svc), httptest.NewRequest(http.MethodGet, "/catalog/items?type=title", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"t"`)

	w = serve(HandleListItems(svc), httptest.NewRequest(http.MethodGet, "/catalog/items?type=hat", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleAdminUpsertItem(t *testing.T) {
	InitValidator()
	svc := &MockCatalogService{}
	svc.On("UpsertItem", mock.Anything, mock.MatchedBy(func(item domain.Item) bool {
		return item.ID == "sticker_x" && item.Active && item.Type == domain.ItemTypeSticker
	})).Return(nil)

	body := AdminUpsertItemRequest{ID: "sticker_x", Name: "X", Type: "sticker", Rarity: "common", Price: 5}
	w := serve(HandleAdminUpsertItem(svc), newRequest(t, http.MethodPost, "/admin/items", body))
	assert.Equal(t, http.StatusOK, w.Code)

	body.Rarity = "shiny"
	w = serve(HandleAdminUpsertItem(svc), newRequest(t, http.MethodPost, "/admin/items", body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid rarity")

	body.Rarity = "common"
	body.Name = strings.Repeat("n", domain.MaxCatalogNameLength+1)
	w = serve(HandleAdminUpsertItem(svc), newRequest(t, http.MethodPost, "/admin/items", body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Must be at most 100")

	body.Name = "X"
	body.ID = strings.Repeat("i", domain.MaxCatalogIDLength+1)
	w = serve(HandleAdminUpsertItem(svc), newRequest(t, http.MethodPost, "/admin/items", body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNumberOfCalls(t, "UpsertItem", 1)
}

func TestHandleAdminIssueChest(t *testing.T) {
	InitValidator()
	svc := &MockChestService{}
	svc.On("Issue", mock.Anything, "user-2", domain.ChestTierLegendary, domain.ChestSourceAdmin).
		Return(&domain.Chest{ID: "c-9", Tier: domain.ChestTierLegendary}, nil)

	w := serve(HandleAdminIssueChest(svc), newRequest(t, http.MethodPost, "/admin/chests", AdminIssueChestRequest{UserID: "user-2", Tier: "legendary"}))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(HandleAdminIssueChest(svc), newRequest(t, http.MethodPost, "/admin/chests", AdminIssueChestRequest{UserID: "user-2", Tier: "golden"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleAdminGrantCoinsAndXP(t *testing.T) {
	InitValidator()
	svc := &MockEconomyService{}
	svc.On("AdminGrantCoins", mock.Anything, "user-2", 500).Return(700, nil)
	svc.On("AwardXP", mock.Anything, "user-2", 40, AdminXPSource).Return(&domain.AwardXPResult{}, nil)

	w := serve(HandleAdminGrantCoins(svc), newRequest(t, http.MethodPost, "/admin/coins", AdminGrantCoinsRequest{UserID: "user-2", Amount: 500}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user-2","balance":700}`, w.Body.String())

	w = serve(HandleAdminAwardXP(svc), newRequest(t, http.MethodPost, "/admin/xp", AdminAwardXPRequest{UserID: "user-2", Amount: 40}))
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleAdminReloadCatalog(t *testing.T) {
	reloader := &MockReloader{}
	reloader.On("Reload", mock.Anything).Return(nil).Once()
	reloader.On("Reload", mock.Anything).Return(assert.AnError).Once()

	w := serve(HandleAdminReloadCatalog(reloader), httptest.NewRequest(http.MethodPost, "/admin/catalog/reload", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(HandleAdminReloadCatalog(reloader), httptest.NewRequest(http.MethodPost, "/admin/catalog/reload", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	reloader.AssertExpectations(t)
}
