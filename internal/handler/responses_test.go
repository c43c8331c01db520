package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
		{"reward not found", domain.ErrRewardNotFound, http.StatusNotFound, ErrMsgRewardNotFoundError},
		{"chest not found", domain.ErrChestNotFound, http.StatusNotFound, ErrMsgChestNotFoundError},
		{"profile not found", domain.ErrProfileNotFound, http.StatusNotFound, ErrMsgProfileNotFoundError},
		{"already owned", domain.ErrAlreadyOwned, http.StatusConflict, ErrMsgAlreadyOwnedError},
		{"chest opened", domain.ErrChestAlreadyOpened, http.StatusConflict, ErrMsgChestOpenedError},
		{"welcome claimed", domain.ErrWelcomeAlreadyClaimed, http.StatusConflict, ErrMsgWelcomeClaimedError},
		{"not owned", domain.ErrNotOwned, http.StatusConflict, ErrMsgNotOwnedError},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusPaymentRequired, ErrMsgNotEnoughCoinsError},
		{"empty catalog", domain.ErrEmptyCatalog, http.StatusServiceUnavailable, ErrMsgEmptyCatalogError},
		{"storage", domain.ErrStorageUnavailable, http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{
			"wrapped funds",
			fmt.Errorf("debit failed: %w", fmt.Errorf("%w: need 100", domain.ErrInsufficientFunds)),
			http.StatusPaymentRequired, ErrMsgNotEnoughCoinsError,
		},
		{
			"invalid input keeps detail",
			fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput),
			http.StatusBadRequest, "invalid input: amount must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestMapServiceErrorToUserMessage_StorageWinsOverBusiness(t *testing.T) {
	// A storage failure during a debit must never read as insufficient funds
	err := fmt.Errorf("debit: %w", domain.ErrStorageUnavailable)
	status, _ := mapServiceErrorToUserMessage(err)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}
