package ledger

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository/memory"
)

func TestCredit_PublishesBalanceChanged(t *testing.T) {
	repo := new(MockWallet)
	pub := &recordingPublisher{}
	svc := NewService(repo, pub)
	ctx := context.Background()

	repo.On("Credit", ctx, "u1", 30, domain.CreditLevelUpBonus).Return(130, nil)

	balance, err := svc.Credit(ctx, "u1", 30, domain.CreditLevelUpBonus)
	require.NoError(t, err)
	assert.Equal(t, 130, balance)

	events := pub.Events()
	require.Len(t, events, 1)
	assert.Equal(t, event.BalanceChanged, events[0].Type)
	payload := events[0].Payload.(domain.BalanceChangedPayload)
	assert.Equal(t, 30, payload.Delta)
	assert.Equal(t, 130, payload.Balance)
	repo.AssertExpectations(t)
}

func TestCreditDebit_RejectInvalidInput(t *testing.T) {
	repo := new(MockWallet)
	svc := NewService(repo, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"zero credit", func() error { _, err := svc.Credit(ctx, "u1", 0, domain.CreditAdminGrant); return err }},
		{"negative credit", func() error { _, err := svc.Credit(ctx, "u1", -5, domain.CreditAdminGrant); return err }},
		{"unknown credit reason", func() error { _, err := svc.Credit(ctx, "u1", 5, domain.CreditReason("gift")); return err }},
		{"empty user", func() error { _, err := svc.Credit(ctx, "", 5, domain.CreditAdminGrant); return err }},
		{"zero debit", func() error { _, err := svc.Debit(ctx, "u1", 0, domain.DebitPurchase); return err }},
		{"unknown debit reason", func() error { _, err := svc.Debit(ctx, "u1", 5, domain.DebitReason("tax")); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), domain.ErrInvalidInput)
		})
	}
	repo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDebit_StorageFailureIsNotInsufficientFunds(t *testing.T) {
	repo := new(MockWallet)
	pub := &recordingPublisher{}
	svc := NewService(repo, pub)
	ctx := context.Background()

	storageErr := fmt.Errorf("debit: %w: connection reset", domain.ErrStorageUnavailable)
	repo.On("Debit", ctx, "u1", 10, domain.DebitPurchase).Return(0, storageErr)

	_, err := svc.Debit(ctx, "u1", 10, domain.DebitPurchase)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Empty(t, pub.Events())
}

func TestDebitThenCredit_RestoresBalance(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Wallet(), nil)
	ctx := context.Background()

	_, err := svc.Credit(ctx, "u1", 250, domain.CreditAdminGrant)
	require.NoError(t, err)

	for _, amount := range []int{1, 17, 100, 250} {
		_, err := svc.Debit(ctx, "u1", amount, domain.DebitPurchase)
		require.NoError(t, err)
		balance, err := svc.Credit(ctx, "u1", amount, domain.CreditPurchaseRefund)
		require.NoError(t, err)
		assert.Equal(t, 250, balance, "amount %d", amount)
	}
}

func TestDebit_OverBalanceLeavesBalanceUnchanged(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Wallet(), nil)
	ctx := context.Background()

	_, err := svc.Credit(ctx, "u1", 40, domain.CreditAdminGrant)
	require.NoError(t, err)

	_, err = svc.Debit(ctx, "u1", 41, domain.DebitPurchase)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	balance, err := svc.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 40, balance)

	missing, err := svc.GetBalance(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, missing)
}

func TestDebit_ConcurrentNoLostUpdates(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Wallet(), nil)
	ctx := context.Background()

	_, err := svc.Credit(ctx, "u1", 100, domain.CreditAdminGrant)
	require.NoError(t, err)

	var succeeded atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Debit(ctx, "u1", 10, domain.DebitPurchase); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), succeeded.Load())
	balance, err := svc.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestHistory_ClampsLimitAndJournalsEveryMutation(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Wallet(), nil)
	ctx := context.Background()

	_, err := svc.Credit(ctx, "u1", 100, domain.CreditAdminGrant)
	require.NoError(t, err)
	_, err = svc.Debit(ctx, "u1", 30, domain.DebitPurchase)
	require.NoError(t, err)

	entries, err := svc.History(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	deltas := map[int]int{}
	for _, e := range entries {
		deltas[e.Delta] = e.BalanceAfter
	}
	assert.Equal(t, 100, deltas[100])
	assert.Equal(t, 70, deltas[-30])

	repo := new(MockWallet)
	repo.On("GetLedgerEntries", ctx, "u1", MaxHistoryLimit).Return([]domain.LedgerEntry{}, nil)
	_, err = NewService(repo, nil).History(ctx, "u1", 10_000)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
