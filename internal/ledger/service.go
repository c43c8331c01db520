package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// Service is the per-user coin wallet. Every mutation is one conditional statement
// in the store and leaves a journal entry behind.
type Service interface {
	// GetBalance returns 0 for users without a wallet
	GetBalance(ctx context.Context, userID string) (int, error)
	Credit(ctx context.Context, userID string, amount int, reason domain.CreditReason) (int, error)
	// Debit fails with domain.ErrInsufficientFunds when the balance does not cover amount
	Debit(ctx context.Context, userID string, amount int, reason domain.DebitReason) (int, error)
	History(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error)
}

type service struct {
	repo      repository.Wallet
	publisher event.Publisher
}

// NewService creates a ledger service. publisher may be nil.
func NewService(repo repository.Wallet, publisher event.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

// ValidateCredit checks a credit request before it reaches the store
func ValidateCredit(userID string, amount int, reason domain.CreditReason) error {
	if err := domain.ValidateUserID(userID); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf(ErrFmtAmount, domain.ErrInvalidInput, amount)
	}
	if !reason.Valid() {
		return fmt.Errorf(ErrFmtCreditReason, domain.ErrInvalidInput, reason)
	}
	return nil
}

// ValidateDebit checks a debit request before it reaches the store
func ValidateDebit(userID string, amount int, reason domain.DebitReason) error {
	if err := domain.ValidateUserID(userID); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf(ErrFmtAmount, domain.ErrInvalidInput, amount)
	}
	if !reason.Valid() {
		return fmt.Errorf(ErrFmtDebitReason, domain.ErrInvalidInput, reason)
	}
	return nil
}

func (s *service) GetBalance(ctx context.Context, userID string) (int, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return 0, err
	}
	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBalanceFailed, err)
	}
	return balance, nil
}

func (s *service) Credit(ctx context.Context, userID string, amount int, reason domain.CreditReason) (int, error) {
	if err := ValidateCredit(userID, amount, reason); err != nil {
		return 0, err
	}

	balance, err := s.repo.Credit(ctx, userID, amount, reason)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgCreditFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgCredited, "user_id", userID, "amount", amount, "reason", reason, "balance", balance)
	s.publish(ctx, event.NewBalanceChangedEvent(userID, amount, balance, string(reason)))
	return balance, nil
}

func (s *service) Debit(ctx context.Context, userID string, amount int, reason domain.DebitReason) (int, error) {
	if err := ValidateDebit(userID, amount, reason); err != nil {
		return 0, err
	}

	log := logger.FromContext(ctx)
	balance, err := s.repo.Debit(ctx, userID, amount, reason)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			log.Info(LogMsgDebitRejected, "user_id", userID, "amount", amount)
			return 0, err
		}
		return 0, fmt.Errorf(ErrMsgDebitFailed, err)
	}

	log.Info(LogMsgDebited, "user_id", userID, "amount", amount, "reason", reason, "balance", balance)
	s.publish(ctx, event.NewBalanceChangedEvent(userID, -amount, balance, string(reason)))
	return balance, nil
}

func (s *service) History(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	entries, err := s.repo.GetLedgerEntries(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgHistoryFailed, err)
	}
	return entries, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}
