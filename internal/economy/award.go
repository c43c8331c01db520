package economy

import (
	"context"
	"fmt"

	"github.com/oliverftrep03/La-Penada-Real/internal/chest"
	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/ledger"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/progression"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

type bonusCredit struct {
	amount  int
	balance int
}

func (s *service) AwardXP(ctx context.Context, userID string, amount int, source string) (*domain.AwardXPResult, error) {
	log := logger.FromContext(ctx)

	if err := progression.ValidateGrant(userID, amount); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// 1. Move XP under the row lock
	grant, err := progression.ApplyXP(ctx, tx, userID, amount)
	if err != nil {
		return nil, err
	}

	result := &domain.AwardXPResult{XPGrantResult: *grant}
	var credits []bonusCredit

	// 2. Every level gained pays its bonus and may issue a milestone chest
	for _, up := range grant.LevelUps {
		if bonus := s.levelUpBonus * up.NewLevel; bonus > 0 {
			balance, err := tx.Credit(ctx, userID, bonus, domain.CreditLevelUpBonus)
			if err != nil {
				return nil, fmt.Errorf(ErrMsgCreditBonusFailed, err)
			}
			result.BonusCoins += bonus
			result.Balance = balance
			credits = append(credits, bonusCredit{amount: bonus, balance: balance})
		}

		if tier, ok := MilestoneTier(up.NewLevel); ok {
			c := chest.New(userID, tier, domain.ChestSourceLevelMilestone, s.now())
			if err := tx.CreateChest(ctx, c); err != nil {
				return nil, fmt.Errorf(ErrMsgCreateChestFailed, err)
			}
			result.ChestsIssued = append(result.ChestsIssued, *c)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	// 3. No credit means the balance was never read inside the transaction
	if len(credits) == 0 {
		if result.Balance, err = s.ledger.GetBalance(ctx, userID); err != nil {
			return nil, fmt.Errorf(ErrMsgGetBalanceFailed, err)
		}
	}

	log.Info(LogMsgXPAwarded, "user_id", userID, "amount", amount, "source", source,
		"old_level", grant.OldLevel, "new_level", grant.NewLevel, "bonus", result.BonusCoins)
	for _, c := range result.ChestsIssued {
		log.Info(LogMsgMilestoneChest, "user_id", userID, "chest_id", c.ID, "tier", c.Tier)
	}

	progression.PublishLevelUps(ctx, s.publisher, grant, source)
	for _, credit := range credits {
		log.Debug(LogMsgLevelUpBonus, "user_id", userID, "amount", credit.amount)
		s.publish(ctx, event.NewBalanceChangedEvent(userID, credit.amount, credit.balance, string(domain.CreditLevelUpBonus)))
	}
	chest.PublishIssued(ctx, s.publisher, result.ChestsIssued...)

	return result, nil
}

func (s *service) AdminGrantCoins(ctx context.Context, userID string, amount int) (int, error) {
	if err := ledger.ValidateCredit(userID, amount, domain.CreditAdminGrant); err != nil {
		return 0, err
	}
	balance, err := s.ledger.Credit(ctx, userID, amount, domain.CreditAdminGrant)
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info(LogMsgAdminCoinsGranted, "user_id", userID, "amount", amount, "balance", balance)
	return balance, nil
}
