package economy

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/oliverftrep03/La-Penada-Real/internal/chest"
	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

func (s *service) ClaimProfile(ctx context.Context, userID, username string) (*domain.Profile, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username = defaultUsername(userID)
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return nil, fmt.Errorf(ErrFmtUsernameTooLong, domain.ErrInvalidInput, MaxUsernameLength)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	created, err := tx.CreateProfile(ctx, userID, username)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateProfileFailed, err)
	}
	if err := tx.EnsureWallet(ctx, userID); err != nil {
		return nil, fmt.Errorf(ErrMsgEnsureWalletFailed, err)
	}
	if _, err := tx.GetProgressionForUpdate(ctx, userID); err != nil {
		return nil, fmt.Errorf(ErrMsgInitProgressionFailed, err)
	}
	profile, err := tx.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProfileFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log := logger.FromContext(ctx)
	if created {
		log.Info(LogMsgProfileClaimed, "user_id", userID, "username", username)
	} else {
		log.Debug(LogMsgProfileExists, "user_id", userID)
	}
	return profile, nil
}

func (s *service) ClaimWelcomeChest(ctx context.Context, userID string) (*domain.Chest, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.MarkWelcomeClaimed(ctx, userID); err != nil {
		return nil, err
	}
	c := chest.New(userID, domain.ChestTierWelcome, domain.ChestSourceWelcome, s.now())
	if err := tx.CreateChest(ctx, c); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateChestFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgWelcomeChestClaimed, "user_id", userID, "chest_id", c.ID)
	chest.PublishIssued(ctx, s.publisher, *c)
	return c, nil
}

func (s *service) GetProfileSummary(ctx context.Context, userID string) (*domain.ProfileSummary, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProfileFailed, err)
	}
	coins, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress, err := s.progression.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	owned, err := s.inventory.OwnedSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.unlocks.ListUnlocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.ProfileSummary{
		Profile:     *profile,
		Coins:       coins,
		Progression: *progress,
		ItemsOwned:  len(owned),
		Unlocked:    len(unlocked),
	}, nil
}

// defaultUsername derives a display name from the user id, cut to the column width
func defaultUsername(userID string) string {
	runes := []rune(userID)
	if len(runes) > MaxUsernameLength {
		runes = runes[:MaxUsernameLength]
	}
	return string(runes)
}
