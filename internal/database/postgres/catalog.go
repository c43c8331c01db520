package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	queries
}

var _ repository.Catalog = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{queries{q: db}}
}

// GetItem retrieves an item by id, active or not
func (r *CatalogRepository) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := scanItem(r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_id = $1`, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}
		return nil, classifyError(ErrMsgGetItemFailed, err)
	}
	return &item, nil
}

// ListItems lists items ordered by price then id
func (r *CatalogRepository) ListItems(ctx context.Context, itemType *domain.ItemType, activeOnly bool) ([]domain.Item, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE ($1::text IS NULL OR item_type = $1::text)
		  AND (NOT $2::bool OR active)
		ORDER BY price ASC, item_id ASC`,
		itemTypeArg(itemType), activeOnly)
	if err != nil {
		return nil, classifyError(ErrMsgListItemsFailed, err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, classifyError(ErrMsgListItemsFailed, err)
	}
	return items, nil
}

// UpsertItem inserts the item or overwrites the stored definition
func (r *CatalogRepository) UpsertItem(ctx context.Context, item domain.Item) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO items (item_id, name, item_type, rarity, price, content, image_url, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (item_id) DO UPDATE SET
			name = EXCLUDED.name,
			item_type = EXCLUDED.item_type,
			rarity = EXCLUDED.rarity,
			price = EXCLUDED.price,
			content = EXCLUDED.content,
			image_url = EXCLUDED.image_url,
			active = EXCLUDED.active,
			updated_at = NOW()`,
		item.ID, item.Name, string(item.Type), string(item.Rarity), item.Price, item.Content, item.ImageURL, item.Active)
	if err != nil {
		if pgCode(err) == pgCodeCheckViolation {
			return fmt.Errorf("%w: item %s rejected by catalog constraints", domain.ErrInvalidInput, item.ID)
		}
		return classifyError(ErrMsgUpsertItemFailed, err)
	}
	return nil
}

// GetRewardDefinition retrieves a trophy or achievement by id
func (r *CatalogRepository) GetRewardDefinition(ctx context.Context, rewardID string) (*domain.RewardDefinition, error) {
	var (
		def        domain.RewardDefinition
		rewardType string
	)
	err := r.q.QueryRow(ctx, `
		SELECT reward_id, reward_type, slot_index, name, description, icon
		FROM reward_definitions WHERE reward_id = $1`, rewardID).
		Scan(&def.ID, &rewardType, &def.SlotIndex, &def.Name, &def.Description, &def.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRewardNotFound, rewardID)
		}
		return nil, classifyError(ErrMsgGetRewardFailed, err)
	}
	def.Type = domain.RewardType(rewardType)
	return &def, nil
}

// ListRewardDefinitions lists definitions ordered by type then slot
func (r *CatalogRepository) ListRewardDefinitions(ctx context.Context, rewardType *domain.RewardType) ([]domain.RewardDefinition, error) {
	rows, err := r.q.Query(ctx, `
		SELECT reward_id, reward_type, slot_index, name, description, icon
		FROM reward_definitions
		WHERE ($1::text IS NULL OR reward_type = $1::text)
		ORDER BY reward_type ASC, slot_index ASC`, rewardTypeArg(rewardType))
	if err != nil {
		return nil, classifyError(ErrMsgListRewardsFailed, err)
	}
	defer rows.Close()

	defs := make([]domain.RewardDefinition, 0)
	for rows.Next() {
		var (
			def domain.RewardDefinition
			rt  string
		)
		if err := rows.Scan(&def.ID, &rt, &def.SlotIndex, &def.Name, &def.Description, &def.Icon); err != nil {
			return nil, classifyError(ErrMsgListRewardsFailed, err)
		}
		def.Type = domain.RewardType(rt)
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(ErrMsgListRewardsFailed, err)
	}
	return defs, nil
}

// UpsertRewardDefinition inserts or overwrites a definition. Slot clashes are rejected.
func (r *CatalogRepository) UpsertRewardDefinition(ctx context.Context, def domain.RewardDefinition) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO reward_definitions (reward_id, reward_type, slot_index, name, description, icon)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (reward_id) DO UPDATE SET
			reward_type = EXCLUDED.reward_type,
			slot_index = EXCLUDED.slot_index,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			icon = EXCLUDED.icon`,
		def.ID, string(def.Type), def.SlotIndex, def.Name, def.Description, def.Icon)
	if err != nil {
		switch pgCode(err) {
		case pgCodeUniqueViolation:
			return fmt.Errorf("%w: %s slot %d is taken", domain.ErrInvalidInput, def.Type, def.SlotIndex)
		case pgCodeCheckViolation:
			return fmt.Errorf("%w: reward %s rejected by catalog constraints", domain.ErrInvalidInput, def.ID)
		}
		return classifyError(ErrMsgUpsertRewardFailed, err)
	}
	return nil
}
