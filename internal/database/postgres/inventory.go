package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	queries
}

var _ repository.Inventory = (*InventoryRepository)(nil)

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{queries{q: db}}
}

// HasItem reports whether the user owns the item
func (q queries) HasItem(ctx context.Context, userID, itemID string) (bool, error) {
	var owned bool
	err := q.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM inventory_entries WHERE user_id = $1 AND item_id = $2)`,
		userID, itemID).Scan(&owned)
	if err != nil {
		return false, classifyError(ErrMsgHasItemFailed, err)
	}
	return owned, nil
}

// GrantItem relies on the (user_id, item_id) primary key to stay idempotent
func (q queries) GrantItem(ctx context.Context, userID, itemID string, source domain.InventorySource) (bool, error) {
	tag, err := q.q.Exec(ctx, `
		INSERT INTO inventory_entries (user_id, item_id, source)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_id) DO NOTHING`,
		userID, itemID, string(source))
	if err != nil {
		if pgCode(err) == pgCodeForeignKeyViolation {
			return false, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}
		return false, classifyError(ErrMsgGrantItemFailed, err)
	}
	return tag.RowsAffected() == 1, nil
}

// RevokeItem deletes the ownership pair
func (r *InventoryRepository) RevokeItem(ctx context.Context, userID, itemID string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM inventory_entries WHERE user_id = $1 AND item_id = $2`, userID, itemID)
	if err != nil {
		return false, classifyError(ErrMsgRevokeItemFailed, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListInventory joins ownership with the catalog, ordered by type, price and id
func (r *InventoryRepository) ListInventory(ctx context.Context, userID string, itemType *domain.ItemType) ([]domain.Item, error) {
	rows, err := r.q.Query(ctx, `
		SELECT i.item_id, i.name, i.item_type, i.rarity, i.price, i.content, i.image_url, i.active
		FROM inventory_entries e
		JOIN items i ON i.item_id = e.item_id
		WHERE e.user_id = $1
		  AND ($2::text IS NULL OR i.item_type = $2::text)
		ORDER BY i.item_type ASC, i.price ASC, i.item_id ASC`,
		userID, itemTypeArg(itemType))
	if err != nil {
		return nil, classifyError(ErrMsgListInventoryFailed, err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, classifyError(ErrMsgListInventoryFailed, err)
	}
	return items, nil
}

// ListOwnedItemIDs returns the ids of every owned item
func (r *InventoryRepository) ListOwnedItemIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT item_id FROM inventory_entries WHERE user_id = $1 ORDER BY item_id`, userID)
	if err != nil {
		return nil, classifyError(ErrMsgListInventoryFailed, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, classifyError(ErrMsgListInventoryFailed, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(ErrMsgListInventoryFailed, err)
	}
	return ids, nil
}
