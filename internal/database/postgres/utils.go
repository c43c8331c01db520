package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every query helper
// runs unchanged inside or outside a transaction
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// queries holds the SQL shared by repositories and transactions
type queries struct {
	q querier
}

func itemTypeArg(t *domain.ItemType) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

func rewardTypeArg(t *domain.RewardType) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

const itemColumns = `item_id, name, item_type, rarity, price, content, image_url, active`

// scanItem reads one row selected with itemColumns
func scanItem(row pgx.Row) (domain.Item, error) {
	var (
		item             domain.Item
		itemType, rarity string
	)
	if err := row.Scan(&item.ID, &item.Name, &itemType, &rarity, &item.Price, &item.Content, &item.ImageURL, &item.Active); err != nil {
		return domain.Item{}, err
	}
	item.Type = domain.ItemType(itemType)
	item.Rarity = domain.Rarity(rarity)
	return item, nil
}

func collectItems(rows pgx.Rows) ([]domain.Item, error) {
	defer rows.Close()
	items := make([]domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const chestColumns = `chest_id::text, user_id, tier, source, created_at, opened_at, item_id`

func scanChest(row pgx.Row) (domain.Chest, error) {
	var (
		chest        domain.Chest
		tier, source string
	)
	if err := row.Scan(&chest.ID, &chest.UserID, &tier, &source, &chest.CreatedAt, &chest.OpenedAt, &chest.ItemID); err != nil {
		return domain.Chest{}, err
	}
	chest.Tier = domain.ChestTier(tier)
	chest.Source = domain.ChestSource(source)
	return chest, nil
}
