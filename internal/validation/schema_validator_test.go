package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	itemsSchema      = "configs/schemas/items.schema.json"
	rewardsSchema    = "configs/schemas/rewards.schema.json"
	lootTablesSchema = "configs/schemas/loot_tables.schema.json"
)

func TestSchemaValidator_ShippedConfigsAreValid(t *testing.T) {
	v := NewSchemaValidator()

	pairs := map[string]string{
		"configs/catalog/items.json":   itemsSchema,
		"configs/catalog/rewards.json": rewardsSchema,
		"configs/loot_tables.json":     lootTablesSchema,
	}
	for data, schema := range pairs {
		t.Run(filepath.Base(data), func(t *testing.T) {
			path, err := ResolvePath(data)
			require.NoError(t, err)
			assert.NoError(t, v.ValidateFile(path, schema))
		})
	}
}

func TestSchemaValidator_RejectsBadItems(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "unknown rarity",
			data:    `{"version":"1.0","items":[{"id":"x","name":"X","type":"frame","rarity":"shiny","price":1}]}`,
			wantErr: "/items/0/rarity",
		},
		{
			name:    "negative price",
			data:    `{"version":"1.0","items":[{"id":"x","name":"X","type":"frame","rarity":"rare","price":-5}]}`,
			wantErr: "/items/0/price",
		},
		{
			name:    "unknown field",
			data:    `{"version":"1.0","items":[{"id":"x","name":"X","type":"frame","rarity":"rare","price":5,"colour":"red"}]}`,
			wantErr: "schema validation failed",
		},
		{
			name:    "missing items",
			data:    `{"version":"1.0"}`,
			wantErr: "(root)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), itemsSchema)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchemaValidator_LootTables(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`{"version":"1.0","tables":{"diamond":{"weights":{"common":1}}}}`), lootTablesSchema)
	assert.Error(t, err, "unknown tier")

	err = v.ValidateBytes([]byte(`{"version":"1.0","tables":{"common":{"weights":{}}}}`), lootTablesSchema)
	assert.Error(t, err, "a table needs at least one weight")

	err = v.ValidateBytes([]byte(`{"version":"1.0","tables":{"common":{"weights":{"rare":3},"types":["frame"]}}}`), lootTablesSchema)
	assert.NoError(t, err)
}

func TestSchemaValidator_Decode(t *testing.T) {
	v := NewSchemaValidator()

	var doc struct {
		Rewards []struct {
			ID        string `json:"id"`
			SlotIndex int    `json:"slot_index"`
		} `json:"rewards"`
	}
	data := []byte(`{"version":"1.0","rewards":[{"id":"trophy_00","type":"trophy","slot_index":3,"name":"Primera foto"}]}`)
	require.NoError(t, v.Decode(data, rewardsSchema, &doc))
	require.Len(t, doc.Rewards, 1)
	assert.Equal(t, 3, doc.Rewards[0].SlotIndex)

	err := v.Decode([]byte(`{"version":"1.0","rewards":[{"id":"t","type":"trophy","slot_index":30,"name":"x"}]}`), rewardsSchema, &doc)
	assert.Error(t, err, "slot index is bounded by the board size")
}

func TestSchemaValidator_Errors(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`{}`), "configs/schemas/missing.schema.json")
	assert.Error(t, err)

	err = v.ValidateBytes([]byte(`{not json`), itemsSchema)
	assert.Error(t, err)

	err = v.ValidateFile(filepath.Join(t.TempDir(), "absent.json"), itemsSchema)
	assert.Error(t, err)

	tmp := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(tmp, []byte(`{"version":"1.0","items":[]}`), 0600))
	assert.NoError(t, v.ValidateFile(tmp, itemsSchema))
}

func TestResolvePath_AbsolutePaths(t *testing.T) {
	dir := t.TempDir()

	_, err := ResolvePath(filepath.Join(dir, "absent.json"))
	assert.Error(t, err, "a missing absolute path must not resolve")

	present := filepath.Join(dir, "present.json")
	require.NoError(t, os.WriteFile(present, []byte(`{}`), 0600))
	resolved, err := ResolvePath(present)
	require.NoError(t, err)
	assert.Equal(t, present, resolved)
}
