//go:build integration

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undercity-labs/faction-economy/internal/db"
	"github.com/undercity-labs/faction-economy/testutil"
)

func TestTerritoryControlUpdates(t *testing.T) {
	ctx := context.Background()

	territory := testutil.RandomTerritoryDocument()
	require.NoError(t, testDB.UpsertTerritory(ctx, territory))

	t.Run("handover sets control_changed_at", func(t *testing.T) {
		resolvedAt := time.Now().Unix()
		err := testDB.UpdateTerritoryControl(ctx, territory.ID, 2, 64, false, resolvedAt)
		require.NoError(t, err)

		found, err := testDB.GetTerritory(ctx, territory.ID)
		require.NoError(t, err)
		assert.Equal(t, uint8(2), found.ControllingFaction)
		assert.Equal(t, uint64(64), found.ControlSharePct)
		assert.False(t, found.Contested)
		assert.Equal(t, resolvedAt, found.ControlChangedAt)
	})
	t.Run("same faction keeps control_changed_at", func(t *testing.T) {
		before, err := testDB.GetTerritory(ctx, territory.ID)
		require.NoError(t, err)

		err = testDB.UpdateTerritoryControl(ctx, territory.ID, 2, 58, true, before.ControlChangedAt+500)
		require.NoError(t, err)

		found, err := testDB.GetTerritory(ctx, territory.ID)
		require.NoError(t, err)
		assert.Equal(t, uint8(2), found.ControllingFaction)
		assert.Equal(t, uint64(58), found.ControlSharePct)
		assert.True(t, found.Contested)
		assert.Equal(t, before.ControlChangedAt, found.ControlChangedAt)
	})
	t.Run("unknown territory", func(t *testing.T) {
		err := testDB.UpdateTerritoryControl(ctx, "missing-territory", 1, 50, false, time.Now().Unix())
		require.Error(t, err)
		assert.True(t, db.IsNotFoundError(err))
	})
}

func TestTerritoryValuationUpdate(t *testing.T) {
	ctx := context.Background()

	territory := testutil.RandomTerritoryDocument()
	require.NoError(t, testDB.UpsertTerritory(ctx, territory))

	updateBlock := territory.LastUpdateBlock + 600
	err := testDB.UpdateTerritoryValuation(ctx, territory.ID, 123_456, -42, updateBlock)
	require.NoError(t, err)

	found, err := testDB.GetTerritory(ctx, territory.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(123_456), found.Value)
	assert.Equal(t, int64(-42), found.NetResourceFlow)
	assert.Equal(t, updateBlock, found.LastUpdateBlock)
}

func TestTerritoryPaging(t *testing.T) {
	ctx := context.Background()

	for range 5 {
		require.NoError(t, testDB.UpsertTerritory(ctx, testutil.RandomTerritoryDocument()))
	}

	var (
		seen   = make(map[string]struct{})
		lastID = ""
	)
	for {
		batch, err := testDB.GetTerritories(ctx, lastID, 2)
		require.NoError(t, err)
		if len(batch) == 0 {
			break
		}
		for _, doc := range batch {
			_, dup := seen[doc.ID]
			assert.False(t, dup, "territory %s returned twice", doc.ID)
			seen[doc.ID] = struct{}{}
		}
		if len(batch) < 2 {
			break
		}
		lastID = batch[len(batch)-1].ID
	}

	assert.GreaterOrEqual(t, len(seen), 5)
}
