//go:build integration

package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undercity-labs/faction-economy/internal/db"
)

func TestTreasuryCredits(t *testing.T) {
	ctx := context.Background()

	t.Run("credit creates and accumulates", func(t *testing.T) {
		const treasuryID = "faction-credit-test"

		require.NoError(t, testDB.CreditTreasury(ctx, treasuryID, 1_000))
		require.NoError(t, testDB.CreditTreasury(ctx, treasuryID, 250))

		treasury, err := testDB.GetTreasury(ctx, treasuryID)
		require.NoError(t, err)
		assert.Equal(t, uint64(1_250), treasury.Balance)
	})
	t.Run("bucket credit tracks headline balance", func(t *testing.T) {
		const treasuryID = "dao-credit-test"

		require.NoError(t, testDB.CreditTreasuryBuckets(ctx, treasuryID, 200, 300, 150, 150, 200))

		treasury, err := testDB.GetTreasury(ctx, treasuryID)
		require.NoError(t, err)
		assert.Equal(t, uint64(1_000), treasury.Balance)
		assert.Equal(t, uint64(200), treasury.Operational)
		assert.Equal(t, uint64(300), treasury.Development)
		assert.Equal(t, uint64(150), treasury.Marketing)
		assert.Equal(t, uint64(150), treasury.Community)
		assert.Equal(t, uint64(200), treasury.Reserve)
	})
	t.Run("unknown treasury", func(t *testing.T) {
		_, err := testDB.GetTreasury(ctx, "missing-treasury")
		require.Error(t, err)
		assert.True(t, db.IsNotFoundError(err))
	})
}
