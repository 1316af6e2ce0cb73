package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/coreswap/xyk/testutil/keeper"
)

func TestGetLiquidityAssetTriesBothOrderings(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	_, ltid := seedPool(t, k, ledger, ctx)

	found, ok := k.GetLiquidityAsset(ctx, tokenA, tokenB)
	require.True(t, ok)
	require.Equal(t, ltid, found)

	foundReversed, ok := k.GetLiquidityAsset(ctx, tokenB, tokenA)
	require.True(t, ok)
	require.Equal(t, ltid, foundReversed)
}

func TestGetLiquidityAssetMissing(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)

	_, ok := k.GetLiquidityAsset(ctx, tokenA, tokenB)
	require.False(t, ok)
}

func TestTreasuryAccumulates(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)

	require.True(t, k.TreasuryGet(ctx, nativeToken).IsZero())
	require.NoError(t, k.TreasuryAdd(ctx, nativeToken, u(100)))
	require.NoError(t, k.TreasuryAdd(ctx, nativeToken, u(50)))
	require.Equal(t, u(150), k.TreasuryGet(ctx, nativeToken))
}

func TestDeferredBurnAccumulates(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)

	require.True(t, k.DeferredBurnGet(ctx, tokenA).IsZero())
	require.NoError(t, k.DeferredBurnAdd(ctx, tokenA, u(7)))
	require.Equal(t, u(7), k.DeferredBurnGet(ctx, tokenA))
}
