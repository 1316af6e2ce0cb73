package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/coreswap/xyk/testutil/keeper"
)

func TestValuateLiquidityTokenNativePair(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)

	creator := testAddr(0)
	ledger.SetBalance(nativeToken, creator, u(1_000_000))
	ledger.SetBalance(tokenB, creator, u(500_000))
	ltid, err := k.CreatePool(ctx, creator, nativeToken, u(1_000_000), tokenB, u(500_000))
	require.NoError(t, err)

	// Whole supply of the liquidity token values at the full native reserve.
	totalShares := ledger.TotalIssuance(ctx, ltid)
	valuation := k.ValuateLiquidityToken(ctx, ltid, totalShares)
	require.Equal(t, u(1_000_000), valuation)
}

func TestValuateLiquidityTokenNonNativePair(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)

	creator := testAddr(0)
	ledger.SetBalance(tokenA, creator, u(1_000_000))
	ledger.SetBalance(tokenB, creator, u(500_000))
	ltid, err := k.CreatePool(ctx, creator, tokenA, u(1_000_000), tokenB, u(500_000))
	require.NoError(t, err)

	// Neither side is native: valuation falls back to zero rather than erroring.
	require.True(t, k.ValuateLiquidityToken(ctx, ltid, u(1000)).IsZero())
}
