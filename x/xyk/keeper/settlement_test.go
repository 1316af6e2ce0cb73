package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/coreswap/xyk/testutil/keeper"
)

// TestSellAssetSettlesNativeDirectly exercises the settlement branch
// where the sold asset is already the native token: the fee slices are
// taken directly from the (native, other) pool and credited to the
// treasury / burned from the vault, with no second hop.
func TestSellAssetSettlesNativeDirectly(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)

	creator := testAddr(0)
	ledger.SetBalance(nativeToken, creator, u(1_000_000))
	ledger.SetBalance(tokenB, creator, u(1_000_000))
	_, err := k.CreatePool(ctx, creator, nativeToken, u(1_000_000), tokenB, u(1_000_000))
	require.NoError(t, err)

	trader := testAddr(1)
	ledger.SetBalance(nativeToken, trader, u(10_000))

	_, err = k.SellAsset(ctx, trader, nativeToken, tokenB, u(10_000), u(0))
	require.NoError(t, err)

	// 5 bps treasury + 5 bps burn of the 10_000 sold.
	require.Equal(t, u(5), k.TreasuryGet(ctx, nativeToken))

	vaultNative, ok := k.GetReserve(ctx, nativeToken, tokenB)
	require.True(t, ok)
	// original 1_000_000 + 10_000 sold - 5 treasury - 5 burn
	require.Equal(t, u(1_009_990), vaultNative)
}

// TestSellAssetDefersBurnForUnconnectedToken exercises the third
// settlement branch: neither the sold nor bought asset is native, and
// neither pool is connected to native, so both fee slices land in the
// settling token's treasury / deferred-burn accumulators untouched.
func TestSellAssetDefersBurnForUnconnectedToken(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)

	creator := testAddr(0)
	ledger.SetBalance(tokenA, creator, u(1_000_000))
	ledger.SetBalance(tokenB, creator, u(1_000_000))
	_, err := k.CreatePool(ctx, creator, tokenA, u(1_000_000), tokenB, u(1_000_000))
	require.NoError(t, err)

	trader := testAddr(1)
	ledger.SetBalance(tokenA, trader, u(10_000))

	_, err = k.SellAsset(ctx, trader, tokenA, tokenB, u(10_000), u(0))
	require.NoError(t, err)

	// settling asset is boughtAsset (tokenB); its fee slices are rescaled
	// by the post-swap reserve ratio before being recorded (spec.md §4.5).
	require.Equal(t, u(4), k.TreasuryGet(ctx, tokenB))
	require.Equal(t, u(4), k.DeferredBurnGet(ctx, tokenB))
}
