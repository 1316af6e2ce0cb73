package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/coreswap/xyk/testutil/keeper"
	"github.com/coreswap/xyk/x/xyk/keeper"
	"github.com/coreswap/xyk/x/xyk/types"
)

const (
	nativeToken types.TokenID = 0
	tokenA      types.TokenID = 1
	tokenB      types.TokenID = 2
)

func testAddr(suffix byte) sdk.AccAddress {
	addr := make([]byte, 20)
	copy(addr, []byte("xyk_test_account__"))
	addr[19] = suffix
	return sdk.AccAddress(addr)
}

func u(v uint64) math.Uint { return math.NewUint(v) }

func TestCreatePoolValid(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	creator := testAddr(1)
	ledger.SetBalance(tokenA, creator, u(1_000_000))
	ledger.SetBalance(tokenB, creator, u(2_000_000))

	ltid, err := k.CreatePool(ctx, creator, tokenA, u(1_000_000), tokenB, u(2_000_000))
	require.NoError(t, err)
	require.Equal(t, types.TokenID(10), ltid)

	reserveA, ok := k.GetReserve(ctx, tokenA, tokenB)
	require.True(t, ok)
	require.Equal(t, u(1_000_000), reserveA)

	reserveB, ok := k.GetReserve(ctx, tokenB, tokenA)
	require.True(t, ok)
	require.Equal(t, u(2_000_000), reserveB)

	require.True(t, ledger.FreeBalance(ctx, tokenA, creator).IsZero())
	require.Equal(t, u(1_000_000), ledger.FreeBalance(ctx, tokenA, k.VaultAddress()))
}

func TestCreatePoolAlreadyExists(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	creator := testAddr(1)
	ledger.SetBalance(tokenA, creator, u(2_000_000))
	ledger.SetBalance(tokenB, creator, u(4_000_000))

	_, err := k.CreatePool(ctx, creator, tokenA, u(1_000_000), tokenB, u(2_000_000))
	require.NoError(t, err)

	_, err = k.CreatePool(ctx, creator, tokenA, u(1_000_000), tokenB, u(2_000_000))
	require.ErrorIs(t, err, types.ErrPoolAlreadyExists)
}

func TestCreatePoolZeroAmount(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	creator := testAddr(1)

	_, err := k.CreatePool(ctx, creator, tokenA, u(0), tokenB, u(1))
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func seedPool(t *testing.T, k keeper.Keeper, ledger *keepertest.FakeLedger, ctx sdk.Context) (sdk.AccAddress, types.TokenID) {
	creator := testAddr(0)
	ledger.SetBalance(tokenA, creator, u(1_000_000))
	ledger.SetBalance(tokenB, creator, u(1_000_000))
	ltid, err := k.CreatePool(ctx, creator, tokenA, u(1_000_000), tokenB, u(1_000_000))
	require.NoError(t, err)
	return creator, ltid
}

func TestSellAssetHappyPath(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	_, _ = seedPool(t, k, ledger, ctx)

	trader := testAddr(2)
	ledger.SetBalance(tokenA, trader, u(10_000))

	bought, err := k.SellAsset(ctx, trader, tokenA, tokenB, u(10_000), u(0))
	require.NoError(t, err)
	require.Equal(t, u(9_871), bought)
	require.True(t, ledger.FreeBalance(ctx, tokenA, trader).IsZero())
	require.Equal(t, u(9_871), ledger.FreeBalance(ctx, tokenB, trader))
}

func TestSellAssetInsufficientOutputAmount(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	_, _ = seedPool(t, k, ledger, ctx)

	trader := testAddr(2)
	ledger.SetBalance(tokenA, trader, u(10_000))

	_, err := k.SellAsset(ctx, trader, tokenA, tokenB, u(10_000), u(1_000_000))
	require.ErrorIs(t, err, types.ErrInsufficientOutputAmount)
}

func TestSellAssetNoSuchPool(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)

	trader := testAddr(2)
	_, err := k.SellAsset(ctx, trader, tokenA, tokenB, u(1), u(0))
	require.ErrorIs(t, err, types.ErrNoSuchPool)
}

func TestBuyAssetHappyPath(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	_, _ = seedPool(t, k, ledger, ctx)

	trader := testAddr(2)
	ledger.SetBalance(tokenA, trader, u(1_000_000))

	sold, err := k.BuyAsset(ctx, trader, tokenA, tokenB, u(9_871), u(1_000_000))
	require.NoError(t, err)
	require.True(t, sold.GTE(u(10_000)))
}

func TestBuyAssetNotEnoughReserve(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	_, _ = seedPool(t, k, ledger, ctx)

	trader := testAddr(2)
	ledger.SetBalance(tokenA, trader, u(10_000_000))

	_, err := k.BuyAsset(ctx, trader, tokenA, tokenB, u(1_000_000), u(10_000_000))
	require.ErrorIs(t, err, types.ErrNotEnoughReserve)
}

func TestMintLiquidityProportional(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	_, ltid := seedPool(t, k, ledger, ctx)

	provider := testAddr(3)
	ledger.SetBalance(tokenA, provider, u(100_000))
	ledger.SetBalance(tokenB, provider, u(200_000))

	secondAmount, minted, err := k.MintLiquidity(ctx, provider, tokenA, tokenB, u(100_000), nil)
	require.NoError(t, err)
	require.Equal(t, u(100_001), secondAmount)
	require.True(t, minted.IsPositive())

	issuanceAfter := ledger.TotalIssuance(ctx, ltid)
	require.True(t, issuanceAfter.GT(u(0)))
}

func TestMintLiquidityExceedsExpectation(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	_, _ = seedPool(t, k, ledger, ctx)

	provider := testAddr(3)
	ledger.SetBalance(tokenA, provider, u(100_000))
	ledger.SetBalance(tokenB, provider, u(200_000))

	capAmount := u(100_000)
	_, _, err := k.MintLiquidity(ctx, provider, tokenA, tokenB, u(100_000), &capAmount)
	require.ErrorIs(t, err, types.ErrSecondAssetAmountExceededExpectations)
}

func TestBurnLiquidityRoundTrip(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	provider, ltid := seedPool(t, k, ledger, ctx)

	shares := ledger.FreeBalance(ctx, ltid, provider)
	require.True(t, shares.IsPositive())

	firstAmount, secondAmount, err := k.BurnLiquidity(ctx, provider, tokenA, tokenB, shares)
	require.NoError(t, err)
	require.Equal(t, u(1_000_000), firstAmount)
	require.Equal(t, u(1_000_000), secondAmount)

	_, ok := k.GetReserve(ctx, tokenA, tokenB)
	require.False(t, ok)
	_, ok = k.GetReserve(ctx, tokenB, tokenA)
	require.False(t, ok)
}

// TestBurnLiquidityToZeroRemovesPool exercises scenario 6: burning a
// pool's entire share supply must remove both directed pool entries
// outright, not merely zero their reserves (spec.md §4.4.5, I2).
func TestBurnLiquidityToZeroRemovesPool(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	provider, ltid := seedPool(t, k, ledger, ctx)

	shares := ledger.FreeBalance(ctx, ltid, provider)
	_, _, err := k.BurnLiquidity(ctx, provider, tokenA, tokenB, shares)
	require.NoError(t, err)

	require.False(t, k.Contains(ctx, tokenA, tokenB))
	require.False(t, k.Contains(ctx, tokenB, tokenA))

	_, ok := k.GetReserve(ctx, tokenA, tokenB)
	require.False(t, ok)
	_, ok = k.GetReserve(ctx, tokenB, tokenA)
	require.False(t, ok)
}

func TestBurnLiquidityInsufficientShares(t *testing.T) {
	ledger := keepertest.NewFakeLedger(10)
	k, ctx := keepertest.XykKeeper(t, ledger)
	_, _ = seedPool(t, k, ledger, ctx)

	other := testAddr(9)
	_, _, err := k.BurnLiquidity(ctx, other, tokenA, tokenB, u(1))
	require.ErrorIs(t, err, types.ErrNotEnoughAssets)
}
