package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/coreswap/xyk/testutil/keeper"
	"github.com/coreswap/xyk/x/xyk/types"
)

func TestInitGenesisCreatesPool(t *testing.T) {
	ledger := keepertest.NewFakeLedger(7)
	k, ctx := keepertest.XykKeeper(t, ledger)

	account := testAddr(1)
	ledger.SetBalance(tokenA, account, u(1_000_000))
	ledger.SetBalance(tokenB, account, u(2_000_000))

	gs := types.GenesisState{
		Pools: []types.GenesisPoolEntry{
			{
				Account:                  account.String(),
				TokenA:                   tokenA,
				AmountA:                  u(1_000_000),
				TokenB:                   tokenB,
				AmountB:                  u(2_000_000),
				ExpectedLiquidityTokenID: 7,
			},
		},
	}

	require.NoError(t, k.InitGenesis(ctx, gs))

	reserveA, ok := k.GetReserve(ctx, tokenA, tokenB)
	require.True(t, ok)
	require.Equal(t, u(1_000_000), reserveA)

	ltid, found := k.GetLiquidityAsset(ctx, tokenA, tokenB)
	require.True(t, found)
	require.Equal(t, types.TokenID(7), ltid)
}

func TestInitGenesisNextTokenMismatchFails(t *testing.T) {
	ledger := keepertest.NewFakeLedger(7)
	k, ctx := keepertest.XykKeeper(t, ledger)

	account := testAddr(1)
	ledger.SetBalance(tokenA, account, u(1_000_000))
	ledger.SetBalance(tokenB, account, u(2_000_000))

	gs := types.GenesisState{
		Pools: []types.GenesisPoolEntry{
			{
				Account:                  account.String(),
				TokenA:                   tokenA,
				AmountA:                  u(1_000_000),
				TokenB:                   tokenB,
				AmountB:                  u(2_000_000),
				ExpectedLiquidityTokenID: 99,
			},
		},
	}

	err := k.InitGenesis(ctx, gs)
	require.Error(t, err)
}

func TestInitGenesisMintsIntoExistingPool(t *testing.T) {
	ledger := keepertest.NewFakeLedger(7)
	k, ctx := keepertest.XykKeeper(t, ledger)

	account := testAddr(1)
	ledger.SetBalance(tokenA, account, u(2_000_000))
	ledger.SetBalance(tokenB, account, u(4_000_001))

	first := types.GenesisState{Pools: []types.GenesisPoolEntry{{
		Account: account.String(), TokenA: tokenA, AmountA: u(1_000_000),
		TokenB: tokenB, AmountB: u(2_000_000), ExpectedLiquidityTokenID: 7,
	}}}
	require.NoError(t, k.InitGenesis(ctx, first))

	second := types.GenesisState{Pools: []types.GenesisPoolEntry{{
		Account: account.String(), TokenA: tokenA, AmountA: u(1_000_000),
		TokenB: tokenB, AmountB: u(2_000_001), ExpectedLiquidityTokenID: 7,
	}}}
	require.NoError(t, k.InitGenesis(ctx, second))

	reserveA, _ := k.GetReserve(ctx, tokenA, tokenB)
	require.Equal(t, u(2_000_000), reserveA)
}

func TestExportGenesisRoundTrips(t *testing.T) {
	ledger := keepertest.NewFakeLedger(7)
	k, ctx := keepertest.XykKeeper(t, ledger)

	account := testAddr(1)
	ledger.SetBalance(tokenA, account, u(1_000_000))
	ledger.SetBalance(tokenB, account, u(2_000_000))

	gs := types.GenesisState{Pools: []types.GenesisPoolEntry{{
		Account: account.String(), TokenA: tokenA, AmountA: u(1_000_000),
		TokenB: tokenB, AmountB: u(2_000_000), ExpectedLiquidityTokenID: 7,
	}}}
	require.NoError(t, k.InitGenesis(ctx, gs))

	exported, err := k.ExportGenesis(ctx, account.String())
	require.NoError(t, err)
	require.Len(t, exported.Pools, 1)
	require.Equal(t, types.TokenID(7), exported.Pools[0].ExpectedLiquidityTokenID)
	require.Equal(t, u(1_000_000), exported.Pools[0].AmountA)
}
