package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coreswap/xyk/x/xyk/types"
)

// InitGenesis loads each configured pool entry (spec.md §6). For an
// entry whose expected liquidity token id already exists on the
// ledger, it mints additional liquidity into the existing pool; for a
// fresh id, it verifies the ledger's next token id matches before
// creating a brand-new pool. A mismatch means genesis was generated
// against a different ledger history and halts startup rather than
// silently diverging from it.
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	for i, entry := range data.Pools {
		account, err := sdk.AccAddressFromBech32(entry.Account)
		if err != nil {
			return fmt.Errorf("genesis pool entry %d: invalid account %q: %w", i, entry.Account, err)
		}

		if _, found := k.PairOf(ctx, entry.ExpectedLiquidityTokenID); found {
			expectedSecond := entry.AmountB
			if _, _, err := k.MintLiquidity(ctx, account, entry.TokenA, entry.TokenB, entry.AmountA, &expectedSecond); err != nil {
				return fmt.Errorf("genesis pool entry %d: mint_liquidity into existing pool %d: %w", i, entry.ExpectedLiquidityTokenID, err)
			}
			continue
		}

		nextID := k.ledger.NextTokenID(ctx)
		if nextID != entry.ExpectedLiquidityTokenID {
			return fmt.Errorf(
				"genesis pool entry %d: expected next token id %d to create liquidity token %d, ledger reports %d",
				i, entry.ExpectedLiquidityTokenID, entry.ExpectedLiquidityTokenID, nextID,
			)
		}

		liquidityTokenID, err := k.CreatePool(ctx, account, entry.TokenA, entry.AmountA, entry.TokenB, entry.AmountB)
		if err != nil {
			return fmt.Errorf("genesis pool entry %d: create_pool: %w", i, err)
		}
		if liquidityTokenID != entry.ExpectedLiquidityTokenID {
			return fmt.Errorf(
				"genesis pool entry %d: created liquidity token %d, expected %d",
				i, liquidityTokenID, entry.ExpectedLiquidityTokenID,
			)
		}
	}
	return nil
}

// ExportGenesis reconstructs a GenesisState that would recreate every
// currently registered pool as a single create_pool entry. It does not
// attempt to replay the history of mints and burns a pool went
// through; exported state always has the pool at its current reserves.
func (k Keeper) ExportGenesis(ctx context.Context, vaultAccount string) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()

	store := k.getStore(ctx)
	it := storetypes.KVStorePrefixIterator(store, types.LiquidityPoolKeyPrefix)
	defer it.Close()

	for ; it.Valid(); it.Next() {
		liquidityTokenID := decodeTokenID(it.Key()[len(types.LiquidityPoolKeyPrefix):])
		tokenA, tokenB, found := k.PairOf(ctx, liquidityTokenID)
		if !found {
			continue
		}
		reserveA, okA := k.GetReserve(ctx, tokenA, tokenB)
		reserveB, okB := k.GetReserve(ctx, tokenB, tokenA)
		if !okA || !okB {
			// Pool removed by a full burn; its liquidity-token index remains.
			continue
		}

		gs.Pools = append(gs.Pools, types.GenesisPoolEntry{
			Account:                  vaultAccount,
			TokenA:                   tokenA,
			AmountA:                  reserveA,
			TokenB:                   tokenB,
			AmountB:                  reserveB,
			ExpectedLiquidityTokenID: liquidityTokenID,
		})
	}
	return gs, nil
}
