package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/coreswap/xyk/x/xyk/ammmath"
	"github.com/coreswap/xyk/x/xyk/types"
)

// SimulateSellPrice previews the SellAsset quote for sellAmount against
// the pool's current reserves, without moving any balance (SPEC_FULL.md
// addition — read-only, used by clients to preview a trade).
func (k Keeper) SimulateSellPrice(ctx context.Context, soldAsset, boughtAsset types.TokenID, sellAmount math.Uint) (math.Uint, error) {
	if !k.Contains(ctx, soldAsset, boughtAsset) {
		return math.ZeroUint(), types.ErrNoSuchPool
	}
	inReserve, _ := k.GetReserve(ctx, soldAsset, boughtAsset)
	outReserve, _ := k.GetReserve(ctx, boughtAsset, soldAsset)
	return ammmath.SellPrice(inReserve, outReserve, sellAmount)
}

// SimulateBuyPrice previews the BuyAsset quote for buyAmount against
// the pool's current reserves, without moving any balance.
func (k Keeper) SimulateBuyPrice(ctx context.Context, soldAsset, boughtAsset types.TokenID, buyAmount math.Uint) (math.Uint, error) {
	if !k.Contains(ctx, soldAsset, boughtAsset) {
		return math.ZeroUint(), types.ErrNoSuchPool
	}
	inReserve, _ := k.GetReserve(ctx, soldAsset, boughtAsset)
	outReserve, _ := k.GetReserve(ctx, boughtAsset, soldAsset)
	if outReserve.LTE(buyAmount) {
		return math.ZeroUint(), types.ErrNotEnoughReserve
	}
	return ammmath.BuyPrice(inReserve, outReserve, buyAmount)
}
