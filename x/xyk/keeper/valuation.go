package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/coreswap/xyk/x/xyk/ammmath"
	"github.com/coreswap/xyk/x/xyk/types"
)

// nativeSideOf returns (nativeToken, otherToken) for the pair a
// liquidity token represents, failing if neither side of the pair is
// the native token (spec.md §4.6, grounded on get_liquidity_token_mng_pool).
func (k Keeper) nativeSideOf(ctx context.Context, liquidityTokenID types.TokenID) (native, other types.TokenID, err error) {
	first, second, found := k.PairOf(ctx, liquidityTokenID)
	if !found {
		return 0, 0, types.ErrNoSuchLiquidityAsset
	}
	switch types.NativeTokenID {
	case first:
		return first, second, nil
	case second:
		return second, first, nil
	default:
		return 0, 0, types.ErrNotMangataLiquidityAsset
	}
}

// ValuateLiquidityToken converts liquidityAmount units of liquidityTokenID
// into the equivalent amount of the native token, based on the pair's
// native-side reserve and the token's total issuance. Returns zero if
// the pair has no native-token side at all, matching the source
// pallet's fallback-to-default behavior rather than erroring.
func (k Keeper) ValuateLiquidityToken(ctx context.Context, liquidityTokenID types.TokenID, liquidityAmount math.Uint) math.Uint {
	nativeToken, otherToken, err := k.nativeSideOf(ctx, liquidityTokenID)
	if err != nil {
		return math.ZeroUint()
	}
	nativeReserve, _ := k.GetReserve(ctx, nativeToken, otherToken)
	issuance := k.ledger.TotalIssuance(ctx, liquidityTokenID)

	valuation, err := ammmath.ValuateLiquidityToken(nativeReserve, issuance, liquidityAmount)
	if err != nil {
		return math.ZeroUint()
	}
	return valuation
}

// ScaleLiquidityByNativeValuation scales liquidityAmount so its native
// valuation equals nativeAmount, given nativeValuation as the unscaled
// amount's present native valuation (spec.md §4.6).
func (k Keeper) ScaleLiquidityByNativeValuation(nativeValuation, liquidityAmount, nativeAmount math.Uint) math.Uint {
	return ammmath.ScaleLiquidityByNativeValuation(nativeValuation, liquidityAmount, nativeAmount)
}
