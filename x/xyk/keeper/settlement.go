package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/coreswap/xyk/x/xyk/ammmath"
	"github.com/coreswap/xyk/x/xyk/types"
)

// settleTreasuryAndBurn routes the treasury and buy-and-burn fee slices
// of a completed swap (spec.md §4.5). It runs after SellAsset/BuyAsset
// have already applied the swap's own reserve changes, and debits a
// pool side for the fee slice without crediting any corresponding
// input — the same "k-drain" the source pallet has, preserved rather
// than patched (SPEC_FULL.md Open Questions).
func (k Keeper) settleTreasuryAndBurn(ctx context.Context, soldAsset, boughtAsset types.TokenID, soldAmount math.Uint) error {
	vault := k.VaultAddress()

	inReserve, _ := k.GetReserve(ctx, soldAsset, boughtAsset)
	outReserve, _ := k.GetReserve(ctx, boughtAsset, soldAsset)

	settlingAsset := boughtAsset
	treasuryAmount := soldAmount.MulUint64(types.TreasuryFeeBps).QuoUint64(types.FeeBpsDenominator)
	burnAmount := soldAmount.MulUint64(types.BuyAndBurnFeeBps).QuoUint64(types.FeeBpsDenominator)

	soldIsNativeAdjacent := k.Contains(ctx, soldAsset, types.NativeTokenID)
	boughtIsNativeAdjacent := k.Contains(ctx, boughtAsset, types.NativeTokenID)

	if soldAsset == types.NativeTokenID || (soldIsNativeAdjacent && !boughtIsNativeAdjacent && boughtAsset != types.NativeTokenID) {
		settlingAsset = soldAsset
		if err := k.SetReserve(ctx, soldAsset, boughtAsset, inReserve.Sub(burnAmount).Sub(treasuryAmount)); err != nil {
			return err
		}
	} else {
		treasuryAmount = treasuryAmount.Mul(outReserve).Quo(inReserve)
		burnAmount = burnAmount.Mul(outReserve).Quo(inReserve)
		if err := k.SetReserve(ctx, boughtAsset, soldAsset, outReserve.Sub(treasuryAmount).Sub(burnAmount)); err != nil {
			return err
		}
	}

	switch {
	case settlingAsset == types.NativeTokenID:
		if err := k.TreasuryAdd(ctx, types.NativeTokenID, treasuryAmount); err != nil {
			return err
		}
		return k.ledger.BurnAndSettle(ctx, types.NativeTokenID, vault, burnAmount)

	case k.Contains(ctx, settlingAsset, types.NativeTokenID):
		nativeInReserve, _ := k.GetReserve(ctx, settlingAsset, types.NativeTokenID)
		nativeOutReserve, _ := k.GetReserve(ctx, types.NativeTokenID, settlingAsset)

		treasuryInNative, err := ammmath.SellPriceNoFee(nativeInReserve, nativeOutReserve, treasuryAmount)
		if err != nil {
			return err
		}
		burnInNative, err := ammmath.SellPriceNoFee(nativeInReserve, nativeOutReserve, burnAmount)
		if err != nil {
			return err
		}

		if err := k.SetReserve(ctx, settlingAsset, types.NativeTokenID, nativeInReserve.Add(treasuryAmount).Add(burnAmount)); err != nil {
			return err
		}
		if err := k.SetReserve(ctx, types.NativeTokenID, settlingAsset, nativeOutReserve.Sub(treasuryInNative).Sub(burnInNative)); err != nil {
			return err
		}
		if err := k.TreasuryAdd(ctx, types.NativeTokenID, treasuryInNative); err != nil {
			return err
		}
		return k.ledger.BurnAndSettle(ctx, types.NativeTokenID, vault, burnInNative)

	default:
		if err := k.TreasuryAdd(ctx, settlingAsset, treasuryAmount); err != nil {
			return err
		}
		return k.DeferredBurnAdd(ctx, settlingAsset, burnAmount)
	}
}
