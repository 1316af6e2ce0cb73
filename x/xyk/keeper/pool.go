package keeper

import (
	"context"
	"encoding/binary"

	"cosmossdk.io/math"

	"github.com/coreswap/xyk/x/xyk/types"
)

// GetReserve returns the reserve tokenIn holds in the directed
// (tokenIn, tokenOut) pool entry, and whether that entry exists at all
// (spec.md §4.2, I1: an unordered pair is stored as two directed
// entries).
func (k Keeper) GetReserve(ctx context.Context, tokenIn, tokenOut types.TokenID) (math.Uint, bool) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(tokenIn, tokenOut))
	if bz == nil {
		return math.ZeroUint(), false
	}
	var reserve math.Uint
	if err := reserve.Unmarshal(bz); err != nil {
		panic(err)
	}
	return reserve, true
}

// SetReserve overwrites the directed (tokenIn, tokenOut) reserve entry.
// Callers must keep both directed halves of a pair in sync; SetReserve
// touches only the one side given.
func (k Keeper) SetReserve(ctx context.Context, tokenIn, tokenOut types.TokenID, amount math.Uint) error {
	bz, err := amount.Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(PoolKey(tokenIn, tokenOut), bz)
	return nil
}

// Contains reports whether a pool exists for the directed
// (tokenIn, tokenOut) entry.
func (k Keeper) Contains(ctx context.Context, tokenIn, tokenOut types.TokenID) bool {
	return k.getStore(ctx).Has(PoolKey(tokenIn, tokenOut))
}

// InsertPool creates both directed reserve entries for a brand-new pair
// and indexes the pair's liquidity token in both directions.
func (k Keeper) InsertPool(ctx context.Context, tokenA, tokenB types.TokenID, reserveA, reserveB math.Uint, liquidityTokenID types.TokenID) error {
	if err := k.SetReserve(ctx, tokenA, tokenB, reserveA); err != nil {
		return err
	}
	if err := k.SetReserve(ctx, tokenB, tokenA, reserveB); err != nil {
		return err
	}

	store := k.getStore(ctx)
	idBz := encodeTokenID(liquidityTokenID)
	store.Set(LiquidityAssetKey(tokenA, tokenB), idBz)

	pairBz := append(append([]byte{}, encodeTokenID(tokenA)...), encodeTokenID(tokenB)...)
	store.Set(LiquidityPoolKey(liquidityTokenID), pairBz)
	return nil
}

// RemovePool deletes both directed reserve entries for the unordered
// pair {tokenA, tokenB} (spec.md §4.4.5: a pool fully drained by a burn
// is removed outright, not left behind with zero reserves). The
// liquidity-asset and liquidity-pool indexes are left untouched, mirroring
// the source pallet's Pools::remove, which does not touch LiquidityAssets.
func (k Keeper) RemovePool(ctx context.Context, tokenA, tokenB types.TokenID) {
	store := k.getStore(ctx)
	store.Delete(PoolKey(tokenA, tokenB))
	store.Delete(PoolKey(tokenB, tokenA))
}

// GetLiquidityAsset returns the liquidity token id for the unordered
// pair {tokenA, tokenB}, trying both store orderings the way the
// source pallet's get_liquidity_asset does (a pool created as (A,B) is
// only ever indexed that way, never as (B,A)).
func (k Keeper) GetLiquidityAsset(ctx context.Context, tokenA, tokenB types.TokenID) (types.TokenID, bool) {
	store := k.getStore(ctx)
	if bz := store.Get(LiquidityAssetKey(tokenA, tokenB)); bz != nil {
		return decodeTokenID(bz), true
	}
	if bz := store.Get(LiquidityAssetKey(tokenB, tokenA)); bz != nil {
		return decodeTokenID(bz), true
	}
	return 0, false
}

// PairOf returns the ordered (tokenA, tokenB) pair a liquidity token id
// represents.
func (k Keeper) PairOf(ctx context.Context, liquidityTokenID types.TokenID) (tokenA, tokenB types.TokenID, found bool) {
	bz := k.getStore(ctx).Get(LiquidityPoolKey(liquidityTokenID))
	if bz == nil || len(bz) != 8 {
		return 0, 0, false
	}
	return decodeTokenID(bz[:4]), decodeTokenID(bz[4:]), true
}

func decodeTokenID(bz []byte) types.TokenID {
	return binary.BigEndian.Uint32(bz)
}

// TreasuryGet returns the treasury's accumulated balance of token.
func (k Keeper) TreasuryGet(ctx context.Context, token types.TokenID) math.Uint {
	bz := k.getStore(ctx).Get(TreasuryKey(token))
	if bz == nil {
		return math.ZeroUint()
	}
	var amt math.Uint
	if err := amt.Unmarshal(bz); err != nil {
		panic(err)
	}
	return amt
}

// TreasuryAdd credits amount to the treasury's accumulator for token.
func (k Keeper) TreasuryAdd(ctx context.Context, token types.TokenID, amount math.Uint) error {
	total := k.TreasuryGet(ctx, token).Add(amount)
	bz, err := total.Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(TreasuryKey(token), bz)
	return nil
}

// DeferredBurnGet returns the buy-and-burn accumulator for token that
// has not yet been routed through a native-token pool (spec.md §4.5).
func (k Keeper) DeferredBurnGet(ctx context.Context, token types.TokenID) math.Uint {
	bz := k.getStore(ctx).Get(TreasuryBurnKey(token))
	if bz == nil {
		return math.ZeroUint()
	}
	var amt math.Uint
	if err := amt.Unmarshal(bz); err != nil {
		panic(err)
	}
	return amt
}

// DeferredBurnAdd credits amount to the deferred buy-and-burn
// accumulator for token.
func (k Keeper) DeferredBurnAdd(ctx context.Context, token types.TokenID, amount math.Uint) error {
	total := k.DeferredBurnGet(ctx, token).Add(amount)
	bz, err := total.Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(TreasuryBurnKey(token), bz)
	return nil
}
