package keeper

import (
	"encoding/binary"

	"github.com/coreswap/xyk/x/xyk/types"
)

func encodeTokenID(id types.TokenID) []byte {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, id)
	return bz
}

// PoolKey returns the store key for one directed side of a pool: it holds
// tokenIn's reserve in the (tokenIn, tokenOut) pool. The unordered pair
// {A,B} is therefore stored as two directed entries, (A,B) and (B,A)
// (spec.md §4.2, I1).
func PoolKey(tokenIn, tokenOut types.TokenID) []byte {
	key := make([]byte, 0, len(types.PoolKeyPrefix)+8)
	key = append(key, types.PoolKeyPrefix...)
	key = append(key, encodeTokenID(tokenIn)...)
	key = append(key, encodeTokenID(tokenOut)...)
	return key
}

// LiquidityAssetKey returns the store key mapping an unordered token pair
// to its liquidity token id. Callers must pass tokens in the order the
// pool was created with; GetLiquidityAsset tries both orderings.
func LiquidityAssetKey(tokenA, tokenB types.TokenID) []byte {
	key := make([]byte, 0, len(types.LiquidityAssetKeyPrefix)+8)
	key = append(key, types.LiquidityAssetKeyPrefix...)
	key = append(key, encodeTokenID(tokenA)...)
	key = append(key, encodeTokenID(tokenB)...)
	return key
}

// LiquidityPoolKey returns the store key mapping a liquidity token id back
// to the pair it represents.
func LiquidityPoolKey(liquidityTokenID types.TokenID) []byte {
	key := make([]byte, 0, len(types.LiquidityPoolKeyPrefix)+4)
	key = append(key, types.LiquidityPoolKeyPrefix...)
	key = append(key, encodeTokenID(liquidityTokenID)...)
	return key
}

// TreasuryKey returns the store key for the treasury's accumulated
// balance of token.
func TreasuryKey(token types.TokenID) []byte {
	key := make([]byte, 0, len(types.TreasuryKeyPrefix)+4)
	key = append(key, types.TreasuryKeyPrefix...)
	key = append(key, encodeTokenID(token)...)
	return key
}

// TreasuryBurnKey returns the store key for the deferred buy-and-burn
// accumulator of token, used when a swap's sold/bought pair has no
// one-hop route to the native token (spec.md §4.5).
func TreasuryBurnKey(token types.TokenID) []byte {
	key := make([]byte, 0, len(types.TreasuryBurnKeyPrefix)+4)
	key = append(key, types.TreasuryBurnKeyPrefix...)
	key = append(key, encodeTokenID(token)...)
	return key
}
