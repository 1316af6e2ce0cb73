package types

import (
	"cosmossdk.io/math"
)

// TokenID identifies a fungible token on the ledger. Fresh ids are
// assigned monotonically by the ledger's create_new_token/next_token_id
// (§4.3); the core never invents one itself except at pool creation,
// where it asks the ledger to mint the liquidity token.
type TokenID = uint32

// Pool is the assembled view of an unordered token pair: the two
// directed reserve entries the store actually holds (I1), plus the
// liquidity token id minted at creation. It is not itself a store
// record: the store holds the reserves under PoolKey(A,B) and
// PoolKey(B,A).
type Pool struct {
	TokenA           TokenID
	TokenB           TokenID
	ReserveA         math.Uint
	ReserveB         math.Uint
	LiquidityTokenID TokenID
}
