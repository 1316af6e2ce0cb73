package types

import (
	"cosmossdk.io/math"
)

// GenesisPoolEntry is one line of the genesis configuration described in
// spec.md §6: if ExpectedLiquidityTokenID already exists on the ledger,
// genesis performs a mint_liquidity; otherwise it verifies the ledger's
// next token id equals ExpectedLiquidityTokenID and performs a
// create_pool. A mismatch is a fatal startup assertion.
type GenesisPoolEntry struct {
	Account                  string
	TokenA                   TokenID
	AmountA                  math.Uint
	TokenB                   TokenID
	AmountB                  math.Uint
	ExpectedLiquidityTokenID TokenID
}

// GenesisState is the xyk module's genesis configuration: a list of
// pools to seed at startup. The core has no other persisted state worth
// serializing — treasury and deferred-burn accumulators start empty.
type GenesisState struct {
	Pools []GenesisPoolEntry
}

// DefaultGenesis returns the empty genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{Pools: []GenesisPoolEntry{}}
}

// Validate performs basic structural validation of the genesis
// configuration. It does not validate against ledger state (next token
// id, existing balances) — that happens during InitGenesis, which has
// access to the LedgerKeeper.
func (gs GenesisState) Validate() error {
	seenPairs := make(map[[2]TokenID]bool)
	seenLiquidityIDs := make(map[TokenID]bool)

	for i, e := range gs.Pools {
		if e.TokenA == e.TokenB {
			return ErrInvalidGenesis.Wrapf("entry %d: token_a and token_b must differ", i)
		}
		if e.AmountA.IsNil() || e.AmountA.IsZero() {
			return ErrInvalidGenesis.Wrapf("entry %d: amount_a must be positive", i)
		}
		if e.AmountB.IsNil() || e.AmountB.IsZero() {
			return ErrInvalidGenesis.Wrapf("entry %d: amount_b must be positive", i)
		}
		if e.Account == "" {
			return ErrInvalidGenesis.Wrapf("entry %d: empty account", i)
		}

		pair := orderedPair(e.TokenA, e.TokenB)
		if seenPairs[pair] {
			return ErrInvalidGenesis.Wrapf("entry %d: duplicate token pair (%d,%d)", i, e.TokenA, e.TokenB)
		}
		seenPairs[pair] = true

		if seenLiquidityIDs[e.ExpectedLiquidityTokenID] {
			return ErrInvalidGenesis.Wrapf("entry %d: duplicate expected_liquidity_token_id %d", i, e.ExpectedLiquidityTokenID)
		}
		seenLiquidityIDs[e.ExpectedLiquidityTokenID] = true
	}
	return nil
}

func orderedPair(a, b TokenID) [2]TokenID {
	if a < b {
		return [2]TokenID{a, b}
	}
	return [2]TokenID{b, a}
}
