// Package ammmath implements the constant-product AMM's pure price and
// share arithmetic (spec component A). Every function here is a pure
// function of its inputs: no store access, no ledger calls, no events.
//
// All intermediate products use github.com/holiman/uint256's fixed,
// stack-allocated 256-bit integer — never math/big's heap-allocated
// big.Int — so a reserve and an amount that each fit in 128 bits can be
// multiplied together (and, where the formula calls for it, by a small
// constant on top) without overflow and without heap churn.
package ammmath

import (
	"cosmossdk.io/math"
	"github.com/holiman/uint256"

	"github.com/coreswap/xyk/x/xyk/types"
)

func toU256(v math.Uint) *uint256.Int {
	u, overflow := uint256.FromBig(v.BigInt())
	if overflow {
		panic("ammmath: balance does not fit in 256 bits")
	}
	return u
}

func fromU256(v *uint256.Int) math.Uint {
	return math.NewUintFromBigInt(v.ToBig())
}

// SellPrice computes the amount received for selling sellAmount into a
// pool with the given reserves, charging the 997/1000 fee on input.
//
//	input_with_fee = sell_amount * 997
//	numerator      = input_with_fee * out_reserve
//	denominator    = in_reserve * 1000 + input_with_fee
//	bought         = numerator / denominator
func SellPrice(inReserve, outReserve, sellAmount math.Uint) (math.Uint, error) {
	in, out, sell := toU256(inReserve), toU256(outReserve), toU256(sellAmount)

	inputWithFee := new(uint256.Int).Mul(sell, uint256.NewInt(types.SwapFeeNumerator))
	numerator := new(uint256.Int).Mul(inputWithFee, out)

	denominator := new(uint256.Int).Mul(in, uint256.NewInt(types.SwapFeeDenominator))
	denominator.Add(denominator, inputWithFee)

	if denominator.IsZero() {
		return math.ZeroUint(), types.ErrDivisionByZero
	}

	bought := new(uint256.Int).Div(numerator, denominator)
	return fromU256(bought), nil
}

// SellPriceNoFee is SellPrice with the 997/1000 factor replaced by 1/1.
// Used exclusively by settlement to convert fee proceeds into the
// native token without charging a second fee on top of the one already
// taken from the trader.
func SellPriceNoFee(inReserve, outReserve, sellAmount math.Uint) (math.Uint, error) {
	in, out, sell := toU256(inReserve), toU256(outReserve), toU256(sellAmount)

	numerator := new(uint256.Int).Mul(sell, out)
	denominator := new(uint256.Int).Add(in, sell)

	if denominator.IsZero() {
		return math.ZeroUint(), types.ErrDivisionByZero
	}

	bought := new(uint256.Int).Div(numerator, denominator)
	return fromU256(bought), nil
}

// BuyPrice computes the amount that must be sold to receive exactly
// buyAmount out of a pool with the given reserves. The caller must
// ensure buyAmount < outReserve; BuyPrice does not re-check it.
//
//	numerator    = in_reserve * buy_amount * 1000
//	denominator  = (out_reserve - buy_amount) * 997
//	sold         = numerator / denominator + 1
//
// The +1 rounds up so that k never decreases across the integer
// boundary (spec.md §4.1, P4).
func BuyPrice(inReserve, outReserve, buyAmount math.Uint) (math.Uint, error) {
	in, out, buy := toU256(inReserve), toU256(outReserve), toU256(buyAmount)

	numerator := new(uint256.Int).Mul(in, buy)
	numerator.Mul(numerator, uint256.NewInt(types.SwapFeeDenominator))

	diff := new(uint256.Int).Sub(out, buy)
	denominator := new(uint256.Int).Mul(diff, uint256.NewInt(types.SwapFeeNumerator))

	if denominator.IsZero() {
		return math.ZeroUint(), types.ErrDivisionByZero
	}

	sold := new(uint256.Int).Div(numerator, denominator)
	sold.AddUint64(sold, 1)
	return fromU256(sold), nil
}

// ValuateLiquidityToken converts liquidityAmount liquidity-token units
// into the equivalent amount of the native-token side of that pair,
// proportional to the native reserve's share of total issuance.
func ValuateLiquidityToken(nativeReserve, liquidityTokenIssuance, liquidityAmount math.Uint) (math.Uint, error) {
	if liquidityTokenIssuance.IsZero() {
		return math.ZeroUint(), types.ErrDivisionByZero
	}
	n, issuance, amt := toU256(nativeReserve), toU256(liquidityTokenIssuance), toU256(liquidityAmount)
	result := new(uint256.Int).Mul(n, amt)
	result.Div(result, issuance)
	return fromU256(result), nil
}

// ScaleLiquidityByNativeValuation scales liquidityAmount so that its
// native-token valuation matches nativeAmount (rounded down), given the
// unscaled pair's current native valuation nativeValuation. Used to
// convert a native-denominated bid into liquidity-token units at the
// pool's present price.
func ScaleLiquidityByNativeValuation(nativeValuation, liquidityAmount, nativeAmount math.Uint) math.Uint {
	if nativeValuation.IsZero() {
		return math.ZeroUint()
	}
	valuation, amt, native := toU256(nativeValuation), toU256(liquidityAmount), toU256(nativeAmount)
	result := new(uint256.Int).Mul(amt, native)
	result.Div(result, valuation)
	return fromU256(result)
}

// BurnAmount computes the pair of reserve amounts a burn of burnShares
// (out of totalShares) is owed. Truncating; dust remains in the pool
// and raises the per-share value of what's left.
func BurnAmount(reserveA, reserveB, totalShares, burnShares math.Uint) (outA, outB math.Uint, err error) {
	if totalShares.IsZero() {
		return math.ZeroUint(), math.ZeroUint(), types.ErrDivisionByZero
	}
	total := toU256(totalShares)
	burn := toU256(burnShares)

	a := new(uint256.Int).Mul(toU256(reserveA), burn)
	a.Div(a, total)

	b := new(uint256.Int).Mul(toU256(reserveB), burn)
	b.Div(b, total)

	return fromU256(a), fromU256(b), nil
}

// MintQuote is the read-only counterpart of MintComputation: given a
// target liquidity share amount instead of a first-asset amount, it
// returns the pair of reserve amounts that many shares currently cost.
// Both amounts round up, matching the source pallet's
// get_tokens_required_for_minting (itself marked unverified there —
// carried over verbatim rather than independently re-derived).
func MintQuote(reserveA, reserveB, totalShares, liquidityAmount math.Uint) (amountA, amountB math.Uint, err error) {
	if totalShares.IsZero() {
		return math.ZeroUint(), math.ZeroUint(), types.ErrDivisionByZero
	}
	rA, rB, total, shares := toU256(reserveA), toU256(reserveB), toU256(totalShares), toU256(liquidityAmount)

	a := new(uint256.Int).Mul(shares, rA)
	a.Div(a, total)
	a.AddUint64(a, 1)

	b := new(uint256.Int).Mul(shares, rB)
	b.Div(b, total)
	b.AddUint64(b, 1)

	return fromU256(a), fromU256(b), nil
}

// MintComputation computes the second-asset amount a mint of amountA
// requires, and the shares it mints. The rounding asymmetry — up for
// the required second amount, down for minted shares — is deliberate:
// the pool is never underfunded, and the minter never receives more
// shares than their contribution is proportionally worth.
func MintComputation(reserveA, reserveB, totalShares, amountA math.Uint) (requiredAmountB, mintedShares math.Uint, err error) {
	if reserveA.IsZero() {
		return math.ZeroUint(), math.ZeroUint(), types.ErrDivisionByZero
	}
	rA, rB, total, a := toU256(reserveA), toU256(reserveB), toU256(totalShares), toU256(amountA)

	requiredB := new(uint256.Int).Mul(a, rB)
	requiredB.Div(requiredB, rA)
	requiredB.AddUint64(requiredB, 1)

	minted := new(uint256.Int).Mul(a, total)
	minted.Div(minted, rA)

	return fromU256(requiredB), fromU256(minted), nil
}
