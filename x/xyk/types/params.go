package types

// Fee parameters are compile-time constants — spec.md's Non-goals
// explicitly exclude governance of fee parameters, unlike x/dex's
// Params, which are governable. Expressed the same way the source
// pallet expresses them: integer numerator/denominator pairs, never
// floating point, so every swap computation stays exact.
const (
	// SwapFeeNumerator/SwapFeeDenominator implement the "997/1000" rule:
	// a swap's input is charged a 3/1000 (0.3%) fee before the
	// constant-product formula is applied.
	SwapFeeNumerator   = 997
	SwapFeeDenominator = 1000

	// TreasuryFeeBps and BuyAndBurnFeeBps are basis points (of 10000)
	// taken from a swap's sold_amt during settlement (§4.5).
	TreasuryFeeBps    = 5
	BuyAndBurnFeeBps  = 5
	FeeBpsDenominator = 10000
)
