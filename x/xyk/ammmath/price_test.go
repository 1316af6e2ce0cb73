package ammmath_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/coreswap/xyk/x/xyk/ammmath"
	"github.com/coreswap/xyk/x/xyk/types"
)

func u(v uint64) math.Uint { return math.NewUint(v) }

func TestSellPrice(t *testing.T) {
	// Scenario 1 from spec.md §8: 1_000_000 / 1_000_000 reserves, sell 10_000.
	out, err := ammmath.SellPrice(u(1_000_000), u(1_000_000), u(10_000))
	require.NoError(t, err)
	require.Equal(t, u(9_871), out)
}

func TestSellPriceDivisionByZero(t *testing.T) {
	_, err := ammmath.SellPrice(u(0), u(0), u(100))
	require.ErrorIs(t, err, types.ErrDivisionByZero)
}

func TestBuyPriceRoundsUp(t *testing.T) {
	// Buying back less than the full reserve always costs at least 1 unit,
	// and the +1 rounding must never under-charge (P4).
	sold, err := ammmath.BuyPrice(u(1_000_000), u(1_000_000), u(9_871))
	require.NoError(t, err)
	require.True(t, sold.GTE(u(10_000)))
}

func TestBurnAmountProportional(t *testing.T) {
	// Scenario 5 from spec.md §8.
	outA, outB, err := ammmath.BurnAmount(u(10000), u(20000), u(30000), u(3000))
	require.NoError(t, err)
	require.Equal(t, u(1000), outA)
	require.Equal(t, u(2000), outB)
}

func TestBurnAmountToZero(t *testing.T) {
	// Scenario 6: burning all shares returns the full reserves.
	outA, outB, err := ammmath.BurnAmount(u(100), u(200), u(300), u(300))
	require.NoError(t, err)
	require.Equal(t, u(100), outA)
	require.Equal(t, u(200), outB)
}

func TestMintComputation(t *testing.T) {
	// Scenario 4 from spec.md §8.
	requiredB, minted, err := ammmath.MintComputation(u(9000), u(18000), u(27000), u(1000))
	require.NoError(t, err)
	require.Equal(t, u(2001), requiredB)
	require.Equal(t, u(3000), minted)
}

func TestMintComputationDivisionByZero(t *testing.T) {
	_, _, err := ammmath.MintComputation(u(0), u(100), u(100), u(10))
	require.Error(t, err)
}

func TestSellPriceNoFeeMatchesRatio(t *testing.T) {
	out, err := ammmath.SellPriceNoFee(u(1_000_000), u(2_000_000), u(1000))
	require.NoError(t, err)
	// no fee: out = sell*outReserve/(inReserve+sell)
	require.Equal(t, u(1998), out)
}

// P3: selling in and immediately selling the proceeds back never returns
// more than what was originally sold — no risk-free round trip within a
// single block, ignoring settlement's separate fee skim.
func TestNoRiskFreeRoundTrip(t *testing.T) {
	reserveIn, reserveOut := u(500_000), u(500_000)
	soldAmt := u(25_000)

	bought, err := ammmath.SellPrice(reserveIn, reserveOut, soldAmt)
	require.NoError(t, err)

	newIn := reserveIn.Add(soldAmt)
	newOut := reserveOut.Sub(bought)

	roundTrip, err := ammmath.SellPrice(newOut, newIn, bought)
	require.NoError(t, err)
	require.True(t, roundTrip.LTE(soldAmt))
}
