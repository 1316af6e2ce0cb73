package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coreswap/xyk/x/xyk/client/cli"
)

func runQuery(t *testing.T, use string, flagArgs ...string) string {
	t.Helper()
	cmd := cli.GetQueryCmd()
	cmd.SetArgs(append([]string{use}, flagArgs...))

	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestCmdSellPrice(t *testing.T) {
	out := runQuery(t, "sell-price",
		"--reserve-in", "1000000", "--reserve-out", "1000000", "--amount", "10000")
	require.Equal(t, "9871\n", out)
}

func TestCmdBuyPrice(t *testing.T) {
	out := runQuery(t, "buy-price",
		"--reserve-in", "1000000", "--reserve-out", "1000000", "--amount", "9871")
	require.Contains(t, out, "\n")
}

func TestCmdMintQuote(t *testing.T) {
	out := runQuery(t, "mint-quote",
		"--reserve-in", "1000000", "--reserve-out", "2000000",
		"--total-shares", "1000000", "--amount", "1000")
	require.Contains(t, out, "first_asset_amount:")
	require.Contains(t, out, "second_asset_amount:")
}

func TestCmdBurnAmount(t *testing.T) {
	out := runQuery(t, "burn-amount",
		"--reserve-in", "1000000", "--reserve-out", "1000000",
		"--total-shares", "1000000", "--amount", "1000")
	require.Contains(t, out, "first_asset_amount:")
	require.Contains(t, out, "second_asset_amount:")
}
