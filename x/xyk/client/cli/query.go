package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/coreswap/xyk/x/xyk/ammmath"
	"github.com/coreswap/xyk/x/xyk/types"
)

// GetQueryCmd returns the cli query commands for the xyk module. Unlike
// x/dex's query commands, these don't dial a running node: the xyk core
// has no gRPC query service (see DESIGN.md), so the CLI quotes prices
// directly from reserves supplied on the command line, the same pure
// math the keeper runs against store state.
func GetQueryCmd() *cobra.Command {
	xykQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the xyk module",
		SuggestionsMinimumDistance: 2,
	}

	xykQueryCmd.AddCommand(
		GetCmdSellPrice(),
		GetCmdBuyPrice(),
		GetCmdMintQuote(),
		GetCmdBurnAmount(),
	)

	return xykQueryCmd
}

func mustUintFlag(cmd *cobra.Command, name string) (math.Uint, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return math.ZeroUint(), err
	}
	value, ok := math.NewIntFromString(raw)
	if !ok {
		return math.ZeroUint(), fmt.Errorf("invalid value %q for --%s", raw, name)
	}
	return math.NewUintFromBigInt(value.BigInt()), nil
}

// GetCmdSellPrice returns the command to quote a sell-exact-in trade.
func GetCmdSellPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sell-price",
		Short: "Quote the bought amount for a sell-exact-in trade",
		Long: `Quote the amount a sell-exact-in trade of --amount against the given
reserves would return, net of the pool's fixed fee.

Example:
  $ xykd query xyk sell-price --reserve-in 1000000 --reserve-out 1000000 --amount 10000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reserveIn, err := mustUintFlag(cmd, FlagReserveIn)
			if err != nil {
				return err
			}
			reserveOut, err := mustUintFlag(cmd, FlagReserveOut)
			if err != nil {
				return err
			}
			amount, err := mustUintFlag(cmd, FlagAmount)
			if err != nil {
				return err
			}

			bought, err := ammmath.SellPrice(reserveIn, reserveOut, amount)
			if err != nil {
				return err
			}
			cmd.Println(bought.String())
			return nil
		},
	}

	cmd.Flags().String(FlagReserveIn, "", "reserve of the sold asset")
	cmd.Flags().String(FlagReserveOut, "", "reserve of the bought asset")
	cmd.Flags().String(FlagAmount, "", "amount of the sold asset")
	return cmd
}

// GetCmdBuyPrice returns the command to quote a buy-exact-out trade.
func GetCmdBuyPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy-price",
		Short: "Quote the sold amount required for a buy-exact-out trade",
		Long: `Quote the amount of the sold asset a buy-exact-out trade would require to
receive exactly --amount of the bought asset against the given reserves.

Example:
  $ xykd query xyk buy-price --reserve-in 1000000 --reserve-out 1000000 --amount 9871`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reserveIn, err := mustUintFlag(cmd, FlagReserveIn)
			if err != nil {
				return err
			}
			reserveOut, err := mustUintFlag(cmd, FlagReserveOut)
			if err != nil {
				return err
			}
			amount, err := mustUintFlag(cmd, FlagAmount)
			if err != nil {
				return err
			}

			sold, err := ammmath.BuyPrice(reserveIn, reserveOut, amount)
			if err != nil {
				return err
			}
			cmd.Println(sold.String())
			return nil
		},
	}

	cmd.Flags().String(FlagReserveIn, "", "reserve of the sold asset")
	cmd.Flags().String(FlagReserveOut, "", "reserve of the bought asset")
	cmd.Flags().String(FlagAmount, "", "amount of the bought asset to receive")
	return cmd
}

// GetCmdMintQuote returns the command to quote both sides required to mint
// a given liquidity amount into an existing pool.
func GetCmdMintQuote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint-quote",
		Short: "Quote the reserve amounts required to mint --amount of liquidity shares",
		Long: `Quote the first and second asset amounts required to mint --amount of
liquidity shares into a pool with the given reserves and total share supply.

Example:
  $ xykd query xyk mint-quote --reserve-in 1000000 --reserve-out 2000000 --total-shares 1000000 --amount 1000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reserveA, err := mustUintFlag(cmd, FlagReserveIn)
			if err != nil {
				return err
			}
			reserveB, err := mustUintFlag(cmd, FlagReserveOut)
			if err != nil {
				return err
			}
			totalShares, err := mustUintFlag(cmd, FlagTotalShares)
			if err != nil {
				return err
			}
			amount, err := mustUintFlag(cmd, FlagAmount)
			if err != nil {
				return err
			}

			amountA, amountB, err := ammmath.MintQuote(reserveA, reserveB, totalShares, amount)
			if err != nil {
				return err
			}
			cmd.Println(fmt.Sprintf("first_asset_amount: %s\nsecond_asset_amount: %s", amountA, amountB))
			return nil
		},
	}

	cmd.Flags().String(FlagReserveIn, "", "reserve of the first asset")
	cmd.Flags().String(FlagReserveOut, "", "reserve of the second asset")
	cmd.Flags().String(FlagTotalShares, "", "current total liquidity share issuance")
	cmd.Flags().String(FlagAmount, "", "liquidity shares to mint")
	return cmd
}

// GetCmdBurnAmount returns the command to quote both reserve amounts
// returned by burning a given liquidity amount.
func GetCmdBurnAmount() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burn-amount",
		Short: "Quote the reserve amounts returned by burning --amount of liquidity shares",
		Long: `Quote the proportional share of both reserve sides that burning --amount
of liquidity shares would return, given the current reserves and total share supply.

Example:
  $ xykd query xyk burn-amount --reserve-in 1000000 --reserve-out 1000000 --total-shares 1000000 --amount 1000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reserveA, err := mustUintFlag(cmd, FlagReserveIn)
			if err != nil {
				return err
			}
			reserveB, err := mustUintFlag(cmd, FlagReserveOut)
			if err != nil {
				return err
			}
			totalShares, err := mustUintFlag(cmd, FlagTotalShares)
			if err != nil {
				return err
			}
			amount, err := mustUintFlag(cmd, FlagAmount)
			if err != nil {
				return err
			}

			outA, outB, err := ammmath.BurnAmount(reserveA, reserveB, totalShares, amount)
			if err != nil {
				return err
			}
			cmd.Println(fmt.Sprintf("first_asset_amount: %s\nsecond_asset_amount: %s", outA, outB))
			return nil
		},
	}

	cmd.Flags().String(FlagReserveIn, "", "reserve of the first asset")
	cmd.Flags().String(FlagReserveOut, "", "reserve of the second asset")
	cmd.Flags().String(FlagTotalShares, "", "current total liquidity share issuance")
	cmd.Flags().String(FlagAmount, "", "liquidity shares to burn")
	return cmd
}
