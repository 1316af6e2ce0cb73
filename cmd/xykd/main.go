// Command xykd is a read-only calculator CLI for the xyk constant-product
// AMM core. It has no node-start, keys, or tx-signing surface: signing and
// broadcast belong to the dispatch layer the xyk core is embedded behind,
// which spec.md places out of scope (see DESIGN.md).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	xykcli "github.com/coreswap/xyk/x/xyk/client/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xykd",
		Short: "Read-only price and share quotes for the xyk constant-product AMM core",
	}

	queryCmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Querying subcommands",
	}
	queryCmd.AddCommand(xykcli.GetQueryCmd())
	rootCmd.AddCommand(queryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
