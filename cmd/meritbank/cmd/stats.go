package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/merit-guild/meritbank/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show circulating supply and per-account holdings",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

var oneHundred = decimal.NewFromInt(100)

func runStats(cmd *cobra.Command, args []string) error {
	l, err := bankStore().Load(cmd.Context())
	if err != nil {
		return err
	}

	supply := stats.Compute(l)
	fmt.Printf("circulating supply: %d merits\n\n", supply.Circulating)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tBALANCE\tSHARE")
	for _, a := range supply.Accounts {
		fmt.Fprintf(w, "%s\t%d\t%s%%\n", a.Account, a.Balance, a.Share.Mul(oneHundred).StringFixed(2))
	}
	return w.Flush()
}
