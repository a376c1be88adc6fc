package cmd

import (
	"github.com/spf13/cobra"

	"github.com/merit-guild/meritbank/internal/ledger"
)

var (
	transferFrom   string
	transferTo     string
	transferAmount int64
	transferReason string
)

var transferCmd = &cobra.Command{
	Use:     "transfer",
	Short:   "Transfer merits between accounts",
	Example: `  meritbank transfer --from alice --to bob --amount 50 --reason "Payment"`,
	Args:    cobra.NoArgs,
	RunE:    runTransfer,
}

func init() {
	transferCmd.Flags().StringVar(&transferFrom, "from", "", "source account")
	transferCmd.Flags().StringVar(&transferTo, "to", "", "destination account")
	transferCmd.Flags().Int64Var(&transferAmount, "amount", 0, "amount of merits")
	transferCmd.Flags().StringVar(&transferReason, "reason", "", "reason for the transaction")
	transferCmd.MarkFlagRequired("from")
	transferCmd.MarkFlagRequired("to")
	transferCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(transferCmd)
}

func runTransfer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store := bankStore()

	l, err := store.Load(ctx)
	if err != nil {
		return err
	}

	tx, err := ledger.NewEngine().Transfer(l, transferFrom, transferTo, transferAmount, transferReason)
	if err != nil {
		return err
	}

	if err := recordTransaction(ctx, store, l, tx); err != nil {
		return err
	}
	return printTransaction(tx)
}
