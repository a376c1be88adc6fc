package cmd

import (
	"github.com/spf13/cobra"

	"github.com/merit-guild/meritbank/internal/ledger"
)

var (
	emitAmount int64
	emitReason string
)

var emitCmd = &cobra.Command{
	Use:     "emit",
	Short:   "Emit merits from emission to treasury",
	Example: `  meritbank emit --amount 1000 --reason "Regular emission (tick 42)"`,
	Args:    cobra.NoArgs,
	RunE:    runEmit,
}

func init() {
	emitCmd.Flags().Int64Var(&emitAmount, "amount", 0, "amount of merits")
	emitCmd.Flags().StringVar(&emitReason, "reason", "", "reason for the emission")
	emitCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(emitCmd)
}

func runEmit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store := bankStore()

	l, err := store.Load(ctx)
	if err != nil {
		return err
	}

	tx, err := ledger.NewEngine().Emit(l, emitAmount, emitReason)
	if err != nil {
		return err
	}

	if err := recordTransaction(ctx, store, l, tx); err != nil {
		return err
	}
	return printTransaction(tx)
}
