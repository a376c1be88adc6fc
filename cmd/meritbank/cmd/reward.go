package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/merit-guild/meritbank/internal/ledger"
	"github.com/merit-guild/meritbank/internal/reward"
)

var rewardCmd = &cobra.Command{
	Use:   "reward <author> <issue_number> <pr_number>",
	Short: "Pay the fixed reward for a resolved issue",
	Args:  cobra.ExactArgs(3),
	RunE:  runReward,
}

func init() {
	rootCmd.AddCommand(rewardCmd)
}

func runReward(cmd *cobra.Command, args []string) error {
	author := args[0]
	issueNumber, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("issue_number must be a number: %q", args[1])
	}
	prNumber, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("pr_number must be a number: %q", args[2])
	}

	ctx := cmd.Context()
	store := bankStore()

	l, err := store.Load(ctx)
	if err != nil {
		return err
	}

	tx, err := reward.Issue(ledger.NewEngine(), l, author, issueNumber, prNumber)
	if err != nil {
		return err
	}

	if err := recordTransaction(ctx, store, l, tx); err != nil {
		return err
	}
	return printTransaction(tx)
}
