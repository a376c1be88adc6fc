package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/merit-guild/meritbank/internal/ledger"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Audit the bank documents for internal consistency",
	Long: `verify checks the configured bank's transaction log (gap-free id
sequence, content hashes) and balance invariants. All problems are
reported, one per line; any problem makes the exit status non-zero.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	l, err := bankStore().Load(cmd.Context())
	if err != nil {
		return err
	}

	problems := ledger.Verify(l)
	if len(problems) > 0 {
		fmt.Fprintln(os.Stderr, "ledger audit failed:")
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "  - %s\n", p)
		}
		os.Exit(1)
	}

	fmt.Println("ledger audit passed")
	return nil
}
