package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/merit-guild/meritbank/internal/policy"
	"github.com/merit-guild/meritbank/internal/storage/file"
)

var (
	checkBaseDir     string
	checkProposedDir string
	checkAuthor      string
)

var checkCmd = &cobra.Command{
	Use:   "check [changedFile...]",
	Short: "Validate a proposed ledger state against the trusted base",
	Long: `check compares the proposed bank documents against the base ones,
classifies every newly introduced transaction and applies the
governance rules plus the global balance invariants. All violations are
reported, one per line; any violation makes the exit status non-zero.`,
	Example: `  meritbank check --base bank-base --proposed bank-pr --author alice laws/emission-2024.md`,
	RunE:    runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkBaseDir, "base", "", "directory with the trusted base documents")
	checkCmd.Flags().StringVar(&checkProposedDir, "proposed", "", "directory with the proposed documents")
	checkCmd.Flags().StringVar(&checkAuthor, "author", "", "identity of the change's author")
	checkCmd.MarkFlagRequired("base")
	checkCmd.MarkFlagRequired("proposed")
	checkCmd.MarkFlagRequired("author")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	base, err := file.NewStore(checkBaseDir).Load(ctx)
	if err != nil {
		return err
	}
	proposed, err := file.NewStore(checkProposedDir).Load(ctx)
	if err != nil {
		return err
	}

	report := policy.NewValidator(policy.DefaultRules()).Validate(base, proposed, checkAuthor, args)
	if !report.Accepted {
		fmt.Fprintln(os.Stderr, "bank validation failed:")
		for _, v := range report.Violations {
			fmt.Fprintf(os.Stderr, "  - %s\n", v)
		}
		os.Exit(1)
	}

	fmt.Println("bank validation passed")
	return nil
}
