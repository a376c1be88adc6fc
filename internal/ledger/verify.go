package ledger

import (
	"fmt"

	"github.com/merit-guild/meritbank/internal/models"
)

// Verify audits a single ledger snapshot for internal consistency and
// returns every problem found, never just the first one:
//
//   - transaction ids form the exact sequence 1..n with no gaps,
//   - every record's hash recomputes to its stored value,
//   - the global balance invariants hold.
//
// An empty result means the snapshot is sound.
func Verify(l *models.Ledger) []string {
	var problems []string

	for i, tx := range l.Transactions {
		want := int64(i) + 1
		if tx.ID != want {
			problems = append(problems, fmt.Sprintf("tx at position %d: id %d breaks the sequence (expected %d)", i, tx.ID, want))
		}
		if computed := tx.ComputeHash(); computed != tx.Hash {
			problems = append(problems, fmt.Sprintf("tx %d: hash does not match its contents", tx.ID))
		}
		if tx.Amount <= 0 {
			problems = append(problems, fmt.Sprintf("tx %d: amount must be positive (%d)", tx.ID, tx.Amount))
		}
	}

	problems = append(problems, l.InvariantViolations()...)
	return problems
}
