// Package reward pays out the fixed bounty for a resolved issue. It is
// a thin convenience over the transaction engine and adds no invariants
// of its own.
package reward

import (
	"fmt"

	"github.com/merit-guild/meritbank/internal/ledger"
	"github.com/merit-guild/meritbank/internal/models"
)

// Amount is the fixed payout for a resolved issue, in merits.
const Amount = 10

// Issue rewards the author of a resolved issue from the treasury. The
// author must already hold an account; engine errors (for example an
// underfunded treasury) pass through unchanged.
func Issue(e *ledger.Engine, l *models.Ledger, author string, issueNumber, prNumber int) (models.Transaction, error) {
	if _, ok := l.Balances[author]; !ok {
		return models.Transaction{}, fmt.Errorf("account %q: %w", author, ledger.ErrAccountNotFound)
	}
	reason := fmt.Sprintf("Reward for issue #%d (PR #%d)", issueNumber, prNumber)
	return e.Transfer(l, models.TreasuryAccount, author, Amount, reason)
}
