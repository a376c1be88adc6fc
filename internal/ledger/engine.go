package ledger

import (
	"fmt"
	"time"

	"github.com/merit-guild/meritbank/internal/models"
)

// Engine appends transactions to a ledger under the currency invariants.
// It mutates the ledger it is handed; persistence stays at the caller's
// boundary so the engine is testable without filesystem side effects.
type Engine struct {
	now func() time.Time
}

// NewEngine returns an engine stamping transactions with wall-clock time.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithClock returns an engine with an injected clock.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Transfer moves amount merits from one account to another and appends
// the record to the log. Preconditions are checked in order and the
// first failure wins; on any error the ledger is left untouched.
//
// The emission account is exempt from the funds check: it is the only
// account allowed to go arbitrarily negative, its balance being the
// negative of total issuance.
func (e *Engine) Transfer(l *models.Ledger, from, to string, amount int64, reason string) (models.Transaction, error) {
	if amount <= 0 {
		return models.Transaction{}, fmt.Errorf("%w (got %d)", ErrAmountInvalid, amount)
	}
	balance, ok := l.Balances[from]
	if !ok {
		return models.Transaction{}, fmt.Errorf("account %q: %w", from, ErrAccountNotFound)
	}
	if l.RoleOf(from) != models.RoleEmission && balance-amount < 0 {
		return models.Transaction{}, fmt.Errorf("account %q has %d, needs %d: %w", from, balance, amount, ErrInsufficientFunds)
	}

	tx := models.Transaction{
		ID:     l.NextID(),
		Date:   e.now().UTC(),
		From:   from,
		To:     to,
		Amount: amount,
		Reason: reason,
	}
	tx.Hash = tx.ComputeHash()

	// Balance effect and append happen together; no error path exists
	// past this point, so the call is all-or-nothing.
	l.Debit(from, amount)
	l.Credit(to, amount)
	l.Transactions = append(l.Transactions, tx)

	return tx, nil
}

// Emit issues new currency: a transfer from emission to treasury.
func (e *Engine) Emit(l *models.Ledger, amount int64, reason string) (models.Transaction, error) {
	return e.Transfer(l, models.EmissionAccount, models.TreasuryAccount, amount, reason)
}
