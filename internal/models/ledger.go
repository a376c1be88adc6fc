package models

import (
	"fmt"
	"sort"
)

// Well-known account identifiers. Roles are resolved once at ledger
// construction; all other code dispatches on Role, not on these strings.
const (
	EmissionAccount = "emission"
	TreasuryAccount = "treasury"
)

// Role classifies an account within the currency system.
type Role int

const (
	// RoleMember is an ordinary citizen account. Its balance must stay
	// non-negative.
	RoleMember Role = iota
	// RoleEmission is the conceptual source of all value. Its balance is
	// the negative of total issuance and must stay non-positive.
	RoleEmission
	// RoleTreasury is the distribution account. Its balance must stay
	// non-negative.
	RoleTreasury
)

func (r Role) String() string {
	switch r {
	case RoleEmission:
		return "emission"
	case RoleTreasury:
		return "treasury"
	default:
		return "member"
	}
}

// Ledger is the full state of the merit system: the balance map and the
// ordered transaction log. It is loaded wholesale, mutated in memory and
// persisted wholesale; no partial ledger is ever durable.
type Ledger struct {
	Balances     map[string]int64
	Transactions []Transaction

	roles map[string]Role
}

// NewLedger builds a ledger from a balance map and a transaction log,
// attaching a role to every known account. The input map is used as-is,
// not copied.
func NewLedger(balances map[string]int64, transactions []Transaction) *Ledger {
	if balances == nil {
		balances = make(map[string]int64)
	}
	l := &Ledger{
		Balances:     balances,
		Transactions: transactions,
		roles:        make(map[string]Role, len(balances)),
	}
	for account := range balances {
		l.roles[account] = resolveRole(account)
	}
	return l
}

func resolveRole(account string) Role {
	switch account {
	case EmissionAccount:
		return RoleEmission
	case TreasuryAccount:
		return RoleTreasury
	default:
		return RoleMember
	}
}

// RoleOf returns the role of an account. Accounts never seen before are
// members; the system accounts exist from genesis.
func (l *Ledger) RoleOf(account string) Role {
	if role, ok := l.roles[account]; ok {
		return role
	}
	return resolveRole(account)
}

// Credit adds amount to an account, creating it as a member at zero on
// first credit.
func (l *Ledger) Credit(account string, amount int64) {
	if _, ok := l.Balances[account]; !ok {
		l.roles[account] = resolveRole(account)
	}
	l.Balances[account] += amount
}

// Debit subtracts amount from an account. The account must already
// exist; the engine enforces that before calling.
func (l *Ledger) Debit(account string, amount int64) {
	l.Balances[account] -= amount
}

// NextID returns the id the next appended transaction must carry: 1 for
// an empty log, otherwise the last record's id plus one.
func (l *Ledger) NextID() int64 {
	if len(l.Transactions) == 0 {
		return 1
	}
	return l.Transactions[len(l.Transactions)-1].ID + 1
}

// MaxID returns the highest transaction id in the log, 0 if empty. It
// scans the whole log rather than trusting the last element, so a
// misordered log cannot hide records.
func (l *Ledger) MaxID() int64 {
	var max int64
	for _, tx := range l.Transactions {
		if tx.ID > max {
			max = tx.ID
		}
	}
	return max
}

// InvariantViolations checks the global balance invariants and returns
// one message per broken invariant, in deterministic order:
//
//   - the sum of all balances is zero (closed system),
//   - emission is never positive,
//   - treasury is never negative,
//   - no member account is negative.
//
// An empty result means the balance map is sound.
func (l *Ledger) InvariantViolations() []string {
	var violations []string

	var sum int64
	for _, balance := range l.Balances {
		sum += balance
	}
	if sum != 0 {
		violations = append(violations, fmt.Sprintf("sum of balances is not zero (%d)", sum))
	}

	accounts := make([]string, 0, len(l.Balances))
	for account := range l.Balances {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	for _, account := range accounts {
		balance := l.Balances[account]
		switch l.RoleOf(account) {
		case RoleEmission:
			if balance > 0 {
				violations = append(violations, fmt.Sprintf("emission balance must be <= 0 (%d)", balance))
			}
		case RoleTreasury:
			if balance < 0 {
				violations = append(violations, fmt.Sprintf("treasury balance must be >= 0 (%d)", balance))
			}
		default:
			if balance < 0 {
				violations = append(violations, fmt.Sprintf("account %q has negative balance (%d)", account, balance))
			}
		}
	}
	return violations
}
