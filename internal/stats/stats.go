// Package stats derives supply figures from a ledger snapshot.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/merit-guild/meritbank/internal/models"
)

// AccountStat is one holder's position.
type AccountStat struct {
	Account string
	Balance int64
	// Share is the fraction of circulating supply this account holds,
	// in [0, 1].
	Share decimal.Decimal
}

// Supply summarizes who holds the issued currency.
type Supply struct {
	// Circulating is total issuance, i.e. the negative of the emission
	// balance.
	Circulating int64
	// Accounts lists every non-emission account sorted by descending
	// balance, ties by name.
	Accounts []AccountStat
}

// Compute builds the supply summary for a ledger.
func Compute(l *models.Ledger) Supply {
	var s Supply

	for account, balance := range l.Balances {
		if l.RoleOf(account) == models.RoleEmission {
			s.Circulating = -balance
			continue
		}
		s.Accounts = append(s.Accounts, AccountStat{Account: account, Balance: balance})
	}

	circulating := decimal.NewFromInt(s.Circulating)
	for i := range s.Accounts {
		if s.Circulating == 0 {
			s.Accounts[i].Share = decimal.Zero
			continue
		}
		s.Accounts[i].Share = decimal.NewFromInt(s.Accounts[i].Balance).DivRound(circulating, 6)
	}

	sort.Slice(s.Accounts, func(i, j int) bool {
		if s.Accounts[i].Balance != s.Accounts[j].Balance {
			return s.Accounts[i].Balance > s.Accounts[j].Balance
		}
		return s.Accounts[i].Account < s.Accounts[j].Account
	})

	return s
}
