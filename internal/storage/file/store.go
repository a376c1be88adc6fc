// Package file persists the ledger as the two bank documents:
// balances.json (object mapping account to integer balance) and
// transactions.json (array of records in ascending id order).
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/merit-guild/meritbank/internal/interfaces"
	"github.com/merit-guild/meritbank/internal/models"
)

const (
	balancesFile     = "balances.json"
	transactionsFile = "transactions.json"
)

// Store reads and writes ledger snapshots under a single bank directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// BalancesPath returns the path of the balances document.
func (s *Store) BalancesPath() string { return filepath.Join(s.dir, balancesFile) }

// TransactionsPath returns the path of the transaction log document.
func (s *Store) TransactionsPath() string { return filepath.Join(s.dir, transactionsFile) }

// Load reads both documents and builds the ledger.
func (s *Store) Load(ctx context.Context) (*models.Ledger, error) {
	var balances map[string]int64
	if err := readJSON(s.BalancesPath(), &balances); err != nil {
		return nil, fmt.Errorf("load balances: %w", err)
	}

	var transactions []models.Transaction
	if err := readJSON(s.TransactionsPath(), &transactions); err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	return models.NewLedger(balances, transactions), nil
}

// Save persists the full snapshot. Both documents are staged as temp
// files in the bank directory first and then renamed into place, so a
// crash mid-write never leaves a half-written document behind.
func (s *Store) Save(ctx context.Context, l *models.Ledger) error {
	balancesTmp, err := stageJSON(s.dir, balancesFile, l.Balances)
	if err != nil {
		return fmt.Errorf("stage balances: %w", err)
	}
	defer os.Remove(balancesTmp)

	transactions := l.Transactions
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	transactionsTmp, err := stageJSON(s.dir, transactionsFile, transactions)
	if err != nil {
		return fmt.Errorf("stage transactions: %w", err)
	}
	defer os.Remove(transactionsTmp)

	if err := os.Rename(balancesTmp, s.BalancesPath()); err != nil {
		return fmt.Errorf("save balances: %w", err)
	}
	if err := os.Rename(transactionsTmp, s.TransactionsPath()); err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	return nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func stageJSON(dir, name string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return tmp.Name(), err
	}
	if err := tmp.Close(); err != nil {
		return tmp.Name(), err
	}
	return tmp.Name(), nil
}

var _ interfaces.SnapshotStore = (*Store)(nil)
