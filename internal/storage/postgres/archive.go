// Package postgres mirrors accepted operations into a relational
// archive. The bank documents remain the source of truth; the archive
// exists for reporting and audit queries.
package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/merit-guild/meritbank/internal/models"
)

// Archive records transactions and the balances they produced.
type Archive struct {
	db *sql.DB
}

// Open connects to the archive database.
func Open(url string) (*Archive, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

// NewArchive wraps an existing connection.
func NewArchive(db *sql.DB) *Archive {
	return &Archive{db: db}
}

// Close releases the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

// EnsureSchema creates the archive tables if they do not exist yet.
func (a *Archive) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id           BIGINT PRIMARY KEY,
	hash         TEXT NOT NULL,
	date         TIMESTAMPTZ NOT NULL,
	from_account TEXT NOT NULL,
	to_account   TEXT NOT NULL,
	amount       BIGINT NOT NULL,
	reason       TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS balances (
	account TEXT PRIMARY KEY,
	balance BIGINT NOT NULL
);`
	_, err := a.db.ExecContext(ctx, schema)
	return err
}

// Record stores one transaction and the post-operation balances of its
// two endpoints inside a single database transaction.
func (a *Archive) Record(ctx context.Context, tx models.Transaction, balances map[string]int64) (err error) {
	dbTx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	const insertTx = `INSERT INTO transactions (id, hash, date, from_account, to_account, amount, reason)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO NOTHING`
	if _, err = dbTx.ExecContext(ctx, insertTx, tx.ID, tx.Hash, tx.Date, tx.From, tx.To, tx.Amount, tx.Reason); err != nil {
		return err
	}

	const upsertBalance = `INSERT INTO balances (account, balance) VALUES ($1, $2)
	ON CONFLICT (account) DO UPDATE SET balance = EXCLUDED.balance`
	for _, account := range []string{tx.From, tx.To} {
		if _, err = dbTx.ExecContext(ctx, upsertBalance, account, balances[account]); err != nil {
			return err
		}
	}

	return dbTx.Commit()
}
