package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Transaction is a single appended record in the merit ledger.
// Hash is a content fingerprint of the record's own fields; it is not
// chained to the previous record.
type Transaction struct {
	ID     int64     `json:"id"`
	Hash   string    `json:"hash"`
	Date   time.Time `json:"date"`
	From   string    `json:"from"`
	To     string    `json:"to"`
	Amount int64     `json:"amount"`
	Reason string    `json:"reason"`
}

// ComputeHash returns the hex SHA-256 fingerprint of the transaction
// fields, excluding Hash itself. The date is rendered as RFC3339Nano in
// UTC, which is also how it round-trips through JSON, so a reloaded
// record recomputes to the same digest.
func (tx Transaction) ComputeHash() string {
	input := fmt.Sprintf("%d:%s:%s:%s:%d:%s",
		tx.ID, tx.Date.UTC().Format(time.RFC3339Nano), tx.From, tx.To, tx.Amount, tx.Reason)
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
