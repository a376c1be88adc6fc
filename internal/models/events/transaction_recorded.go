package events

import "time"

// TransactionRecorded is published after a transaction has been
// accepted and persisted.
type TransactionRecorded struct {
	EventID       string    `json:"event_id"`
	TransactionID int64     `json:"transaction_id"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Amount        int64     `json:"amount"`
	Reason        string    `json:"reason"`
	OccurredAt    time.Time `json:"occurred_at"`
}
