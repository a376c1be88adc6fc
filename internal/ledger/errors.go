package ledger

import "errors"

// Engine errors. Each aborts the single operation in progress with no
// partial mutation; callers match them with errors.Is.
var (
	ErrAmountInvalid     = errors.New("amount must be positive")
	ErrAccountNotFound   = errors.New("account does not exist")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
