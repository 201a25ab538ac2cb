package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnresolvedTarget  = errors.New("unresolved target")
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	ErrInvalidRequest    = errors.New("invalid request")

	ErrInvalidAmount = fmt.Errorf("amount must be positive: %w", ErrInvalidRequest)
	ErrPriceMismatch = fmt.Errorf("sale price mismatch: %w", ErrInvalidRequest)
)
