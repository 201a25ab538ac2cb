package application

import (
	"time"

	"github.com/bnema/currency-gateway/internal/domain"
)

type BalanceEntry struct {
	AccountID domain.AccountID
	Balance   int32
	OK        bool
}

type BalanceReport struct {
	Source     string
	Entries    []BalanceEntry
	CapturedAt time.Time
}
