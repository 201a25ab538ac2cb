package ports

import "github.com/bnema/currency-gateway/internal/domain"

type Metrics interface {
	TransactionApplied(ledger string, kind domain.TransactionKind)
	TransactionFailed(ledger string, kind domain.TransactionKind, reason string)
	PushHandled(method string, ok bool)
}

type NopMetrics struct{}

func (NopMetrics) TransactionApplied(string, domain.TransactionKind) {}
func (NopMetrics) TransactionFailed(string, domain.TransactionKind, string) {}
func (NopMetrics) PushHandled(string, bool) {}
