package ports

import (
	"context"

	"github.com/bnema/currency-gateway/internal/domain"
)

type Notifier interface {
	SendBalance(ctx context.Context, session domain.Session, balance int32, description string) error
	SendAlert(ctx context.Context, session domain.Session, text string) error
	SendInstantMessage(ctx context.Context, session domain.Session, msg domain.InstantMessage) error
}
