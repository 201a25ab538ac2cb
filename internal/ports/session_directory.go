package ports

import (
	"context"

	"github.com/bnema/currency-gateway/internal/domain"
)

type SessionDirectory interface {
	ResolveSession(ctx context.Context, id domain.AccountID) (domain.Session, error)
	Validate(ctx context.Context, id domain.AccountID, sessionID, secureSessionID string) bool
}
