package ports

import (
	"context"

	"github.com/bnema/currency-gateway/internal/domain"
)

type Ledger interface {
	Name() string
	Login(ctx context.Context, session domain.Session) (int32, error)
	Logout(ctx context.Context, session domain.Session) error
	QueryBalance(ctx context.Context, session domain.Session) (int32, error)
	Transfer(ctx context.Context, transfer domain.Transfer) error
	Charge(ctx context.Context, charge domain.Charge) error
}
