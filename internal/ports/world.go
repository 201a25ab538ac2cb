package ports

import (
	"context"

	"github.com/bnema/currency-gateway/internal/domain"
)

type ObjectLocator interface {
	FindObject(ctx context.Context, objectID string) (domain.SceneObject, error)
	FindObjectByLocalID(ctx context.Context, localID uint32) (domain.SceneObject, error)
}

type UserDirectory interface {
	IsLocalUser(ctx context.Context, id domain.AccountID) bool
	HomeURI(ctx context.Context, id domain.AccountID) (string, error)
	UserName(ctx context.Context, id domain.AccountID) (string, bool)
}

type ObjectSales interface {
	Deliver(ctx context.Context, buyer domain.Session, object domain.SceneObject, saleType int32) error
}

type MoneyTransferEvent struct {
	Sender      domain.AccountID
	Receiver    domain.AccountID
	Amount      int32
	Kind        domain.TransactionKind
	Description string
	RegionID    string
}

type ObjectBuyEvent struct {
	Buyer      domain.AccountID
	SessionID  string
	GroupID    string
	CategoryID string
	LocalID    uint32
	SaleType   int32
	SalePrice  int32
}

type NewClientHandler func(ctx context.Context, session domain.Session)
type ClientClosedHandler func(ctx context.Context, id domain.AccountID)
type MoneyTransferHandler func(ctx context.Context, event MoneyTransferEvent) error
type LandBuyHandler func(ctx context.Context, buy *domain.LandBuy) error
type ObjectBuyHandler func(ctx context.Context, event ObjectBuyEvent) error
type BalanceRequestHandler func(ctx context.Context, id domain.AccountID, sessionID string)

// WorldEvents is the subscription surface of the world engine.
type WorldEvents interface {
	OnNewClient(h NewClientHandler)
	OnClientClosed(h ClientClosedHandler)
	OnMoneyTransfer(h MoneyTransferHandler)
	OnValidateLandBuy(h LandBuyHandler)
	OnLandBuy(h LandBuyHandler)
	OnObjectBuy(h ObjectBuyHandler)
	OnBalanceRequest(h BalanceRequestHandler)
}
