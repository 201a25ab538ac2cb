package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
)

// Events is an in-process world event bus. Handlers run synchronously on the
// emitting goroutine in subscription order.
type Events struct {
	mu             sync.RWMutex
	newClient      []ports.NewClientHandler
	clientClosed   []ports.ClientClosedHandler
	moneyTransfer  []ports.MoneyTransferHandler
	validateLand   []ports.LandBuyHandler
	landBuy        []ports.LandBuyHandler
	objectBuy      []ports.ObjectBuyHandler
	balanceRequest []ports.BalanceRequestHandler
}

var _ ports.WorldEvents = (*Events)(nil)

func NewEvents() *Events {
	return &Events{}
}

func (e *Events) OnNewClient(h ports.NewClientHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.newClient = append(e.newClient, h)
}

func (e *Events) OnClientClosed(h ports.ClientClosedHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clientClosed = append(e.clientClosed, h)
}

func (e *Events) OnMoneyTransfer(h ports.MoneyTransferHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moneyTransfer = append(e.moneyTransfer, h)
}

func (e *Events) OnValidateLandBuy(h ports.LandBuyHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.validateLand = append(e.validateLand, h)
}

func (e *Events) OnLandBuy(h ports.LandBuyHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.landBuy = append(e.landBuy, h)
}

func (e *Events) OnObjectBuy(h ports.ObjectBuyHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.objectBuy = append(e.objectBuy, h)
}

func (e *Events) OnBalanceRequest(h ports.BalanceRequestHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.balanceRequest = append(e.balanceRequest, h)
}

func (e *Events) NewClient(ctx context.Context, session domain.Session) {
	e.mu.RLock()
	handlers := append([]ports.NewClientHandler(nil), e.newClient...)
	e.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, session)
	}
}

func (e *Events) ClientClosed(ctx context.Context, id domain.AccountID) {
	e.mu.RLock()
	handlers := append([]ports.ClientClosedHandler(nil), e.clientClosed...)
	e.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, id)
	}
}

func (e *Events) MoneyTransfer(ctx context.Context, event ports.MoneyTransferEvent) error {
	e.mu.RLock()
	handlers := append([]ports.MoneyTransferHandler(nil), e.moneyTransfer...)
	e.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		errs = append(errs, h(ctx, event))
	}
	return errors.Join(errs...)
}

func (e *Events) ValidateLandBuy(ctx context.Context, buy *domain.LandBuy) error {
	e.mu.RLock()
	handlers := append([]ports.LandBuyHandler(nil), e.validateLand...)
	e.mu.RUnlock()

	return runLandHandlers(ctx, handlers, buy)
}

func (e *Events) LandBuy(ctx context.Context, buy *domain.LandBuy) error {
	e.mu.RLock()
	handlers := append([]ports.LandBuyHandler(nil), e.landBuy...)
	e.mu.RUnlock()

	return runLandHandlers(ctx, handlers, buy)
}

func (e *Events) ObjectBuy(ctx context.Context, event ports.ObjectBuyEvent) error {
	e.mu.RLock()
	handlers := append([]ports.ObjectBuyHandler(nil), e.objectBuy...)
	e.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		errs = append(errs, h(ctx, event))
	}
	return errors.Join(errs...)
}

func (e *Events) BalanceRequest(ctx context.Context, id domain.AccountID, sessionID string) {
	e.mu.RLock()
	handlers := append([]ports.BalanceRequestHandler(nil), e.balanceRequest...)
	e.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, id, sessionID)
	}
}

func runLandHandlers(ctx context.Context, handlers []ports.LandBuyHandler, buy *domain.LandBuy) error {
	var errs []error
	for _, h := range handlers {
		errs = append(errs, h(ctx, buy))
	}
	return errors.Join(errs...)
}
