package local

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
)

const DefaultInitialBalance int32 = 2000

// Ledger keeps balances in process memory. Nothing survives a restart.
type Ledger struct {
	mu       sync.Mutex
	balances map[domain.AccountID]int32
	initial  int32
}

var _ ports.Ledger = (*Ledger)(nil)

func NewLedger(initialBalance int32) *Ledger {
	if initialBalance <= 0 {
		initialBalance = DefaultInitialBalance
	}

	return &Ledger{
		balances: make(map[domain.AccountID]int32),
		initial:  initialBalance,
	}
}

func (l *Ledger) Name() string {
	return "local"
}

func (l *Ledger) Login(ctx context.Context, session domain.Session) (int32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.seedLocked(session.AccountID), nil
}

func (l *Ledger) Logout(ctx context.Context, _ domain.Session) error {
	return ctx.Err()
}

func (l *Ledger) QueryBalance(ctx context.Context, session domain.Session) (int32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance, ok := l.balances[session.AccountID]
	if !ok {
		return 0, fmt.Errorf("local balance for %s: %w", session.AccountID, domain.ErrAccountNotFound)
	}

	return balance, nil
}

// Transfer re-checks the source balance under the table lock.
func (l *Ledger) Transfer(ctx context.Context, transfer domain.Transfer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if transfer.Amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if transfer.Receiver.IsZero() {
		return fmt.Errorf("local transfer receiver: %w", domain.ErrInvalidRequest)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	source := transfer.Sender.AccountID
	balance, ok := l.balances[source]
	if !ok {
		return fmt.Errorf("local transfer source %s: %w", source, domain.ErrAccountNotFound)
	}
	if balance < transfer.Amount {
		return fmt.Errorf("local transfer from %s: %w", source, domain.ErrInsufficientFunds)
	}
	if source == transfer.Receiver {
		return nil
	}

	l.seedLocked(transfer.Receiver)
	l.balances[source] -= transfer.Amount
	l.balances[transfer.Receiver] += transfer.Amount

	return nil
}

func (l *Ledger) Charge(ctx context.Context, charge domain.Charge) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if charge.Amount <= 0 {
		return domain.ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	payer := charge.Payer.AccountID
	balance, ok := l.balances[payer]
	if !ok {
		return fmt.Errorf("local charge payer %s: %w", payer, domain.ErrAccountNotFound)
	}
	if balance < charge.Amount {
		return fmt.Errorf("local charge %s: %w", payer, domain.ErrInsufficientFunds)
	}

	l.balances[payer] -= charge.Amount

	return nil
}

func (l *Ledger) Balances() []domain.Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	accounts := make([]domain.Account, 0, len(l.balances))
	for id, balance := range l.balances {
		accounts = append(accounts, domain.Account{ID: id, Balance: balance})
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ID < accounts[j].ID
	})

	return accounts
}

func (l *Ledger) seedLocked(id domain.AccountID) int32 {
	balance, ok := l.balances[id]
	if !ok {
		balance = l.initial
		l.balances[id] = balance
	}
	return balance
}
