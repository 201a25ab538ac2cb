package local

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(id string) domain.Session {
	return domain.Session{AccountID: domain.AccountID(id), SessionID: "s-" + id, SecureSessionID: "x-" + id}
}

func TestLoginSeedsInitialBalanceOnce(t *testing.T) {
	t.Parallel()

	ledger := NewLedger(0)
	ctx := context.Background()

	balance, err := ledger.Login(ctx, session("a"))
	require.NoError(t, err)
	assert.Equal(t, DefaultInitialBalance, balance)
	assert.Equal(t, int32(2000), balance)

	require.NoError(t, ledger.Charge(ctx, domain.Charge{Payer: session("a"), Amount: 100}))

	balance, err = ledger.Login(ctx, session("a"))
	require.NoError(t, err)
	assert.Equal(t, int32(1900), balance)
}

func TestQueryBalanceUnknownAccount(t *testing.T) {
	t.Parallel()

	_, err := NewLedger(0).QueryBalance(context.Background(), session("ghost"))
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestTransferMovesFundsAndSeedsReceiver(t *testing.T) {
	t.Parallel()

	ledger := NewLedger(0)
	ctx := context.Background()
	_, err := ledger.Login(ctx, session("a"))
	require.NoError(t, err)

	require.NoError(t, ledger.Transfer(ctx, domain.Transfer{Sender: session("a"), Receiver: "b", Amount: 300, Kind: domain.KindGift}))

	a, err := ledger.QueryBalance(ctx, session("a"))
	require.NoError(t, err)
	b, err := ledger.QueryBalance(ctx, session("b"))
	require.NoError(t, err)
	assert.Equal(t, int32(1700), a)
	assert.Equal(t, int32(2300), b)
	assert.Equal(t, int32(4000), a+b)
}

func TestTransferRequiresKnownSource(t *testing.T) {
	t.Parallel()

	err := NewLedger(0).Transfer(context.Background(), domain.Transfer{Sender: session("a"), Receiver: "b", Amount: 1})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestTransferRefusesMissingReceiver(t *testing.T) {
	t.Parallel()

	ledger := NewLedger(0)
	ctx := context.Background()
	_, err := ledger.Login(ctx, session("a"))
	require.NoError(t, err)

	err = ledger.Transfer(ctx, domain.Transfer{Sender: session("a"), Amount: 300, Kind: domain.KindGift})
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Equal(t, []domain.Account{{ID: "a", Balance: 2000}}, ledger.Balances())
}

func TestTransferRejectsOverdraftAndBadAmounts(t *testing.T) {
	t.Parallel()

	ledger := NewLedger(100)
	ctx := context.Background()
	_, err := ledger.Login(ctx, session("a"))
	require.NoError(t, err)

	err = ledger.Transfer(ctx, domain.Transfer{Sender: session("a"), Receiver: "b", Amount: 101})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	err = ledger.Transfer(ctx, domain.Transfer{Sender: session("a"), Receiver: "b", Amount: 0})
	require.ErrorIs(t, err, domain.ErrInvalidRequest)

	err = ledger.Charge(ctx, domain.Charge{Payer: session("a"), Amount: 101})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	assert.Equal(t, []domain.Account{{ID: "a", Balance: 100}}, ledger.Balances())
}

func TestConcurrentTransfersNeverOverdraw(t *testing.T) {
	t.Parallel()

	ledger := NewLedger(1000)
	ctx := context.Background()
	_, err := ledger.Login(ctx, session("a"))
	require.NoError(t, err)

	var applied atomic.Int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ledger.Transfer(ctx, domain.Transfer{Sender: session("a"), Receiver: "b", Amount: 100}) == nil {
				applied.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), applied.Load())
	a, err := ledger.QueryBalance(ctx, session("a"))
	require.NoError(t, err)
	assert.Zero(t, a)
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLedger(0).Login(ctx, session("a"))
	require.ErrorIs(t, err, context.Canceled)
}
