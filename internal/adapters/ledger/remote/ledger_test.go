package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bnema/currency-gateway/internal/adapters/rpc/moneyserver"
	"github.com/bnema/currency-gateway/internal/adapters/rpc/xmlrpc"
	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeMoneyServer struct {
	mu      sync.Mutex
	calls   map[string][]xmlrpc.Struct
	replies map[string]xmlrpc.Struct
}

func newFakeMoneyServer(t *testing.T) (*fakeMoneyServer, string) {
	t.Helper()

	fake := &fakeMoneyServer{
		calls:   map[string][]xmlrpc.Struct{},
		replies: map[string]xmlrpc.Struct{},
	}

	srv := xmlrpc.NewServer(nil)
	for _, method := range []string{
		moneyserver.MethodClientLogin,
		moneyserver.MethodClientLogout,
		moneyserver.MethodGetBalance,
		moneyserver.MethodTransferMoney,
		moneyserver.MethodPayMoneyCharge,
	} {
		srv.Register(method, func(_ context.Context, params []any) (any, error) {
			fake.mu.Lock()
			defer fake.mu.Unlock()

			members, _ := params[0].(xmlrpc.Struct)
			fake.calls[method] = append(fake.calls[method], members)
			if reply, ok := fake.replies[method]; ok {
				return reply, nil
			}
			return xmlrpc.Struct{"success": true}, nil
		})
	}

	httpSrv := httptest.NewServer(srv)
	t.Cleanup(httpSrv.Close)

	return fake, httpSrv.URL
}

func (f *fakeMoneyServer) reply(method string, fields xmlrpc.Struct) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[method] = fields
}

func (f *fakeMoneyServer) lastCall(t *testing.T, method string) xmlrpc.Struct {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	calls := f.calls[method]
	require.NotEmpty(t, calls, "no %s call recorded", method)
	return calls[len(calls)-1]
}

func noLookup(_ context.Context, host string) ([]string, error) {
	return nil, errors.New("no dns in tests")
}

func testSession() domain.Session {
	return domain.Session{
		AccountID:       "11111111-1111-1111-1111-111111111111",
		SessionID:       "22222222-2222-2222-2222-222222222222",
		SecureSessionID: "33333333-3333-3333-3333-333333333333",
		UserName:        "Ada Lovelace",
		Region: domain.Region{
			Handle:    1099511628032000,
			ServerURI: "http://sim.example.org:9000/",
			HTTPPort:  9010,
		},
	}
}

func TestLoginSendsIdentityAndReturnsBalance(t *testing.T) {
	t.Parallel()

	fake, url := newFakeMoneyServer(t)
	fake.reply(moneyserver.MethodClientLogin, xmlrpc.Struct{"success": true, "clientBalance": 1234})

	ledger := NewLedger(moneyserver.NewClient(url, time.Second, nil), "http://users.example.org:8002", WithLookupHost(noLookup))

	balance, err := ledger.Login(context.Background(), testSession())
	require.NoError(t, err)
	assert.Equal(t, int32(1234), balance)

	call := fake.lastCall(t, moneyserver.MethodClientLogin)
	assert.Equal(t, "users.example.org", call["userServIP"])
	assert.Equal(t, "http://sim.example.org:9010/", call["openSimServIP"])
	assert.Equal(t, "Ada Lovelace", call["userName"])
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", call["clientUUID"])
	assert.Equal(t, "22222222-2222-2222-2222-222222222222", call["clientSessionID"])
	assert.Equal(t, "33333333-3333-3333-3333-333333333333", call["clientSecureSessionID"])
}

func TestTransferEncodesWireFields(t *testing.T) {
	t.Parallel()

	fake, url := newFakeMoneyServer(t)
	users := mocks.NewMockUserDirectory(t)
	users.EXPECT().IsLocalUser(mock.Anything, domain.AccountID("11111111-1111-1111-1111-111111111111")).Return(true)
	users.EXPECT().IsLocalUser(mock.Anything, domain.AccountID("44444444-4444-4444-4444-444444444444")).Return(false)
	users.EXPECT().HomeURI(mock.Anything, domain.AccountID("44444444-4444-4444-4444-444444444444")).Return("http://visitor.example.net:8002/", nil)

	lookup := func(_ context.Context, host string) ([]string, error) {
		if host == "visitor.example.net" {
			return []string{"203.0.113.7"}, nil
		}
		return nil, errors.New("unknown host")
	}

	ledger := NewLedger(moneyserver.NewClient(url, time.Second, nil), "http://users.example.org:8002",
		WithUserDirectory(users), WithLookupHost(lookup))

	err := ledger.Transfer(context.Background(), domain.Transfer{
		Sender:        testSession(),
		Receiver:      "44444444-4444-4444-4444-444444444444",
		Amount:        75,
		Kind:          domain.KindPayObject,
		CorrelationID: "55555555-5555-5555-5555-555555555555",
		RegionHandle:  1099511628032000,
		Description:   "Object Buy",
	})
	require.NoError(t, err)

	call := fake.lastCall(t, moneyserver.MethodTransferMoney)
	assert.Equal(t, "users.example.org", call["senderUserServIP"])
	assert.Equal(t, "203.0.113.7", call["receiverUserServIP"])
	assert.Equal(t, int64(5008), call["transactionType"])
	assert.Equal(t, int64(75), call["amount"])
	assert.Equal(t, "1099511628032000", call["regionHandle"])
	assert.Equal(t, "55555555-5555-5555-5555-555555555555", call["localID"])
	assert.Equal(t, "Object Buy", call["description"])
}

func TestTransferWithoutReceiverNeverCalls(t *testing.T) {
	t.Parallel()

	fake, url := newFakeMoneyServer(t)
	ledger := NewLedger(moneyserver.NewClient(url, time.Second, nil), "http://users.example.org:8002", WithLookupHost(noLookup))

	err := ledger.Transfer(context.Background(), domain.Transfer{Sender: testSession(), Amount: 75, Kind: domain.KindGift})
	require.ErrorIs(t, err, domain.ErrInvalidRequest)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Empty(t, fake.calls[moneyserver.MethodTransferMoney])
}

func TestChargeEncodesWireFields(t *testing.T) {
	t.Parallel()

	fake, url := newFakeMoneyServer(t)
	ledger := NewLedger(moneyserver.NewClient(url, time.Second, nil), "", WithLookupHost(noLookup))

	err := ledger.Charge(context.Background(), domain.Charge{
		Payer:        testSession(),
		Amount:       10,
		Kind:         domain.KindUploadCharge,
		RegionHandle: 42,
		Description:  "texture upload",
	})
	require.NoError(t, err)

	call := fake.lastCall(t, moneyserver.MethodPayMoneyCharge)
	assert.Equal(t, int64(1101), call["transactionType"])
	assert.Equal(t, int64(10), call["amount"])
	assert.Equal(t, "42", call["regionHandle"])
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", call["senderID"])
}

func TestFailuresAreLedgerUnavailable(t *testing.T) {
	t.Parallel()

	fake, url := newFakeMoneyServer(t)
	fake.reply(moneyserver.MethodGetBalance, xmlrpc.Struct{"success": false, "errorMessage": "no such user"})
	fake.reply(moneyserver.MethodTransferMoney, xmlrpc.Struct{"note": "success key missing"})
	fake.reply(moneyserver.MethodClientLogin, xmlrpc.Struct{"success": true})

	ledger := NewLedger(moneyserver.NewClient(url, time.Second, nil), "", WithLookupHost(noLookup))
	ctx := context.Background()

	_, err := ledger.QueryBalance(ctx, testSession())
	require.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	assert.Contains(t, err.Error(), "no such user")

	err = ledger.Transfer(ctx, domain.Transfer{Sender: testSession(), Receiver: "b", Amount: 1, Kind: domain.KindGift})
	require.ErrorIs(t, err, domain.ErrLedgerUnavailable)

	_, err = ledger.Login(ctx, testSession())
	require.ErrorIs(t, err, domain.ErrLedgerUnavailable, "login without clientBalance is malformed")
}

func TestTransportFailureMatchesRejectedReply(t *testing.T) {
	t.Parallel()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(down.Close)

	fake, url := newFakeMoneyServer(t)
	fake.reply(moneyserver.MethodTransferMoney, xmlrpc.Struct{"success": false})

	transfer := domain.Transfer{Sender: testSession(), Receiver: "b", Amount: 1, Kind: domain.KindGift}

	errDown := NewLedger(moneyserver.NewClient(down.URL, time.Second, nil), "").Transfer(context.Background(), transfer)
	errRejected := NewLedger(moneyserver.NewClient(url, time.Second, nil), "").Transfer(context.Background(), transfer)

	require.ErrorIs(t, errDown, domain.ErrLedgerUnavailable)
	require.ErrorIs(t, errRejected, domain.ErrLedgerUnavailable)
}
