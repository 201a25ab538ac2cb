package gateway

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bnema/currency-gateway/internal/adapters/rpc/moneyserver"
	"github.com/bnema/currency-gateway/internal/adapters/rpc/simulator"
	"github.com/bnema/currency-gateway/internal/adapters/rpc/xmlrpc"
	"github.com/bnema/currency-gateway/internal/adapters/world/memory"
	"github.com/bnema/currency-gateway/internal/config"
	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	alice domain.AccountID = "11111111-1111-4111-8111-111111111111"
	bob   domain.AccountID = "22222222-2222-4222-8222-222222222222"
)

func sessionFor(id domain.AccountID) domain.Session {
	return domain.Session{
		AccountID:       id,
		SessionID:       "sid-" + string(id),
		SecureSessionID: "ssid-" + string(id),
		Region:          domain.Region{Handle: 7, ServerURI: "http://sim.example.org:9000/", HTTPPort: 9000},
	}
}

func credentials(id domain.AccountID) xmlrpc.Struct {
	s := sessionFor(id)
	return xmlrpc.Struct{
		"clientUUID":            string(id),
		"clientSessionID":       s.SessionID,
		"clientSecureSessionID": s.SecureSessionID,
	}
}

func syncDispatch(fn func()) { fn() }

func startGateway(t *testing.T, cfg config.Config, opts ...Option) (*Gateway, *xmlrpc.Client) {
	t.Helper()

	gw, err := New(cfg, append([]Option{WithDispatch(syncDispatch)}, opts...)...)
	require.NoError(t, err)

	srv := httptest.NewServer(gw.Handler())
	t.Cleanup(srv.Close)

	return gw, xmlrpc.NewClient(srv.URL+cfg.Server.RPCPath, 5*time.Second)
}

func call(t *testing.T, client *xmlrpc.Client, method string, params xmlrpc.Struct) xmlrpc.Struct {
	t.Helper()

	result, err := client.Call(context.Background(), method, params)
	require.NoError(t, err)
	fields, ok := result.(xmlrpc.Struct)
	require.True(t, ok)
	return fields
}

func TestDisabledModuleRefusesToStart(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Economy.Module = "SomeOtherMoneyModule"

	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestLocalGatewayAnswersInboundCalls(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gw, client := startGateway(t, config.Default())
	require.Equal(t, "local", gw.Ledger().Name())
	require.NoError(t, gw.World().Connect(ctx, sessionFor(alice)))

	fields := call(t, client, moneyserver.MethodGetBalance, credentials(alice))
	assert.Equal(t, true, fields["success"])
	assert.EqualValues(t, 2000, fields["balance"])

	forged := credentials(alice)
	forged["clientSecureSessionID"] = "forged"
	fields = call(t, client, moneyserver.MethodGetBalance, forged)
	assert.Equal(t, false, fields["success"])
	assert.EqualValues(t, -1, fields["balance"])

	update := credentials(alice)
	update["Balance"] = 1234
	fields = call(t, client, moneyserver.MethodUpdateBalance, update)
	assert.Equal(t, true, fields["success"])

	deliveries := gw.Outbox().For(alice)
	require.NotEmpty(t, deliveries)
	assert.Equal(t, int32(1234), deliveries[len(deliveries)-1].Balance)
}

func TestGatewayUsesSuppliedPorts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sessions := memory.NewDirectory()
	events := memory.NewEvents()
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().SendBalance(mock.Anything, sessionFor(alice), int32(2000), "").Return(nil).Once()

	gw, client := startGateway(t, config.Default(),
		WithSessions(sessions),
		WithEvents(events),
		WithNotifier(notifier),
	)
	assert.Nil(t, gw.Outbox())
	assert.Nil(t, gw.simulator)
	assert.Equal(t, notifier, gw.Notifier())

	require.NoError(t, sessions.Add(sessionFor(alice)))
	events.NewClient(ctx, sessionFor(alice))

	fields := call(t, client, moneyserver.MethodGetBalance, credentials(alice))
	assert.Equal(t, true, fields["success"])
	assert.EqualValues(t, 2000, fields["balance"])

	_, err := gw.World().Sessions.ResolveSession(ctx, alice)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestObjectPaidReachesSubscribers(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var paid []domain.ObjectPaid
	gw, client := startGateway(t, config.Default(), WithObjectPaid(func(_ context.Context, p domain.ObjectPaid) {
		mu.Lock()
		defer mu.Unlock()
		paid = append(paid, p)
	}))
	require.NoError(t, gw.World().Connect(context.Background(), sessionFor(alice)))

	s := sessionFor(alice)
	fields := call(t, client, moneyserver.MethodOnMoneyTransfered, xmlrpc.Struct{
		"senderID":              string(alice),
		"receiverID":            string(bob),
		"senderSessionID":       s.SessionID,
		"senderSecureSessionID": s.SecureSessionID,
		"localID":               "tipjar",
		"transactionType":       int(domain.KindPayObject),
		"amount":                25,
	})
	assert.Equal(t, true, fields["success"])

	mu.Lock()
	assert.Equal(t, []domain.ObjectPaid{{ObjectID: "tipjar", Payer: alice, Amount: 25}}, paid)
	mu.Unlock()

	queued := gw.Outbox().For(alice)
	require.NotEmpty(t, queued)
	last := queued[len(queued)-1]
	assert.Equal(t, memory.DeliveryPayment, last.Kind)
	assert.Equal(t, int32(25), last.Payment.Amount)
}

func TestSimulatorEndpointDrivesWorld(t *testing.T) {
	t.Parallel()

	gw, err := New(config.Default(), WithDispatch(syncDispatch))
	require.NoError(t, err)
	srv := httptest.NewServer(gw.Handler())
	t.Cleanup(srv.Close)

	sim := xmlrpc.NewClient(srv.URL+config.DefaultSimulatorPath, 5*time.Second)
	rpc := xmlrpc.NewClient(srv.URL+config.DefaultRPCPath, 5*time.Second)

	s := sessionFor(alice)
	fields := call(t, sim, simulator.MethodClientConnected, xmlrpc.Struct{
		"agentID":         string(alice),
		"sessionID":       s.SessionID,
		"secureSessionID": s.SecureSessionID,
		"regionHandle":    7,
		"regionServerURI": s.Region.ServerURI,
		"httpPort":        s.Region.HTTPPort,
	})
	require.Equal(t, true, fields["success"])

	fields = call(t, rpc, moneyserver.MethodGetBalance, credentials(alice))
	assert.EqualValues(t, 2000, fields["balance"])

	fields = call(t, sim, simulator.MethodNotifications, xmlrpc.Struct{"agentID": string(alice)})
	items, ok := fields["notifications"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Empty(t, gw.Outbox().For(alice))
}

func TestSimulatorEndpointCanBeDisabled(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Server.RPCPath = "/rpc"
	cfg.Server.SimulatorPath = ""
	gw, err := New(cfg)
	require.NoError(t, err)
	assert.Nil(t, gw.simulator)

	srv := httptest.NewServer(gw.Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+config.DefaultSimulatorPath, "text/xml", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

type moneyServerStub struct {
	mu    sync.Mutex
	calls []string
}

func (m *moneyServerStub) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, method)
}

func (m *moneyServerStub) methods() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func TestRemoteGatewayForwardsToMoneyServer(t *testing.T) {
	t.Parallel()

	stub := &moneyServerStub{}
	money := xmlrpc.NewServer(nil)
	money.Register(moneyserver.MethodClientLogin, func(context.Context, []any) (any, error) {
		stub.record(moneyserver.MethodClientLogin)
		return xmlrpc.Struct{"success": true, "clientBalance": 900}, nil
	})
	money.Register(moneyserver.MethodGetBalance, func(context.Context, []any) (any, error) {
		stub.record(moneyserver.MethodGetBalance)
		return xmlrpc.Struct{"success": true, "clientBalance": 900}, nil
	})
	money.Register(moneyserver.MethodTransferMoney, func(context.Context, []any) (any, error) {
		stub.record(moneyserver.MethodTransferMoney)
		return xmlrpc.Struct{"success": true}, nil
	})
	moneySrv := httptest.NewServer(money)
	t.Cleanup(moneySrv.Close)

	cfg := config.Default()
	cfg.Economy.CurrencyServer = moneySrv.URL
	cfg.Economy.UserServerURL = "http://users.example.org:8002/"

	ctx := context.Background()
	world := memory.NewWorld()
	gw, _ := startGateway(t, cfg,
		WithWorld(world),
		WithLookupHost(func(context.Context, string) ([]string, error) { return nil, errors.New("offline") }),
	)
	require.Equal(t, "remote", gw.Ledger().Name())

	require.NoError(t, world.Connect(ctx, sessionFor(alice)))
	require.NoError(t, world.Connect(ctx, sessionFor(bob)))

	err := gw.Coordinator().Transfer(ctx, domain.Transaction{Source: alice, Destination: bob, Amount: 100, Kind: domain.KindGift})
	require.NoError(t, err)

	assert.Contains(t, stub.methods(), moneyserver.MethodClientLogin)
	assert.Contains(t, stub.methods(), moneyserver.MethodTransferMoney)

	err = gw.Coordinator().Transfer(ctx, domain.Transaction{Source: alice, Destination: bob, Amount: 901, Kind: domain.KindGift})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestServeStopsWithContext(t *testing.T) {
	t.Parallel()

	gw, err := New(config.Default())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gw.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + config.DefaultMetricsPath)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("gateway did not stop")
	}
}
