package moneyserver

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/currency-gateway/internal/adapters/rpc/xmlrpc"
	"github.com/bnema/currency-gateway/internal/application"
	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	clientUUID = "8c5d4a3e-1f2b-4c6d-9e8f-0a1b2c3d4e5f"
	otherUUID  = "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d"
)

type recordingPush struct {
	accept  bool
	balance int32

	updates   []application.UpdateBalanceCommand
	alerts    []application.UserAlertCommand
	links     []application.ConfirmLinkCommand
	transfers []application.MoneyTransferredCommand
	queries   []application.BalanceQueryCommand
}

func (p *recordingPush) UpdateBalance(_ context.Context, cmd application.UpdateBalanceCommand) bool {
	p.updates = append(p.updates, cmd)
	return p.accept
}

func (p *recordingPush) UserAlert(_ context.Context, cmd application.UserAlertCommand) bool {
	p.alerts = append(p.alerts, cmd)
	return p.accept
}

func (p *recordingPush) SendConfirmLink(_ context.Context, cmd application.ConfirmLinkCommand) bool {
	p.links = append(p.links, cmd)
	return p.accept
}

func (p *recordingPush) MoneyTransferred(_ context.Context, cmd application.MoneyTransferredCommand) bool {
	p.transfers = append(p.transfers, cmd)
	return p.accept
}

func (p *recordingPush) GetBalance(_ context.Context, cmd application.BalanceQueryCommand) (int32, bool) {
	p.queries = append(p.queries, cmd)
	if !p.accept {
		return -1, false
	}
	return p.balance, true
}

type recordingMetrics struct {
	push map[string][]bool
}

func (m *recordingMetrics) TransactionApplied(string, domain.TransactionKind) {}

func (m *recordingMetrics) TransactionFailed(string, domain.TransactionKind, string) {}

func (m *recordingMetrics) PushHandled(method string, ok bool) {
	if m.push == nil {
		m.push = map[string][]bool{}
	}
	m.push[method] = append(m.push[method], ok)
}

func newHandlerServer(t *testing.T, push PushService, metrics *recordingMetrics) *xmlrpc.Client {
	t.Helper()

	srv := xmlrpc.NewServer(nil)
	NewHandlers(push, metrics, nil).Register(srv)

	httpSrv := httptest.NewServer(srv)
	t.Cleanup(httpSrv.Close)

	return xmlrpc.NewClient(httpSrv.URL, 5*time.Second)
}

func callStruct(t *testing.T, client *xmlrpc.Client, method string, params ...any) xmlrpc.Struct {
	t.Helper()

	result, err := client.Call(context.Background(), method, params...)
	require.NoError(t, err)
	fields, ok := result.(xmlrpc.Struct)
	require.True(t, ok, "result is %T", result)
	return fields
}

func clientFields(extra xmlrpc.Struct) xmlrpc.Struct {
	fields := xmlrpc.Struct{
		"clientUUID":            clientUUID,
		"clientSessionID":       "sid",
		"clientSecureSessionID": "ssid",
	}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}

func TestHandlersRegisterInboundMethods(t *testing.T) {
	t.Parallel()

	srv := xmlrpc.NewServer(nil)
	NewHandlers(&recordingPush{}, nil, nil).Register(srv)

	assert.ElementsMatch(t, []string{
		MethodUpdateBalance,
		MethodUserAlert,
		MethodSendConfirmLink,
		MethodOnMoneyTransfered,
		MethodGetBalance,
	}, srv.Methods())
}

func TestUpdateBalanceParsesCredentials(t *testing.T) {
	t.Parallel()

	push := &recordingPush{accept: true}
	metrics := &recordingMetrics{}
	client := newHandlerServer(t, push, metrics)

	fields := callStruct(t, client, MethodUpdateBalance, clientFields(xmlrpc.Struct{"Balance": 1500}))

	assert.Equal(t, true, fields["success"])
	require.Len(t, push.updates, 1)
	assert.Equal(t, domain.AccountID(clientUUID), push.updates[0].AccountID)
	assert.Equal(t, "sid", push.updates[0].SessionID)
	assert.Equal(t, "ssid", push.updates[0].SecureSessionID)
	assert.Equal(t, int32(1500), push.updates[0].Balance)
	assert.Equal(t, []bool{true}, metrics.push[MethodUpdateBalance])
}

func TestRejectedPushReportsFailure(t *testing.T) {
	t.Parallel()

	push := &recordingPush{accept: false}
	client := newHandlerServer(t, push, &recordingMetrics{})

	fields := callStruct(t, client, MethodUserAlert, clientFields(xmlrpc.Struct{"Description": "low funds"}))

	assert.Equal(t, false, fields["success"])
	require.Len(t, push.alerts, 1)
	assert.Equal(t, "low funds", push.alerts[0].Description)
}

func TestMalformedPushNeverReachesService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		params []any
	}{
		{name: "no params", method: MethodUpdateBalance},
		{name: "not a struct", method: MethodUpdateBalance, params: []any{"hello"}},
		{name: "bad uuid", method: MethodUserAlert, params: []any{xmlrpc.Struct{
			"clientUUID": "not-a-uuid", "clientSessionID": "sid", "clientSecureSessionID": "ssid", "Description": "x",
		}}},
		{name: "missing secure session", method: MethodSendConfirmLink, params: []any{xmlrpc.Struct{
			"clientUUID": clientUUID, "clientSessionID": "sid", "URI": "http://confirm",
		}}},
		{name: "missing balance", method: MethodUpdateBalance, params: []any{clientFields(nil)}},
		{name: "missing uri", method: MethodSendConfirmLink, params: []any{clientFields(nil)}},
		{name: "missing amount", method: MethodOnMoneyTransfered, params: []any{xmlrpc.Struct{
			"senderID": clientUUID, "receiverID": otherUUID, "senderSessionID": "sid",
			"senderSecureSessionID": "ssid", "transactionType": 5008, "localID": "obj",
		}}},
		{name: "balance above int32", method: MethodUpdateBalance, params: []any{clientFields(xmlrpc.Struct{"Balance": int64(4294967301)})}},
		{name: "negative balance", method: MethodUpdateBalance, params: []any{clientFields(xmlrpc.Struct{"Balance": -50})}},
		{name: "amount above int32", method: MethodOnMoneyTransfered, params: []any{xmlrpc.Struct{
			"senderID": clientUUID, "receiverID": otherUUID, "senderSessionID": "sid",
			"senderSecureSessionID": "ssid", "transactionType": 5008, "localID": "obj", "amount": int64(4294967303),
		}}},
		{name: "negative amount", method: MethodOnMoneyTransfered, params: []any{xmlrpc.Struct{
			"senderID": clientUUID, "receiverID": otherUUID, "senderSessionID": "sid",
			"senderSecureSessionID": "ssid", "transactionType": 5008, "localID": "obj", "amount": -1,
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			push := &recordingPush{accept: true}
			metrics := &recordingMetrics{}
			client := newHandlerServer(t, push, metrics)

			fields := callStruct(t, client, tt.method, tt.params...)

			assert.Equal(t, false, fields["success"])
			assert.Empty(t, push.updates)
			assert.Empty(t, push.alerts)
			assert.Empty(t, push.links)
			assert.Empty(t, push.transfers)
			assert.Equal(t, []bool{false}, metrics.push[tt.method])
		})
	}
}

func TestOnMoneyTransferedParsesSenderAndKind(t *testing.T) {
	t.Parallel()

	push := &recordingPush{accept: true}
	client := newHandlerServer(t, push, &recordingMetrics{})

	fields := callStruct(t, client, MethodOnMoneyTransfered, xmlrpc.Struct{
		"senderID":              clientUUID,
		"receiverID":            otherUUID,
		"senderSessionID":       "sid",
		"senderSecureSessionID": "ssid",
		"transactionType":       5008,
		"localID":               "42",
		"amount":                25,
	})

	assert.Equal(t, true, fields["success"])
	require.Len(t, push.transfers, 1)
	got := push.transfers[0]
	assert.Equal(t, domain.AccountID(clientUUID), got.Sender.AccountID)
	assert.Equal(t, domain.AccountID(otherUUID), got.Receiver)
	assert.Equal(t, domain.KindPayObject, got.Kind)
	assert.Equal(t, "42", got.ObjectID)
	assert.Equal(t, int32(25), got.Amount)
}

func TestAmountKeepsInt32Range(t *testing.T) {
	t.Parallel()

	fields := xmlrpc.Struct{
		"max":      int64(math.MaxInt32),
		"over":     int64(math.MaxInt32) + 1,
		"wraps":    int64(4294967301),
		"negative": -50,
		"text":     "125",
	}

	n, ok := Amount(fields, "max")
	assert.True(t, ok)
	assert.Equal(t, int32(math.MaxInt32), n)

	n, ok = Amount(fields, "text")
	assert.True(t, ok)
	assert.Equal(t, int32(125), n)

	for _, key := range []string{"over", "wraps", "negative", "missing"} {
		_, ok := Amount(fields, key)
		assert.False(t, ok, key)
	}
}

func TestGetBalanceReturnsBalanceField(t *testing.T) {
	t.Parallel()

	push := &recordingPush{accept: true, balance: 750}
	client := newHandlerServer(t, push, &recordingMetrics{})

	fields := callStruct(t, client, MethodGetBalance, clientFields(nil))
	assert.Equal(t, true, fields["success"])
	assert.EqualValues(t, 750, fields["balance"])

	push.accept = false
	fields = callStruct(t, client, MethodGetBalance, clientFields(nil))
	assert.Equal(t, false, fields["success"])
	assert.EqualValues(t, -1, fields["balance"])

	fields = callStruct(t, client, MethodGetBalance, "garbage")
	assert.Equal(t, false, fields["success"])
	assert.EqualValues(t, -1, fields["balance"])
	assert.Len(t, push.queries, 2)
}

func TestClientFoldsFailuresIntoReply(t *testing.T) {
	t.Parallel()

	srv := xmlrpc.NewServer(nil)
	srv.Register(MethodGetBalance, func(context.Context, []any) (any, error) {
		return xmlrpc.Struct{"success": true, "clientBalance": 2000}, nil
	})
	srv.Register(MethodTransferMoney, func(context.Context, []any) (any, error) {
		return xmlrpc.Struct{"success": false}, nil
	})
	srv.Register(MethodPayMoneyCharge, func(context.Context, []any) (any, error) {
		return "not a struct", nil
	})
	srv.Register(MethodClientLogout, func(context.Context, []any) (any, error) {
		return nil, &xmlrpc.Fault{Code: 7, Message: "nope"}
	})
	httpSrv := httptest.NewServer(srv)
	t.Cleanup(httpSrv.Close)

	client := NewClient(httpSrv.URL, 5*time.Second, nil)
	params := xmlrpc.Struct{"clientUUID": clientUUID}
	ctx := context.Background()

	reply := client.Call(ctx, MethodGetBalance, params)
	assert.True(t, reply.Success())
	balance, ok := reply.ClientBalance()
	assert.True(t, ok)
	assert.Equal(t, int32(2000), balance)

	reply = client.Call(ctx, MethodTransferMoney, params)
	assert.False(t, reply.Success())
	assert.Equal(t, unavailableMessage, reply.ErrorMessage())
	assert.Equal(t, "", reply.ErrorURI())

	for _, method := range []string{MethodPayMoneyCharge, MethodClientLogout, MethodClientLogin} {
		reply = client.Call(ctx, method, params)
		assert.False(t, reply.Success(), method)
		assert.Equal(t, unavailableMessage, reply.ErrorMessage(), method)
	}

	reply = client.Call(ctx, MethodGetBalance, nil)
	assert.False(t, reply.Success())
}

func TestClientWithoutURLNeverDials(t *testing.T) {
	t.Parallel()

	hits := 0
	httpSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(httpSrv.Close)

	reply := NewClient("", time.Second, nil).Call(context.Background(), MethodClientLogin, xmlrpc.Struct{"a": 1})

	assert.False(t, reply.Success())
	assert.Zero(t, hits)
}
