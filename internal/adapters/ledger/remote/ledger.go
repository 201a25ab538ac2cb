package remote

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/bnema/currency-gateway/internal/adapters/rpc/moneyserver"
	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
	"pkt.systems/pslog"
)

type LookupHostFunc func(ctx context.Context, host string) ([]string, error)

// Ledger forwards every operation to the money server.
type Ledger struct {
	caller     moneyserver.Caller
	users      ports.UserDirectory
	userServer string
	lookupHost LookupHostFunc
	logger     pslog.Logger
}

var _ ports.Ledger = (*Ledger)(nil)

type Option func(*Ledger)

func WithUserDirectory(users ports.UserDirectory) Option {
	return func(l *Ledger) {
		l.users = users
	}
}

func WithLookupHost(lookup LookupHostFunc) Option {
	return func(l *Ledger) {
		if lookup != nil {
			l.lookupHost = lookup
		}
	}
}

func WithLogger(logger pslog.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLedger takes the user server URL of the local grid; its host is sent as
// userServIP for local users.
func NewLedger(caller moneyserver.Caller, userServerURL string, opts ...Option) *Ledger {
	l := &Ledger{
		caller:     caller,
		userServer: hostOf(userServerURL),
		lookupHost: net.DefaultResolver.LookupHost,
		logger:     pslog.NoopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With("sys", "ledger.remote")

	return l
}

func (l *Ledger) Name() string {
	return "remote"
}

func (l *Ledger) Login(ctx context.Context, session domain.Session) (int32, error) {
	req := moneyserver.LoginRequest{
		UserServIP:            l.userServIP(ctx, session.AccountID),
		OpenSimServIP:         session.Region.SimulatorHost(),
		UserName:              l.userName(ctx, session),
		ClientUUID:            session.AccountID.String(),
		ClientSessionID:       session.SessionID,
		ClientSecureSessionID: session.SecureSessionID,
	}

	reply := l.caller.Call(ctx, moneyserver.MethodClientLogin, req.Params())
	if err := l.check(moneyserver.MethodClientLogin, session.AccountID, reply); err != nil {
		return 0, err
	}

	return l.balance(moneyserver.MethodClientLogin, session.AccountID, reply)
}

func (l *Ledger) Logout(ctx context.Context, session domain.Session) error {
	reply := l.caller.Call(ctx, moneyserver.MethodClientLogout, l.clientRequest(ctx, session).Params())
	return l.check(moneyserver.MethodClientLogout, session.AccountID, reply)
}

func (l *Ledger) QueryBalance(ctx context.Context, session domain.Session) (int32, error) {
	reply := l.caller.Call(ctx, moneyserver.MethodGetBalance, l.clientRequest(ctx, session).Params())
	if err := l.check(moneyserver.MethodGetBalance, session.AccountID, reply); err != nil {
		return 0, err
	}

	return l.balance(moneyserver.MethodGetBalance, session.AccountID, reply)
}

func (l *Ledger) Transfer(ctx context.Context, transfer domain.Transfer) error {
	if transfer.Receiver.IsZero() {
		return fmt.Errorf("remote transfer receiver: %w", domain.ErrInvalidRequest)
	}

	req := moneyserver.TransferRequest{
		SenderUserServIP:      l.userServIP(ctx, transfer.Sender.AccountID),
		SenderID:              transfer.Sender.AccountID.String(),
		ReceiverUserServIP:    l.userServIP(ctx, transfer.Receiver),
		ReceiverID:            transfer.Receiver.String(),
		SenderSessionID:       transfer.Sender.SessionID,
		SenderSecureSessionID: transfer.Sender.SecureSessionID,
		TransactionType:       int32(transfer.Kind),
		LocalID:               transfer.CorrelationID,
		RegionHandle:          transfer.RegionHandle,
		Amount:                transfer.Amount,
		Description:           transfer.Description,
	}

	reply := l.caller.Call(ctx, moneyserver.MethodTransferMoney, req.Params())
	return l.check(moneyserver.MethodTransferMoney, transfer.Sender.AccountID, reply)
}

func (l *Ledger) Charge(ctx context.Context, charge domain.Charge) error {
	req := moneyserver.ChargeRequest{
		SenderID:              charge.Payer.AccountID.String(),
		SenderSessionID:       charge.Payer.SessionID,
		SenderSecureSessionID: charge.Payer.SecureSessionID,
		TransactionType:       int32(charge.Kind),
		Amount:                charge.Amount,
		RegionHandle:          charge.RegionHandle,
		Description:           charge.Description,
	}

	reply := l.caller.Call(ctx, moneyserver.MethodPayMoneyCharge, req.Params())
	return l.check(moneyserver.MethodPayMoneyCharge, charge.Payer.AccountID, reply)
}

func (l *Ledger) clientRequest(ctx context.Context, session domain.Session) moneyserver.ClientRequest {
	return moneyserver.ClientRequest{
		UserServIP:            l.userServIP(ctx, session.AccountID),
		ClientUUID:            session.AccountID.String(),
		ClientSessionID:       session.SessionID,
		ClientSecureSessionID: session.SecureSessionID,
	}
}

func (l *Ledger) check(method string, id domain.AccountID, reply moneyserver.Reply) error {
	if reply.Success() {
		return nil
	}

	l.logger.Warn("ledger.remote.rejected", "method", method, "account", id, "error_message", reply.ErrorMessage(), "error_uri", reply.ErrorURI())
	if msg := reply.ErrorMessage(); msg != "" {
		return fmt.Errorf("%s for %s: %s: %w", method, id, msg, domain.ErrLedgerUnavailable)
	}
	return fmt.Errorf("%s for %s: %w", method, id, domain.ErrLedgerUnavailable)
}

func (l *Ledger) balance(method string, id domain.AccountID, reply moneyserver.Reply) (int32, error) {
	balance, ok := reply.ClientBalance()
	if !ok {
		l.logger.Warn("ledger.remote.malformed", "method", method, "account", id)
		return 0, fmt.Errorf("%s for %s: missing clientBalance: %w", method, id, domain.ErrLedgerUnavailable)
	}

	return balance, nil
}

func (l *Ledger) userName(ctx context.Context, session domain.Session) string {
	if session.UserName != "" || l.users == nil {
		return session.UserName
	}

	name, _ := l.users.UserName(ctx, session.AccountID)
	return name
}

// userServIP is the configured user server for local-grid users and the
// resolved home grid host for visitors.
func (l *Ledger) userServIP(ctx context.Context, id domain.AccountID) string {
	if id.IsZero() {
		return l.userServer
	}
	if l.users == nil || l.users.IsLocalUser(ctx, id) {
		return l.resolve(ctx, l.userServer)
	}

	home, err := l.users.HomeURI(ctx, id)
	if err != nil {
		l.logger.Debug("ledger.remote.home_uri_unavailable", "account", id, "error", err)
		return l.resolve(ctx, l.userServer)
	}

	host := hostOf(home)
	if host == "" {
		return l.resolve(ctx, l.userServer)
	}

	return l.resolve(ctx, host)
}

func (l *Ledger) resolve(ctx context.Context, host string) string {
	if host == "" || net.ParseIP(host) != nil {
		return host
	}

	addrs, err := l.lookupHost(ctx, host)
	if err != nil || len(addrs) == 0 {
		return host
	}

	return addrs[0]
}

func hostOf(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	return parsed.Hostname()
}
