package application

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
	"pkt.systems/pslog"
)

const (
	moneyServerName          = "MoneyServer"
	confirmPrompt            = "Please click the URI in IM window to confirm your purchase."
	balanceUpdateDescription = "Balance update event from money server"
)

type ObjectPaidHandler func(ctx context.Context, paid domain.ObjectPaid)

// PushService answers the calls the money server makes back into the
// gateway. Every call is gated on the claimed account's current session
// tokens.
type PushService struct {
	sessions ports.SessionDirectory
	ledger   ports.Ledger
	notifier ports.Notifier
	logger   pslog.Logger
	dispatch func(func())

	mu         sync.RWMutex
	objectPaid []ObjectPaidHandler
}

type PushOption func(*PushService)

// WithDispatch replaces the goroutine used to deliver pushed balances.
func WithDispatch(dispatch func(func())) PushOption {
	return func(s *PushService) {
		s.dispatch = dispatch
	}
}

func WithPushLogger(logger pslog.Logger) PushOption {
	return func(s *PushService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewPushService(sessions ports.SessionDirectory, ledger ports.Ledger, notifier ports.Notifier, opts ...PushOption) (*PushService, error) {
	if sessions == nil {
		return nil, errNilSessions
	}
	if ledger == nil {
		return nil, errNilLedger
	}
	if notifier == nil {
		return nil, errNilNotifier
	}

	s := &PushService{
		sessions: sessions,
		ledger:   ledger,
		notifier: notifier,
		logger:   pslog.NoopLogger(),
		dispatch: func(fn func()) { go fn() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("sys", "push")

	return s, nil
}

func (s *PushService) SubscribeObjectPaid(handler ObjectPaidHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objectPaid = append(s.objectPaid, handler)
}

func (s *PushService) UpdateBalance(ctx context.Context, cmd UpdateBalanceCommand) bool {
	session, ok := s.authenticate(ctx, "UpdateBalance", cmd.Credentials)
	if !ok {
		return false
	}

	notifyCtx := context.WithoutCancel(ctx)
	s.dispatch(func() {
		if err := s.notifier.SendBalance(notifyCtx, session, cmd.Balance, balanceUpdateDescription); err != nil {
			s.logger.Warn("push.update_balance.notify_failed", "account", session.AccountID, "error", err)
		}
	})

	return true
}

func (s *PushService) UserAlert(ctx context.Context, cmd UserAlertCommand) bool {
	session, ok := s.authenticate(ctx, "UserAlert", cmd.Credentials)
	if !ok || cmd.Description == "" {
		return false
	}

	if err := s.notifier.SendAlert(ctx, session, cmd.Description); err != nil {
		s.logger.Warn("push.user_alert.notify_failed", "account", session.AccountID, "error", err)
		return false
	}

	return true
}

func (s *PushService) SendConfirmLink(ctx context.Context, cmd ConfirmLinkCommand) bool {
	session, ok := s.authenticate(ctx, "SendConfirmLink", cmd.Credentials)
	if !ok || cmd.URI == "" {
		return false
	}

	err := errors.Join(
		s.notifier.SendInstantMessage(ctx, session, domain.InstantMessage{
			FromName: moneyServerName,
			Dialog:   domain.DialogMessageBox,
			Text:     confirmPrompt,
		}),
		s.notifier.SendInstantMessage(ctx, session, domain.InstantMessage{
			FromName: moneyServerName,
			Dialog:   domain.DialogMessageFromAgent,
			Text:     cmd.URI,
		}),
	)
	if err != nil {
		s.logger.Warn("push.confirm_link.notify_failed", "account", session.AccountID, "error", err)
		return false
	}

	return true
}

// MoneyTransferred reports a completed remote transfer. Only object payments
// are acted on; any other kind is refused so the money server rolls back.
func (s *PushService) MoneyTransferred(ctx context.Context, cmd MoneyTransferredCommand) bool {
	if _, ok := s.authenticate(ctx, "OnMoneyTransfered", cmd.Sender); !ok {
		return false
	}
	if cmd.Kind != domain.KindPayObject {
		s.logger.Warn("push.money_transferred.ignored", "sender", cmd.Sender.AccountID, "kind", cmd.Kind.String())
		return false
	}

	s.mu.RLock()
	handlers := append([]ObjectPaidHandler(nil), s.objectPaid...)
	s.mu.RUnlock()

	if len(handlers) == 0 {
		s.logger.Warn("push.money_transferred.no_subscribers", "object", cmd.ObjectID)
		return false
	}

	paid := domain.ObjectPaid{ObjectID: cmd.ObjectID, Payer: cmd.Sender.AccountID, Amount: cmd.Amount}
	for _, handler := range handlers {
		handler(ctx, paid)
	}

	return true
}

// GetBalance answers a script balance query; the balance is -1 on failure.
func (s *PushService) GetBalance(ctx context.Context, cmd BalanceQueryCommand) (int32, bool) {
	session, ok := s.authenticate(ctx, "GetBalance", cmd.Credentials)
	if !ok {
		return -1, false
	}

	balance, err := s.ledger.QueryBalance(ctx, session)
	if err != nil {
		s.logger.Warn("push.get_balance.failed", "account", session.AccountID, "error", err)
		return -1, false
	}

	return balance, true
}

func (s *PushService) authenticate(ctx context.Context, method string, creds Credentials) (domain.Session, bool) {
	if creds.AccountID.IsZero() {
		s.logger.Warn("push.request.invalid", "method", method)
		return domain.Session{}, false
	}

	if !s.sessions.Validate(ctx, creds.AccountID, creds.SessionID, creds.SecureSessionID) {
		s.logger.Warn("push.request.unauthenticated", "method", method, "account", creds.AccountID)
		return domain.Session{}, false
	}

	session, err := s.sessions.ResolveSession(ctx, creds.AccountID)
	if err != nil {
		s.logger.Warn("push.request.session_gone", "method", method, "account", creds.AccountID, "error", err)
		return domain.Session{}, false
	}

	return session, true
}
