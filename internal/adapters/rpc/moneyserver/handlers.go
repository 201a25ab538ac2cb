package moneyserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/currency-gateway/internal/adapters/rpc/xmlrpc"
	"github.com/bnema/currency-gateway/internal/application"
	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
	"pkt.systems/pslog"
)

type PushService interface {
	UpdateBalance(ctx context.Context, cmd application.UpdateBalanceCommand) bool
	UserAlert(ctx context.Context, cmd application.UserAlertCommand) bool
	SendConfirmLink(ctx context.Context, cmd application.ConfirmLinkCommand) bool
	MoneyTransferred(ctx context.Context, cmd application.MoneyTransferredCommand) bool
	GetBalance(ctx context.Context, cmd application.BalanceQueryCommand) (int32, bool)
}

var _ PushService = (*application.PushService)(nil)

var (
	errMissingField = errors.New("missing field")
	errOutOfRange   = errors.New("value outside 0..2147483647")
)

// Handlers turns inbound money server calls into push service commands.
// Requests that cannot be parsed are answered with success=false rather
// than a fault.
type Handlers struct {
	push    PushService
	metrics ports.Metrics
	logger  pslog.Logger
}

func NewHandlers(push PushService, metrics ports.Metrics, logger pslog.Logger) *Handlers {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = pslog.NoopLogger()
	}

	return &Handlers{
		push:    push,
		metrics: metrics,
		logger:  logger.With("sys", "moneyserver.handlers"),
	}
}

func (h *Handlers) Register(srv *xmlrpc.Server) {
	srv.Register(MethodUpdateBalance, h.updateBalance)
	srv.Register(MethodUserAlert, h.userAlert)
	srv.Register(MethodSendConfirmLink, h.sendConfirmLink)
	srv.Register(MethodOnMoneyTransfered, h.onMoneyTransfered)
	srv.Register(MethodGetBalance, h.getBalance)
}

func (h *Handlers) updateBalance(ctx context.Context, params []any) (any, error) {
	fields, creds, err := clientParams(params)
	if err != nil {
		return h.reject(MethodUpdateBalance, err), nil
	}
	balance, err := amountField(fields, "Balance")
	if err != nil {
		return h.reject(MethodUpdateBalance, err), nil
	}

	ok := h.push.UpdateBalance(ctx, application.UpdateBalanceCommand{Credentials: creds, Balance: balance})
	return h.result(MethodUpdateBalance, ok), nil
}

func (h *Handlers) userAlert(ctx context.Context, params []any) (any, error) {
	fields, creds, err := clientParams(params)
	if err != nil {
		return h.reject(MethodUserAlert, err), nil
	}
	description, ok := fields.String("Description")
	if !ok {
		return h.reject(MethodUserAlert, fmt.Errorf("Description: %w", errMissingField)), nil
	}

	ok = h.push.UserAlert(ctx, application.UserAlertCommand{Credentials: creds, Description: description})
	return h.result(MethodUserAlert, ok), nil
}

func (h *Handlers) sendConfirmLink(ctx context.Context, params []any) (any, error) {
	fields, creds, err := clientParams(params)
	if err != nil {
		return h.reject(MethodSendConfirmLink, err), nil
	}
	uri, ok := fields.String("URI")
	if !ok {
		return h.reject(MethodSendConfirmLink, fmt.Errorf("URI: %w", errMissingField)), nil
	}

	ok = h.push.SendConfirmLink(ctx, application.ConfirmLinkCommand{Credentials: creds, URI: uri})
	return h.result(MethodSendConfirmLink, ok), nil
}

func (h *Handlers) onMoneyTransfered(ctx context.Context, params []any) (any, error) {
	fields, err := firstStruct(params)
	if err != nil {
		return h.reject(MethodOnMoneyTransfered, err), nil
	}

	sender, err := accountField(fields, "senderID")
	if err != nil {
		return h.reject(MethodOnMoneyTransfered, err), nil
	}
	receiver, err := accountField(fields, "receiverID")
	if err != nil {
		return h.reject(MethodOnMoneyTransfered, err), nil
	}
	sessionID, okSession := fields.String("senderSessionID")
	secureID, okSecure := fields.String("senderSecureSessionID")
	localID, okLocal := fields.String("localID")
	if !okSession || !okSecure || !okLocal {
		return h.reject(MethodOnMoneyTransfered, errMissingField), nil
	}
	kind, err := amountField(fields, "transactionType")
	if err != nil {
		return h.reject(MethodOnMoneyTransfered, err), nil
	}
	amount, err := amountField(fields, "amount")
	if err != nil {
		return h.reject(MethodOnMoneyTransfered, err), nil
	}

	ok := h.push.MoneyTransferred(ctx, application.MoneyTransferredCommand{
		Sender: application.Credentials{
			AccountID:       sender,
			SessionID:       sessionID,
			SecureSessionID: secureID,
		},
		Receiver: receiver,
		Kind:     domain.TransactionKind(kind),
		ObjectID: localID,
		Amount:   amount,
	})
	return h.result(MethodOnMoneyTransfered, ok), nil
}

func (h *Handlers) getBalance(ctx context.Context, params []any) (any, error) {
	_, creds, err := clientParams(params)
	if err != nil {
		h.metrics.PushHandled(MethodGetBalance, false)
		h.logger.Warn("moneyserver.push.invalid", "method", MethodGetBalance, "error", err)
		return xmlrpc.Struct{"success": false, "balance": -1}, nil
	}

	balance, ok := h.push.GetBalance(ctx, application.BalanceQueryCommand{Credentials: creds})
	h.metrics.PushHandled(MethodGetBalance, ok)
	return xmlrpc.Struct{"success": ok, "balance": balance}, nil
}

func (h *Handlers) reject(method string, err error) xmlrpc.Struct {
	h.logger.Warn("moneyserver.push.invalid", "method", method, "error", err)
	return h.result(method, false)
}

func (h *Handlers) result(method string, ok bool) xmlrpc.Struct {
	h.metrics.PushHandled(method, ok)
	return xmlrpc.Struct{"success": ok}
}

func firstStruct(params []any) (xmlrpc.Struct, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("params: %w", errMissingField)
	}

	fields, ok := params[0].(xmlrpc.Struct)
	if !ok {
		return nil, fmt.Errorf("first param is %T, not a struct: %w", params[0], domain.ErrInvalidRequest)
	}

	return fields, nil
}

func clientParams(params []any) (xmlrpc.Struct, application.Credentials, error) {
	fields, err := firstStruct(params)
	if err != nil {
		return nil, application.Credentials{}, err
	}

	id, err := accountField(fields, "clientUUID")
	if err != nil {
		return nil, application.Credentials{}, err
	}
	sessionID, okSession := fields.String("clientSessionID")
	secureID, okSecure := fields.String("clientSecureSessionID")
	if !okSession || !okSecure {
		return nil, application.Credentials{}, fmt.Errorf("session tokens: %w", errMissingField)
	}

	return fields, application.Credentials{
		AccountID:       id,
		SessionID:       sessionID,
		SecureSessionID: secureID,
	}, nil
}

func amountField(fields xmlrpc.Struct, key string) (int32, error) {
	if !fields.Has(key) {
		return 0, fmt.Errorf("%s: %w", key, errMissingField)
	}
	n, ok := Amount(fields, key)
	if !ok {
		return 0, fmt.Errorf("%s: %w", key, errOutOfRange)
	}

	return n, nil
}

func accountField(fields xmlrpc.Struct, key string) (domain.AccountID, error) {
	raw, ok := fields.String(key)
	if !ok {
		return "", fmt.Errorf("%s: %w", key, errMissingField)
	}

	id, err := domain.ParseAccountID(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}

	return id, nil
}
