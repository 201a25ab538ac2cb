package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
	"pkt.systems/pslog"
)

const (
	alertInsufficientFunds = "Unable to buy now. You don't have sufficient funds."
	alertObjectNotFound    = "Unable to buy now. The object was not found."
	alertPriceMismatch     = "Cannot buy at this price. Buy Failed. If you continue to get this relog."
	alertBalanceQuery      = "Fail to query the balance."
	alertBalanceRefused    = "Unable to send your money balance."

	descriptionObjectBuy   = "Object Buy"
	descriptionGroupCreate = "Group Creation"
)

var (
	errNilLedger   = errors.New("ledger is nil")
	errNilSessions = errors.New("session directory is nil")
	errNilNotifier = errors.New("notifier is nil")
)

type Dependencies struct {
	Ledger   ports.Ledger
	Sessions ports.SessionDirectory
	Objects  ports.ObjectLocator
	Users    ports.UserDirectory
	Notifier ports.Notifier
	Sales    ports.ObjectSales
	Metrics  ports.Metrics
	Clock    ports.Clock
	Economy  domain.EconomyData
	Logger   pslog.Logger
}

// Coordinator runs every balance-affecting world event against the ledger it
// was built with.
type Coordinator struct {
	ledger   ports.Ledger
	sessions ports.SessionDirectory
	objects  ports.ObjectLocator
	users    ports.UserDirectory
	notifier ports.Notifier
	sales    ports.ObjectSales
	metrics  ports.Metrics
	clock    ports.Clock
	economy  domain.EconomyData
	logger   pslog.Logger
}

func NewCoordinator(deps Dependencies) (*Coordinator, error) {
	if deps.Ledger == nil {
		return nil, errNilLedger
	}
	if deps.Sessions == nil {
		return nil, errNilSessions
	}
	if deps.Notifier == nil {
		return nil, errNilNotifier
	}
	if deps.Metrics == nil {
		deps.Metrics = ports.NopMetrics{}
	}
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = pslog.NoopLogger()
	}

	return &Coordinator{
		ledger:   deps.Ledger,
		sessions: deps.Sessions,
		objects:  deps.Objects,
		users:    deps.Users,
		notifier: deps.Notifier,
		sales:    deps.Sales,
		metrics:  deps.Metrics,
		clock:    deps.Clock,
		economy:  deps.Economy,
		logger:   deps.Logger.With("sys", "coordinator", "ledger", deps.Ledger.Name()),
	}, nil
}

// Applied reports whether a coordinator result moved money or was a no-op success.
func Applied(err error) bool {
	return err == nil
}

func (c *Coordinator) Attach(events ports.WorldEvents) {
	events.OnNewClient(c.HandleNewClient)
	events.OnClientClosed(c.HandleClientClosed)
	events.OnMoneyTransfer(c.HandleMoneyTransfer)
	events.OnValidateLandBuy(c.ValidateLandBuy)
	events.OnLandBuy(c.ProcessLandBuy)
	events.OnObjectBuy(c.ObjectBuy)
	events.OnBalanceRequest(c.HandleBalanceRequest)
}

func (c *Coordinator) EconomyData() domain.EconomyData {
	return c.economy
}

func (c *Coordinator) Transfer(ctx context.Context, tx domain.Transaction) error {
	if err := tx.ValidateTransfer(); err != nil {
		return c.failed(tx, "validate", err)
	}
	if tx.IsSelfTransfer() {
		c.logger.Debug("coordinator.transfer.self", "account", tx.Source, "kind", tx.Kind.String())
		return nil
	}

	sender, err := c.resolve(ctx, tx.Source)
	if err != nil {
		return c.failed(tx, "resolve", err)
	}

	if tx.Kind == domain.KindPayObject {
		tx, err = c.redirectToOwner(ctx, tx)
		if err != nil {
			return c.failed(tx, "redirect", err)
		}
	}

	return c.settle(ctx, sender, tx)
}

func (c *Coordinator) HandleMoneyTransfer(ctx context.Context, event ports.MoneyTransferEvent) error {
	return c.Transfer(ctx, domain.Transaction{
		Source:      event.Sender,
		Destination: event.Receiver,
		Amount:      event.Amount,
		Kind:        event.Kind,
		RegionID:    event.RegionID,
		Description: event.Description,
	})
}

func (c *Coordinator) ObjectGiveMoney(ctx context.Context, cmd ObjectGiveMoneyCommand) error {
	tx := domain.Transaction{
		Source:        cmd.Payer,
		Destination:   cmd.Recipient,
		Amount:        cmd.Amount,
		Kind:          domain.KindObjectPays,
		CorrelationID: cmd.ObjectID,
	}

	object, err := c.findObject(ctx, cmd.ObjectID)
	if err != nil {
		return c.failed(tx, "redirect", err)
	}
	if tx.Source.IsZero() {
		tx.Source = object.OwnerID
	}
	tx.RegionHandle = object.RegionHandle

	recipientName := ""
	if c.users != nil {
		recipientName, _ = c.users.UserName(ctx, cmd.Recipient)
	}
	tx.Description = fmt.Sprintf("Object %s pays %s", object.Name, recipientName)

	return c.Transfer(ctx, tx)
}

func (c *Coordinator) ObjectBuy(ctx context.Context, event ports.ObjectBuyEvent) error {
	tx := domain.Transaction{
		Source:      event.Buyer,
		Amount:      event.SalePrice,
		Kind:        domain.KindPayObject,
		Description: descriptionObjectBuy,
	}
	if err := tx.Validate(); err != nil {
		return c.failed(tx, "validate", err)
	}

	buyer, err := c.resolve(ctx, event.Buyer)
	if err != nil {
		return c.failed(tx, "resolve", err)
	}
	if event.SessionID != "" && event.SessionID != buyer.SessionID {
		return c.failed(tx, "resolve", fmt.Errorf("session mismatch for %s: %w", event.Buyer, domain.ErrInvalidRequest))
	}

	if err := c.authorize(ctx, buyer, tx.Amount); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			c.alert(ctx, buyer, alertInsufficientFunds)
		}
		return c.failed(tx, "authorize", err)
	}

	object, err := c.findObjectByLocalID(ctx, event.LocalID)
	if err != nil {
		c.alert(ctx, buyer, alertObjectNotFound)
		return c.failed(tx, "redirect", err)
	}
	if object.SalePrice != event.SalePrice {
		c.alert(ctx, buyer, alertPriceMismatch)
		return c.failed(tx, "redirect", fmt.Errorf("object %s sells for %d, offered %d: %w", object.ID, object.SalePrice, event.SalePrice, domain.ErrPriceMismatch))
	}

	if c.sales == nil {
		c.alert(ctx, buyer, alertObjectNotFound)
		return c.failed(tx, "redirect", fmt.Errorf("no object sales for %s: %w", object.ID, domain.ErrUnresolvedTarget))
	}

	tx.Destination = object.OwnerID
	tx.CorrelationID = object.ID
	tx.RegionHandle = object.RegionHandle

	if err := c.apply(ctx, buyer, tx); err != nil {
		return err
	}

	if err := c.sales.Deliver(ctx, buyer, object, event.SaleType); err != nil {
		c.logger.Error("coordinator.object_buy.deliver_failed", "buyer", buyer.AccountID, "object", object.ID, "error", err)
		return fmt.Errorf("deliver object %s: %w", object.ID, err)
	}

	return nil
}

func (c *Coordinator) Charge(ctx context.Context, tx domain.Transaction) error {
	if err := tx.Validate(); err != nil {
		return c.failed(tx, "validate", err)
	}

	payer, err := c.resolve(ctx, tx.Source)
	if err != nil {
		return c.failed(tx, "resolve", err)
	}
	if tx.RegionHandle == 0 {
		tx.RegionHandle = payer.Region.Handle
	}

	if err := c.authorize(ctx, payer, tx.Amount); err != nil {
		return c.failed(tx, "authorize", err)
	}

	err = c.ledger.Charge(ctx, domain.Charge{
		Payer:        payer,
		Amount:       tx.Amount,
		Kind:         tx.Kind,
		RegionHandle: tx.RegionHandle,
		Description:  tx.Description,
	})
	if err != nil {
		return c.failed(tx, "apply", err)
	}

	c.succeeded(tx)
	c.notifyBalances(ctx, tx.Description, payer.AccountID)

	return nil
}

// ApplyUploadCharge treats a non-positive fee as a free upload.
func (c *Coordinator) ApplyUploadCharge(ctx context.Context, id domain.AccountID, amount int32, description string) error {
	if amount <= 0 {
		return nil
	}

	return c.Charge(ctx, domain.Transaction{
		Source:      id,
		Amount:      amount,
		Kind:        domain.KindUploadCharge,
		Description: description,
	})
}

func (c *Coordinator) ApplyGroupCreationCharge(ctx context.Context, id domain.AccountID) error {
	if c.economy.PriceGroupCreate <= 0 {
		return nil
	}

	return c.Charge(ctx, domain.Transaction{
		Source:      id,
		Amount:      c.economy.PriceGroupCreate,
		Kind:        domain.KindGroupCreate,
		Description: descriptionGroupCreate,
	})
}

func (c *Coordinator) AmountCovered(ctx context.Context, id domain.AccountID, amount int32) bool {
	if amount <= 0 {
		return true
	}

	session, err := c.resolve(ctx, id)
	if err != nil {
		return false
	}

	return c.authorize(ctx, session, amount) == nil
}

func (c *Coordinator) UploadCovered(ctx context.Context, id domain.AccountID, amount int32) bool {
	return c.AmountCovered(ctx, id, amount)
}

func (c *Coordinator) GroupCreationCovered(ctx context.Context, id domain.AccountID) bool {
	return c.AmountCovered(ctx, id, c.economy.PriceGroupCreate)
}

func (c *Coordinator) GetBalance(ctx context.Context, id domain.AccountID) (int32, error) {
	session, err := c.resolve(ctx, id)
	if err != nil {
		return 0, err
	}

	balance, err := c.ledger.QueryBalance(ctx, session)
	if err != nil {
		return 0, fmt.Errorf("query balance for %s: %w", id, err)
	}

	return balance, nil
}

func (c *Coordinator) HandleNewClient(ctx context.Context, session domain.Session) {
	balance, err := c.ledger.Login(ctx, session)
	if err != nil {
		c.logger.Warn("coordinator.client.login_failed", "account", session.AccountID, "region", session.Region.Name, "error", err)
		return
	}

	c.logger.Info("coordinator.client.login", "account", session.AccountID, "region", session.Region.Name, "balance", balance)
	if err := c.notifier.SendBalance(ctx, session, balance, ""); err != nil {
		c.logger.Debug("coordinator.notify.failed", "account", session.AccountID, "error", err)
	}
}

func (c *Coordinator) HandleClientClosed(ctx context.Context, id domain.AccountID) {
	session, err := c.sessions.ResolveSession(ctx, id)
	if err != nil {
		c.logger.Debug("coordinator.client.closed_without_session", "account", id)
		return
	}

	if err := c.ledger.Logout(ctx, session); err != nil {
		c.logger.Warn("coordinator.client.logout_failed", "account", id, "error", err)
		return
	}

	c.logger.Info("coordinator.client.logout", "account", id)
}

func (c *Coordinator) HandleBalanceRequest(ctx context.Context, id domain.AccountID, sessionID string) {
	session, err := c.sessions.ResolveSession(ctx, id)
	if err != nil {
		c.logger.Debug("coordinator.balance_request.unknown", "account", id)
		return
	}
	if session.SessionID != sessionID {
		c.alert(ctx, session, alertBalanceRefused)
		return
	}

	balance, err := c.ledger.QueryBalance(ctx, session)
	if err != nil {
		c.logger.Warn("coordinator.balance_request.failed", "account", id, "error", err)
		c.alert(ctx, session, alertBalanceQuery)
		return
	}

	if err := c.notifier.SendBalance(ctx, session, balance, ""); err != nil {
		c.logger.Debug("coordinator.notify.failed", "account", id, "error", err)
	}
}

func (c *Coordinator) settle(ctx context.Context, sender domain.Session, tx domain.Transaction) error {
	if err := c.authorize(ctx, sender, tx.Amount); err != nil {
		return c.failed(tx, "authorize", err)
	}

	return c.apply(ctx, sender, tx)
}

func (c *Coordinator) apply(ctx context.Context, sender domain.Session, tx domain.Transaction) error {
	if tx.IsSelfTransfer() {
		c.logger.Debug("coordinator.transfer.self", "account", tx.Source, "kind", tx.Kind.String())
		return nil
	}
	if tx.Destination.IsZero() {
		return c.failed(tx, "validate", fmt.Errorf("no receiver for %s: %w", tx.Kind, domain.ErrInvalidRequest))
	}
	if tx.RegionHandle == 0 {
		tx.RegionHandle = sender.Region.Handle
	}

	err := c.ledger.Transfer(ctx, domain.Transfer{
		Sender:        sender,
		Receiver:      tx.Destination,
		Amount:        tx.Amount,
		Kind:          tx.Kind,
		CorrelationID: tx.CorrelationID,
		RegionHandle:  tx.RegionHandle,
		Description:   tx.Description,
	})
	if err != nil {
		return c.failed(tx, "apply", err)
	}

	c.succeeded(tx)
	c.notifyBalances(ctx, tx.Description, sender.AccountID, tx.Destination)

	return nil
}

func (c *Coordinator) resolve(ctx context.Context, id domain.AccountID) (domain.Session, error) {
	session, err := c.sessions.ResolveSession(ctx, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("resolve session %s: %w", id, err)
	}

	return session, nil
}

func (c *Coordinator) redirectToOwner(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	object, err := c.findObject(ctx, string(tx.Destination))
	if err != nil {
		return tx, err
	}

	tx.CorrelationID = object.ID
	tx.Destination = object.OwnerID
	if object.RegionHandle != 0 {
		tx.RegionHandle = object.RegionHandle
	}

	return tx, nil
}

func (c *Coordinator) authorize(ctx context.Context, session domain.Session, amount int32) error {
	balance, err := c.ledger.QueryBalance(ctx, session)
	if err != nil {
		return fmt.Errorf("query balance for %s: %w", session.AccountID, err)
	}
	if balance < amount {
		return fmt.Errorf("balance %d below %d for %s: %w", balance, amount, session.AccountID, domain.ErrInsufficientFunds)
	}

	return nil
}

func (c *Coordinator) findObject(ctx context.Context, objectID string) (domain.SceneObject, error) {
	if c.objects == nil {
		return domain.SceneObject{}, fmt.Errorf("object %s: %w", objectID, domain.ErrUnresolvedTarget)
	}

	object, err := c.objects.FindObject(ctx, objectID)
	if err != nil {
		return domain.SceneObject{}, fmt.Errorf("object %s: %w", objectID, errors.Join(domain.ErrUnresolvedTarget, err))
	}

	return object, nil
}

func (c *Coordinator) findObjectByLocalID(ctx context.Context, localID uint32) (domain.SceneObject, error) {
	if c.objects == nil {
		return domain.SceneObject{}, fmt.Errorf("object %d: %w", localID, domain.ErrUnresolvedTarget)
	}

	object, err := c.objects.FindObjectByLocalID(ctx, localID)
	if err != nil {
		return domain.SceneObject{}, fmt.Errorf("object %d: %w", localID, errors.Join(domain.ErrUnresolvedTarget, err))
	}

	return object, nil
}

func (c *Coordinator) notifyBalances(ctx context.Context, description string, ids ...domain.AccountID) {
	for _, id := range ids {
		if id.IsZero() {
			continue
		}

		session, err := c.sessions.ResolveSession(ctx, id)
		if err != nil {
			continue
		}

		balance, err := c.ledger.QueryBalance(ctx, session)
		if err != nil {
			c.logger.Debug("coordinator.notify.balance_unavailable", "account", id, "error", err)
			continue
		}

		if err := c.notifier.SendBalance(ctx, session, balance, description); err != nil {
			c.logger.Debug("coordinator.notify.failed", "account", id, "error", err)
		}
	}
}

func (c *Coordinator) alert(ctx context.Context, session domain.Session, text string) {
	if err := c.notifier.SendAlert(ctx, session, text); err != nil {
		c.logger.Debug("coordinator.alert.failed", "account", session.AccountID, "error", err)
	}
}

func (c *Coordinator) succeeded(tx domain.Transaction) {
	c.metrics.TransactionApplied(c.ledger.Name(), tx.Kind)
	c.logger.Info("coordinator.transaction.applied",
		"kind", tx.Kind.String(),
		"category", tx.Kind.Category().String(),
		"source", tx.Source,
		"destination", tx.Destination,
		"amount", tx.Amount,
		"correlation", tx.CorrelationID,
	)
}

func (c *Coordinator) failed(tx domain.Transaction, stage string, err error) error {
	reason := FailureReason(err)
	c.metrics.TransactionFailed(c.ledger.Name(), tx.Kind, reason)
	c.logger.Warn("coordinator.transaction.failed",
		"stage", stage,
		"reason", reason,
		"kind", tx.Kind.String(),
		"category", tx.Kind.Category().String(),
		"source", tx.Source,
		"destination", tx.Destination,
		"amount", tx.Amount,
		"error", err,
	)

	return fmt.Errorf("%s %s: %w", stage, tx.Kind, err)
}

func FailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrUnresolvedTarget):
		return "unresolved_target"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return "ledger_unavailable"
	case errors.Is(err, domain.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
