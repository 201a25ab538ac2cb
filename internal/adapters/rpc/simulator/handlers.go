// Package simulator serves the XML-RPC surface a region simulator uses to
// drive the in-memory world: session lifecycle, scene object updates, the
// economy events raised by viewers, and polling for queued notifications.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/bnema/currency-gateway/internal/adapters/rpc/moneyserver"
	"github.com/bnema/currency-gateway/internal/adapters/rpc/xmlrpc"
	"github.com/bnema/currency-gateway/internal/adapters/world/memory"
	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
	"pkt.systems/pslog"
)

const (
	MethodClientConnected = "simulator.ClientConnected"
	MethodClientClosed    = "simulator.ClientClosed"
	MethodObjectUpdated   = "simulator.ObjectUpdated"
	MethodObjectRemoved   = "simulator.ObjectRemoved"
	MethodMoneyTransfer   = "simulator.MoneyTransfer"
	MethodObjectBuy       = "simulator.ObjectBuy"
	MethodBalanceRequest  = "simulator.BalanceRequest"
	MethodValidateLandBuy = "simulator.ValidateLandBuy"
	MethodLandBuy         = "simulator.LandBuy"
	MethodNotifications   = "simulator.Notifications"
)

var (
	errMissingField = errors.New("missing field")
	errOutOfRange   = errors.New("value out of range")
	errNoValidation = errors.New("land buy was not validated")
)

type landKey struct {
	buyer    domain.AccountID
	regionID string
	parcel   int32
}

// Handlers feeds simulator calls into a memory world. A land purchase is
// held between its validate and commit calls and forgotten once committed.
type Handlers struct {
	world  *memory.World
	outbox *memory.Outbox
	logger pslog.Logger

	mu      sync.Mutex
	pending map[landKey]*domain.LandBuy
}

func NewHandlers(world *memory.World, outbox *memory.Outbox, logger pslog.Logger) *Handlers {
	if logger == nil {
		logger = pslog.NoopLogger()
	}

	return &Handlers{
		world:   world,
		outbox:  outbox,
		logger:  logger.With("sys", "simulator.handlers"),
		pending: map[landKey]*domain.LandBuy{},
	}
}

func (h *Handlers) Register(srv *xmlrpc.Server) {
	srv.Register(MethodClientConnected, h.clientConnected)
	srv.Register(MethodClientClosed, h.clientClosed)
	srv.Register(MethodObjectUpdated, h.objectUpdated)
	srv.Register(MethodObjectRemoved, h.objectRemoved)
	srv.Register(MethodMoneyTransfer, h.moneyTransfer)
	srv.Register(MethodObjectBuy, h.objectBuy)
	srv.Register(MethodBalanceRequest, h.balanceRequest)
	srv.Register(MethodValidateLandBuy, h.validateLandBuy)
	srv.Register(MethodLandBuy, h.landBuy)
	srv.Register(MethodNotifications, h.notifications)
}

func (h *Handlers) clientConnected(ctx context.Context, params []any) (any, error) {
	fields, err := firstStruct(params)
	if err != nil {
		return h.reject(MethodClientConnected, err), nil
	}
	id, err := accountField(fields, "agentID")
	if err != nil {
		return h.reject(MethodClientConnected, err), nil
	}
	sessionID, okSession := fields.String("sessionID")
	secureID, okSecure := fields.String("secureSessionID")
	if !okSession || !okSecure {
		return h.reject(MethodClientConnected, fmt.Errorf("session tokens: %w", errMissingField)), nil
	}
	handle, err := uintField(fields, "regionHandle")
	if err != nil {
		return h.reject(MethodClientConnected, err), nil
	}

	userName, _ := fields.String("userName")
	homeURI, _ := fields.String("homeURI")
	regionID, _ := fields.String("regionID")
	regionName, _ := fields.String("regionName")
	serverURI, _ := fields.String("regionServerURI")
	httpPort, _ := fields.Int("httpPort")

	h.world.Users.Put(memory.User{ID: id, Name: userName, HomeURI: homeURI})
	err = h.world.Connect(ctx, domain.Session{
		AccountID:       id,
		SessionID:       sessionID,
		SecureSessionID: secureID,
		UserName:        userName,
		Region: domain.Region{
			ID:        regionID,
			Handle:    handle,
			Name:      regionName,
			ServerURI: serverURI,
			HTTPPort:  int(httpPort),
		},
	})
	if err != nil {
		return h.reject(MethodClientConnected, err), nil
	}

	h.logger.Info("simulator.client.connected", "account", id, "region", regionName)
	return succeeded(), nil
}

func (h *Handlers) clientClosed(ctx context.Context, params []any) (any, error) {
	fields, err := firstStruct(params)
	if err != nil {
		return h.reject(MethodClientClosed, err), nil
	}
	id, err := accountField(fields, "agentID")
	if err != nil {
		return h.reject(MethodClientClosed, err), nil
	}

	if !h.world.Disconnect(ctx, id) {
		return h.reject(MethodClientClosed, fmt.Errorf("close %s: %w", id, domain.ErrAccountNotFound)), nil
	}

	h.logger.Info("simulator.client.closed", "account", id)
	return succeeded(), nil
}

func (h *Handlers) objectUpdated(_ context.Context, params []any) (any, error) {
	fields, err := firstStruct(params)
	if err != nil {
		return h.reject(MethodObjectUpdated, err), nil
	}
	objectID, ok := fields.String("objectID")
	if !ok || objectID == "" {
		return h.reject(MethodObjectUpdated, fmt.Errorf("objectID: %w", errMissingField)), nil
	}
	owner, err := accountField(fields, "ownerID")
	if err != nil {
		return h.reject(MethodObjectUpdated, err), nil
	}
	localID, err := uintField(fields, "localID")
	if err != nil {
		return h.reject(MethodObjectUpdated, err), nil
	}
	if localID > uint64(^uint32(0)) {
		return h.reject(MethodObjectUpdated, fmt.Errorf("localID: %w", errOutOfRange)), nil
	}
	handle, err := uintField(fields, "regionHandle")
	if err != nil {
		return h.reject(MethodObjectUpdated, err), nil
	}
	price, err := amountField(fields, "salePrice")
	if err != nil {
		return h.reject(MethodObjectUpdated, err), nil
	}

	name, _ := fields.String("name")
	forSale, _ := fields.Bool("forSale")
	h.world.Objects.Put(domain.SceneObject{
		ID:           objectID,
		LocalID:      uint32(localID),
		Name:         name,
		OwnerID:      owner,
		RegionHandle: handle,
		SalePrice:    price,
		ForSale:      forSale,
	})

	return succeeded(), nil
}

func (h *Handlers) objectRemoved(_ context.Context, params []any) (any, error) {
	fields, err := firstStruct(params)
	if err != nil {
		return h.reject(MethodObjectRemoved, err), nil
	}
	objectID, ok := fields.String("objectID")
	if !ok || objectID == "" {
		return h.reject(MethodObjectRemoved, fmt.Errorf("objectID: %w", errMissingField)), nil
	}

	h.world.Objects.Delete(objectID)
	return succeeded(), nil
}

func (h *Handlers) moneyTransfer(ctx context.Context, params []any) (any, error) {
	fields, err := firstStruct(params)
	if err != nil {
		return h.reject(MethodMoneyTransfer, err), nil
	}
	sender, err := accountField(fields, "senderID")
	if err != nil {
		return h.reject(MethodMoneyTransfer, err), nil
	}
	// Object payments name the object, so the receiver is kept verbatim.
	receiver, ok := fields.String("receiverID")
	if !ok {
		return h.reject(MethodMoneyTransfer, fmt.Errorf("receiverID: %w", errMissingField)), nil
	}
	amount, err := amountField(fields, "amount")
	if err != nil {
		return h.reject(MethodMoneyTransfer, err), nil
	}
	kind, err := amountField(fields, "transactionType")
	if err != nil {
		return h.reject(MethodMoneyTransfer, err), nil
	}

	description, _ := fields.String("description")
	regionID, _ := fields.String("regionID")
	err = h.world.Events.MoneyTransfer(ctx, ports.MoneyTransferEvent{
		Sender:      sender,
		Receiver:    domain.AccountID(receiver),
		Amount:      amount,
		Kind:        domain.TransactionKind(kind),
		Description: description,
		RegionID:    regionID,
	})
	if err != nil {
		return h.reject(MethodMoneyTransfer, err), nil
	}

	return succeeded(), nil
}

func (h *Handlers) objectBuy(ctx context.Context, params []any) (any, error) {
	fields, err := firstStruct(params)
	if err != nil {
		return h.reject(MethodObjectBuy, err), nil
	}
	buyer, err := accountField(fields, "agentID")
	if err != nil {
		return h.reject(MethodObjectBuy, err), nil
	}
	localID, err := uintField(fields, "localID")
	if err != nil {
		return h.reject(MethodObjectBuy, err), nil
	}
	if localID > uint64(^uint32(0)) {
		return h.reject(MethodObjectBuy, fmt.Errorf("localID: %w", errOutOfRange)), nil
	}
	price, err := amountField(fields, "salePrice")
	if err != nil {
		return h.reject(MethodObjectBuy, err), nil
	}
	saleType, err := amountField(fields, "saleType")
	if err != nil {
		return h.reject(MethodObjectBuy, err), nil
	}

	sessionID, _ := fields.String("sessionID")
	groupID, _ := fields.String("groupID")
	categoryID, _ := fields.String("categoryID")
	err = h.world.Events.ObjectBuy(ctx, ports.ObjectBuyEvent{
		Buyer:      buyer,
		SessionID:  sessionID,
		GroupID:    groupID,
		CategoryID: categoryID,
		LocalID:    uint32(localID),
		SaleType:   saleType,
		SalePrice:  price,
	})
	if err != nil {
		return h.reject(MethodObjectBuy, err), nil
	}

	return succeeded(), nil
}

func (h *Handlers) balanceRequest(ctx context.Context, params []any) (any, error) {
	fields, err := firstStruct(params)
	if err != nil {
		return h.reject(MethodBalanceRequest, err), nil
	}
	id, err := accountField(fields, "agentID")
	if err != nil {
		return h.reject(MethodBalanceRequest, err), nil
	}
	sessionID, _ := fields.String("sessionID")

	h.world.Events.BalanceRequest(ctx, id, sessionID)
	return succeeded(), nil
}

func (h *Handlers) validateLandBuy(ctx context.Context, params []any) (any, error) {
	buy, err := landBuyParams(params)
	if err != nil {
		return h.reject(MethodValidateLandBuy, err), nil
	}

	if err := h.world.Events.ValidateLandBuy(ctx, buy); err != nil {
		return h.reject(MethodValidateLandBuy, err), nil
	}
	if !buy.EconomyValidated() {
		return xmlrpc.Struct{"success": true, "economyValidated": false}, nil
	}

	h.mu.Lock()
	h.pending[keyOf(buy)] = buy
	h.mu.Unlock()

	return xmlrpc.Struct{"success": true, "economyValidated": true}, nil
}

func (h *Handlers) landBuy(ctx context.Context, params []any) (any, error) {
	request, err := landBuyParams(params)
	if err != nil {
		return h.reject(MethodLandBuy, err), nil
	}

	key := keyOf(request)
	h.mu.Lock()
	buy, ok := h.pending[key]
	delete(h.pending, key)
	h.mu.Unlock()
	if !ok {
		return h.reject(MethodLandBuy, fmt.Errorf("parcel %d for %s: %w", request.ParcelLocalID, request.Buyer, errNoValidation)), nil
	}

	if err := h.world.Events.LandBuy(ctx, buy); err != nil {
		return h.reject(MethodLandBuy, err), nil
	}

	return xmlrpc.Struct{
		"success":       buy.TransactionID() != 0,
		"transactionID": buy.TransactionID(),
		"amountDebited": buy.AmountDebited(),
	}, nil
}

func (h *Handlers) notifications(_ context.Context, params []any) (any, error) {
	fields, err := firstStruct(params)
	if err != nil {
		return h.reject(MethodNotifications, err), nil
	}
	id, err := accountField(fields, "agentID")
	if err != nil {
		return h.reject(MethodNotifications, err), nil
	}
	if h.outbox == nil {
		return xmlrpc.Struct{"success": true, "notifications": []any{}}, nil
	}

	deliveries := h.outbox.Drain(id)
	items := make([]any, 0, len(deliveries))
	for _, d := range deliveries {
		items = append(items, deliveryStruct(d))
	}

	return xmlrpc.Struct{"success": true, "notifications": items}, nil
}

func (h *Handlers) reject(method string, err error) xmlrpc.Struct {
	h.logger.Warn("simulator.call.rejected", "method", method, "error", err)
	return xmlrpc.Struct{"success": false, "errorMessage": err.Error()}
}

func succeeded() xmlrpc.Struct {
	return xmlrpc.Struct{"success": true}
}

func deliveryStruct(d memory.Delivery) xmlrpc.Struct {
	item := xmlrpc.Struct{
		"kind": string(d.Kind),
		"at":   d.At,
	}

	switch d.Kind {
	case memory.DeliveryBalance:
		item["balance"] = d.Balance
		item["description"] = d.Description
	case memory.DeliveryAlert:
		item["description"] = d.Description
	case memory.DeliveryMessage:
		item["fromName"] = d.Message.FromName
		item["dialog"] = int32(d.Message.Dialog)
		item["text"] = d.Message.Text
	case memory.DeliveryPayment:
		item["objectID"] = d.Payment.ObjectID
		item["amount"] = d.Payment.Amount
	}

	return item
}

func landBuyParams(params []any) (*domain.LandBuy, error) {
	fields, err := firstStruct(params)
	if err != nil {
		return nil, err
	}
	buyer, err := accountField(fields, "agentID")
	if err != nil {
		return nil, err
	}
	seller, err := accountField(fields, "parcelOwnerID")
	if err != nil {
		return nil, err
	}
	parcel, err := amountField(fields, "parcelLocalID")
	if err != nil {
		return nil, err
	}
	area, err := amountField(fields, "parcelArea")
	if err != nil {
		return nil, err
	}
	price, err := amountField(fields, "parcelPrice")
	if err != nil {
		return nil, err
	}
	handle, err := uintField(fields, "regionHandle")
	if err != nil {
		return nil, err
	}
	regionID, _ := fields.String("regionID")

	return &domain.LandBuy{
		Buyer:         buyer,
		Seller:        seller,
		ParcelLocalID: parcel,
		ParcelArea:    area,
		Price:         price,
		RegionID:      regionID,
		RegionHandle:  handle,
	}, nil
}

func keyOf(buy *domain.LandBuy) landKey {
	return landKey{buyer: buy.Buyer, regionID: buy.RegionID, parcel: buy.ParcelLocalID}
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

func amountField(fields xmlrpc.Struct, key string) (int32, error) {
	if !fields.Has(key) {
		return 0, fmt.Errorf("%s: %w", key, errMissingField)
	}
	n, ok := moneyserver.Amount(fields, key)
	if !ok {
		return 0, fmt.Errorf("%s: %w", key, errOutOfRange)
	}

	return n, nil
}

// uintField reads region handles and local ids, which arrive as integers or
// as decimal strings when they do not fit an i4.
func uintField(fields xmlrpc.Struct, key string) (uint64, error) {
	if raw, ok := fields.String(key); ok {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, errOutOfRange)
		}
		return n, nil
	}

	n, ok := fields.Int(key)
	if !ok {
		return 0, fmt.Errorf("%s: %w", key, errMissingField)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: %w", key, errOutOfRange)
	}

	return uint64(n), nil
}
