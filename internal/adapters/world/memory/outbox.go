package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
	"pkt.systems/pslog"
)

type DeliveryKind string

const (
	DeliveryBalance DeliveryKind = "balance"
	DeliveryAlert   DeliveryKind = "alert"
	DeliveryMessage DeliveryKind = "message"
	DeliveryPayment DeliveryKind = "object_paid"
)

const DefaultOutboxCapacity = 1024

type Delivery struct {
	Kind        DeliveryKind
	AccountID   domain.AccountID
	Balance     int32
	Description string
	Message     domain.InstantMessage
	Payment     domain.ObjectPaid
	At          time.Time
}

// Outbox is a notifier that queues deliveries until the simulator drains
// them. Once capacity is reached the oldest delivery is dropped.
type Outbox struct {
	mu         sync.Mutex
	deliveries []Delivery
	capacity   int
	dropped    int
	clock      ports.Clock
	logger     pslog.Logger
}

var _ ports.Notifier = (*Outbox)(nil)

type OutboxOption func(*Outbox)

func WithCapacity(n int) OutboxOption {
	return func(o *Outbox) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func WithOutboxClock(clock ports.Clock) OutboxOption {
	return func(o *Outbox) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func NewOutbox(logger pslog.Logger, opts ...OutboxOption) *Outbox {
	if logger == nil {
		logger = pslog.NoopLogger()
	}

	o := &Outbox{
		capacity: DefaultOutboxCapacity,
		clock:    ports.SystemClock{},
		logger:   logger.With("sys", "outbox"),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *Outbox) SendBalance(ctx context.Context, session domain.Session, balance int32, description string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	o.record(Delivery{Kind: DeliveryBalance, AccountID: session.AccountID, Balance: balance, Description: description})
	o.logger.Debug("outbox.balance.sent", "account", session.AccountID, "balance", balance, "description", description)
	return nil
}

func (o *Outbox) SendAlert(ctx context.Context, session domain.Session, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	o.record(Delivery{Kind: DeliveryAlert, AccountID: session.AccountID, Description: text})
	o.logger.Info("outbox.alert.sent", "account", session.AccountID, "text", text)
	return nil
}

func (o *Outbox) SendInstantMessage(ctx context.Context, session domain.Session, msg domain.InstantMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	o.record(Delivery{Kind: DeliveryMessage, AccountID: session.AccountID, Message: msg})
	o.logger.Info("outbox.message.sent", "account", session.AccountID, "from", msg.FromName, "dialog", int(msg.Dialog))
	return nil
}

// ObjectPaid queues a script payment for the simulator hosting the payer.
func (o *Outbox) ObjectPaid(_ context.Context, paid domain.ObjectPaid) {
	o.record(Delivery{Kind: DeliveryPayment, AccountID: paid.Payer, Payment: paid})
	o.logger.Info("outbox.object_paid", "object", paid.ObjectID, "payer", paid.Payer, "amount", paid.Amount)
}

// Drain removes and returns the deliveries queued for one account.
func (o *Outbox) Drain(id domain.AccountID) []Delivery {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []Delivery
	kept := o.deliveries[:0]
	for _, d := range o.deliveries {
		if d.AccountID == id {
			out = append(out, d)
			continue
		}
		kept = append(kept, d)
	}
	clear(o.deliveries[len(kept):])
	o.deliveries = kept

	return out
}

// Dropped counts deliveries discarded because the outbox was full.
func (o *Outbox) Dropped() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dropped
}

func (o *Outbox) Deliveries() []Delivery {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Delivery(nil), o.deliveries...)
}

// For returns the deliveries addressed to one account.
func (o *Outbox) For(id domain.AccountID) []Delivery {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []Delivery
	for _, d := range o.deliveries {
		if d.AccountID == id {
			out = append(out, d)
		}
	}
	return out
}

func (o *Outbox) record(d Delivery) {
	d.At = o.clock.Now()

	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.deliveries) >= o.capacity {
		evicted := o.deliveries[0]
		o.deliveries = append(o.deliveries[:0], o.deliveries[1:]...)
		o.dropped++
		o.logger.Warn("outbox.full", "capacity", o.capacity, "dropped_account", evicted.AccountID, "dropped_kind", string(evicted.Kind))
	}
	o.deliveries = append(o.deliveries, d)
}
