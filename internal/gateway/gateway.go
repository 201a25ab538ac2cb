package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bnema/currency-gateway/internal/adapters/ledger/local"
	"github.com/bnema/currency-gateway/internal/adapters/ledger/remote"
	"github.com/bnema/currency-gateway/internal/adapters/metrics/prom"
	"github.com/bnema/currency-gateway/internal/adapters/rpc/moneyserver"
	"github.com/bnema/currency-gateway/internal/adapters/rpc/simulator"
	"github.com/bnema/currency-gateway/internal/adapters/rpc/xmlrpc"
	"github.com/bnema/currency-gateway/internal/adapters/world/memory"
	"github.com/bnema/currency-gateway/internal/application"
	"github.com/bnema/currency-gateway/internal/config"
	"github.com/bnema/currency-gateway/internal/ports"
	"golang.org/x/sync/errgroup"
	"pkt.systems/pslog"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

var ErrDisabled = errors.New("economy module is not " + config.ModuleName)

// Gateway is the assembled currency gateway of one simulator.
type Gateway struct {
	cfg         config.Config
	ledger      ports.Ledger
	world       *memory.World
	outbox      *memory.Outbox
	notifier    ports.Notifier
	coordinator *application.Coordinator
	push        *application.PushService
	rpc         *xmlrpc.Server
	simulator   *xmlrpc.Server
	metrics     *prom.Metrics
	logger      pslog.Logger
}

type Option func(*options)

type options struct {
	world      *memory.World
	sessions   ports.SessionDirectory
	objects    ports.ObjectLocator
	users      ports.UserDirectory
	sales      ports.ObjectSales
	events     ports.WorldEvents
	notifier   ports.Notifier
	objectPaid []application.ObjectPaidHandler
	logger     pslog.Logger
	lookupHost remote.LookupHostFunc
	dispatch   func(func())
}

// WithWorld replaces the default in-memory world. Ports supplied with the
// other options still take precedence over its parts.
func WithWorld(world *memory.World) Option {
	return func(o *options) {
		o.world = world
	}
}

func WithSessions(sessions ports.SessionDirectory) Option {
	return func(o *options) {
		o.sessions = sessions
	}
}

func WithObjects(objects ports.ObjectLocator) Option {
	return func(o *options) {
		o.objects = objects
	}
}

func WithUsers(users ports.UserDirectory) Option {
	return func(o *options) {
		o.users = users
	}
}

func WithSales(sales ports.ObjectSales) Option {
	return func(o *options) {
		o.sales = sales
	}
}

// WithEvents attaches the coordinator to an external world event source.
func WithEvents(events ports.WorldEvents) Option {
	return func(o *options) {
		o.events = events
	}
}

// WithNotifier routes balance updates, alerts and messages to the caller
// instead of the in-memory outbox.
func WithNotifier(notifier ports.Notifier) Option {
	return func(o *options) {
		o.notifier = notifier
	}
}

func WithObjectPaid(handler application.ObjectPaidHandler) Option {
	return func(o *options) {
		o.objectPaid = append(o.objectPaid, handler)
	}
}

func WithLogger(logger pslog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithLookupHost(lookup remote.LookupHostFunc) Option {
	return func(o *options) {
		o.lookupHost = lookup
	}
}

func WithDispatch(dispatch func(func())) Option {
	return func(o *options) {
		o.dispatch = dispatch
	}
}

// New selects the ledger once from cfg and wires every component around it.
func New(cfg config.Config, opts ...Option) (*Gateway, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%q: %w", cfg.Economy.Module, ErrDisabled)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = pslog.NoopLogger()
	}
	if o.world == nil {
		o.world = memory.NewWorld()
	}

	var outbox *memory.Outbox
	if o.notifier == nil {
		outbox = memory.NewOutbox(o.logger)
		o.notifier = outbox
	}
	o.fillFromWorld()

	metrics := prom.New()
	ledger := newLedger(cfg, o)

	coordinator, err := application.NewCoordinator(application.Dependencies{
		Ledger:   ledger,
		Sessions: o.sessions,
		Objects:  o.objects,
		Users:    o.users,
		Notifier: o.notifier,
		Sales:    o.sales,
		Metrics:  metrics,
		Economy:  cfg.Economy.Prices,
		Logger:   o.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build coordinator: %w", err)
	}
	coordinator.Attach(o.events)

	pushOpts := []application.PushOption{application.WithPushLogger(o.logger)}
	if o.dispatch != nil {
		pushOpts = append(pushOpts, application.WithDispatch(o.dispatch))
	}
	push, err := application.NewPushService(o.sessions, ledger, o.notifier, pushOpts...)
	if err != nil {
		return nil, fmt.Errorf("build push service: %w", err)
	}
	if outbox != nil {
		push.SubscribeObjectPaid(outbox.ObjectPaid)
	}
	for _, handler := range o.objectPaid {
		push.SubscribeObjectPaid(handler)
	}

	rpc := xmlrpc.NewServer(o.logger.With("sys", "xmlrpc"))
	moneyserver.NewHandlers(push, metrics, o.logger).Register(rpc)

	var simulatorRPC *xmlrpc.Server
	if cfg.Server.SimulatorPath != "" && o.drivesMemoryWorld() && outbox != nil {
		simulatorRPC = xmlrpc.NewServer(o.logger.With("sys", "xmlrpc.simulator"))
		simulator.NewHandlers(o.world, outbox, o.logger).Register(simulatorRPC)
	}

	o.logger.Info("gateway.ready",
		"ledger", ledger.Name(),
		"currency_server", cfg.Economy.CurrencyServer,
		"rpc_path", cfg.Server.RPCPath,
		"simulator_bridge", simulatorRPC != nil,
	)

	return &Gateway{
		cfg:         cfg,
		ledger:      ledger,
		world:       o.world,
		outbox:      outbox,
		notifier:    o.notifier,
		coordinator: coordinator,
		push:        push,
		rpc:         rpc,
		simulator:   simulatorRPC,
		metrics:     metrics,
		logger:      o.logger.With("sys", "gateway"),
	}, nil
}

func (o *options) fillFromWorld() {
	if o.sessions == nil {
		o.sessions = o.world.Sessions
	}
	if o.objects == nil {
		o.objects = o.world.Objects
	}
	if o.users == nil {
		o.users = o.world.Users
	}
	if o.sales == nil {
		o.sales = o.world.Sales
	}
	if o.events == nil {
		o.events = o.world.Events
	}
}

// drivesMemoryWorld reports whether every world port is backed by the
// in-memory world, so the simulator endpoint can feed it.
func (o *options) drivesMemoryWorld() bool {
	return o.sessions == ports.SessionDirectory(o.world.Sessions) &&
		o.objects == ports.ObjectLocator(o.world.Objects) &&
		o.users == ports.UserDirectory(o.world.Users) &&
		o.events == ports.WorldEvents(o.world.Events)
}

func newLedger(cfg config.Config, o options) ports.Ledger {
	if !cfg.UsesRemoteLedger() {
		return local.NewLedger(cfg.Ledger.InitialBalance)
	}

	client := moneyserver.NewClient(cfg.Economy.CurrencyServer, cfg.Ledger.RequestTimeout, o.logger)
	ledgerOpts := []remote.Option{
		remote.WithUserDirectory(o.users),
		remote.WithLogger(o.logger),
	}
	if o.lookupHost != nil {
		ledgerOpts = append(ledgerOpts, remote.WithLookupHost(o.lookupHost))
	}

	return remote.NewLedger(client, cfg.Economy.UserServerURL, ledgerOpts...)
}

func (g *Gateway) Ledger() ports.Ledger {
	return g.ledger
}

func (g *Gateway) World() *memory.World {
	return g.world
}

// Outbox is nil when a notifier was supplied with WithNotifier.
func (g *Gateway) Outbox() *memory.Outbox {
	return g.outbox
}

func (g *Gateway) Notifier() ports.Notifier {
	return g.notifier
}

func (g *Gateway) Coordinator() *application.Coordinator {
	return g.coordinator
}

func (g *Gateway) Push() *application.PushService {
	return g.push
}

func (g *Gateway) Metrics() *prom.Metrics {
	return g.metrics
}

// Handler serves the inbound XML-RPC endpoint and, unless disabled, the
// simulator bridge and metrics.
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(g.cfg.Server.RPCPath, g.rpc)
	if g.simulator != nil {
		mux.Handle(g.cfg.Server.SimulatorPath, g.simulator)
	}
	if g.cfg.Server.MetricsPath != "" {
		mux.Handle(g.cfg.Server.MetricsPath, g.metrics.Handler())
	}
	return mux
}

// Serve runs the HTTP endpoint on ln until ctx ends, then shuts it down.
func (g *Gateway) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           g.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		g.logger.Info("gateway.listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		g.logger.Info("gateway.stopped")
		return nil
	})

	return group.Wait()
}

// ListenAndServe listens on the configured address.
func (g *Gateway) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", g.cfg.Server.Listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", g.cfg.Server.Listen, err)
	}

	return g.Serve(ctx, ln)
}
