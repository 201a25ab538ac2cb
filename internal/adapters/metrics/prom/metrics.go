package prom

import (
	"net/http"
	"strconv"

	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "currency_gateway"

// Metrics exports transaction and push counters on a private registry.
type Metrics struct {
	registry     *prometheus.Registry
	transactions *prometheus.CounterVec
	pushCalls    *prometheus.CounterVec
}

var _ ports.Metrics = (*Metrics)(nil)

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "Balance-affecting transactions by ledger, kind and outcome.",
		}, []string{"ledger", "kind", "category", "outcome"}),
		pushCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_requests_total",
			Help:      "Inbound money server calls by method and result.",
		}, []string{"method", "success"}),
	}

	registry.MustRegister(
		m.transactions,
		m.pushCalls,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) TransactionApplied(ledger string, kind domain.TransactionKind) {
	m.transactions.WithLabelValues(ledger, kind.String(), kind.Category().String(), "applied").Inc()
}

// TransactionFailed uses the failure reason as the outcome label.
func (m *Metrics) TransactionFailed(ledger string, kind domain.TransactionKind, reason string) {
	if reason == "" {
		reason = "failed"
	}
	m.transactions.WithLabelValues(ledger, kind.String(), kind.Category().String(), reason).Inc()
}

func (m *Metrics) PushHandled(method string, ok bool) {
	m.pushCalls.WithLabelValues(method, strconv.FormatBool(ok)).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
