// Package metrics holds the client-side request counters.
package metrics

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for Requests.
const (
	OutcomeOK       = "ok"
	OutcomeFailed   = "failed"
	OutcomeInternal = "internal"
)

// Result labels for Refreshes.
const (
	RefreshSucceeded = "succeeded"
	RefreshFailed    = "failed"
	RefreshShared    = "shared"
)

// Metrics counts authenticated calls, refreshes and retries.
type Metrics struct {
	Requests  *prometheus.CounterVec
	Refreshes *prometheus.CounterVec
	Retries   prometheus.Counter

	gatherer prometheus.Gatherer
}

// New creates the counters and registers them on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assigna",
			Name:      "requests_total",
			Help:      "Authenticated API calls by method and outcome.",
		}, []string{"method", "outcome"}),
		Refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assigna",
			Name:      "token_refreshes_total",
			Help:      "Refresh-token exchanges triggered by 401/403 responses.",
		}, []string{"result"}),
		Retries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "assigna",
			Name:      "retries_total",
			Help:      "Requests re-issued after an authorization failure.",
		}),
		gatherer: reg,
	}
	reg.MustRegister(m.Requests, m.Refreshes, m.Retries)
	return m
}

// Log writes every non-zero counter to logger at debug level.
func (m *Metrics) Log(logger *slog.Logger) {
	families, err := m.gatherer.Gather()
	if err != nil {
		logger.Debug("gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			value := metric.GetCounter().GetValue()
			if value == 0 {
				continue
			}
			attrs := []any{"metric", mf.GetName(), "value", value}
			for _, lp := range metric.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			logger.Debug("counter", attrs...)
		}
	}
}
