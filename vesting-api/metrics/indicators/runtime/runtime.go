package runtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/satlayer/satlayer-vesting/vesting-api/metrics/consts"
)

// PromIndicators counts contract invocations and the transfers they settle.
type PromIndicators struct {
	invocationsTotal          *prometheus.CounterVec
	invocationDurationSeconds *prometheus.HistogramVec
	transfersTotal            *prometheus.CounterVec
}

func NewPromIndicators(contract string, reg prometheus.Registerer) *PromIndicators {
	return &PromIndicators{
		invocationsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   consts.VestingPromNamespace,
				Name:        "invocations_total",
				Help:        "Total number of contract invocations by entry point, method and status",
				ConstLabels: prometheus.Labels{"contract": contract},
			},
			[]string{"entry_point", "method", "status"},
		),
		invocationDurationSeconds: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   consts.VestingPromNamespace,
				Name:        "invocation_duration_seconds",
				Help:        "Duration of contract invocations in seconds",
				ConstLabels: prometheus.Labels{"contract": contract},
			},
			[]string{"entry_point"},
		),
		transfersTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   consts.VestingPromNamespace,
				Name:        "transfers_total",
				Help:        "Total number of outbound transfers settled by the host",
				ConstLabels: prometheus.Labels{"contract": contract},
			},
			[]string{"kind", "denom"},
		),
	}
}

// AddInvocation counts one invocation. status is "ok" or "error".
func (p *PromIndicators) AddInvocation(entryPoint, method, status string) {
	p.invocationsTotal.With(prometheus.Labels{
		"entry_point": entryPoint,
		"method":      method,
		"status":      status,
	}).Inc()
}

func (p *PromIndicators) ObserveInvocationDurationSeconds(duration float64, entryPoint string) {
	p.invocationDurationSeconds.With(prometheus.Labels{
		"entry_point": entryPoint,
	}).Observe(duration)
}

// AddTransfer counts one settled transfer. kind is "bank" or "cw20".
func (p *PromIndicators) AddTransfer(kind, denom string) {
	p.transfersTotal.With(prometheus.Labels{
		"kind":  kind,
		"denom": denom,
	}).Inc()
}
