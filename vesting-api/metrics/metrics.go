package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/satlayer/satlayer-vesting/vesting-api/logger"
	"github.com/satlayer/satlayer-vesting/vesting-api/utils"
)

type Metrics interface {
	Start(ctx context.Context) <-chan error
}

// VestingMetrics serves the registry of one hosted vesting contract.
type VestingMetrics struct {
	listen   string
	contract string
	gatherer prometheus.Gatherer
	logger   logger.Logger
}

var _ Metrics = (*VestingMetrics)(nil)

func NewVestingMetrics(listen, contract string, gatherer prometheus.Gatherer, l logger.Logger) *VestingMetrics {
	return &VestingMetrics{
		listen:   listen,
		contract: contract,
		gatherer: gatherer,
		logger:   l,
	}
}

// Handler routes "/metrics" to the gatherer and "/ready" to a readiness check naming the contract.
func (m *VestingMetrics) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "contract": m.contract})
	})
	return mux
}

// Start serves Handler until ctx is done. The returned channel is closed after shutdown.
func (m *VestingMetrics) Start(ctx context.Context) <-chan error {
	fields := []logger.Field{
		logger.WithField("listen", m.listen),
		logger.WithField("contract", m.contract),
	}
	m.logger.Info("Starting metrics server", fields...)

	errChan := make(chan error, 1)
	httpServer := http.Server{
		Addr:    m.listen,
		Handler: m.Handler(),
	}

	go func() {
		<-ctx.Done()
		defer close(errChan)

		if err := httpServer.Shutdown(context.Background()); err != nil {
			errChan <- err
		}
		m.logger.Info("Metrics server stopped", fields...)
	}()

	go func() {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errChan <- utils.WrapError("prometheus server failed", err)
		}
	}()
	return errChan
}
