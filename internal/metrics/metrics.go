package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EventsProcessedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dlx_events_processed_total", Help: "Processed events count"},
		[]string{"event_type"},
	)
	EventsFailedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dlx_events_failed_total", Help: "Failed events count"},
		[]string{"event_type"},
	)
	EventsEmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dlx_events_emitted_total", Help: "Emitted events count"},
		[]string{"event_type"},
	)
	ContractCallsFailedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dlx_contract_calls_failed_total", Help: "Soft-failed contract view calls"},
		[]string{"method"},
	)
	HandleDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "dlx_handle_duration_seconds", Help: "Event handling duration", Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}},
		[]string{"event_type"},
	)
	MetadataFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dlx_metadata_fetches_total", Help: "Metadata fetch attempts"},
		[]string{"result"},
	)
	LastProcessedBlock = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "dlx_last_processed_block", Help: "Last processed block number"},
	)

	lastBlock uint64
)

func MustRegister() {
	prometheus.MustRegister(
		EventsProcessedTotal,
		EventsFailedTotal,
		EventsEmittedTotal,
		ContractCallsFailedTotal,
		HandleDuration,
		MetadataFetchesTotal,
		LastProcessedBlock,
	)
}

func IncProcessed(eventType string) { EventsProcessedTotal.WithLabelValues(eventType).Inc() }
func IncFailed(eventType string)    { EventsFailedTotal.WithLabelValues(eventType).Inc() }
func IncEmitted(eventType string)   { EventsEmittedTotal.WithLabelValues(eventType).Inc() }

func IncContractCallFailed(method string) {
	ContractCallsFailedTotal.WithLabelValues(method).Inc()
}

func ObserveHandle(eventType string, d time.Duration) {
	HandleDuration.WithLabelValues(eventType).Observe(d.Seconds())
}

func IncMetadataFetch(result string) { MetadataFetchesTotal.WithLabelValues(result).Inc() }

func SetLastProcessedBlock(block uint64) {
	atomic.StoreUint64(&lastBlock, block)
	LastProcessedBlock.Set(float64(block))
}

// Serve exposes the registry on /metrics. It blocks, so callers run it
// in its own goroutine.
func Serve(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
