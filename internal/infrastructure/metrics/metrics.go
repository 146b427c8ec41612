package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the persistence path.
type Metrics struct {
	StateSaves        *prometheus.CounterVec
	StateSaveDuration prometheus.Histogram
	StateVersion      prometheus.Gauge
}

// New creates and registers all metrics.
func New() *Metrics {
	return &Metrics{
		StateSaves: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "artha_state_saves_total",
				Help: "Total state document saves by outcome",
			},
			[]string{"status"},
		),
		StateSaveDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "artha_state_save_duration_seconds",
			Help:    "Duration of state document saves",
			Buckets: prometheus.DefBuckets,
		}),
		StateVersion: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "artha_state_version",
			Help: "Version of the last persisted state snapshot",
		}),
	}
}
