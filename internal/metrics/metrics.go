package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values of ObjectsProcessed.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

type Metrics struct {
	ObjectsProcessed *prometheus.CounterVec
	DecodeErrors     *prometheus.CounterVec
	TranslateSeconds prometheus.Histogram
	ActiveWorkers    prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ObjectsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "linear_objects_processed_total",
			Help: "Total number of processed linear object entries.",
		}, []string{"status"}),
		DecodeErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "linear_object_decode_errors_total",
			Help: "Total number of entries rejected while decoding or translating a linear object.",
		}, []string{"reason"}),
		TranslateSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "linear_object_translate_duration_seconds",
			Help:    "Duration of decoding, translating and encoding a single entry.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "linear_object_active_workers",
			Help: "Current number of workers translating entries.",
		}),
	}
}
