package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exposed on /metrics.
var Registry = prometheus.NewRegistry()

var (
	// Calculations counts calculate requests by outcome: ok, validation_error, computation_error.
	Calculations = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_calculations_total",
			Help: "Mortgage calculations by outcome",
		},
		[]string{"status"},
	)

	// HistoryWrites counts history inserts by outcome: ok, error.
	HistoryWrites = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_history_writes_total",
			Help: "Calculation history inserts by outcome",
		},
		[]string{"status"},
	)

	MonthlyPayment = promauto.With(Registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mortgage_monthly_payment",
			Help:    "Distribution of computed monthly payments",
			Buckets: prometheus.ExponentialBuckets(100, 2, 12),
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
