package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Refresh outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeLoadError = "load_error"
	OutcomeNoData    = "no_data"
)

// Selection change sources.
const (
	SourceUser         = "user"
	SourceNotification = "notification"
	SourceRestore      = "restore"
)

// Metrics holds the Prometheus collectors for the dashboard.
type Metrics struct {
	Refreshes        *prometheus.CounterVec // labels: outcome={success,load_error,no_data}
	RefreshDuration  prometheus.Histogram
	Advisories       *prometheus.CounterVec // labels: status
	SelectionChanges *prometheus.CounterVec // labels: source={user,notification,restore}
	WeatherRows      prometheus.Gauge
}

func newCollectors(withHelp bool) *Metrics {
	help := func(s string) string {
		if withHelp {
			return s
		}
		return ""
	}
	return &Metrics{
		Refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm_dashboard",
			Name:      "refreshes_total",
			Help:      help("Dashboard refreshes by outcome."),
		}, []string{"outcome"}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "farm_dashboard",
			Name:      "refresh_duration_seconds",
			Help:      help("Duration of loading both CSV files and evaluating the advisor."),
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		Advisories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm_dashboard",
			Name:      "advisories_total",
			Help:      help("Irrigation advisories produced by status."),
		}, []string{"status"}),
		SelectionChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm_dashboard",
			Name:      "crop_selection_changes_total",
			Help:      help("Crop selection changes by source."),
		}, []string{"source"}),
		WeatherRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "farm_dashboard",
			Name:      "weather_rows",
			Help:      help("Weather observations loaded by the latest successful refresh."),
		}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newCollectors(true)
	prometheus.MustRegister(
		m.Refreshes,
		m.RefreshDuration,
		m.Advisories,
		m.SelectionChanges,
		m.WeatherRows,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newCollectors(false)
}
