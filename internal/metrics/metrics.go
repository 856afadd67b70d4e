package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business
	SwapRequestsCreated *prometheus.CounterVec
	SwapTransitions     *prometheus.CounterVec
	PointsMoved         *prometheus.CounterVec
	ItemsListed         prometheus.Counter

	// Database
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
	DBQueryDuration    *prometheus.HistogramVec
	DBQueriesTotal     *prometheus.CounterVec
	DBConnectionErrors prometheus.Counter

	// Validation
	ValidationErrors   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchange_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "exchange_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		SwapRequestsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_swap_requests_created_total",
				Help: "Swap requests created, by offer kind",
			},
			[]string{"kind"},
		),
		SwapTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_swap_transitions_total",
				Help: "Swap request status transitions applied",
			},
			[]string{"to"},
		),
		PointsMoved: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_points_moved_total",
				Help: "Absolute points moved through the ledger, by transaction type",
			},
			[]string{"type"},
		),
		ItemsListed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "exchange_items_listed_total",
				Help: "Items listed on the platform",
			},
		),
		DBConnectionsInUse: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "exchange_db_connections_in_use",
				Help: "Number of database connections currently in use",
			},
		),
		DBConnectionsIdle: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "exchange_db_connections_idle",
				Help: "Number of idle database connections",
			},
		),
		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchange_db_query_duration_seconds",
				Help:    "Duration of database queries in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"operation", "table"},
		),
		DBQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation", "table", "status"},
		),
		DBConnectionErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "exchange_db_connection_errors_total",
				Help: "Total number of database connection errors",
			},
		),
		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_validation_errors_total",
				Help: "Request validation failures",
			},
			[]string{"field", "tag"},
		),
		ValidationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchange_validation_duration_seconds",
				Help:    "Duration of request validation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordSwapRequestCreated(kind string) {
	m.SwapRequestsCreated.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordSwapTransition(to string) {
	m.SwapTransitions.WithLabelValues(to).Inc()
}

func (m *Metrics) RecordPointsMoved(txType string, points int64) {
	if points < 0 {
		points = -points
	}
	m.PointsMoved.WithLabelValues(txType).Add(float64(points))
}

func (m *Metrics) RecordItemListed() {
	m.ItemsListed.Inc()
}

func (m *Metrics) RecordDBQuery(operation, table, status string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(operation, table, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func (m *Metrics) RecordDBConnectionError() {
	m.DBConnectionErrors.Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) RecordValidationDuration(operation string, duration time.Duration) {
	m.ValidationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
