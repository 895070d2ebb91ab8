package prometheus

import (
	"time"

	"github.com/pedroescher01/gestorpro-premium-sub001/internal/inventory"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector the service exports
type Metrics struct {
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthErrorsCounter prometheus.Counter

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec

	// Recipe metrics
	RecipeOperationsCounter *prometheus.CounterVec

	// Inventory metrics
	ProductInventoryGauge *prometheus.GaugeVec
	StockStatusGauge      *prometheus.GaugeVec

	// Report metrics
	InventoryValueGauge prometheus.Gauge
	BalanceGauge        prometheus.Gauge
	PendingSalesGauge   prometheus.Gauge
	StockAlertsGauge    prometheus.Gauge
}

// InitMetrics registers the collectors on reg under prefix
func InitMetrics(prefix string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		AuthErrorsCounter: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_auth_errors_total",
				Help: "Total number of rejected bearer tokens",
			},
		),
		DbOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_db_operation_duration_seconds",
				Help:    "Duration of database operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation_type"},
		),
		RecipeOperationsCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_recipe_operations_total",
				Help: "Total number of recipe operations",
			},
			[]string{"operation", "outcome"},
		),
		ProductInventoryGauge: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "_product_inventory",
				Help: "Current inventory level for products",
			},
			[]string{"product_id"},
		),
		StockStatusGauge: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "_products_by_stock_status",
				Help: "Number of products in each stock status",
			},
			[]string{"status"},
		),
		InventoryValueGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "_inventory_value",
				Help: "Total inventory value at unit price",
			},
		),
		BalanceGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "_cash_balance",
				Help: "Paid income minus paid expense",
			},
		),
		PendingSalesGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "_pending_sales",
				Help: "Number of sales awaiting completion",
			},
		),
		StockAlertsGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "_stock_alerts",
				Help: "Number of products low on stock or out of stock",
			},
		),
	}
}

// TrackDBOperation returns a function that records the duration of a database operation
func (m *Metrics) TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		m.DbOperationDuration.WithLabelValues(operationType).Observe(time.Since(startTime).Seconds())
	}
}

// RecordRecipeOperation increments the counter for recipe operations
func (m *Metrics) RecordRecipeOperation(operation, outcome string) {
	m.RecipeOperationsCounter.WithLabelValues(operation, outcome).Inc()
}

// UpdateInventory sets the per-product and per-status gauges. Series of
// products absent from assessments are dropped.
func (m *Metrics) UpdateInventory(assessments []inventory.Assessment) {
	m.ProductInventoryGauge.Reset()
	counts := make(map[inventory.StockStatus]int, len(inventory.Statuses))
	for _, a := range assessments {
		m.ProductInventoryGauge.WithLabelValues(a.ProductID).Set(float64(a.StockQuantity))
		counts[a.Status]++
	}
	for _, st := range inventory.Statuses {
		m.StockStatusGauge.WithLabelValues(string(st)).Set(float64(counts[st]))
	}
}

// UpdateSummary publishes the headline report figures
func (m *Metrics) UpdateSummary(s report.Summary) {
	m.InventoryValueGauge.Set(s.TotalInventoryValue.InexactFloat64())
	m.BalanceGauge.Set(s.Balance.InexactFloat64())
	m.PendingSalesGauge.Set(float64(s.PendingSalesCount))
	m.StockAlertsGauge.Set(float64(s.AlertCount()))
	for st, n := range s.StatusCounts {
		m.StockStatusGauge.WithLabelValues(string(st)).Set(float64(n))
	}
}
