package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database operation metrics
	DBOperationDuration *prometheus.HistogramVec

	// Business metrics
	OrdersCreatedTotal    prometheus.Counter
	OrdersRejectedTotal   *prometheus.CounterVec
	CommandsTotal         *prometheus.CounterVec
	ProductStockGauge     *prometheus.GaugeVec
	AdsGeneratedTotal     *prometheus.CounterVec
	MessagesProcessedTotal prometheus.Counter

	initOnce sync.Once
)

// Init registers all collectors with the given metric name prefix.
// Safe to call more than once; only the first call registers.
func Init(prefix string) {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		DBOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_db_operation_duration_seconds",
				Help:    "Duration of database operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation_type"},
		)

		OrdersCreatedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_orders_created_total",
				Help: "Total number of orders created",
			},
		)

		OrdersRejectedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_orders_rejected_total",
				Help: "Total number of rejected order attempts",
			},
			[]string{"reason"},
		)

		CommandsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_whatsapp_commands_total",
				Help: "Total number of processed WhatsApp commands",
			},
			[]string{"command"},
		)

		ProductStockGauge = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "_product_stock",
				Help: "Current stock level per product",
			},
			[]string{"product_id", "category"},
		)

		AdsGeneratedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_ads_generated_total",
				Help: "Total number of generated social media ads",
			},
			[]string{"platform"},
		)

		MessagesProcessedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_whatsapp_messages_total",
				Help: "Total number of stored WhatsApp messages",
			},
		)
	})
}

// TrackDBOperation records the duration of a database operation:
//
//	defer metrics.TrackDBOperation("create_order")(time.Now())
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if DBOperationDuration == nil {
			return
		}
		DBOperationDuration.WithLabelValues(operationType).Observe(time.Since(startTime).Seconds())
	}
}

// RecordCommand increments the counter for an interpreted command.
func RecordCommand(command string) {
	if CommandsTotal == nil {
		return
	}
	if command == "" {
		command = "greeting"
	}
	CommandsTotal.WithLabelValues(command).Inc()
}

// SetProductStock updates the stock gauge for a product.
func SetProductStock(productID, category string, stock int) {
	if ProductStockGauge == nil {
		return
	}
	ProductStockGauge.WithLabelValues(productID, category).Set(float64(stock))
}
