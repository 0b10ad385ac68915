// Package metrics provides Prometheus metrics collection for the storefront service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartOperationsTotal tracks cart mutations by operation and result.
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation", "result"},
	)

	// OrdersSubmittedTotal tracks submitted orders by result.
	OrdersSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Total number of checkout submissions",
		},
		[]string{"result"},
	)

	// OrderValue tracks order totals in currency units.
	OrderValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_value",
			Help:    "Order total including delivery fee",
			Buckets: []float64{10, 20, 30, 50, 75, 100, 150, 250},
		},
	)

	// SessionStoreOperationsTotal tracks cart session store operations.
	SessionStoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_operations_total",
			Help: "Total number of cart session store operations",
		},
		[]string{"operation", "result"},
	)

	// ActiveCartSessions tracks the current number of live cart sessions.
	ActiveCartSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_cart_sessions",
			Help: "Current number of active cart sessions",
		},
	)

	// CartSessionCapacity tracks the cart session store capacity.
	CartSessionCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_session_capacity",
			Help: "Cart session store capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartOperation records metrics for a cart mutation.
func RecordCartOperation(operation, result string) {
	CartOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordSessionStoreOperation records metrics for a session store operation.
func RecordSessionStoreOperation(operation, result string) {
	SessionStoreOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordOrderSubmission records metrics for a checkout submission.
func RecordOrderSubmission(result string, total float64) {
	OrdersSubmittedTotal.WithLabelValues(result).Inc()
	if result == "success" {
		OrderValue.Observe(total)
	}
}

// UpdateSessionMetrics updates cart session store size and capacity metrics.
func UpdateSessionMetrics(size, capacity int) {
	ActiveCartSessions.Set(float64(size))
	CartSessionCapacity.Set(float64(capacity))
}
