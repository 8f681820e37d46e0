package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larana_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "larana_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	cartOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larana_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation", "status"},
	)

	ordersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "larana_orders_placed_total",
			Help: "Total number of orders placed at checkout",
		},
	)

	orderStatusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larana_order_status_updates_total",
			Help: "Total number of admin order status updates",
		},
		[]string{"to", "status"},
	)

	adminLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larana_admin_logins_total",
			Help: "Total number of admin login attempts",
		},
		[]string{"status"},
	)

	bookings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larana_bookings_total",
			Help: "Total number of appointment booking requests",
		},
		[]string{"status"},
	)

	eventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larana_events_published_total",
			Help: "Total number of order events handed to the publisher",
		},
		[]string{"topic", "status"},
	)
)

func result(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// Middleware records request count and latency by route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				path = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		code := strconv.Itoa(status)
		httpRequestsTotal.WithLabelValues(r.Method, path, code).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, code).Observe(time.Since(start).Seconds())
	})
}

func Handler() http.Handler { return promhttp.Handler() }

func RecordCartOperation(operation string, success bool) {
	cartOperations.WithLabelValues(operation, result(success)).Inc()
}

func RecordOrderPlaced() { ordersPlaced.Inc() }

func RecordStatusUpdate(to string, success bool) {
	orderStatusUpdates.WithLabelValues(to, result(success)).Inc()
}

func RecordLogin(success bool) {
	adminLogins.WithLabelValues(result(success)).Inc()
}

func RecordPublish(topic string, success bool) {
	eventsPublished.WithLabelValues(topic, result(success)).Inc()
}

func RecordBooking(success bool) {
	bookings.WithLabelValues(result(success)).Inc()
}
