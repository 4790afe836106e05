package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const service = "easy-event-api"

var (
	// HTTP request counter
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status", "service"},
	)

	// HTTP request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "service"},
	)

	// Offline ticket sheet batches by outcome
	TicketSheetBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_sheet_batches_total",
			Help: "Total number of offline ticket sheet batches",
		},
		[]string{"status", "service"},
	)

	TicketsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_sheet_tickets_rendered_total",
			Help: "Total number of tickets placed on offline sheets",
		},
		[]string{"service"},
	)

	TicketRenderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_sheet_render_failures_total",
			Help: "Total number of tickets that failed to render",
		},
		[]string{"service"},
	)

	TicketSheetDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ticket_sheet_duration_seconds",
			Help:    "Offline ticket sheet generation latency in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"service"},
	)

	// Ticket operations counter
	TicketOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_operations_total",
			Help: "Total number of ticket operations",
		},
		[]string{"operation", "status", "service"},
	)
)

// PrometheusMiddleware records HTTP metrics
func PrometheusMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		endpoint := c.Route().Path
		RequestsTotal.WithLabelValues(c.Method(), endpoint, strconv.Itoa(status), service).Inc()
		RequestDuration.WithLabelValues(c.Method(), endpoint, service).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler exposes the default registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// RecordTicketSheet records the outcome of one offline ticket sheet batch.
func RecordTicketSheet(status string, rendered int, failed int, duration time.Duration) {
	TicketSheetBatches.WithLabelValues(status, service).Inc()
	TicketsRendered.WithLabelValues(service).Add(float64(rendered))
	TicketRenderFailures.WithLabelValues(service).Add(float64(failed))
	TicketSheetDuration.WithLabelValues(service).Observe(duration.Seconds())
}

// RecordTicketOperation counts issue, register and regenerate operations.
func RecordTicketOperation(operation string, status string, count int) {
	TicketOperations.WithLabelValues(operation, status, service).Add(float64(count))
}
