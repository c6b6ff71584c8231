package observability

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total number of HTTP requests processed by the dashboard service.",
		},
		[]string{"method", "route", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
	snapshotEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_snapshot_events_total",
			Help: "Total number of live-query snapshot events consumed, per feed.",
		},
		[]string{"feed"},
	)
	wsActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_ws_active_connections",
			Help: "Number of active dashboard websocket connections.",
		},
	)
	repliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_replies_total",
			Help: "Total number of admin replies attempted, by dual-write outcome.",
		},
		[]string{"outcome"},
	)
	readMarksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_read_marks_total",
			Help: "Total number of message read-flag updates issued.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		snapshotEventsTotal,
		wsActiveConnections,
		repliesTotal,
		readMarksTotal,
	)
}

func HTTPMetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			httpRequestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func ObserveSnapshot(feed string) {
	snapshotEventsTotal.WithLabelValues(feed).Inc()
}

func WSConnected() {
	wsActiveConnections.Inc()
}

func WSDisconnected() {
	wsActiveConnections.Dec()
}

func CountReply(outcome string) {
	repliesTotal.WithLabelValues(outcome).Inc()
}

func CountReadMarks(n int) {
	readMarksTotal.Add(float64(n))
}
