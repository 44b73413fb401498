// Package metrics exposes broker counters and HTTP request metrics to Prometheus.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/service"
	"wearsync/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wearsync"

// Metrics owns a private registry so tests and multiple apps never collide on global state.
type Metrics struct {
	registry *prometheus.Registry

	tokenRefreshes      *prometheus.CounterVec
	syncs               *prometheus.CounterVec
	syncDuration        prometheus.Histogram
	providerCalls       *prometheus.CounterVec
	providerLatency     *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		tokenRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refreshes_total",
			Help:      "Provider token refreshes by outcome.",
		}, []string{"outcome"}),
		syncs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "daily_syncs_total",
			Help:      "Daily reconciliations by outcome.",
		}, []string{"outcome"}),
		syncDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "daily_sync_duration_seconds",
			Help:      "Latency of a full daily reconciliation.",
			Buckets:   prometheus.DefBuckets,
		}),
		providerCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Calls to the wearable provider by operation and status.",
		}, []string{"operation", "status"}),
		providerLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Latency of calls to the wearable provider.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests processed.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of latencies for HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// NewRecorder exposes m as the domain-facing recorder.
func NewRecorder(m *Metrics) service.MetricsRecorder {
	return m
}

func (m *Metrics) ObserveTokenRefresh(outcome string) {
	m.tokenRefreshes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveSync(outcome string, elapsed time.Duration) {
	m.syncs.WithLabelValues(outcome).Inc()
	m.syncDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveProviderCall(operation string, status int, elapsed time.Duration) {
	m.providerCalls.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	m.providerLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Middleware records request count and latency labelled by the matched echo route.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = errorStatus(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		m.httpRequestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

// errorStatus is the status the error handler will write for err.
func errorStatus(err error) int {
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return domainerrors.HTTPStatusOf(err)
}

// RegisterDBStats exports the connection pool statistics of db.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	if err := m.registry.Register(collectors.NewDBStatsCollector(db, dbName)); err != nil {
		return errors.Wrap(err, "register db stats collector")
	}

	return nil
}

// Handler exposes the Prometheus metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

type noop struct{}

// Noop returns a recorder that drops everything.
func Noop() service.MetricsRecorder {
	return noop{}
}

func (noop) ObserveTokenRefresh(string) {}
func (noop) ObserveSync(string, time.Duration) {}
func (noop) ObserveProviderCall(string, int, time.Duration) {}
