package service

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/guidance-schedule-api/internal/models"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	operations      *prometheus.CounterVec
	rejections      *prometheus.CounterVec
	activeSessions  prometheus.Gauge

	requestCount         uint64
	requestDurationTotal uint64
	operationCount       uint64
	rejectionCount       uint64
	activeSessionCount   int64

	mu               sync.Mutex
	rejectionReasons map[string]uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_operations_total",
		Help: "Schedule manager operations by outcome",
	}, []string{"operation", "outcome"})

	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_rejections_total",
		Help: "Rejected schedule operations by reason",
	}, []string{"reason"})

	activeSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_sessions_active",
		Help: "Open schedule screen sessions",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, operations, rejections, activeSessions, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:         registry,
		handler:          handler,
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		operations:       operations,
		rejections:       rejections,
		activeSessions:   activeSessions,
		rejectionReasons: make(map[string]uint64),
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveScheduleOperation counts one manager operation. A RejectionError
// also increments the per-reason rejection counter.
func (m *MetricsService) ObserveScheduleOperation(operation string, err error) {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.operationCount, 1)
	if err == nil {
		m.operations.WithLabelValues(operation, outcomeAccepted).Inc()
		return
	}

	var rej *RejectionError
	if !errors.As(err, &rej) {
		m.operations.WithLabelValues(operation, outcomeError).Inc()
		return
	}
	reason := string(rej.Reason)
	m.operations.WithLabelValues(operation, outcomeRejected).Inc()
	m.rejections.WithLabelValues(reason).Inc()
	atomic.AddUint64(&m.rejectionCount, 1)

	m.mu.Lock()
	m.rejectionReasons[reason]++
	m.mu.Unlock()
}

// SetActiveSessions publishes the number of open screen sessions.
func (m *MetricsService) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
	atomic.StoreInt64(&m.activeSessionCount, int64(n))
}

// Snapshot returns aggregated metrics suitable for the summary endpoint.
func (m *MetricsService) Snapshot() models.MetricsSnapshot {
	if m == nil {
		return models.MetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	m.mu.Lock()
	reasons := make(map[string]uint64, len(m.rejectionReasons))
	for reason, count := range m.rejectionReasons {
		reasons[reason] = count
	}
	m.mu.Unlock()

	return models.MetricsSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		OperationsTotal:          atomic.LoadUint64(&m.operationCount),
		RejectionsTotal:          atomic.LoadUint64(&m.rejectionCount),
		RejectionsByReason:       reasons,
		ActiveSessions:           int(atomic.LoadInt64(&m.activeSessionCount)),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
