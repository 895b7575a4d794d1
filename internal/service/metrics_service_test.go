package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceScheduleOperations(t *testing.T) {
	m := NewMetricsService()

	m.ObserveScheduleOperation("propose_time", nil)
	m.ObserveScheduleOperation("propose_time", reject(ReasonInvalidTime, "17:00"))
	m.ObserveScheduleOperation("propose_date", reject(ReasonInvalidDate, "yesterday"))
	m.ObserveScheduleOperation("export", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("propose_time", outcomeAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("propose_time", outcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("export", outcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues(string(ReasonInvalidTime))))

	snap := m.Snapshot()
	assert.EqualValues(t, 4, snap.OperationsTotal)
	assert.EqualValues(t, 2, snap.RejectionsTotal)
	assert.EqualValues(t, 1, snap.RejectionsByReason["invalid_date"])
}

func TestMetricsServiceHTTPAndSessions(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/sessions/:id", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/sessions/:id", http.StatusOK, 40*time.Millisecond)
	m.SetActiveSessions(3)

	snap := m.Snapshot()
	assert.EqualValues(t, 2, snap.RequestsTotal)
	assert.InDelta(t, 30, snap.AverageRequestDurationMs, 0.01)
	assert.Equal(t, 3, snap.ActiveSessions)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.activeSessions))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "schedule_sessions_active 3")
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveScheduleOperation("begin_add", nil)
	m.SetActiveSessions(1)
	assert.Equal(t, 0, m.Snapshot().ActiveSessions)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
