package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	internalmiddleware "github.com/noah-isme/guidance-schedule-api/internal/middleware"
	"github.com/noah-isme/guidance-schedule-api/internal/models"
	"github.com/noah-isme/guidance-schedule-api/internal/service"
	"github.com/noah-isme/guidance-schedule-api/pkg/export"
)

// Wednesday.
var integrationNow = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.Local)

func buildScheduleRouter(t *testing.T, withExport bool) (*gin.Engine, *service.MetricsService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := func() time.Time { return integrationNow }
	metrics := service.NewMetricsService()
	sessions := service.NewScheduleSessionService(service.ScheduleSessionConfig{
		Hours:   service.DefaultWorkingHours(),
		IdleTTL: time.Hour,
	}, clock, validator.New(), zap.NewNop(), metrics)

	handlers := Handlers{
		Sessions: NewScheduleSessionHandler(sessions),
		Metrics:  NewMetricsHandler(metrics),
	}
	if withExport {
		exports := service.NewExportService(sessions, export.NewICSExporter("-//Test//EN"), service.ExportConfig{
			SessionDuration: time.Hour,
			EventSummary:    "Guidance session",
			DocumentTitle:   "Jadwal Bimbingan",
		}, clock, zap.NewNop(), metrics)
		handlers.Export = NewExportHandler(exports)
	}

	router := gin.New()
	router.Use(internalmiddleware.Metrics(metrics))
	RegisterRoutes(router, "/api/v1", handlers)
	return router, metrics
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, models.ScheduleView) {
	t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	var envelope struct {
		Data models.ScheduleView `json:"data"`
	}
	if resp.Code < 300 && resp.Code != http.StatusNoContent {
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	}
	return resp, envelope.Data
}

func TestScheduleRoutesIntegration(t *testing.T) {
	router, metrics := buildScheduleRouter(t, true)

	resp, opened := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, resp.Code)
	base := "/api/v1/sessions/" + opened.SessionID

	t.Run("add entry", func(t *testing.T) {
		resp, view := doJSON(t, router, http.MethodPost, base+"/add", "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, models.DialogDatePicker, view.Dialog.Mode)

		resp, view = doJSON(t, router, http.MethodPost, base+"/date", `{"date":"2026-10-15"}`)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, models.DialogTimePicker, view.Dialog.Mode)

		resp, view = doJSON(t, router, http.MethodPost, base+"/time", `{"hour":9,"minute":30}`)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, []string{"Thursday, 15 09:30"}, view.Displays())
	})

	t.Run("past date rejected", func(t *testing.T) {
		resp, _ := doJSON(t, router, http.MethodPost, base+"/date", `{"date":"2026-10-13"}`)
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Contains(t, resp.Body.String(), `"INVALID_DATE"`)
	})

	t.Run("import and edit", func(t *testing.T) {
		resp, view := doJSON(t, router, http.MethodPost, base+"/import", `{"lines":["Friday, 16 14:05"]}`)
		require.Equal(t, http.StatusOK, resp.Code)
		require.Len(t, view.Entries, 2)

		resp, view = doJSON(t, router, http.MethodPost, base+"/entries/1/edit", "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.True(t, view.Dialog.Editing)

		resp, _ = doJSON(t, router, http.MethodPost, base+"/date", `{"date":"2026-10-19"}`)
		require.Equal(t, http.StatusOK, resp.Code)
		resp, view = doJSON(t, router, http.MethodPost, base+"/time", `{"hour":16,"minute":59}`)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, []string{"Thursday, 15 09:30", "Monday, 19 16:59"}, view.Displays())
	})

	t.Run("index errors", func(t *testing.T) {
		resp, _ := doJSON(t, router, http.MethodPost, base+"/entries/x/menu", "")
		assert.Equal(t, http.StatusBadRequest, resp.Code)

		resp, _ = doJSON(t, router, http.MethodDelete, base+"/entries/5", "")
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), `"INDEX_OUT_OF_RANGE"`)
	})

	t.Run("export csv", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, base+"/export?format=csv", nil)
		resp := performRequest(router, req)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Disposition"), "guidance-schedule.csv")
		assert.Contains(t, resp.Body.String(), `"Monday, 19 16:59"`)
	})

	t.Run("export ics", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, base+"/export?format=ics", nil)
		resp := performRequest(router, req)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, 2, strings.Count(resp.Body.String(), "BEGIN:VEVENT"))
	})

	t.Run("export unsupported", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, base+"/export?format=xlsx", nil)
		resp := performRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("metrics summary", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/metrics/summary", nil)
		resp := performRequest(router, req)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"active_sessions":1`)
		assert.Positive(t, metrics.Snapshot().RejectionsTotal)
	})

	t.Run("close", func(t *testing.T) {
		resp, _ := doJSON(t, router, http.MethodDelete, base, "")
		require.Equal(t, http.StatusNoContent, resp.Code)

		resp, _ = doJSON(t, router, http.MethodGet, base, "")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestScheduleRoutesWithoutExport(t *testing.T) {
	router, _ := buildScheduleRouter(t, false)

	resp, opened := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, resp.Code)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sessions/"+opened.SessionID+"/export", nil)
	assert.Equal(t, http.StatusNotFound, performRequest(router, req).Code)

	req, _ = http.NewRequest(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, performRequest(router, req).Code)
}
