package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/guidance-schedule-api/internal/service"
	appErrors "github.com/noah-isme/guidance-schedule-api/pkg/errors"
)

type scheduleExporterMock struct {
	format string
	err    error
}

func (m *scheduleExporterMock) Export(ctx context.Context, sessionID, format string) (*service.ExportFile, error) {
	m.format = format
	if m.err != nil {
		return nil, m.err
	}
	return &service.ExportFile{Filename: "guidance-schedule.pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.3")}, nil
}

func TestExportHandlerStreamsAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &scheduleExporterMock{}
	handler := NewExportHandler(mock)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/sessions/s-1/export?format=pdf", nil)
	c.Params = gin.Params{{Key: "id", Value: "s-1"}}

	handler.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pdf", mock.format)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="guidance-schedule.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}

func TestExportHandlerPropagatesErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExportHandler(&scheduleExporterMock{err: appErrors.Clone(appErrors.ErrNotFound, "schedule session not found")})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/sessions/missing/export", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Export(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"NOT_FOUND"`)
}
