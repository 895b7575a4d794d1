package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/guidance-schedule-api/internal/dto"
	"github.com/noah-isme/guidance-schedule-api/internal/service"
	appErrors "github.com/noah-isme/guidance-schedule-api/pkg/errors"
	"github.com/noah-isme/guidance-schedule-api/pkg/response"
)

type scheduleExporter interface {
	Export(ctx context.Context, sessionID, format string) (*service.ExportFile, error)
}

// ExportHandler serves schedule downloads.
type ExportHandler struct {
	service scheduleExporter
}

// NewExportHandler constructs the export handler.
func NewExportHandler(svc scheduleExporter) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Export godoc
// @Summary Download the schedule
// @Tags Schedule Sessions
// @Produce text/csv,application/pdf,text/calendar
// @Param id path string true "Session ID"
// @Param format query string false "csv, pdf or ics"
// @Success 200 {file} file
// @Router /sessions/{id}/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	var query dto.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export query"))
		return
	}
	file, err := h.service.Export(c.Request.Context(), c.Param("id"), query.Format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Body)
}
