package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/guidance-schedule-api/internal/dto"
	"github.com/noah-isme/guidance-schedule-api/internal/models"
	appErrors "github.com/noah-isme/guidance-schedule-api/pkg/errors"
	"github.com/noah-isme/guidance-schedule-api/pkg/response"
)

type scheduleSessionService interface {
	Open(ctx context.Context) (*models.ScheduleView, error)
	Get(ctx context.Context, id string) (*models.ScheduleView, error)
	Close(ctx context.Context, id string) error
	BeginAdd(ctx context.Context, id string) (*models.ScheduleView, error)
	SelectEntry(ctx context.Context, id string, index int) (*models.ScheduleView, error)
	BeginEdit(ctx context.Context, id string, index int) (*models.ScheduleView, error)
	ProposeDate(ctx context.Context, id string, req dto.ProposeDateRequest) (*models.ScheduleView, error)
	ProposeTime(ctx context.Context, id string, req dto.ProposeTimeRequest) (*models.ScheduleView, error)
	DeleteEntry(ctx context.Context, id string, index int) (*models.ScheduleView, error)
	Dismiss(ctx context.Context, id string) (*models.ScheduleView, error)
	Import(ctx context.Context, id string, req dto.ImportDisplayRequest) (*models.ScheduleView, error)
}

// ScheduleSessionHandler exposes the schedule screen state machine.
type ScheduleSessionHandler struct {
	service scheduleSessionService
}

// NewScheduleSessionHandler constructs handler.
func NewScheduleSessionHandler(svc scheduleSessionService) *ScheduleSessionHandler {
	return &ScheduleSessionHandler{service: svc}
}

// Open godoc
// @Summary Open a schedule screen session
// @Tags Schedule Sessions
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /sessions [post]
func (h *ScheduleSessionHandler) Open(c *gin.Context) {
	view, err := h.service.Open(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// Get godoc
// @Summary Render a schedule session
// @Tags Schedule Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id} [get]
func (h *ScheduleSessionHandler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.Param("id"))
	respondView(c, view, err)
}

// Close godoc
// @Summary Close a schedule session
// @Tags Schedule Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Router /sessions/{id} [delete]
func (h *ScheduleSessionHandler) Close(c *gin.Context) {
	if err := h.service.Close(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// BeginAdd godoc
// @Summary Open the date picker for a new entry
// @Tags Schedule Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/add [post]
func (h *ScheduleSessionHandler) BeginAdd(c *gin.Context) {
	view, err := h.service.BeginAdd(c.Request.Context(), c.Param("id"))
	respondView(c, view, err)
}

// SelectEntry godoc
// @Summary Open the action menu for an entry
// @Tags Schedule Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "Entry index"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/entries/{index}/menu [post]
func (h *ScheduleSessionHandler) SelectEntry(c *gin.Context) {
	index, ok := entryIndex(c)
	if !ok {
		return
	}
	view, err := h.service.SelectEntry(c.Request.Context(), c.Param("id"), index)
	respondView(c, view, err)
}

// BeginEdit godoc
// @Summary Start editing an entry
// @Tags Schedule Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "Entry index"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/entries/{index}/edit [post]
func (h *ScheduleSessionHandler) BeginEdit(c *gin.Context) {
	index, ok := entryIndex(c)
	if !ok {
		return
	}
	view, err := h.service.BeginEdit(c.Request.Context(), c.Param("id"), index)
	respondView(c, view, err)
}

// DeleteEntry godoc
// @Summary Delete an entry
// @Tags Schedule Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "Entry index"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/entries/{index} [delete]
func (h *ScheduleSessionHandler) DeleteEntry(c *gin.Context) {
	index, ok := entryIndex(c)
	if !ok {
		return
	}
	view, err := h.service.DeleteEntry(c.Request.Context(), c.Param("id"), index)
	respondView(c, view, err)
}

// ProposeDate godoc
// @Summary Submit the date picker value
// @Tags Schedule Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.ProposeDateRequest true "Date payload"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/date [post]
func (h *ScheduleSessionHandler) ProposeDate(c *gin.Context) {
	var req dto.ProposeDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	view, err := h.service.ProposeDate(c.Request.Context(), c.Param("id"), req)
	respondView(c, view, err)
}

// ProposeTime godoc
// @Summary Submit the time picker value
// @Tags Schedule Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.ProposeTimeRequest true "Time payload"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/time [post]
func (h *ScheduleSessionHandler) ProposeTime(c *gin.Context) {
	var req dto.ProposeTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	view, err := h.service.ProposeTime(c.Request.Context(), c.Param("id"), req)
	respondView(c, view, err)
}

// Dismiss godoc
// @Summary Close the open picker or menu
// @Tags Schedule Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/dismiss [post]
func (h *ScheduleSessionHandler) Dismiss(c *gin.Context) {
	view, err := h.service.Dismiss(c.Request.Context(), c.Param("id"))
	respondView(c, view, err)
}

// Import godoc
// @Summary Import entries from card labels
// @Tags Schedule Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.ImportDisplayRequest true "Import payload"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/import [post]
func (h *ScheduleSessionHandler) Import(c *gin.Context) {
	var req dto.ImportDisplayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	view, err := h.service.Import(c.Request.Context(), c.Param("id"), req)
	respondView(c, view, err)
}

func respondView(c *gin.Context, view *models.ScheduleView, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

func entryIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "entry index must be an integer"))
		return 0, false
	}
	return index, true
}
