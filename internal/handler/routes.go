package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups everything RegisterRoutes mounts. Export and Metrics may be
// nil when the corresponding feature is disabled.
type Handlers struct {
	Sessions *ScheduleSessionHandler
	Export   *ExportHandler
	Metrics  *MetricsHandler
}

// RegisterRoutes mounts the schedule API under prefix and the operational
// endpoints at the root.
func RegisterRoutes(r gin.IRouter, prefix string, h Handlers) {
	health := h.Metrics
	if health == nil {
		health = NewMetricsHandler(nil)
	}
	r.GET("/health", health.Health)
	r.GET("/ready", health.Ready)
	if h.Metrics != nil {
		r.GET("/metrics", h.Metrics.Prometheus)
		r.GET("/metrics/summary", h.Metrics.Summary)
	}

	api := r.Group(prefix)
	sessions := api.Group("/sessions")
	sessions.POST("", h.Sessions.Open)
	sessions.GET("/:id", h.Sessions.Get)
	sessions.DELETE("/:id", h.Sessions.Close)
	sessions.POST("/:id/add", h.Sessions.BeginAdd)
	sessions.POST("/:id/date", h.Sessions.ProposeDate)
	sessions.POST("/:id/time", h.Sessions.ProposeTime)
	sessions.POST("/:id/dismiss", h.Sessions.Dismiss)
	sessions.POST("/:id/import", h.Sessions.Import)
	sessions.POST("/:id/entries/:index/menu", h.Sessions.SelectEntry)
	sessions.POST("/:id/entries/:index/edit", h.Sessions.BeginEdit)
	sessions.DELETE("/:id/entries/:index", h.Sessions.DeleteEntry)
	if h.Export != nil {
		sessions.GET("/:id/export", h.Export.Export)
	}
}
