package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/guidance-schedule-api/api/swagger"
	"github.com/noah-isme/guidance-schedule-api/internal/handler"
	internalmiddleware "github.com/noah-isme/guidance-schedule-api/internal/middleware"
	"github.com/noah-isme/guidance-schedule-api/internal/service"
	"github.com/noah-isme/guidance-schedule-api/pkg/config"
	"github.com/noah-isme/guidance-schedule-api/pkg/export"
	"github.com/noah-isme/guidance-schedule-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/guidance-schedule-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/guidance-schedule-api/pkg/middleware/requestid"
)

// @title Guidance Schedule API
// @version 0.1.0
// @description Counselling session schedule screen
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.Env, cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	hours := service.WorkingHours{StartHour: cfg.Schedule.WorkingHourStart, EndHour: cfg.Schedule.WorkingHourEnd}
	sessionSvc := service.NewScheduleSessionService(service.ScheduleSessionConfig{
		Hours:   hours,
		IdleTTL: cfg.Schedule.SessionIdleTTL,
	}, time.Now, validate, logr.Named("schedule"), metricsSvc)

	handlers := handler.Handlers{
		Sessions: handler.NewScheduleSessionHandler(sessionSvc),
	}
	if metricsSvc != nil {
		handlers.Metrics = handler.NewMetricsHandler(metricsSvc)
	}
	if cfg.Exports.Enabled {
		exportSvc := service.NewExportService(sessionSvc, export.NewICSExporter(cfg.Exports.ProductID), service.ExportConfig{
			SessionDuration: cfg.Exports.SessionDuration,
			EventSummary:    cfg.Exports.EventSummary,
			DocumentTitle:   cfg.Exports.DocumentTitle,
			Location:        time.Local,
		}, time.Now, logr.Named("export"), metricsSvc)
		handlers.Export = handler.NewExportHandler(exportSvc)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	handler.RegisterRoutes(r, cfg.APIPrefix, handlers)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Env),
		zap.Stringer("working_hours", hours),
		zap.Bool("exports", cfg.Exports.Enabled),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)
	if err := r.Run(addr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}
