package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/andeshr/asistencia-api/api/swagger"
	"github.com/andeshr/asistencia-api/internal/handler"
	"github.com/andeshr/asistencia-api/internal/middleware"
	"github.com/andeshr/asistencia-api/internal/report"
	"github.com/andeshr/asistencia-api/internal/repository"
	"github.com/andeshr/asistencia-api/internal/service"
	"github.com/andeshr/asistencia-api/pkg/cache"
	"github.com/andeshr/asistencia-api/pkg/config"
	"github.com/andeshr/asistencia-api/pkg/database"
	"github.com/andeshr/asistencia-api/pkg/logger"
	corsmiddleware "github.com/andeshr/asistencia-api/pkg/middleware/cors"
	reqidmiddleware "github.com/andeshr/asistencia-api/pkg/middleware/requestid"
)

// @title Asistencia API
// @version 1.0.0
// @description Attendance pivot report service
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Reports.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, reports will not be cached", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Reports.CacheTTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	reportSvc := service.NewReportService(service.ReportServiceParams{
		Employees:  repository.NewEmployeeRepository(db),
		Attendance: repository.NewAttendanceRepository(db),
		Holidays:   repository.NewHolidayRepository(db),
		Cache:      cacheSvc,
		Metrics:    metricsSvc,
		Logger:     logr,
		Config: service.ReportServiceConfig{
			WeekStart:    report.ParseWeekStart(cfg.Reports.WeekStart),
			CacheTTL:     cfg.Reports.CacheTTL,
			MaxRangeDays: cfg.Reports.MaxRangeDays,
		},
	})
	exportSvc := service.NewExportService(nil, logr)

	reportHandler := handler.NewReportHandler(reportSvc, exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	{
		reports := api.Group("/reports")
		reports.GET("/weekly-attendance", reportHandler.WeeklyAttendance)
		reports.GET("/markings", reportHandler.Markings)
		reports.GET("/cost-center", reportHandler.CostCenter)
		reports.GET("/:variant/export.csv", reportHandler.ExportCSV)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
