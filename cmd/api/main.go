package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/study-planner-api/api/swagger"
	"github.com/noah-isme/study-planner-api/internal/handler"
	internalmiddleware "github.com/noah-isme/study-planner-api/internal/middleware"
	"github.com/noah-isme/study-planner-api/internal/repository"
	"github.com/noah-isme/study-planner-api/internal/service"
	"github.com/noah-isme/study-planner-api/internal/syllabus"
	"github.com/noah-isme/study-planner-api/pkg/cache"
	"github.com/noah-isme/study-planner-api/pkg/config"
	"github.com/noah-isme/study-planner-api/pkg/database"
	"github.com/noah-isme/study-planner-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/study-planner-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/study-planner-api/pkg/middleware/requestid"
)

// @title Study Planner API
// @version 1.0.0
// @description Exam preparation scheduler: phased study plans, task tracking and progress analytics
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	}

	metricsSvc := service.NewMetricsService()

	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, redisClient != nil)

	planRepo := repository.NewPlanRepository(db)
	examCatalog := syllabus.NewProvider()

	plannerSvc := service.NewPlannerService(examCatalog, planRepo, cacheSvc, metricsSvc, nil, logr, service.PlannerConfig{
		OverloadTolerance: cfg.Planner.OverloadTolerance,
		ProposalTTL:       cfg.Planner.ProposalTTL,
	})
	mutationSvc := service.NewMutationService(planRepo, cacheSvc, nil, logr)
	querySvc := service.NewQueryService(planRepo, cacheSvc, logr, cfg.Exports.StatsCacheTTL)
	exportSvc := service.NewExportService(planRepo, logr, cfg.Exports.CalendarName)
	dashboardSvc := service.NewDashboardService(planRepo, cacheSvc, logr, cfg.Dashboard.CacheTTL)

	planHandler := handler.NewPlanHandler(plannerSvc)
	taskHandler := handler.NewTaskHandler(mutationSvc)
	queryHandler := handler.NewQueryHandler(querySvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	examHandler := handler.NewExamHandler(examCatalog)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/exams", examHandler.List)
		api.GET("/exams/search", examHandler.Search)
		api.GET("/exams/:id", examHandler.Get)
		api.GET("/exam-categories", examHandler.Categories)

		api.POST("/plans/generate", planHandler.Generate)
		api.POST("/plans", planHandler.Save)
		api.GET("/plans", planHandler.List)
		api.GET("/plans/:id", planHandler.Get)
		api.DELETE("/plans/:id", planHandler.Delete)
		api.POST("/plans/:id/rebalance", planHandler.Rebalance)

		api.POST("/plans/:id/tasks", taskHandler.Add)
		api.PATCH("/plans/:id/tasks/:taskId", taskHandler.Update)
		api.DELETE("/plans/:id/tasks/:taskId", taskHandler.Delete)
		api.POST("/plans/:id/tasks/:taskId/move", taskHandler.Move)
		api.POST("/plans/:id/tasks/:taskId/complete", taskHandler.Complete)

		api.GET("/plans/:id/schedule", queryHandler.Schedule)
		api.GET("/plans/:id/days/:date", queryHandler.Day)
		api.GET("/plans/:id/today", queryHandler.Today)
		api.GET("/plans/:id/upcoming", queryHandler.Upcoming)
		api.GET("/plans/:id/overdue", queryHandler.Overdue)
		api.GET("/plans/:id/stats", queryHandler.Stats)
		api.GET("/plans/:id/export", exportHandler.Export)

		if cfg.Dashboard.Enabled {
			api.GET("/plans/:id/dashboard", dashboardHandler.Summary)
		}

		api.GET("/system/metrics", metricsHandler.Snapshot)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
