package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/reqtrackhq/reqtrack-api/api/swagger"
	"github.com/reqtrackhq/reqtrack-api/internal/handler"
	"github.com/reqtrackhq/reqtrack-api/internal/middleware"
	"github.com/reqtrackhq/reqtrack-api/internal/repository"
	"github.com/reqtrackhq/reqtrack-api/internal/service"
	"github.com/reqtrackhq/reqtrack-api/internal/store"
	"github.com/reqtrackhq/reqtrack-api/pkg/cache"
	"github.com/reqtrackhq/reqtrack-api/pkg/config"
	"github.com/reqtrackhq/reqtrack-api/pkg/database"
	"github.com/reqtrackhq/reqtrack-api/pkg/logger"
	corsmiddleware "github.com/reqtrackhq/reqtrack-api/pkg/middleware/cors"
	reqidmiddleware "github.com/reqtrackhq/reqtrack-api/pkg/middleware/requestid"
)

// @title ReqTrack API
// @version 0.1.0
// @description Request tracking prototype: quotation requests and purchase requisitions
// @BasePath /
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

	metricsSvc := service.NewMetricsService()

	gateway, err := newGateway(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init store backend", "backend", cfg.Store.Backend, "error", err)
	}
	gateway = store.NewInstrumentedGateway(gateway, metricsSvc)

	repo := repository.NewRequestRepository(gateway)
	searchSvc := service.NewSearchService()
	requestSvc := service.NewRequestService(repo, service.NewAllocator(repo), searchSvc, validator.New(), logr)
	workflowSvc := service.NewWorkflowService(repo, logr)
	sessionSvc := service.NewSessionService(gateway, logr)
	exportSvc := service.NewExportService(repo, searchSvc)

	requestHandler := handler.NewRequestHandler(requestSvc)
	workflowHandler := handler.NewWorkflowHandler(workflowSvc, sessionSvc)
	sessionHandler := handler.NewSessionHandler(sessionSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	adminHandler := handler.NewAdminHandler(requestSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	adminOnly := middleware.RequireAdmin(sessionSvc)

	requests := api.Group("/requests")
	{
		requests.POST("", requestHandler.Create)
		requests.GET("", requestHandler.List)
		requests.GET("/export", exportHandler.Register)
		requests.GET("/:docNo", requestHandler.Get)
		requests.GET("/:docNo/hits", requestHandler.Hits)
		requests.GET("/:docNo/export", exportHandler.Document)
		// Event gating lives in the handler: REQUEST_EDIT stays open to
		// requesters, everything else needs the admin role.
		requests.POST("/:docNo/events", workflowHandler.ApplyEvent)
		requests.POST("/:docNo/attachments", adminOnly, workflowHandler.AddAttachment)
		requests.DELETE("/:docNo/attachments/:bucket/:id", adminOnly, workflowHandler.RemoveAttachment)
		requests.PUT("/:docNo/shipping", adminOnly, workflowHandler.UpdateShipping)
	}

	session := api.Group("/session")
	{
		session.GET("/role", sessionHandler.GetRole)
		session.PUT("/role", sessionHandler.SetRole)
	}

	api.POST("/admin/reset", adminOnly, adminHandler.Reset)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store_backend", cfg.Store.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// newGateway builds the persistence gateway selected by STORE_BACKEND.
func newGateway(cfg *config.Config, logr *zap.Logger) (store.Gateway, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendFile:
		return store.NewFileGateway(cfg.Store.FilePath, logr), nil
	case config.StoreBackendRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return store.NewRedisGateway(client, cfg.Store.BlobKey, cfg.Store.RoleKey, logr), nil
	case config.StoreBackendPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		gateway := store.NewPostgresGateway(db, cfg.Store.BlobKey, cfg.Store.RoleKey, logr)
		if err := gateway.Migrate(context.Background()); err != nil {
			return nil, err
		}
		return gateway, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
