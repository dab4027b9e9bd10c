package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "chequeflow/api/swagger" // swagger docs
	"chequeflow/internal/config"
	"chequeflow/internal/database"
	"chequeflow/internal/handler"
	"chequeflow/internal/logger"
	"chequeflow/internal/middleware"
	"chequeflow/internal/repository"
	"chequeflow/internal/scheduler"
	"chequeflow/internal/service"
	"chequeflow/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Chequeflow API
// @version         1.0
// @description     Cheque batch approval, co-signing and printing.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Setup(cfg.IsProduction, cfg.LogLevel)
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewConnection(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("connected to PostgreSQL")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	chequeRepo := repository.NewChequeRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	txManager := repository.NewTransactionManager(db)

	chequeService := service.NewChequeService(chequeRepo, documentRepo, auditRepo, txManager, wsHub)
	documentService := service.NewDocumentService(documentRepo, auditRepo, txManager, wsHub)
	auditService := service.NewAuditService(auditRepo)
	statisticsService := service.NewStatisticsService(chequeRepo)

	chequeHandler := handler.NewChequeHandler(chequeService)
	documentHandler := handler.NewDocumentHandler(documentService, chequeService)
	auditHandler := handler.NewAuditHandler(auditService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)

	rateLimiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.RateLimit).Msg("invalid RATE_LIMIT")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.StructuredLogging(log))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.ActorHeader, middleware.RequestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "ws_clients": wsHub.ClientCount()})
	})

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	api := router.Group("")
	api.Use(middleware.RateLimit(rateLimiter))
	chequeHandler.RegisterRoutes(api)
	documentHandler.RegisterRoutes(api)
	auditHandler.RegisterRoutes(api)
	statisticsHandler.RegisterRoutes(api)

	snapshots := scheduler.NewStatisticsSnapshotJob(statisticsService, wsHub, log)
	if err := snapshots.Start(cfg.StatsSnapshotCron); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.StatsSnapshotCron).Msg("invalid STATS_SNAPSHOT_CRON")
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	snapshots.Stop()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped")
}
