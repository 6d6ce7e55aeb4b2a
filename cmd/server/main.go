package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artwork-gallery/internal/adapters/primary/http/handlers"
	"artwork-gallery/internal/adapters/primary/http/middleware"
	"artwork-gallery/internal/adapters/primary/http/views"
	"artwork-gallery/internal/adapters/secondary/artic"
	"artwork-gallery/internal/adapters/secondary/postgres"
	"artwork-gallery/internal/config"
	output "artwork-gallery/internal/core/ports/output"
	"artwork-gallery/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Fetch log (Optional - based on config)
	var fetchLog output.FetchLogRepository
	var pool *pgxpool.Pool
	if cfg.Database.Enabled {
		pool, err = openPool(cfg)
		if err != nil {
			log.Fatalf("open fetch log database: %v", err)
		}
		defer pool.Close()

		fetchLog = postgres.NewFetchLogRepository(pool)
		log.Info("fetch log enabled")
	} else {
		log.Info("fetch log disabled")
	}

	// ============================================================================
	// Wiring
	// ============================================================================

	articClient := artic.NewArtworkClient(&cfg.Artic)
	gallerySvc := services.NewGalleryService(articClient, fetchLog, cfg.Artic.Limit)

	h := handlers.New(gallerySvc, cfg.Artic.IIIFBaseURL)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	router.SetHTMLTemplate(views.Templates())

	h.RegisterPageRoutes(router)
	h.RegisterRoutes(router.Group("/api/v1"))

	router.GET("/healthz", func(c *gin.Context) {
		if pool != nil {
			if err := pool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Event streams only end when their clients leave or the gallery closes.
	srv.RegisterOnShutdown(gallerySvc.Close)
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("server forced shutdown: %v", err)
	}
	gallerySvc.Close()

	log.Info("server stopped")
}

func openPool(cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := postgres.EnsureFetchLogSchema(context.Background(), pool); err != nil {
		pool.Close()
		return nil, err
	}
	log.Info("database connection established")
	return pool, nil
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
