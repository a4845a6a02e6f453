package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-recommender/core/ai"
	"campus-recommender/core/cache"
	"campus-recommender/core/config"
	"campus-recommender/core/database"
	"campus-recommender/core/logger"
	"campus-recommender/core/middleware"
	"campus-recommender/core/storage"
	"campus-recommender/core/validator"
	"campus-recommender/core/worker"
	"campus-recommender/modules/auth"
	"campus-recommender/modules/event"
	"campus-recommender/modules/notification"
	"campus-recommender/modules/profile"
	"campus-recommender/modules/recommendation"
	"campus-recommender/modules/saved"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires every component together and serves until SIGINT/SIGTERM
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Format, cfg.Log.Level); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	cacheClient, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer cacheClient.Close()

	aiClient, err := ai.NewClient(cfg.AI)
	if err != nil {
		return fmt.Errorf("init ai client: %w", err)
	}

	// poster uploads are optional; everything else works without S3
	var store storage.Storage
	if cfg.S3.Bucket != "" {
		store, err = storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			return fmt.Errorf("init storage: %w", err)
		}
	} else {
		logger.Warn("S3_BUCKET not set, poster uploads disabled")
	}

	enqueuer := worker.NewEnqueuer(cfg.Redis)
	defer enqueuer.Close()

	mw := middleware.NewMiddleware(cacheClient)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.NewRequestValidator()

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.CORS(cfg.Server.CORSOrigins))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	auth.Init(e, db, cacheClient, mw)
	event.Init(e, db, aiClient, store, mw)
	profile.Init(e, db, mw)
	recommendation.Init(e, db, aiClient, mw)
	saved.Init(e, db, enqueuer, mw)
	notificationSvc := notification.Init(e, db, mw)

	workerSrv := worker.NewServer(cfg.Redis, notificationSvc)
	if err := workerSrv.Start(); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}
	defer workerSrv.Shutdown()

	e.Server.ReadTimeout = time.Duration(cfg.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.Server.WriteTimeout) * time.Second

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Info("Server starting", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server stopped unexpectedly", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
