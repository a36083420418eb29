package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shareup-app/shareup/internal/config"
	"github.com/shareup-app/shareup/internal/handler"
	"github.com/shareup-app/shareup/internal/qr"
	"github.com/shareup-app/shareup/internal/repository"
	"github.com/shareup-app/shareup/internal/service"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()

	sugar.Infow("Starting Share-Up service")

	cfg, err := config.ParseFlags()
	if err != nil {
		sugar.Fatalw("Configuration error",
			"error", err.Error())
	}

	sugar.Infow("Configuration loaded",
		"server_address", cfg.ServerAddress,
		"database", cfg.DatabaseDSN != "",
		"redis_cache", cfg.RedisAddr != "",
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		linkStore repository.LinkStore
		blobStore repository.BlobStore
	)

	if cfg.DatabaseDSN != "" {
		pgRepo, err := repository.NewPostgresRepository(ctx, cfg.DatabaseDSN)
		if err != nil {
			sugar.Fatalw("Failed to initialize PostgreSQL repository",
				"error", err.Error())
		}
		defer pgRepo.Close()

		linkStore = pgRepo
		blobStore = pgRepo
		sugar.Infow("Using PostgreSQL repository")
	} else {
		memRepo := repository.NewMemoryRepository()
		linkStore = memRepo
		blobStore = memRepo
		sugar.Infow("Using in-memory repository")
	}

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()

		linkStore = repository.NewRedisCacheRepository(linkStore, redisClient, cfg.CacheTTL)
		sugar.Infow("Redis resolve cache enabled", "ttl", cfg.CacheTTL)
	}

	shortenerService, err := service.NewShortenerService(linkStore, logger)
	if err != nil {
		sugar.Fatalw("Failed to create shortener service",
			"error", err.Error())
	}

	fileService := service.NewFileService(blobStore, logger)

	h := handler.NewHandler(
		shortenerService,
		fileService,
		qr.NewBuilder(cfg.QREndpoint),
		cfg.MaxUploadBytes,
		logger,
	)

	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           h.SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("Server starting", "address", cfg.ServerAddress)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw(err.Error(), "event", "start server")
		}
	}()

	<-ctx.Done()

	sugar.Infow("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown error", "error", err.Error())
	}

	sugar.Infow("Shutdown complete")
}
