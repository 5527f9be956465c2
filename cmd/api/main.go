package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-variants/internal/adapter/handler"
	"github.com/marcos-nsantos/image-variants/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/image-variants/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/auth"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/cache"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/database"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/observability"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-variants/internal/usecase/render"
	"github.com/marcos-nsantos/image-variants/internal/usecase/upload"
	"github.com/marcos-nsantos/image-variants/migrations"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	resizeMode, err := valueobject.ParseResizeMode(cfg.Upload.ResizeMode)
	if err != nil {
		logger.Fatal("invalid upload config", zap.Error(err))
	}
	if _, err := valueobject.ParseDimensions(cfg.Upload.Dimensions); err != nil {
		logger.Fatal("invalid upload config", zap.Error(err))
	}

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, migrations.FS); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	metrics, err := observability.NewMetrics(ctx, cfg.Telemetry, logger)
	if err != nil {
		logger.Fatal("failed to set up metrics", zap.Error(err))
	}
	defer func() {
		if err := metrics.Shutdown(context.Background()); err != nil {
			logger.Error("metrics shutdown error", zap.Error(err))
		}
	}()

	// Repositories
	variantSetRepo := postgres.NewVariantSetRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	if !jwtSvc.Enabled() {
		logger.Warn("JWT_SECRET_KEY is empty, upload endpoints are unauthenticated")
	}

	fileStorage, err := storage.NewFileStorage(cfg.Storage, cfg.S3)
	if err != nil {
		logger.Fatal("failed to create file storage", zap.Error(err))
	}
	imageProcessor := storage.NewImageProcessor(storage.WithMaxSide(cfg.Upload.MaxSide))

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		var redisClient *redis.Client
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()

		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
	}

	// Use cases
	uploadSvc := upload.NewService(fileStorage, imageProcessor, variantSetRepo, metrics, logger)
	renderSvc := render.NewService()

	// Handlers
	uploadHandler := handler.NewUploadHandler(uploadSvc, handler.UploadHandlerConfig{
		Defaults: upload.Options{
			UniqueToken: cfg.Upload.UniqueToken,
			Dimensions:  cfg.Upload.Dimensions,
			UploadPath:  cfg.Upload.Path,
			Extensions:  cfg.Upload.Extensions,
			Resize:      resizeMode,
		},
		MaxSize: cfg.Upload.MaxSize,
		TempDir: cfg.Upload.TempDir,
	})
	renderHandler := handler.NewRenderHandler(renderSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		UploadHandler:  uploadHandler,
		RenderHandler:  renderHandler,
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
