package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"content-workflow/internal/ai"
	"content-workflow/internal/config"
	"content-workflow/internal/handler"
	"content-workflow/internal/infrastructure/database"
	"content-workflow/internal/lock"
	"content-workflow/internal/logger"
	"content-workflow/internal/metrics"
	"content-workflow/internal/platform"
	"content-workflow/internal/repository"
	"content-workflow/internal/scheduler"
	"content-workflow/internal/service"
	"content-workflow/internal/storage"
	"content-workflow/internal/validator"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel)

	ctx := context.Background()

	// Connect to database and bring the schema up to date
	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
	if cfg.MigrationsPath != "" {
		if err := database.Migrate(cfg.MigrationsPath, poolCfg.URL()); err != nil {
			logger.Fatal("Failed to run migrations",
				slog.String("error", err.Error()))
		}
	}
	pool, err := database.NewPostgres(ctx, poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	checks := map[string]handler.Check{"database": pool.Ping}

	// Lock backend: Redis across replicas, in-process otherwise
	var locker lock.Locker = lock.NewLocalLocker()
	if cfg.RedisAddress != "" {
		rdb, err := database.NewRedis(ctx, database.RedisConfig{
			Address:  cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Fatal("Failed to connect to redis",
				slog.String("error", err.Error()))
		}
		defer rdb.Close()
		locker = lock.NewRedisLocker(rdb)
		checks["redis"] = redisCheck(rdb)
	} else {
		logger.Warn("REDIS_ADDRESS not set, using in-process locks; run a single replica")
	}

	// Initialize repositories
	contentRepo := repository.NewPostgresContentRepository(pool)
	sessionRepo := repository.NewPostgresSessionRepository(pool)
	credentialRepo := repository.NewPostgresCredentialRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// External collaborators. Unconfigured ones stay nil interfaces so that
	// generation sessions fail fast and publishing is not scheduled.
	var (
		generator service.DraftGenerator
		renderer  service.ImageRenderer
		assets    service.AssetStore
		fetcher   service.MediaFetcher
		publisher service.PublisherClient
	)
	if cfg.OpenAIAPIKey != "" {
		aiClient, err := ai.NewClient(ai.Config{
			APIKey:     cfg.OpenAIAPIKey,
			BaseURL:    cfg.OpenAIBaseURL,
			TextModel:  cfg.OpenAITextModel,
			ImageModel: cfg.OpenAIImageModel,
			MaxRetries: 2,
		})
		if err != nil {
			logger.Fatal("Failed to create OpenAI client",
				slog.String("error", err.Error()))
		}
		generator, renderer = aiClient, aiClient
	} else {
		logger.Warn("OPENAI_API_KEY not set, generation sessions will fail")
	}

	if cfg.AssetBucket != "" {
		s3Client, err := storage.NewS3Client(ctx, cfg.AWSRegion, cfg.AWSEndpointURL)
		if err != nil {
			logger.Fatal("Failed to create S3 client",
				slog.String("error", err.Error()))
		}
		store, err := storage.NewS3Store(s3Client, nil, storage.Config{
			Bucket:        cfg.AssetBucket,
			Prefix:        cfg.AssetPrefix,
			PublicBaseURL: cfg.AssetPublicBaseURL,
		})
		if err != nil {
			logger.Fatal("Failed to create asset store",
				slog.String("error", err.Error()))
		}
		assets, fetcher = store, store
	} else {
		logger.Warn("ASSET_BUCKET not set, generation sessions and publishing are disabled")
	}

	if cfg.PlatformClientID != "" {
		platformClient, err := platform.NewClient(platform.Config{
			Provider:          cfg.PlatformProvider,
			APIBaseURL:        cfg.PlatformAPIBaseURL,
			TokenURL:          cfg.PlatformTokenURL,
			ClientID:          cfg.PlatformClientID,
			ClientSecret:      cfg.PlatformClientSecret,
			PostURLBase:       cfg.PlatformPostURLBase,
			APIVersion:        cfg.PlatformAPIVersion,
			RequestsPerSecond: cfg.PlatformRequestsPerSecond,
			HTTPTimeout:       cfg.PlatformHTTPTimeout,
		}, credentialRepo, nil)
		if err != nil {
			logger.Fatal("Failed to create platform client",
				slog.String("error", err.Error()))
		}
		publisher = platformClient
	} else {
		logger.Warn("PLATFORM_CLIENT_ID not set, publishing is disabled")
	}

	// Initialize services
	contentService := service.NewContentService(contentRepo)
	generationService := service.NewGenerationService(
		contentRepo,
		sessionRepo,
		generator,
		renderer,
		assets,
		locker,
		v,
		service.GenerationConfig{
			ItemDelay:   cfg.GenerationItemDelay,
			ItemTimeout: cfg.GenerationItemTimeout,
			LockTTL:     cfg.SessionLockTTL,
		},
	)
	reaperService := service.NewReaperService(contentRepo, sessionRepo, cfg.ReaperStaleAfter, cfg.ReaperBatchSize)

	// Periodic jobs
	jobs := scheduler.New(locker)
	if err := jobs.Register(scheduler.ReaperJob(reaperService, cfg.ReaperSchedule, cfg.ReaperRunTimeout)); err != nil {
		logger.Fatal("Failed to schedule reaper",
			slog.String("error", err.Error()))
	}
	if publisher != nil && fetcher != nil {
		publishService := service.NewPublishService(contentRepo, publisher, fetcher, service.PublishConfig{
			Lookahead:      cfg.PublishLookahead,
			BatchSize:      cfg.PublishBatchSize,
			AlertThreshold: cfg.PublishAlertThreshold,
		})
		if err := jobs.Register(scheduler.PublishJob(publishService, cfg.PublishSchedule, cfg.PublishRunTimeout)); err != nil {
			logger.Fatal("Failed to schedule publisher",
				slog.String("error", err.Error()))
		}
	}
	jobs.Start()

	// Initialize handlers
	contentHandler := handler.NewContentHandler(contentService, v)
	generationHandler := handler.NewGenerationHandler(generationService, v)
	healthHandler := handler.NewHealthHandler(version, checks)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(contentHandler, generationHandler, healthHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop accepting requests, then stop background work
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Stopping scheduler")
	jobs.Stop()
	logger.Info("Closing generation service")
	generationService.Close()

	logger.Info("Server exited")
}

func redisCheck(rdb *redis.Client) handler.Check {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}
