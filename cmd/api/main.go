package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"webshop-seo/internal/config"
	"webshop-seo/internal/db"
	apihttp "webshop-seo/internal/http"
	"webshop-seo/internal/repository"
	"webshop-seo/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	productRepo := repository.NewPgProductRepository(pool)
	descriptionRepo := repository.NewPgDescriptionRepository(pool)
	imageRepo := repository.NewPgImageRepository(pool)
	indexingRepo := repository.NewPgIndexingRepository(pool)
	performanceRepo := repository.NewPgPerformanceRepository(pool)
	competitorRepo := repository.NewPgCompetitorRepository(pool)
	scoreRepo := repository.NewPgScoreRepository(pool)

	cacheTTL := time.Duration(cfg.ScoreCacheTTLMinutes) * time.Minute
	scoreCache := service.NewMemoryScoreCache(cacheTTL)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory score cache", zap.Error(err))
		} else {
			scoreCache = service.NewRedisScoreCache(redisClient, cacheTTL)
		}
		cancel()
	}

	qualitySvc := service.NewQualityService(
		logger,
		productRepo,
		descriptionRepo,
		imageRepo,
		indexingRepo,
		performanceRepo,
		competitorRepo,
		scoreRepo,
		scoreCache,
	)

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}
	if cfg.APIKeyHash == "" {
		logger.Warn("api key hash not configured, token endpoint disabled")
	}

	authHandler := apihttp.NewAuthHandler(logger, jwtSvc, cfg.APIKeyHash)
	scoreHandler := apihttp.NewScoreHandler(logger, qualitySvc)
	router := apihttp.NewRouter(logger, authHandler, scoreHandler, jwtSvc, pool)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
