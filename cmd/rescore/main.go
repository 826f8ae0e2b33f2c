package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"webshop-seo/internal/config"
	"webshop-seo/internal/db"
	"webshop-seo/internal/repository"
	"webshop-seo/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// rescore recalculates quality scores in batch: either the ids passed via
// -ids, or every active product. Exits non-zero when any item failed.
func main() {
	idsFlag := flag.String("ids", "", "comma-separated product ids; empty scores all active products")
	flag.Parse()

	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	productRepo := repository.NewPgProductRepository(pool)
	qualitySvc := service.NewQualityService(
		logger,
		productRepo,
		repository.NewPgDescriptionRepository(pool),
		repository.NewPgImageRepository(pool),
		repository.NewPgIndexingRepository(pool),
		repository.NewPgPerformanceRepository(pool),
		repository.NewPgCompetitorRepository(pool),
		repository.NewPgScoreRepository(pool),
		nil,
	)

	productIDs, err := resolveIDs(ctx, *idsFlag, productRepo)
	if err != nil {
		logger.Fatal("resolve product ids", zap.Error(err))
	}
	if len(productIDs) == 0 {
		logger.Info("nothing to score")
		return
	}

	start := time.Now()
	result := qualitySvc.ScoreProducts(ctx, productIDs)

	logger.Info("rescore finished",
		zap.Int("success_count", result.SuccessCount),
		zap.Int("failed_count", result.FailedCount),
		zap.Duration("took", time.Since(start)),
	)
	for _, item := range result.Errors {
		logger.Warn("item failed",
			zap.Int64("product_id", item.ProductID),
			zap.String("error", item.Error),
		)
	}

	if result.FailedCount > 0 {
		logger.Sync()
		os.Exit(1)
	}
}

func resolveIDs(ctx context.Context, idsFlag string, products repository.ProductRepository) ([]int64, error) {
	if strings.TrimSpace(idsFlag) == "" {
		return products.ListActiveIDs(ctx)
	}

	var ids []int64
	for _, part := range strings.Split(idsFlag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
