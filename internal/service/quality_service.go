package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"webshop-seo/internal/domain"
	"webshop-seo/internal/repository"
)

// The rubric always reads the Hungarian content record.
const descriptionLanguage = "hu"

// Scoring looks at the last 30 search-console samples of the parent.
const performanceWindow = 30

// QualityService assembles a product's cross-source snapshot, runs the
// rubric and persists the result. One persisted row per product, always
// fully overwritten.
type QualityService struct {
	logger       *zap.Logger
	products     repository.ProductRepository
	descriptions repository.DescriptionRepository
	images       repository.ImageRepository
	indexing     repository.IndexingRepository
	performance  repository.PerformanceRepository
	competitors  repository.CompetitorRepository
	scores       repository.ScoreRepository
	cache        ScoreCache
}

func NewQualityService(
	logger *zap.Logger,
	products repository.ProductRepository,
	descriptions repository.DescriptionRepository,
	images repository.ImageRepository,
	indexing repository.IndexingRepository,
	performance repository.PerformanceRepository,
	competitors repository.CompetitorRepository,
	scores repository.ScoreRepository,
	cache ScoreCache,
) *QualityService {
	return &QualityService{
		logger:       logger,
		products:     products,
		descriptions: descriptions,
		images:       images,
		indexing:     indexing,
		performance:  performance,
		competitors:  competitors,
		scores:       scores,
		cache:        cache,
	}
}

// ScoreProduct runs one full scoring cycle for a product: aggregate, score,
// upsert. A missing base product surfaces repository.ErrNotFound; a write
// failure after a successful calculation is a reported error, never a
// silent skip.
func (s *QualityService) ScoreProduct(ctx context.Context, productID int64) (*domain.QualityScoreResult, error) {
	agg, err := s.buildAggregate(ctx, productID)
	if err != nil {
		return nil, err
	}

	result := CalculateQualityScore(*agg)

	if err := s.scores.Upsert(ctx, result); err != nil {
		return nil, fmt.Errorf("persist score of product %d: %w", productID, err)
	}
	s.cacheResult(ctx, result)

	s.logger.Info("product scored",
		zap.Int64("product_id", productID),
		zap.Bool("is_parent", result.IsParent),
		zap.Int("overall_score", result.OverallScore),
		zap.Strings("blocking_issues", result.BlockingIssues),
	)
	return &result, nil
}

// ScoreProducts scores every id independently. One id's failure never
// aborts the batch; failures are captured with the id and message.
func (s *QualityService) ScoreProducts(ctx context.Context, productIDs []int64) domain.BulkScoreResult {
	result := domain.BulkScoreResult{Errors: []domain.BulkScoreError{}}

	for _, id := range productIDs {
		if _, err := s.ScoreProduct(ctx, id); err != nil {
			s.logger.Warn("bulk scoring item failed", zap.Int64("product_id", id), zap.Error(err))
			result.FailedCount++
			result.Errors = append(result.Errors, domain.BulkScoreError{
				ProductID: id,
				Error:     err.Error(),
			})
			continue
		}
		result.SuccessCount++
	}

	return result
}

// GetScore returns the stored result for a product, cache first.
func (s *QualityService) GetScore(ctx context.Context, productID int64) (*domain.QualityScoreResult, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, productID); err == nil && cached != nil {
			return cached, nil
		}
	}

	result, err := s.scores.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	s.cacheResult(ctx, *result)
	return result, nil
}

// ListWorstScores returns stored results ordered by remediation priority.
func (s *QualityService) ListWorstScores(ctx context.Context, limit int) ([]domain.QualityScoreResult, error) {
	return s.scores.ListWorst(ctx, limit)
}

// buildAggregate fetches every raw input of one product. Secondary stores
// returning nothing is expected; only the base product record is mandatory.
func (s *QualityService) buildAggregate(ctx context.Context, productID int64) (*domain.ProductAggregate, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load product %d: %w", productID, err)
	}

	attrs, err := s.products.ListAttributes(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load attributes of product %d: %w", productID, err)
	}

	description, err := s.descriptions.GetByProductAndLanguage(ctx, productID, descriptionLanguage)
	if err != nil {
		return nil, fmt.Errorf("load description of product %d: %w", productID, err)
	}

	images, err := s.images.ListByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load images of product %d: %w", productID, err)
	}

	indexing, err := s.indexing.GetByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load indexing status of product %d: %w", productID, err)
	}

	// Performance is always keyed by the parent, even for a child.
	samples, err := s.performance.ListRecentByProductID(ctx, product.PerformanceKey(), performanceWindow)
	if err != nil {
		return nil, fmt.Errorf("load search performance of product %d: %w", productID, err)
	}

	links, err := s.competitors.ListActiveLinks(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load competitor links of product %d: %w", productID, err)
	}

	lowest, err := s.lowestCompetitorPrice(ctx, links)
	if err != nil {
		return nil, fmt.Errorf("load competitor prices of product %d: %w", productID, err)
	}

	return &domain.ProductAggregate{
		Product:     product,
		Attributes:  attrs,
		Description: description,
		Images:      images,
		Indexing:    indexing,
		Performance: domain.SummarizePerformance(samples),

		// Active links imply tracking even when the product flag is off.
		CompetitorTracking: product.CompetitorTracking || len(links) > 0,
		CompetitorPrice:    lowest,
	}, nil
}

// lowestCompetitorPrice reduces the latest sample of each link to the most
// competitive valid price, nil when no link has a usable sample.
func (s *QualityService) lowestCompetitorPrice(ctx context.Context, links []domain.CompetitorLink) (*float64, error) {
	var lowest *float64
	for _, link := range links {
		sample, err := s.competitors.GetLatestPrice(ctx, link.ID)
		if err != nil {
			return nil, err
		}
		if sample == nil {
			continue
		}
		price := sample.Price
		if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
			continue
		}
		if lowest == nil || price < *lowest {
			lowest = &price
		}
	}
	return lowest, nil
}

func (s *QualityService) cacheResult(ctx context.Context, result domain.QualityScoreResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, result); err != nil {
		s.logger.Warn("score cache write failed",
			zap.Int64("product_id", result.ProductID), zap.Error(err))
	}
}
