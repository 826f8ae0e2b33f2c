package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"webshop-seo/internal/domain"
	"webshop-seo/internal/repository"
)

type mockProductRepo struct {
	products map[int64]domain.Product
	attrs    map[int64][]domain.Attribute
}

func (m *mockProductRepo) GetByID(_ context.Context, id int64) (domain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
	}
	return p, nil
}

func (m *mockProductRepo) ListAttributes(_ context.Context, productID int64) ([]domain.Attribute, error) {
	return m.attrs[productID], nil
}

func (m *mockProductRepo) ListActiveIDs(context.Context) ([]int64, error) {
	var ids []int64
	for id := range m.products {
		ids = append(ids, id)
	}
	return ids, nil
}

type mockDescriptionRepo struct {
	byProduct map[int64]*domain.ProductDescription
	lastLang  string
}

func (m *mockDescriptionRepo) GetByProductAndLanguage(_ context.Context, productID int64, language string) (*domain.ProductDescription, error) {
	m.lastLang = language
	return m.byProduct[productID], nil
}

type mockImageRepo struct {
	byProduct map[int64][]domain.ProductImage
}

func (m *mockImageRepo) ListByProductID(_ context.Context, productID int64) ([]domain.ProductImage, error) {
	return m.byProduct[productID], nil
}

type mockIndexingRepo struct {
	byProduct map[int64]*domain.IndexingStatus
}

func (m *mockIndexingRepo) GetByProductID(_ context.Context, productID int64) (*domain.IndexingStatus, error) {
	return m.byProduct[productID], nil
}

type mockPerformanceRepo struct {
	byProduct map[int64][]domain.SearchSample
	lastID    int64
	lastLimit int
}

func (m *mockPerformanceRepo) ListRecentByProductID(_ context.Context, productID int64, limit int) ([]domain.SearchSample, error) {
	m.lastID = productID
	m.lastLimit = limit
	return m.byProduct[productID], nil
}

type mockCompetitorRepo struct {
	links  map[int64][]domain.CompetitorLink
	prices map[int64]*domain.CompetitorPrice
}

func (m *mockCompetitorRepo) ListActiveLinks(_ context.Context, productID int64) ([]domain.CompetitorLink, error) {
	return m.links[productID], nil
}

func (m *mockCompetitorRepo) GetLatestPrice(_ context.Context, linkID int64) (*domain.CompetitorPrice, error) {
	return m.prices[linkID], nil
}

type mockScoreRepo struct {
	upserts    []domain.QualityScoreResult
	upsertErr  error
	byProduct  map[int64]*domain.QualityScoreResult
	getErr     error
	worstCalls int
}

func (m *mockScoreRepo) Upsert(_ context.Context, result domain.QualityScoreResult) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserts = append(m.upserts, result)
	return nil
}

func (m *mockScoreRepo) GetByProductID(_ context.Context, productID int64) (*domain.QualityScoreResult, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result, ok := m.byProduct[productID]
	if !ok {
		return nil, fmt.Errorf("score of product %d: %w", productID, repository.ErrNotFound)
	}
	return result, nil
}

func (m *mockScoreRepo) ListWorst(context.Context, int) ([]domain.QualityScoreResult, error) {
	m.worstCalls++
	return nil, nil
}

type qualityFixture struct {
	products    *mockProductRepo
	descs       *mockDescriptionRepo
	images      *mockImageRepo
	indexing    *mockIndexingRepo
	performance *mockPerformanceRepo
	competitors *mockCompetitorRepo
	scores      *mockScoreRepo
	svc         *QualityService
}

func newQualityFixture(cache ScoreCache) *qualityFixture {
	f := &qualityFixture{
		products:    &mockProductRepo{products: map[int64]domain.Product{}, attrs: map[int64][]domain.Attribute{}},
		descs:       &mockDescriptionRepo{byProduct: map[int64]*domain.ProductDescription{}},
		images:      &mockImageRepo{byProduct: map[int64][]domain.ProductImage{}},
		indexing:    &mockIndexingRepo{byProduct: map[int64]*domain.IndexingStatus{}},
		performance: &mockPerformanceRepo{byProduct: map[int64][]domain.SearchSample{}},
		competitors: &mockCompetitorRepo{links: map[int64][]domain.CompetitorLink{}, prices: map[int64]*domain.CompetitorPrice{}},
		scores:      &mockScoreRepo{byProduct: map[int64]*domain.QualityScoreResult{}},
	}
	f.svc = NewQualityService(
		zap.NewNop(),
		f.products, f.descs, f.images, f.indexing,
		f.performance, f.competitors, f.scores,
		cache,
	)
	return f
}

func (f *qualityFixture) addProduct(p domain.Product) {
	f.products.products[p.ID] = p
}

func TestScoreProduct_PersistsResult(t *testing.T) {
	f := newQualityFixture(nil)
	price := 100.0
	f.addProduct(domain.Product{ID: 1, SKU: "S", Name: "Teszt", Price: &price, SyncStatus: "synced"})

	result, err := f.svc.ScoreProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("score product: %v", err)
	}
	if len(f.scores.upserts) != 1 {
		t.Fatalf("upsert count = %d; want 1", len(f.scores.upserts))
	}
	if f.scores.upserts[0].ProductID != 1 {
		t.Fatalf("persisted product id = %d; want 1", f.scores.upserts[0].ProductID)
	}
	if result.OverallScore < 0 || result.OverallScore > 100 {
		t.Fatalf("overall = %d; want within [0,100]", result.OverallScore)
	}
	if f.descs.lastLang != "hu" {
		t.Fatalf("description language = %q; want hu", f.descs.lastLang)
	}
}

func TestScoreProduct_ProductNotFound(t *testing.T) {
	f := newQualityFixture(nil)

	_, err := f.svc.ScoreProduct(context.Background(), 42)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
	if len(f.scores.upserts) != 0 {
		t.Fatal("nothing must be persisted for a missing product")
	}
}

func TestScoreProduct_PersistFailureIsReported(t *testing.T) {
	f := newQualityFixture(nil)
	f.addProduct(domain.Product{ID: 1, Name: "Teszt", SyncStatus: "synced"})
	f.scores.upsertErr = errors.New("connection reset")

	_, err := f.svc.ScoreProduct(context.Background(), 1)
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if errors.Is(err, repository.ErrNotFound) {
		t.Fatal("persistence failure must be distinct from not-found")
	}
}

func TestScoreProduct_ChildUsesParentPerformance(t *testing.T) {
	f := newQualityFixture(nil)
	parentID := int64(1)
	f.addProduct(domain.Product{ID: 1, Name: "Szülő", SyncStatus: "synced"})
	f.addProduct(domain.Product{ID: 2, ParentID: &parentID, Name: "Gyerek", SyncStatus: "synced"})
	f.performance.byProduct[1] = []domain.SearchSample{
		{ProductID: 1, Impressions: 200, Clicks: 12, Position: 3},
	}

	result, err := f.svc.ScoreProduct(context.Background(), 2)
	if err != nil {
		t.Fatalf("score child: %v", err)
	}
	if f.performance.lastID != 1 {
		t.Fatalf("performance fetched for id %d; want parent id 1", f.performance.lastID)
	}
	if f.performance.lastLimit != 30 {
		t.Fatalf("performance window = %d; want 30", f.performance.lastLimit)
	}
	// 200 impressions (+2) at position 3 (+3)
	if result.PerformanceScore != 5 {
		t.Fatalf("performance score = %d; want 5", result.PerformanceScore)
	}
}

func TestScoreProduct_CompetitorAggregation(t *testing.T) {
	f := newQualityFixture(nil)
	price := 100.0
	// Tracking flag explicitly off: active links still enable tracking.
	f.addProduct(domain.Product{ID: 1, Name: "Teszt", Price: &price, SyncStatus: "synced", CompetitorTracking: false})
	f.competitors.links[1] = []domain.CompetitorLink{
		{ID: 10, ProductID: 1, Active: true},
		{ID: 11, ProductID: 1, Active: true},
		{ID: 12, ProductID: 1, Active: true},
	}
	f.competitors.prices[10] = &domain.CompetitorPrice{LinkID: 10, Price: 150, SampledAt: time.Now()}
	f.competitors.prices[11] = &domain.CompetitorPrice{LinkID: 11, Price: 120, SampledAt: time.Now()}
	f.competitors.prices[12] = &domain.CompetitorPrice{LinkID: 12, Price: -3, SampledAt: time.Now()}

	result, err := f.svc.ScoreProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("score product: %v", err)
	}
	// Lowest valid price is 120: 16.7% above own, tracking promoted by links.
	if result.CompetitiveScore != 5 {
		t.Fatalf("competitive score = %d; want 5", result.CompetitiveScore)
	}
}

func TestScoreProducts_BulkIsolation(t *testing.T) {
	f := newQualityFixture(nil)
	for _, id := range []int64{1, 2, 4, 5} {
		f.addProduct(domain.Product{ID: id, Name: fmt.Sprintf("Termék %d", id), SyncStatus: "synced"})
	}

	result := f.svc.ScoreProducts(context.Background(), []int64{1, 2, 3, 4, 5})

	if result.SuccessCount != 4 {
		t.Fatalf("success count = %d; want 4", result.SuccessCount)
	}
	if result.FailedCount != 1 {
		t.Fatalf("failed count = %d; want 1", result.FailedCount)
	}
	if len(result.Errors) != 1 || result.Errors[0].ProductID != 3 {
		t.Fatalf("errors = %v; want exactly one entry for product 3", result.Errors)
	}
	if result.Errors[0].Error == "" {
		t.Fatal("error message must be captured")
	}
	if len(f.scores.upserts) != 4 {
		t.Fatalf("upsert count = %d; want 4", len(f.scores.upserts))
	}
}

func TestScoreProduct_CacheIsBestEffort(t *testing.T) {
	f := newQualityFixture(failingCache{})
	f.addProduct(domain.Product{ID: 1, Name: "Teszt", SyncStatus: "synced"})

	if _, err := f.svc.ScoreProduct(context.Background(), 1); err != nil {
		t.Fatalf("cache failure must not fail the scoring run: %v", err)
	}
}

func TestGetScore_CacheFirst(t *testing.T) {
	cache := NewMemoryScoreCache(time.Minute)
	f := newQualityFixture(cache)

	cached := domain.QualityScoreResult{ID: "abc", ProductID: 1, OverallScore: 77}
	if err := cache.Set(context.Background(), cached); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	f.scores.getErr = errors.New("db down")

	result, err := f.svc.GetScore(context.Background(), 1)
	if err != nil {
		t.Fatalf("get score: %v", err)
	}
	if result.OverallScore != 77 {
		t.Fatalf("overall = %d; want cached 77", result.OverallScore)
	}
}

func TestGetScore_FallsBackToStore(t *testing.T) {
	f := newQualityFixture(NewMemoryScoreCache(time.Minute))
	f.scores.byProduct[1] = &domain.QualityScoreResult{ID: "abc", ProductID: 1, OverallScore: 64}

	result, err := f.svc.GetScore(context.Background(), 1)
	if err != nil {
		t.Fatalf("get score: %v", err)
	}
	if result.OverallScore != 64 {
		t.Fatalf("overall = %d; want 64", result.OverallScore)
	}

	_, err = f.svc.GetScore(context.Background(), 2)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound for unscored product", err)
	}
}

type failingCache struct{}

func (failingCache) Set(context.Context, domain.QualityScoreResult) error {
	return errors.New("redis down")
}

func (failingCache) Get(context.Context, int64) (*domain.QualityScoreResult, error) {
	return nil, errors.New("redis down")
}
