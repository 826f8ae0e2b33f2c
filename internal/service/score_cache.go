package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"webshop-seo/internal/domain"
)

// ScoreCache keeps the latest score per product for fast dashboard reads.
// Best effort: a cache failure never fails a scoring run.
type ScoreCache interface {
	Set(ctx context.Context, result domain.QualityScoreResult) error
	Get(ctx context.Context, productID int64) (*domain.QualityScoreResult, error)
}

type memoryScoreCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[int64]memoryCacheItem
}

type memoryCacheItem struct {
	result    domain.QualityScoreResult
	expiresAt time.Time
}

func NewMemoryScoreCache(ttl time.Duration) ScoreCache {
	return &memoryScoreCache{
		ttl:   ttl,
		items: make(map[int64]memoryCacheItem),
	}
}

func (c *memoryScoreCache) Set(_ context.Context, result domain.QualityScoreResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[result.ProductID] = memoryCacheItem{
		result:    result,
		expiresAt: time.Now().UTC().Add(c.ttl),
	}
	return nil
}

func (c *memoryScoreCache) Get(_ context.Context, productID int64) (*domain.QualityScoreResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[productID]
	if !ok {
		return nil, nil
	}
	if time.Now().UTC().After(item.expiresAt) {
		delete(c.items, productID)
		return nil, nil
	}
	result := item.result
	return &result, nil
}

type redisScoreCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisScoreCache(client *redis.Client, ttl time.Duration) ScoreCache {
	if client == nil {
		return nil
	}
	return &redisScoreCache{
		client: client,
		ttl:    ttl,
		prefix: "quality_score:",
	}
}

func (c *redisScoreCache) Set(ctx context.Context, result domain.QualityScoreResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal cached score: %w", err)
	}
	return c.client.Set(ctx, c.key(result.ProductID), payload, c.ttl).Err()
}

func (c *redisScoreCache) Get(ctx context.Context, productID int64) (*domain.QualityScoreResult, error) {
	payload, err := c.client.Get(ctx, c.key(productID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result domain.QualityScoreResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("unmarshal cached score: %w", err)
	}
	return &result, nil
}

func (c *redisScoreCache) key(productID int64) string {
	return fmt.Sprintf("%s%d", c.prefix, productID)
}
