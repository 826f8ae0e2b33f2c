package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"webshop-seo/internal/domain"
)

type ScoreRepository interface {
	Upsert(ctx context.Context, result domain.QualityScoreResult) error
	GetByProductID(ctx context.Context, productID int64) (*domain.QualityScoreResult, error)
	ListWorst(ctx context.Context, limit int) ([]domain.QualityScoreResult, error)
}

type PgScoreRepository struct {
	pool *pgxpool.Pool
}

func NewPgScoreRepository(pool *pgxpool.Pool) *PgScoreRepository {
	return &PgScoreRepository{pool: pool}
}

// Upsert keeps at most one live score row per product; re-scoring fully
// overwrites the previous result in place.
func (r *PgScoreRepository) Upsert(ctx context.Context, result domain.QualityScoreResult) error {
	const query = `
		INSERT INTO quality_scores (
			id, product_id, is_parent,
			content_score, image_score, technical_score,
			performance_score, completeness_score, competitive_score,
			overall_score, priority_score, issues, blocking_issues, calculated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (product_id)
		DO UPDATE SET
			is_parent = EXCLUDED.is_parent,
			content_score = EXCLUDED.content_score,
			image_score = EXCLUDED.image_score,
			technical_score = EXCLUDED.technical_score,
			performance_score = EXCLUDED.performance_score,
			completeness_score = EXCLUDED.completeness_score,
			competitive_score = EXCLUDED.competitive_score,
			overall_score = EXCLUDED.overall_score,
			priority_score = EXCLUDED.priority_score,
			issues = EXCLUDED.issues,
			blocking_issues = EXCLUDED.blocking_issues,
			calculated_at = EXCLUDED.calculated_at
	`

	issues, err := json.Marshal(result.Issues)
	if err != nil {
		return fmt.Errorf("marshal issues: %w", err)
	}
	blocking, err := json.Marshal(result.BlockingIssues)
	if err != nil {
		return fmt.Errorf("marshal blocking issues: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		result.ID,
		result.ProductID,
		result.IsParent,
		result.ContentScore,
		result.ImageScore,
		result.TechnicalScore,
		result.PerformanceScore,
		result.CompletenessScore,
		result.CompetitiveScore,
		result.OverallScore,
		result.PriorityScore,
		issues,
		blocking,
		result.CalculatedAt,
	)
	return err
}

func (r *PgScoreRepository) GetByProductID(ctx context.Context, productID int64) (*domain.QualityScoreResult, error) {
	const query = `
		SELECT id, product_id, is_parent,
		       content_score, image_score, technical_score,
		       performance_score, completeness_score, competitive_score,
		       overall_score, priority_score, issues, blocking_issues, calculated_at
		FROM quality_scores
		WHERE product_id = $1
	`

	result, err := scanScore(r.pool.QueryRow(ctx, query, productID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("score of product %d: %w", productID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListWorst returns the stored scores ordered by remediation priority.
func (r *PgScoreRepository) ListWorst(ctx context.Context, limit int) ([]domain.QualityScoreResult, error) {
	const query = `
		SELECT id, product_id, is_parent,
		       content_score, image_score, technical_score,
		       performance_score, completeness_score, competitive_score,
		       overall_score, priority_score, issues, blocking_issues, calculated_at
		FROM quality_scores
		ORDER BY priority_score DESC, product_id
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.QualityScoreResult
	for rows.Next() {
		result, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}

	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScore(row rowScanner) (*domain.QualityScoreResult, error) {
	var result domain.QualityScoreResult
	var issuesRaw, blockingRaw []byte

	if err := row.Scan(
		&result.ID,
		&result.ProductID,
		&result.IsParent,
		&result.ContentScore,
		&result.ImageScore,
		&result.TechnicalScore,
		&result.PerformanceScore,
		&result.CompletenessScore,
		&result.CompetitiveScore,
		&result.OverallScore,
		&result.PriorityScore,
		&issuesRaw,
		&blockingRaw,
		&result.CalculatedAt,
	); err != nil {
		return nil, err
	}

	if len(issuesRaw) > 0 {
		if err := json.Unmarshal(issuesRaw, &result.Issues); err != nil {
			return nil, fmt.Errorf("unmarshal issues: %w", err)
		}
	}
	if len(blockingRaw) > 0 {
		if err := json.Unmarshal(blockingRaw, &result.BlockingIssues); err != nil {
			return nil, fmt.Errorf("unmarshal blocking issues: %w", err)
		}
	}
	return &result, nil
}
