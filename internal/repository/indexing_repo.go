package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"webshop-seo/internal/domain"
)

type IndexingRepository interface {
	GetByProductID(ctx context.Context, productID int64) (*domain.IndexingStatus, error)
}

type PerformanceRepository interface {
	ListRecentByProductID(ctx context.Context, productID int64, limit int) ([]domain.SearchSample, error)
}

type PgIndexingRepository struct {
	pool *pgxpool.Pool
}

func NewPgIndexingRepository(pool *pgxpool.Pool) *PgIndexingRepository {
	return &PgIndexingRepository{pool: pool}
}

// GetByProductID returns nil without error when no inspection snapshot
// exists yet for the product.
func (r *PgIndexingRepository) GetByProductID(ctx context.Context, productID int64) (*domain.IndexingStatus, error) {
	const query = `
		SELECT product_id, indexed, has_issues, page_fetch_state, coverage_state,
		       mobile_usability, structured_data
		FROM indexing_statuses
		WHERE product_id = $1
	`

	var s domain.IndexingStatus
	var fetchState, coverageState sql.NullString
	var mobileRaw, structuredRaw []byte

	err := r.pool.QueryRow(ctx, query, productID).Scan(
		&s.ProductID,
		&s.Indexed,
		&s.HasIssues,
		&fetchState,
		&coverageState,
		&mobileRaw,
		&structuredRaw,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.PageFetchState = fetchState.String
	s.CoverageState = coverageState.String
	if len(mobileRaw) > 0 {
		if err := json.Unmarshal(mobileRaw, &s.MobileUsability); err != nil {
			return nil, fmt.Errorf("mobile usability issues of product %d: %w", productID, err)
		}
	}
	if len(structuredRaw) > 0 {
		if err := json.Unmarshal(structuredRaw, &s.StructuredData); err != nil {
			return nil, fmt.Errorf("structured data issues of product %d: %w", productID, err)
		}
	}
	return &s, nil
}

type PgPerformanceRepository struct {
	pool *pgxpool.Pool
}

func NewPgPerformanceRepository(pool *pgxpool.Pool) *PgPerformanceRepository {
	return &PgPerformanceRepository{pool: pool}
}

func (r *PgPerformanceRepository) ListRecentByProductID(ctx context.Context, productID int64, limit int) ([]domain.SearchSample, error) {
	const query = `
		SELECT product_id, date, impressions, clicks, position, ctr
		FROM search_samples
		WHERE product_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []domain.SearchSample
	for rows.Next() {
		var s domain.SearchSample
		if err := rows.Scan(
			&s.ProductID,
			&s.Date,
			&s.Impressions,
			&s.Clicks,
			&s.Position,
			&s.CTR,
		); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}

	return samples, rows.Err()
}
