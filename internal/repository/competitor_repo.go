package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"webshop-seo/internal/domain"
)

type CompetitorRepository interface {
	ListActiveLinks(ctx context.Context, productID int64) ([]domain.CompetitorLink, error)
	GetLatestPrice(ctx context.Context, linkID int64) (*domain.CompetitorPrice, error)
}

type PgCompetitorRepository struct {
	pool *pgxpool.Pool
}

func NewPgCompetitorRepository(pool *pgxpool.Pool) *PgCompetitorRepository {
	return &PgCompetitorRepository{pool: pool}
}

func (r *PgCompetitorRepository) ListActiveLinks(ctx context.Context, productID int64) ([]domain.CompetitorLink, error) {
	const query = `
		SELECT id, product_id, url, active
		FROM competitor_links
		WHERE product_id = $1 AND active = true
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.CompetitorLink
	for rows.Next() {
		var l domain.CompetitorLink
		if err := rows.Scan(&l.ID, &l.ProductID, &l.URL, &l.Active); err != nil {
			return nil, err
		}
		links = append(links, l)
	}

	return links, rows.Err()
}

// GetLatestPrice returns the most recently sampled price for a link, nil
// when the link has never been sampled.
func (r *PgCompetitorRepository) GetLatestPrice(ctx context.Context, linkID int64) (*domain.CompetitorPrice, error) {
	const query = `
		SELECT link_id, price, sampled_at
		FROM competitor_prices
		WHERE link_id = $1
		ORDER BY sampled_at DESC
		LIMIT 1
	`

	var p domain.CompetitorPrice
	err := r.pool.QueryRow(ctx, query, linkID).Scan(&p.LinkID, &p.Price, &p.SampledAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
