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

// ErrNotFound marks a lookup whose base record does not exist.
var ErrNotFound = errors.New("not found")

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (domain.Product, error)
	ListAttributes(ctx context.Context, productID int64) ([]domain.Attribute, error)
	ListActiveIDs(ctx context.Context) ([]int64, error)
}

type PgProductRepository struct {
	pool *pgxpool.Pool
}

func NewPgProductRepository(pool *pgxpool.Pool) *PgProductRepository {
	return &PgProductRepository{pool: pool}
}

func (r *PgProductRepository) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	const query = `
		SELECT id, parent_id, sku, name, model_number, gtin, price, active,
		       slug, sync_status, sync_error, competitor_tracking
		FROM products
		WHERE id = $1
	`

	var p domain.Product
	var sku, name, modelNumber, gtin, slug, syncStatus, syncError sql.NullString

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.ParentID,
		&sku,
		&name,
		&modelNumber,
		&gtin,
		&p.Price,
		&p.Active,
		&slug,
		&syncStatus,
		&syncError,
		&p.CompetitorTracking,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, err
	}

	p.SKU = sku.String
	p.Name = name.String
	p.ModelNumber = modelNumber.String
	p.GTIN = gtin.String
	p.Slug = slug.String
	p.SyncStatus = syncStatus.String
	p.SyncError = syncError.String
	return p, nil
}

func (r *PgProductRepository) ListAttributes(ctx context.Context, productID int64) ([]domain.Attribute, error) {
	const query = `
		SELECT kind, name, value
		FROM product_attributes
		WHERE product_id = $1
		ORDER BY position, name
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attrs []domain.Attribute
	for rows.Next() {
		var a domain.Attribute
		var raw []byte

		if err := rows.Scan(&a.Kind, &a.Name, &raw); err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &a.Value); err != nil {
				return nil, fmt.Errorf("attribute %q of product %d: %w", a.Name, productID, err)
			}
		}
		attrs = append(attrs, a)
	}

	return attrs, rows.Err()
}

func (r *PgProductRepository) ListActiveIDs(ctx context.Context) ([]int64, error) {
	const query = `
		SELECT id
		FROM products
		WHERE active = true
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
