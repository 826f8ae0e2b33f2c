package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"webshop-seo/internal/domain"
)

type DescriptionRepository interface {
	GetByProductAndLanguage(ctx context.Context, productID int64, language string) (*domain.ProductDescription, error)
}

type ImageRepository interface {
	ListByProductID(ctx context.Context, productID int64) ([]domain.ProductImage, error)
}

type PgDescriptionRepository struct {
	pool *pgxpool.Pool
}

func NewPgDescriptionRepository(pool *pgxpool.Pool) *PgDescriptionRepository {
	return &PgDescriptionRepository{pool: pool}
}

// GetByProductAndLanguage returns nil without error when the product has no
// description record; absence is a scoring branch, not a failure.
func (r *PgDescriptionRepository) GetByProductAndLanguage(ctx context.Context, productID int64, language string) (*domain.ProductDescription, error) {
	const query = `
		SELECT product_id, language, description, meta_title, meta_description
		FROM product_descriptions
		WHERE product_id = $1 AND language = $2
	`

	var d domain.ProductDescription
	var description, metaTitle, metaDescription sql.NullString

	err := r.pool.QueryRow(ctx, query, productID, language).Scan(
		&d.ProductID,
		&d.Language,
		&description,
		&metaTitle,
		&metaDescription,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	d.Description = description.String
	d.MetaTitle = metaTitle.String
	d.MetaDescription = metaDescription.String
	return &d, nil
}

type PgImageRepository struct {
	pool *pgxpool.Pool
}

func NewPgImageRepository(pool *pgxpool.Pool) *PgImageRepository {
	return &PgImageRepository{pool: pool}
}

func (r *PgImageRepository) ListByProductID(ctx context.Context, productID int64) ([]domain.ProductImage, error) {
	const query = `
		SELECT alt_text, alt_text_status
		FROM product_images
		WHERE product_id = $1
		ORDER BY position, id
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.ProductImage
	for rows.Next() {
		var img domain.ProductImage
		var altText, altTextStatus sql.NullString

		if err := rows.Scan(&altText, &altTextStatus); err != nil {
			return nil, err
		}
		img.AltText = altText.String
		img.AltTextStatus = altTextStatus.String
		images = append(images, img)
	}

	return images, rows.Err()
}
