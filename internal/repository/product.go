package repository

import (
	"context"
	"fmt"

	"panduit/scraper/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository interface {
	EnsureSchema(ctx context.Context) error
	SaveProduct(ctx context.Context, runID string, record *domain.ProductRecord) error
}

type productRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (r *productRepository) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS product_details (
		sku        TEXT PRIMARY KEY,
		run_id     TEXT NOT NULL,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create product_details table: %w", err)
	}

	return nil
}

// SaveProduct upserts the record keyed by SKU. A later page with the same
// SKU replaces the earlier row, matching what happens to its image files.
func (r *productRepository) SaveProduct(ctx context.Context, runID string, record *domain.ProductRecord) error {
	query := `
	INSERT INTO product_details (sku, run_id, data, updated_at)
	VALUES ($1, $2, $3, now())
	ON CONFLICT (sku)
	DO UPDATE SET run_id = $2, data = $3, updated_at = now()`
	_, err := r.db.Exec(ctx, query, record.SKU, runID, record)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", record.SKU, err)
	}

	return nil
}

type noopRepository struct{}

// NewNoopRepository is used when the database sink is disabled
func NewNoopRepository() ProductRepository {
	return noopRepository{}
}

func (noopRepository) EnsureSchema(ctx context.Context) error { return nil }

func (noopRepository) SaveProduct(ctx context.Context, runID string, record *domain.ProductRecord) error {
	return nil
}
