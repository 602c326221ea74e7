package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/QNhat1998/sales-api/internal/domain"
)

// PostgresBrandRepository implements BrandRepository using PostgreSQL
type PostgresBrandRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBrandRepository creates a new PostgresBrandRepository
func NewPostgresBrandRepository(pool *pgxpool.Pool) *PostgresBrandRepository {
	return &PostgresBrandRepository{pool: pool}
}

func scanBrand(row pgx.Row) (*domain.Brand, error) {
	brand := &domain.Brand{}
	err := row.Scan(&brand.ID, &brand.Name, &brand.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return brand, nil
}

// Create persists a new brand
func (r *PostgresBrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	query := `INSERT INTO brands (id, brand_name, description) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, brand.ID, brand.Name, brand.Description)
	if err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

// GetByID retrieves a brand by ID
func (r *PostgresBrandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	query := `SELECT id, brand_name, description FROM brands WHERE id = $1`
	return scanBrand(r.pool.QueryRow(ctx, query, id))
}

// GetByName retrieves a brand by name
func (r *PostgresBrandRepository) GetByName(ctx context.Context, name string) (*domain.Brand, error) {
	query := `SELECT id, brand_name, description FROM brands WHERE brand_name = $1`
	return scanBrand(r.pool.QueryRow(ctx, query, name))
}

// List returns all brands ordered by name
func (r *PostgresBrandRepository) List(ctx context.Context) ([]*domain.Brand, error) {
	query := `SELECT id, brand_name, description FROM brands ORDER BY brand_name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	var brands []*domain.Brand
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}
	return brands, rows.Err()
}

// Update persists brand changes
func (r *PostgresBrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	query := `UPDATE brands SET brand_name = $2, description = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, brand.ID, brand.Name, brand.Description)
	if err != nil {
		return fmt.Errorf("failed to update brand: %w", err)
	}
	return nil
}

// Delete removes a brand. Products keep their rows, the schema nulls
// their brand reference.
func (r *PostgresBrandRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM brands WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
