package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/QNhat1998/sales-api/internal/domain"
)

// PostgresProductRepository implements ProductRepository using
// PostgreSQL
type PostgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProductRepository creates a new PostgresProductRepository
func NewPostgresProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{pool: pool}
}

const productColumns = `id, product_name, description, category_id, brand_id, sku,
	price, cost_price, quantity_in_stock, image_url, created_at, updated_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	product := &domain.Product{}
	var categoryID, brandID *string
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&categoryID,
		&brandID,
		&product.SKU,
		&product.Price,
		&product.CostPrice,
		&product.QuantityInStock,
		&product.ImageURL,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if categoryID != nil {
		product.CategoryID = *categoryID
	}
	if brandID != nil {
		product.BrandID = *brandID
	}
	return product, nil
}

// nullable returns nil for empty strings so optional foreign keys
// store as NULL
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create persists a new product
func (r *PostgresProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, product_name, description, category_id, brand_id,
			sku, price, cost_price, quantity_in_stock, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		nullable(product.CategoryID),
		nullable(product.BrandID),
		product.SKU,
		product.Price,
		product.CostPrice,
		product.QuantityInStock,
		product.ImageURL,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a product by ID
func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.pool.QueryRow(ctx, query, id))
}

// GetBySKU retrieves a product by SKU
func (r *PostgresProductRepository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return scanProduct(r.pool.QueryRow(ctx, query, sku))
}

// List returns a page of products plus the total count
func (r *PostgresProductRepository) List(ctx context.Context, limit, offset int) ([]*domain.Product, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	products, err := r.queryProducts(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Search matches product name, description or SKU
func (r *PostgresProductRepository) Search(ctx context.Context, term string, limit, offset int) ([]*domain.Product, int64, error) {
	pattern := "%" + term + "%"

	var total int64
	countQuery := `
		SELECT COUNT(*) FROM products
		WHERE product_name ILIKE $1 OR description ILIKE $1 OR sku ILIKE $1
	`
	if err := r.pool.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_name ILIKE $1 OR description ILIKE $1 OR sku ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	products, err := r.queryProducts(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *PostgresProductRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*domain.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// Update persists product changes
func (r *PostgresProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET product_name = $2, description = $3, category_id = $4, brand_id = $5,
			sku = $6, price = $7, cost_price = $8, quantity_in_stock = $9,
			image_url = $10, updated_at = $11
		WHERE id = $1
	`
	product.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		nullable(product.CategoryID),
		nullable(product.BrandID),
		product.SKU,
		product.Price,
		product.CostPrice,
		product.QuantityInStock,
		product.ImageURL,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete removes a product
func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
