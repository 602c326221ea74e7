package repository

import (
	"context"

	"github.com/QNhat1998/sales-api/internal/domain"
)

// ProductReader is the narrow catalog-lookup capability consumed by
// the order flow; it never mutates the catalog.
type ProductReader interface {
	// GetByID retrieves a product by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	ProductReader

	// Create persists a new product
	Create(ctx context.Context, product *domain.Product) error
	// GetBySKU retrieves a product by SKU, nil when absent
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	// List returns a page of products plus the total count
	List(ctx context.Context, limit, offset int) ([]*domain.Product, int64, error)
	// Search matches name, description or SKU
	Search(ctx context.Context, term string, limit, offset int) ([]*domain.Product, int64, error)
	// Update persists product changes
	Update(ctx context.Context, product *domain.Product) error
	// Delete removes a product
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// BrandRepository defines the interface for brand persistence
type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, id string) (*domain.Brand, error)
	GetByName(ctx context.Context, name string) (*domain.Brand, error)
	List(ctx context.Context) ([]*domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id string) error
}
