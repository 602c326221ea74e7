package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QNhat1998/sales-api/internal/domain"
	"github.com/QNhat1998/sales-api/internal/dto"
)

// mockProductRepository is a mock implementation of ProductRepository
type mockProductRepository struct {
	products map[string]*domain.Product
	skuIndex map[string]*domain.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: make(map[string]*domain.Product),
		skuIndex: make(map[string]*domain.Product),
	}
}

func (r *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.products[product.ID] = product
	if product.SKU != "" {
		r.skuIndex[product.SKU] = product
	}
	return nil
}

func (r *mockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.products[id], nil
}

func (r *mockProductRepository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return r.skuIndex[sku], nil
}

func (r *mockProductRepository) List(ctx context.Context, limit, offset int) ([]*domain.Product, int64, error) {
	var products []*domain.Product
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, int64(len(products)), nil
}

func (r *mockProductRepository) Search(ctx context.Context, term string, limit, offset int) ([]*domain.Product, int64, error) {
	return r.List(ctx, limit, offset)
}

func (r *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.products[product.ID] = product
	if product.SKU != "" {
		r.skuIndex[product.SKU] = product
	}
	return nil
}

func (r *mockProductRepository) Delete(ctx context.Context, id string) error {
	product := r.products[id]
	if product != nil {
		delete(r.skuIndex, product.SKU)
		delete(r.products, id)
	}
	return nil
}

// mockCategoryRepository is a mock implementation of CategoryRepository
type mockCategoryRepository struct {
	categories map[string]*domain.Category
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: make(map[string]*domain.Category)}
}

func (r *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *mockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.categories[id], nil
}

func (r *mockCategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	for _, category := range r.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, nil
}

func (r *mockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	var categories []*domain.Category
	for _, category := range r.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *mockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *mockCategoryRepository) Delete(ctx context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

// mockBrandRepository is a mock implementation of BrandRepository
type mockBrandRepository struct {
	brands map[string]*domain.Brand
}

func newMockBrandRepository() *mockBrandRepository {
	return &mockBrandRepository{brands: make(map[string]*domain.Brand)}
}

func (r *mockBrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	r.brands[brand.ID] = brand
	return nil
}

func (r *mockBrandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	return r.brands[id], nil
}

func (r *mockBrandRepository) GetByName(ctx context.Context, name string) (*domain.Brand, error) {
	for _, brand := range r.brands {
		if brand.Name == name {
			return brand, nil
		}
	}
	return nil, nil
}

func (r *mockBrandRepository) List(ctx context.Context) ([]*domain.Brand, error) {
	var brands []*domain.Brand
	for _, brand := range r.brands {
		brands = append(brands, brand)
	}
	return brands, nil
}

func (r *mockBrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	r.brands[brand.ID] = brand
	return nil
}

func (r *mockBrandRepository) Delete(ctx context.Context, id string) error {
	delete(r.brands, id)
	return nil
}

func newTestProductService() (ProductService, *mockProductRepository, *mockCategoryRepository, *mockBrandRepository) {
	productRepo := newMockProductRepository()
	categoryRepo := newMockCategoryRepository()
	brandRepo := newMockBrandRepository()
	svc := NewProductService(productRepo, categoryRepo, brandRepo)
	return svc, productRepo, categoryRepo, brandRepo
}

func TestProductService_Create(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		svc, _, categoryRepo, _ := newTestProductService()
		categoryRepo.categories["cat-1"] = &domain.Category{ID: "cat-1", Name: "Electronics"}

		product, err := svc.Create(context.Background(), &dto.CreateProductRequest{
			Name:       "Widget",
			SKU:        "WID-001",
			Price:      decimal.RequireFromString("19.99"),
			CategoryID: "cat-1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, "WID-001", product.SKU)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("19.99")))
	})

	t.Run("duplicate sku", func(t *testing.T) {
		svc, _, _, _ := newTestProductService()

		_, err := svc.Create(context.Background(), &dto.CreateProductRequest{
			Name:  "First",
			SKU:   "DUP-1",
			Price: decimal.RequireFromString("1.00"),
		})
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), &dto.CreateProductRequest{
			Name:  "Second",
			SKU:   "DUP-1",
			Price: decimal.RequireFromString("2.00"),
		})
		assert.ErrorIs(t, err, domain.ErrSKUExists)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, _, _, _ := newTestProductService()

		_, err := svc.Create(context.Background(), &dto.CreateProductRequest{
			Name:       "Widget",
			Price:      decimal.RequireFromString("5.00"),
			CategoryID: "missing",
		})
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	t.Run("unknown brand", func(t *testing.T) {
		svc, _, _, _ := newTestProductService()

		_, err := svc.Create(context.Background(), &dto.CreateProductRequest{
			Name:    "Widget",
			Price:   decimal.RequireFromString("5.00"),
			BrandID: "missing",
		})
		assert.ErrorIs(t, err, domain.ErrBrandNotFound)
	})
}

func TestProductService_Update(t *testing.T) {
	svc, _, _, _ := newTestProductService()

	created, err := svc.Create(context.Background(), &dto.CreateProductRequest{
		Name:            "Widget",
		SKU:             "WID-010",
		Price:           decimal.RequireFromString("10.00"),
		QuantityInStock: 5,
	})
	require.NoError(t, err)

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		newPrice := decimal.RequireFromString("12.50")
		updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateProductRequest{
			Price: &newPrice,
		})
		require.NoError(t, err)
		assert.True(t, updated.Price.Equal(newPrice))
		assert.Equal(t, "Widget", updated.Name)
		assert.Equal(t, 5, updated.QuantityInStock)
	})

	t.Run("stock can be set to zero", func(t *testing.T) {
		zero := 0
		updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateProductRequest{
			QuantityInStock: &zero,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.QuantityInStock)
	})

	t.Run("sku collision", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &dto.CreateProductRequest{
			Name:  "Other",
			SKU:   "WID-011",
			Price: decimal.RequireFromString("3.00"),
		})
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), created.ID, &dto.UpdateProductRequest{
			SKU: "WID-011",
		})
		assert.ErrorIs(t, err, domain.ErrSKUExists)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "missing", &dto.UpdateProductRequest{Name: "X"})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	svc, productRepo, _, _ := newTestProductService()

	created, err := svc.Create(context.Background(), &dto.CreateProductRequest{
		Name:  "Doomed",
		Price: decimal.RequireFromString("1.00"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Nil(t, productRepo.products[created.ID])

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCategoryService(t *testing.T) {
	categoryRepo := newMockCategoryRepository()
	svc := NewCategoryService(categoryRepo)

	t.Run("create and duplicate name", func(t *testing.T) {
		created, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{Name: "Books"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		_, err = svc.Create(context.Background(), &dto.CreateCategoryRequest{Name: "Books"})
		assert.ErrorIs(t, err, domain.ErrCategoryExists)
	})

	t.Run("update unknown category", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "missing", &dto.UpdateCategoryRequest{Name: "X"})
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})
}

func TestBrandService(t *testing.T) {
	brandRepo := newMockBrandRepository()
	svc := NewBrandService(brandRepo)

	created, err := svc.Create(context.Background(), &dto.CreateBrandRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &dto.CreateBrandRequest{Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrBrandExists)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)
}
