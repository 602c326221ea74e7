package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/QNhat1998/sales-api/internal/domain"
	"github.com/QNhat1998/sales-api/internal/dto"
	"github.com/QNhat1998/sales-api/internal/repository"
	"github.com/QNhat1998/sales-api/pkg/telemetry"
)

// ProductService defines the interface for catalog operations
type ProductService interface {
	// Create adds a new product to the catalog
	Create(ctx context.Context, req *dto.CreateProductRequest) (*domain.Product, error)
	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns a page of products plus the total count
	List(ctx context.Context, limit, offset int) ([]*domain.Product, int64, error)
	// Search matches name, description or SKU
	Search(ctx context.Context, term string, limit, offset int) ([]*domain.Product, int64, error)
	// Update applies a partial catalog update
	Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*domain.Product, error)
	// Delete removes a product from the catalog
	Delete(ctx context.Context, id string) error
}

// productService implements ProductService
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
	}
}

// Create adds a new product. The SKU must be unique and any category
// or brand reference must resolve.
func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*domain.Product, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.product.create")
	defer span.End()

	span.SetAttributes(attribute.String("sku", req.SKU))

	if req.SKU != "" {
		existing, err := s.productRepo.GetBySKU(ctx, req.SKU)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		if existing != nil {
			span.SetStatus(codes.Error, "sku exists")
			return nil, domain.ErrSKUExists
		}
	}
	if err := s.checkReferences(ctx, req.CategoryID, req.BrandID); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	now := time.Now()
	product := &domain.Product{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		BrandID:         req.BrandID,
		SKU:             req.SKU,
		Price:           req.Price,
		CostPrice:       req.CostPrice,
		QuantityInStock: req.QuantityInStock,
		ImageURL:        req.ImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("product_id", product.ID))
	span.SetStatus(codes.Ok, "")
	return product, nil
}

// GetByID retrieves a product by ID
func (s *productService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.product.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.String("product_id", id))

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if product == nil {
		span.SetStatus(codes.Error, "product not found")
		return nil, domain.ErrProductNotFound
	}

	span.SetStatus(codes.Ok, "")
	return product, nil
}

// List returns a page of products plus the total count
func (s *productService) List(ctx context.Context, limit, offset int) ([]*domain.Product, int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.product.list")
	defer span.End()

	products, total, err := s.productRepo.List(ctx, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetStatus(codes.Ok, "")
	return products, total, nil
}

// Search matches name, description or SKU
func (s *productService) Search(ctx context.Context, term string, limit, offset int) ([]*domain.Product, int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.product.search")
	defer span.End()

	span.SetAttributes(attribute.String("term", term))

	products, total, err := s.productRepo.Search(ctx, term, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetStatus(codes.Ok, "")
	return products, total, nil
}

// Update applies a partial catalog update. Price changes only affect
// future orders, existing line items keep their snapshots.
func (s *productService) Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*domain.Product, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.product.update")
	defer span.End()

	span.SetAttributes(attribute.String("product_id", id))

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if product == nil {
		span.SetStatus(codes.Error, "product not found")
		return nil, domain.ErrProductNotFound
	}

	if req.SKU != "" && req.SKU != product.SKU {
		existing, err := s.productRepo.GetBySKU(ctx, req.SKU)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		if existing != nil {
			span.SetStatus(codes.Error, "sku exists")
			return nil, domain.ErrSKUExists
		}
		product.SKU = req.SKU
	}
	if err := s.checkReferences(ctx, req.CategoryID, req.BrandID); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.CategoryID != "" {
		product.CategoryID = req.CategoryID
	}
	if req.BrandID != "" {
		product.BrandID = req.BrandID
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.QuantityInStock != nil {
		product.QuantityInStock = *req.QuantityInStock
	}
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return product, nil
}

// Delete removes a product from the catalog
func (s *productService) Delete(ctx context.Context, id string) error {
	ctx, span := telemetry.StartSpan(ctx, "service.product.delete")
	defer span.End()

	span.SetAttributes(attribute.String("product_id", id))

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if product == nil {
		span.SetStatus(codes.Error, "product not found")
		return domain.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

func (s *productService) checkReferences(ctx context.Context, categoryID, brandID string) error {
	if categoryID != "" {
		category, err := s.categoryRepo.GetByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrCategoryNotFound
		}
	}
	if brandID != "" {
		brand, err := s.brandRepo.GetByID(ctx, brandID)
		if err != nil {
			return err
		}
		if brand == nil {
			return domain.ErrBrandNotFound
		}
	}
	return nil
}
