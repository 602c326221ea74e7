package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/QNhat1998/sales-api/internal/domain"
	"github.com/QNhat1998/sales-api/internal/dto"
	"github.com/QNhat1998/sales-api/internal/repository"
)

// BrandService defines the interface for brand operations
type BrandService interface {
	Create(ctx context.Context, req *dto.CreateBrandRequest) (*domain.Brand, error)
	GetByID(ctx context.Context, id string) (*domain.Brand, error)
	List(ctx context.Context) ([]*domain.Brand, error)
	Update(ctx context.Context, id string, req *dto.UpdateBrandRequest) (*domain.Brand, error)
	Delete(ctx context.Context, id string) error
}

type brandService struct {
	brandRepo repository.BrandRepository
}

// NewBrandService creates a new BrandService
func NewBrandService(brandRepo repository.BrandRepository) BrandService {
	return &brandService{brandRepo: brandRepo}
}

// Create adds a new brand, names are unique
func (s *brandService) Create(ctx context.Context, req *dto.CreateBrandRequest) (*domain.Brand, error) {
	existing, err := s.brandRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrBrandExists
	}

	brand := &domain.Brand{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrBrandNotFound
	}
	return brand, nil
}

func (s *brandService) List(ctx context.Context) ([]*domain.Brand, error) {
	return s.brandRepo.List(ctx)
}

func (s *brandService) Update(ctx context.Context, id string, req *dto.UpdateBrandRequest) (*domain.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrBrandNotFound
	}

	if req.Name != "" && req.Name != brand.Name {
		existing, err := s.brandRepo.GetByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrBrandExists
		}
		brand.Name = req.Name
	}
	if req.Description != "" {
		brand.Description = req.Description
	}

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) Delete(ctx context.Context, id string) error {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrBrandNotFound
	}
	return s.brandRepo.Delete(ctx, id)
}
