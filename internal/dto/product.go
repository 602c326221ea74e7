package dto

import "github.com/shopspring/decimal"

// CreateProductRequest represents a new catalog entry
type CreateProductRequest struct {
	Name            string          `json:"product_name" binding:"required"`
	Description     string          `json:"description"`
	CategoryID      string          `json:"category_id"`
	BrandID         string          `json:"brand_id"`
	SKU             string          `json:"sku"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	QuantityInStock int             `json:"quantity_in_stock"`
	ImageURL        string          `json:"image_url"`
}

// UpdateProductRequest mutates catalog fields. Zero-valued fields are
// left unchanged; price updates never rewrite existing order items.
type UpdateProductRequest struct {
	Name            string           `json:"product_name"`
	Description     string           `json:"description"`
	CategoryID      string           `json:"category_id"`
	BrandID         string           `json:"brand_id"`
	SKU             string           `json:"sku"`
	Price           *decimal.Decimal `json:"price"`
	CostPrice       *decimal.Decimal `json:"cost_price"`
	QuantityInStock *int             `json:"quantity_in_stock"`
	ImageURL        string           `json:"image_url"`
}

// CreateCategoryRequest represents a new category
type CreateCategoryRequest struct {
	Name        string `json:"category_name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest mutates a category
type UpdateCategoryRequest struct {
	Name        string `json:"category_name"`
	Description string `json:"description"`
}

// CreateBrandRequest represents a new brand
type CreateBrandRequest struct {
	Name        string `json:"brand_name" binding:"required"`
	Description string `json:"description"`
}

// UpdateBrandRequest mutates a brand
type UpdateBrandRequest struct {
	Name        string `json:"brand_name"`
	Description string `json:"description"`
}
