package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The order flow reads price and stock
// but never mutates them.
type Product struct {
	ID              string          `json:"product_id"`
	Name            string          `json:"product_name"`
	Description     string          `json:"description,omitempty"`
	CategoryID      string          `json:"category_id,omitempty"`
	BrandID         string          `json:"brand_id,omitempty"`
	SKU             string          `json:"sku,omitempty"`
	Price           decimal.Decimal `json:"price"`
	CostPrice       decimal.Decimal `json:"cost_price,omitempty"`
	QuantityInStock int             `json:"quantity_in_stock"`
	ImageURL        string          `json:"image_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Category groups products
type Category struct {
	ID          string `json:"category_id"`
	Name        string `json:"category_name"`
	Description string `json:"description,omitempty"`
}

// Brand is a product manufacturer
type Brand struct {
	ID          string `json:"brand_id"`
	Name        string `json:"brand_name"`
	Description string `json:"description,omitempty"`
}
