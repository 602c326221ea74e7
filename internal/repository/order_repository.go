package repository

import (
	"context"

	"github.com/QNhat1998/sales-api/internal/domain"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// CreateWithItems persists the order and all of its line items in
	// a single transaction; on any failure nothing is written
	CreateWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
	// GetByID retrieves an order with its items and payments, nil when
	// absent
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// List returns a page of orders plus the total count, newest first
	List(ctx context.Context, limit, offset int) ([]*domain.Order, int64, error)
	// ListByUser returns a page of a user's orders plus the total count
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Order, int64, error)
	// GetItems returns the line items of an order
	GetItems(ctx context.Context, orderID string) ([]domain.OrderItem, error)
	// Update persists mutable order fields (status, shipping, payment
	// metadata); items and totals are never touched
	Update(ctx context.Context, order *domain.Order) error
	// Delete removes the order's items and then the order itself in a
	// single transaction
	Delete(ctx context.Context, id string) error
}
