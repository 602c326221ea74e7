package repository

import (
	"context"

	"github.com/QNhat1998/sales-api/internal/domain"
)

// PaymentRepository defines the interface for payment records
type PaymentRepository interface {
	// GetByID retrieves a payment by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	// List returns a page of payments plus the total count, newest
	// first
	List(ctx context.Context, limit, offset int) ([]*domain.Payment, int64, error)
	// ListByOrder returns all payments recorded against an order
	ListByOrder(ctx context.Context, orderID string) ([]domain.Payment, error)
}
