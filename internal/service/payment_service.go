package service

import (
	"context"

	"github.com/QNhat1998/sales-api/internal/domain"
	"github.com/QNhat1998/sales-api/internal/repository"
)

// PaymentService defines read access to recorded payments
type PaymentService interface {
	// GetByID retrieves a payment by ID
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	// List returns a page of payments plus the total count
	List(ctx context.Context, limit, offset int) ([]*domain.Payment, int64, error)
	// ListByOrder returns all payments recorded against an order
	ListByOrder(ctx context.Context, orderID string) ([]domain.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, orderRepo: orderRepo}
}

func (s *paymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrPaymentNotFound
	}
	return payment, nil
}

func (s *paymentService) List(ctx context.Context, limit, offset int) ([]*domain.Payment, int64, error) {
	return s.paymentRepo.List(ctx, limit, offset)
}

// ListByOrder returns all payments recorded against an order. The
// order must exist even when it has no payments yet.
func (s *paymentService) ListByOrder(ctx context.Context, orderID string) ([]domain.Payment, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return s.paymentRepo.ListByOrder(ctx, orderID)
}
