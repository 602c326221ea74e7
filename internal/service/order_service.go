package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/QNhat1998/sales-api/internal/domain"
	"github.com/QNhat1998/sales-api/internal/dto"
	"github.com/QNhat1998/sales-api/internal/repository"
	"github.com/QNhat1998/sales-api/pkg/telemetry"
)

// OrderService defines the interface for order operations
type OrderService interface {
	// Create validates and persists a new order atomically
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*domain.Order, error)
	// GetByID retrieves an order with its items and payments
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// List returns a page of orders plus the total count
	List(ctx context.Context, limit, offset int) ([]*domain.Order, int64, error)
	// ListByUser returns a page of a user's orders plus the total count
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Order, int64, error)
	// GetItems returns the line items of an order
	GetItems(ctx context.Context, orderID string) ([]domain.OrderItem, error)
	// Update mutates order status, shipping and payment metadata
	Update(ctx context.Context, id string, req *dto.UpdateOrderRequest) (*domain.Order, error)
	// Delete removes an order and its items
	Delete(ctx context.Context, id string) error
}

// orderService implements OrderService
type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	products  repository.ProductReader
	events    EventPublisher
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	products repository.ProductReader,
	events EventPublisher,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		products:  products,
		events:    events,
	}
}

// Create validates and persists a new order. Every product is resolved
// and priced before the first write, so a bad line item can never
// leave a partial order behind.
func (s *orderService) Create(ctx context.Context, req *dto.CreateOrderRequest) (*domain.Order, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.order.create")
	defer span.End()

	span.SetAttributes(
		attribute.String("user_id", req.UserID),
		attribute.Int("item_count", len(req.Items)),
	)

	if len(req.Items) == 0 {
		span.SetStatus(codes.Error, "empty order")
		return nil, domain.ErrEmptyOrder
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			span.SetStatus(codes.Error, "invalid quantity")
			return nil, domain.ErrInvalidQuantity
		}
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if user == nil {
		span.SetStatus(codes.Error, "user not found")
		return nil, domain.ErrUserNotFound
	}

	orderID := uuid.New().String()
	total := decimal.Zero
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		if product == nil {
			span.SetStatus(codes.Error, "product not found")
			return nil, domain.ErrProductNotFound
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(subtotal)
		items = append(items, domain.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			Subtotal:  subtotal,
		})
	}

	order := &domain.Order{
		ID:                 orderID,
		UserID:             req.UserID,
		OrderDate:          time.Now(),
		TotalAmount:        total,
		Status:             domain.OrderStatusPending,
		ShippingAddress:    req.ShippingAddress,
		ShippingCity:       req.ShippingCity,
		ShippingState:      req.ShippingState,
		ShippingPostalCode: req.ShippingPostalCode,
		ShippingCountry:    req.ShippingCountry,
		PaymentMethod:      req.PaymentMethod,
		PaymentStatus:      domain.PaymentStatusPending,
		Notes:              req.Notes,
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	order.Items = items

	s.events.PublishOrderCreated(ctx, order)

	span.SetAttributes(attribute.String("order_id", order.ID))
	span.SetStatus(codes.Ok, "")
	return order, nil
}

// GetByID retrieves an order with its items and payments
func (s *orderService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.order.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.String("order_id", id))

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if order == nil {
		span.SetStatus(codes.Error, "order not found")
		return nil, domain.ErrOrderNotFound
	}

	span.SetStatus(codes.Ok, "")
	return order, nil
}

// List returns a page of orders plus the total count
func (s *orderService) List(ctx context.Context, limit, offset int) ([]*domain.Order, int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.order.list")
	defer span.End()

	orders, total, err := s.orderRepo.List(ctx, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetStatus(codes.Ok, "")
	return orders, total, nil
}

// ListByUser returns a page of a user's orders plus the total count
func (s *orderService) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Order, int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.order.list_by_user")
	defer span.End()

	span.SetAttributes(attribute.String("user_id", userID))

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}
	if user == nil {
		span.SetStatus(codes.Error, "user not found")
		return nil, 0, domain.ErrUserNotFound
	}

	orders, total, err := s.orderRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetStatus(codes.Ok, "")
	return orders, total, nil
}

// GetItems returns the line items of an order
func (s *orderService) GetItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.order.get_items")
	defer span.End()

	span.SetAttributes(attribute.String("order_id", orderID))

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if order == nil {
		span.SetStatus(codes.Error, "order not found")
		return nil, domain.ErrOrderNotFound
	}

	span.SetStatus(codes.Ok, "")
	return order.Items, nil
}

// Update mutates order status, shipping and payment metadata. Items
// and the total are immutable after creation.
func (s *orderService) Update(ctx context.Context, id string, req *dto.UpdateOrderRequest) (*domain.Order, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.order.update")
	defer span.End()

	span.SetAttributes(attribute.String("order_id", id))

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if order == nil {
		span.SetStatus(codes.Error, "order not found")
		return nil, domain.ErrOrderNotFound
	}

	if req.Status != "" {
		status := domain.OrderStatus(req.Status)
		if !status.IsValid() {
			span.SetStatus(codes.Error, "invalid status")
			return nil, domain.ErrInvalidStatus
		}
		order.Status = status
	}
	if req.PaymentStatus != "" {
		paymentStatus := domain.PaymentStatus(req.PaymentStatus)
		if !paymentStatus.IsValid() {
			span.SetStatus(codes.Error, "invalid payment status")
			return nil, domain.ErrInvalidStatus
		}
		order.PaymentStatus = paymentStatus
	}
	if req.ShippingAddress != "" {
		order.ShippingAddress = req.ShippingAddress
	}
	if req.PaymentMethod != "" {
		order.PaymentMethod = req.PaymentMethod
	}
	if req.Notes != "" {
		order.Notes = req.Notes
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.events.PublishOrderUpdated(ctx, order)

	span.SetStatus(codes.Ok, "")
	return order, nil
}

// Delete removes an order and its items
func (s *orderService) Delete(ctx context.Context, id string) error {
	ctx, span := telemetry.StartSpan(ctx, "service.order.delete")
	defer span.End()

	span.SetAttributes(attribute.String("order_id", id))

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if order == nil {
		span.SetStatus(codes.Error, "order not found")
		return domain.ErrOrderNotFound
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
