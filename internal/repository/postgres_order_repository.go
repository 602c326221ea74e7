package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/QNhat1998/sales-api/internal/domain"
	"github.com/QNhat1998/sales-api/pkg/telemetry"
)

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

const orderColumns = `id, user_id, order_date, total_amount, status,
	shipping_address, shipping_city, shipping_state, shipping_postal_code,
	shipping_country, payment_method, payment_status, notes`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := &domain.Order{}
	var (
		userID *string
		status string
		pay    string
	)
	err := row.Scan(
		&order.ID,
		&userID,
		&order.OrderDate,
		&order.TotalAmount,
		&status,
		&order.ShippingAddress,
		&order.ShippingCity,
		&order.ShippingState,
		&order.ShippingPostalCode,
		&order.ShippingCountry,
		&order.PaymentMethod,
		&pay,
		&order.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if userID != nil {
		order.UserID = *userID
	}
	order.Status = domain.OrderStatus(status)
	order.PaymentStatus = domain.PaymentStatus(pay)
	return order, nil
}

// CreateWithItems persists the order and its line items in a single
// transaction. The caller has already priced every item, so either
// the whole order lands or nothing does.
func (r *PostgresOrderRepository) CreateWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.order.create_with_items")
	defer span.End()

	span.SetAttributes(
		attribute.String("order_id", order.ID),
		attribute.Int("item_count", len(items)),
	)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertOrder := `
		INSERT INTO orders (id, user_id, order_date, total_amount, status,
			shipping_address, shipping_city, shipping_state, shipping_postal_code,
			shipping_country, payment_method, payment_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = tx.Exec(ctx, insertOrder,
		order.ID,
		order.UserID,
		order.OrderDate,
		order.TotalAmount,
		string(order.Status),
		order.ShippingAddress,
		order.ShippingCity,
		order.ShippingState,
		order.ShippingPostalCode,
		order.ShippingCountry,
		order.PaymentMethod,
		string(order.PaymentStatus),
		order.Notes,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to create order: %w", err)
	}

	insertItem := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(insertItem,
			item.ID,
			item.OrderID,
			item.ProductID,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
		)
	}
	results := tx.SendBatch(ctx, batch)
	for range items {
		if _, err := results.Exec(); err != nil {
			results.Close()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("failed to create order items: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// GetByID retrieves an order with its items and payments
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.order.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.String("order_id", id))

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, nil
	}

	items, err := r.GetItems(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	order.Items = items

	payments, err := r.getPayments(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	order.Payments = payments

	span.SetStatus(codes.Ok, "")
	return order, nil
}

// List returns a page of orders plus the total count, newest first
func (r *PostgresOrderRepository) List(ctx context.Context, limit, offset int) ([]*domain.Order, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY order_date DESC
		LIMIT $1 OFFSET $2
	`
	orders, err := r.queryOrders(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListByUser returns a page of a user's orders plus the total count
func (r *PostgresOrderRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Order, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC
		LIMIT $2 OFFSET $3
	`
	orders, err := r.queryOrders(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *PostgresOrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// GetItems returns the line items of an order
func (r *PostgresOrderRepository) GetItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price, subtotal
		FROM order_items
		WHERE order_id = $1
	`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresOrderRepository) getPayments(ctx context.Context, orderID string) ([]domain.Payment, error) {
	query := `
		SELECT id, order_id, payment_date, amount, payment_method, transaction_id, status
		FROM payments
		WHERE order_id = $1
		ORDER BY payment_date DESC
	`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(
			&p.ID,
			&p.OrderID,
			&p.PaymentDate,
			&p.Amount,
			&p.PaymentMethod,
			&p.TransactionID,
			&p.Status,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Update persists mutable order fields. Items and totals are never
// rewritten here.
func (r *PostgresOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET status = $2, payment_status = $3, shipping_address = $4,
			payment_method = $5, notes = $6
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		order.ID,
		string(order.Status),
		string(order.PaymentStatus),
		order.ShippingAddress,
		order.PaymentMethod,
		order.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

// Delete removes the order's items and then the order itself
func (r *PostgresOrderRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
