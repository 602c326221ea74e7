package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/QNhat1998/sales-api/internal/domain"
	"github.com/QNhat1998/sales-api/pkg/kafka"
	"github.com/QNhat1998/sales-api/pkg/logger"
)

// Order event topics
const (
	TopicOrderCreated = "order.created"
	TopicOrderUpdated = "order.updated"
)

// OrderEvent is the payload published when an order changes
type OrderEvent struct {
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id,omitempty"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   string    `json:"total_amount"`
	ItemCount     int       `json:"item_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher publishes order lifecycle events
type EventPublisher interface {
	// PublishOrderCreated announces a freshly created order
	PublishOrderCreated(ctx context.Context, order *domain.Order)
	// PublishOrderUpdated announces an order mutation
	PublishOrderUpdated(ctx context.Context, order *domain.Order)
}

// kafkaEventPublisher implements EventPublisher on a Kafka producer.
// Publishing is best-effort: a broker failure is logged, never
// surfaced to the request that triggered it.
type kafkaEventPublisher struct {
	producer *kafka.Producer
}

// NewEventPublisher creates a new EventPublisher. A nil producer
// yields a no-op publisher, used when Kafka is disabled.
func NewEventPublisher(producer *kafka.Producer) EventPublisher {
	return &kafkaEventPublisher{producer: producer}
}

// PublishOrderCreated announces a freshly created order
func (p *kafkaEventPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) {
	p.publish(ctx, TopicOrderCreated, order)
}

// PublishOrderUpdated announces an order mutation
func (p *kafkaEventPublisher) PublishOrderUpdated(ctx context.Context, order *domain.Order) {
	p.publish(ctx, TopicOrderUpdated, order)
}

func (p *kafkaEventPublisher) publish(ctx context.Context, topic string, order *domain.Order) {
	if p.producer == nil {
		return
	}

	event := OrderEvent{
		OrderID:       order.ID,
		UserID:        order.UserID,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		TotalAmount:   order.TotalAmount.String(),
		ItemCount:     len(order.Items),
		OccurredAt:    time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Get().Error("failed to marshal order event",
			zap.String("topic", topic),
			zap.String("order_id", order.ID),
			zap.Error(err))
		return
	}

	if err := p.producer.Produce(ctx, topic, []byte(order.ID), payload); err != nil {
		logger.Get().Error("failed to publish order event",
			zap.String("topic", topic),
			zap.String("order_id", order.ID),
			zap.Error(err))
	}
}
