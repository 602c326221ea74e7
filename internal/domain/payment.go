package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment states as recorded on payment rows
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Payment is a recorded payment against an order
type Payment struct {
	ID            string          `json:"payment_id"`
	OrderID       string          `json:"order_id"`
	PaymentDate   time.Time       `json:"payment_date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Status        string          `json:"status"`
}
