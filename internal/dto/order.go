package dto

// OrderItemRequest is one (product, quantity) pair in a create request
type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents an order creation request. Totals are
// computed server-side and must not be supplied.
type CreateOrderRequest struct {
	UserID             string             `json:"user_id" binding:"required"`
	ShippingAddress    string             `json:"shipping_address"`
	ShippingCity       string             `json:"shipping_city"`
	ShippingState      string             `json:"shipping_state"`
	ShippingPostalCode string             `json:"shipping_postal_code"`
	ShippingCountry    string             `json:"shipping_country"`
	PaymentMethod      string             `json:"payment_method"`
	Notes              string             `json:"notes"`
	Items              []OrderItemRequest `json:"items" binding:"required"`
}

// UpdateOrderRequest mutates status, shipping and payment metadata
// only. Items and totals are immutable after creation.
type UpdateOrderRequest struct {
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method"`
	Notes           string `json:"notes"`
}
