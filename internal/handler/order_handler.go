package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/QNhat1998/sales-api/internal/dto"
	"github.com/QNhat1998/sales-api/internal/service"
	"github.com/QNhat1998/sales-api/pkg/response"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles order creation
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, order)
}

// GetByID returns an order with its items and payments
// GET /api/v1/orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	order, err := h.orderService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, order)
}

// List returns a page of orders
// GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	page, limit, offset := pagination(c)

	orders, total, err := h.orderService.List(c.Request.Context(), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, orders, response.Pagination{Page: page, Limit: limit, Total: total})
}

// ListByUser returns a page of a user's orders
// GET /api/v1/users/:id/orders
func (h *OrderHandler) ListByUser(c *gin.Context) {
	page, limit, offset := pagination(c)

	orders, total, err := h.orderService.ListByUser(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, orders, response.Pagination{Page: page, Limit: limit, Total: total})
}

// GetItems returns the line items of an order
// GET /api/v1/orders/:id/items
func (h *OrderHandler) GetItems(c *gin.Context) {
	items, err := h.orderService.GetItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, items)
}

// Update mutates order status, shipping and payment metadata
// PUT /api/v1/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, order)
}

// Delete removes an order
// DELETE /api/v1/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orderService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Order deleted"})
}
