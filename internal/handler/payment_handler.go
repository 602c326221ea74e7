package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/QNhat1998/sales-api/internal/service"
	"github.com/QNhat1998/sales-api/pkg/response"
)

// PaymentHandler handles payment record HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// List returns a page of payments
// GET /api/v1/payments
func (h *PaymentHandler) List(c *gin.Context) {
	page, limit, offset := pagination(c)

	payments, total, err := h.paymentService.List(c.Request.Context(), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, payments, response.Pagination{Page: page, Limit: limit, Total: total})
}

// GetByID returns a single payment
// GET /api/v1/payments/:id
func (h *PaymentHandler) GetByID(c *gin.Context) {
	payment, err := h.paymentService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, payment)
}

// ListByOrder returns all payments recorded against an order
// GET /api/v1/orders/:id/payments
func (h *PaymentHandler) ListByOrder(c *gin.Context) {
	payments, err := h.paymentService.ListByOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, payments)
}
