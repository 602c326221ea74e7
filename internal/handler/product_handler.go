package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/QNhat1998/sales-api/internal/domain"
	"github.com/QNhat1998/sales-api/internal/dto"
	"github.com/QNhat1998/sales-api/internal/service"
	"github.com/QNhat1998/sales-api/pkg/response"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create adds a new product
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, product)
}

// GetByID returns a single product
// GET /api/v1/products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, product)
}

// List returns a page of products, optionally filtered by a search
// term
// GET /api/v1/products?q=term
func (h *ProductHandler) List(c *gin.Context) {
	page, limit, offset := pagination(c)

	var err error
	var total int64
	var products []*domain.Product
	if term := c.Query("q"); term != "" {
		products, total, err = h.productService.Search(c.Request.Context(), term, limit, offset)
	} else {
		products, total, err = h.productService.List(c.Request.Context(), limit, offset)
	}
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, products, response.Pagination{Page: page, Limit: limit, Total: total})
}

// Update applies a partial catalog update
// PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, product)
}

// Delete removes a product
// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Product deleted"})
}
