package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/QNhat1998/sales-api/internal/dto"
	"github.com/QNhat1998/sales-api/internal/service"
	"github.com/QNhat1998/sales-api/pkg/response"
)

// BrandHandler handles brand HTTP requests
type BrandHandler struct {
	brandService service.BrandService
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(brandService service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// Create adds a new brand
// POST /api/v1/brands
func (h *BrandHandler) Create(c *gin.Context) {
	var req dto.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	brand, err := h.brandService.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, brand)
}

// GetByID returns a single brand
// GET /api/v1/brands/:id
func (h *BrandHandler) GetByID(c *gin.Context) {
	brand, err := h.brandService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, brand)
}

// List returns all brands
// GET /api/v1/brands
func (h *BrandHandler) List(c *gin.Context) {
	brands, err := h.brandService.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, brands)
}

// Update mutates a brand
// PUT /api/v1/brands/:id
func (h *BrandHandler) Update(c *gin.Context) {
	var req dto.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	brand, err := h.brandService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, brand)
}

// Delete removes a brand
// DELETE /api/v1/brands/:id
func (h *BrandHandler) Delete(c *gin.Context) {
	if err := h.brandService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Brand deleted"})
}
