package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/server/http/dto"
)

// ProductHandler manages catalog product endpoints.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/product. An optional category query narrows the result.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ToProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/product/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// Create handles POST /api/product (admin).
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), req.ToProduct())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(*product))
}

// Update handles PUT /api/product/:id (admin).
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product := req.ToProduct()
	product.ID = c.Param("id")
	updated, err := h.facade.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*updated))
}

// Delete handles DELETE /api/product/:id (admin).
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
