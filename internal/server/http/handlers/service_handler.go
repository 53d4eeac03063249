package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/server/http/dto"
)

// ServiceHandler manages bookable service endpoints.
type ServiceHandler struct {
	facade CatalogFacade
}

// NewServiceHandler constructs ServiceHandler.
func NewServiceHandler(facade CatalogFacade) *ServiceHandler {
	return &ServiceHandler{facade: facade}
}

// List handles GET /api/service.
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.facade.Services(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		response = append(response, dto.ToServiceResponse(s))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/service/:id.
func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.facade.Service(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(*service))
}

// Create handles POST /api/service (admin).
func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	service, err := h.facade.CreateService(c.Request.Context(), req.ToService())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceResponse(*service))
}

// Update handles PUT /api/service/:id (admin).
func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	service := req.ToService()
	service.ID = c.Param("id")
	updated, err := h.facade.UpdateService(c.Request.Context(), service)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(*updated))
}

// Delete handles DELETE /api/service/:id (admin).
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
