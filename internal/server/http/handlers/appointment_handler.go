package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
	"github.com/pawmart/pawmart/internal/server/http/dto"
)

// AppointmentHandler manages service booking endpoints.
type AppointmentHandler struct {
	facade AppointmentFacade
}

// NewAppointmentHandler constructs AppointmentHandler.
func NewAppointmentHandler(facade AppointmentFacade) *AppointmentHandler {
	return &AppointmentHandler{facade: facade}
}

// Book handles POST /api/appointment.
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req dto.AppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ident := CurrentIdentity(c)
	appointment, err := h.facade.Book(c.Request.Context(), ident.UserID, req.ServiceID, req.ScheduledAt, req.Note)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"serviceId does not reference a known service"}})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAppointmentResponse(*appointment))
}

// List handles GET /api/appointment. Admins see every booking, users their own.
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.facade.Appointments(c.Request.Context(), CurrentIdentity(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		response = append(response, dto.ToAppointmentResponse(a))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PATCH /api/appointment/:id/status (admin).
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.AppointmentStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	appointment, err := h.facade.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), model.AppointmentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"status is not a valid appointment status"}})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToAppointmentResponse(*appointment))
}

// Cancel handles DELETE /api/appointment/:id. Owners may cancel their own
// unconfirmed bookings; admins may cancel anything.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	if err := h.facade.CancelAppointment(c.Request.Context(), CurrentIdentity(c), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
