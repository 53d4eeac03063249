package dto

import (
	"time"

	"github.com/pawmart/pawmart/internal/domain/model"
)

// AppointmentRequest describes the booking payload.
type AppointmentRequest struct {
	ServiceID   string    `json:"serviceId" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Note        string    `json:"note"`
}

// AppointmentStatusRequest describes the admin status mutation payload.
type AppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AppointmentResponse is the public view of a booking.
type AppointmentResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ServiceID   string    `json:"serviceId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Note        string    `json:"note"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToAppointmentResponse maps a domain appointment to its public view.
func ToAppointmentResponse(appointment model.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          appointment.ID,
		UserID:      appointment.UserID,
		ServiceID:   appointment.ServiceID,
		ScheduledAt: appointment.ScheduledAt,
		Note:        appointment.Note,
		Status:      string(appointment.Status),
		CreatedAt:   appointment.CreatedAt,
	}
}
