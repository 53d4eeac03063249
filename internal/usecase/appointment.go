package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
	"github.com/pawmart/pawmart/internal/domain/repository"
	pkgAuth "github.com/pawmart/pawmart/internal/pkg/auth"
)

// AppointmentUseCase manages service bookings.
type AppointmentUseCase struct {
	appointments repository.AppointmentRepository
	services     repository.ServiceRepository
}

// NewAppointmentUseCase constructs AppointmentUseCase.
func NewAppointmentUseCase(appointments repository.AppointmentRepository, services repository.ServiceRepository) *AppointmentUseCase {
	return &AppointmentUseCase{appointments: appointments, services: services}
}

// Book creates an appointment in the Requested state. The referenced
// service must exist.
func (u *AppointmentUseCase) Book(ctx context.Context, userID, serviceID string, scheduledAt time.Time, note string) (*model.Appointment, error) {
	if _, err := u.services.GetByID(ctx, serviceID); err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		ID:          uuid.NewString(),
		UserID:      userID,
		ServiceID:   serviceID,
		ScheduledAt: scheduledAt,
		Note:        note,
		Status:      model.AppointmentStatusRequested,
	}
	if err := u.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListFor returns all appointments for admins and own for everyone else.
func (u *AppointmentUseCase) ListFor(ctx context.Context, ident pkgAuth.Identity) ([]model.Appointment, error) {
	if ident.IsAdmin() {
		return u.appointments.ListAll(ctx)
	}
	return u.appointments.ListByUser(ctx, ident.UserID)
}

// UpdateStatus applies an admin status mutation.
func (u *AppointmentUseCase) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error) {
	if !model.ValidAppointmentStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.appointments.UpdateStatus(ctx, id, status)
}

// Cancel removes a booking. Admins may cancel anything; an owner may only
// cancel while the request has not been confirmed yet.
func (u *AppointmentUseCase) Cancel(ctx context.Context, ident pkgAuth.Identity, id string) error {
	appointment, err := u.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ident.IsAdmin() {
		if appointment.UserID != ident.UserID {
			return domainErrors.ErrForbidden
		}
		if appointment.Status != model.AppointmentStatusRequested {
			return domainErrors.ErrForbidden
		}
	}
	return u.appointments.Delete(ctx, id)
}
