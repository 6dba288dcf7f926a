package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/berberhaus/barbershop-api/internal/audit"
	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/models"
)

type ApproveAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApproveAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ApproveAppointment {
	return &ApproveAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ApproveAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if err := domain.CanApprove(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateAppointmentStatus(ctx, appointmentID, string(domain.StatusApproved))
	if err != nil {
		return nil, err
	}

	if shop, shopErr := uc.repo.GetShop(ctx); shopErr == nil {
		uc.audit.Dispatch(audit.Event{
			ShopID:   shop.ID,
			UserID:   &adminID,
			Action:   audit.ActionAppointmentApproved,
			Entity:   "appointment",
			EntityID: &updated.ID,
		})
	}

	return updated, nil
}
