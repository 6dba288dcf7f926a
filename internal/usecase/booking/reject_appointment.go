package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/berberhaus/barbershop-api/internal/audit"
	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
)

// RejectAppointment hard-deletes the record: there is no stored "rejected"
// state for appointments. A missing id is treated as already done, so a
// customer retrying a cancellation on a slow network never sees an error.
type RejectAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRejectAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RejectAppointment {
	return &RejectAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RejectAppointment) Execute(
	ctx context.Context,
	adminID *uint,
	appointmentID uint,
) error {

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if shop, shopErr := uc.repo.GetShop(ctx); shopErr == nil {
		uc.audit.Dispatch(audit.Event{
			ShopID:   shop.ID,
			UserID:   adminID,
			Action:   audit.ActionAppointmentRejected,
			Entity:   "appointment",
			EntityID: &appointmentID,
		})
	}

	return nil
}
