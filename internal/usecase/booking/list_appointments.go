package booking

import (
	"context"

	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.AppointmentFilter,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, filter)
}

// PendingQueue lists pending appointments, newest submission first.
func (uc *ListAppointments) PendingQueue(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, domain.AppointmentFilter{
		Status: string(domain.StatusPending),
	})
}

// ConfirmedRegistry lists approved appointments sorted by date descending.
func (uc *ListAppointments) ConfirmedRegistry(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, domain.AppointmentFilter{
		Status:     string(domain.StatusApproved),
		SortByDate: true,
	})
}
