package booking

import (
	"context"
	"time"

	"github.com/berberhaus/barbershop-api/internal/audit"
	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerName string
	Email        string

	// Phone as typed by the customer; CountryCode is the selected calling
	// code ("+49"). Empty phone is allowed, a malformed one is not.
	Phone       string
	CountryCode string

	Date string
	Time string

	Services []string
	Total    float64

	BarberID   *uint
	BarberName string // resolved name, or the "Any" sentinel
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates and persists a booking. The stored status is always
// "pending" no matter what the caller supplied.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.CustomerName == "" {
		return nil, httperr.ErrBusiness("missing_name")
	}
	if len(in.Services) == 0 {
		return nil, httperr.ErrBusiness("missing_services")
	}
	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !domain.IsTemplateSlot(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	phone := ""
	if in.Phone != "" {
		countryCode := in.CountryCode
		if countryCode == "" {
			countryCode = shop.CountryCode
		}
		phone, err = domain.NormalizePhone(in.Phone, countryCode)
		if err != nil {
			return nil, err
		}
	}

	barberName := in.BarberName
	if barberName == "" {
		barberName = domain.AnyBarber
	}

	if shop.EnforceSlotUniqueness && barberName != domain.AnyBarber {
		count, err := uc.repo.CountAppointmentsAt(ctx, barberName, in.Date, in.Time)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, httperr.ErrBusiness("slot_taken")
		}
	}

	ap := &models.Appointment{
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        phone,
		Date:         in.Date,
		Time:         in.Time,
		Services:     domain.JoinServiceNames(in.Services),
		Total:        in.Total,
		BarberID:     in.BarberID,
		BarberName:   barberName,
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
