package booking

import (
	"context"

	"github.com/berberhaus/barbershop-api/internal/models"
)

type AppointmentFilter struct {
	Phone  string
	Status string

	// SortByDate orders by appointment date descending (confirmed registry);
	// the default is newest-created first.
	SortByDate bool
}

type Repository interface {
	// -------- Shop --------
	GetShop(
		ctx context.Context,
	) (*models.Shop, error)

	// -------- Availability --------
	ListAvailability(
		ctx context.Context,
		barberName string,
		date string,
	) ([]models.AvailabilityRecord, error)

	// SetAvailability upserts the (barberName, date) record, or deletes it
	// when isOff is false and closedHours is empty. It returns the stored
	// record, or (nil, true, nil) when the no-op record was removed.
	SetAvailability(
		ctx context.Context,
		barberName string,
		date string,
		isOff bool,
		closedHours []string,
	) (*models.AvailabilityRecord, bool, error)

	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		filter AppointmentFilter,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		id uint,
		status string,
	) (*models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	CountAppointmentsAt(
		ctx context.Context,
		barberName string,
		date string,
		timeOfDay string,
	) (int64, error)

	// -------- Catalog --------
	ListServices(
		ctx context.Context,
		onlyActive bool,
	) ([]models.Service, error)

	GetServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	ListBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)
}
