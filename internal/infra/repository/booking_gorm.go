package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/models"
	"github.com/berberhaus/barbershop-api/internal/timezone"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Shop
// --------------------------------------------------

// GetShop returns the single active shop record, creating a default one on
// first run so the booking surface never starts against an empty table.
func (r *BookingGormRepository) GetShop(
	ctx context.Context,
) (*models.Shop, error) {

	var shop models.Shop
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		First(&shop).Error

	if err == nil {
		return &shop, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	shop = models.Shop{
		Name:            "Berberhaus",
		Timezone:        timezone.DefaultTimezone,
		DefaultLanguage: "de",
		CountryCode:     "+49",
		Active:          true,
	}
	if err := r.db.WithContext(ctx).Create(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListAvailability(
	ctx context.Context,
	barberName string,
	date string,
) ([]models.AvailabilityRecord, error) {

	q := r.db.WithContext(ctx).Model(&models.AvailabilityRecord{})

	if barberName != "" {
		q = q.Where("barber_name = ?", barberName)
	}
	if date != "" {
		q = q.Where("date = ?", date)
	}

	var records []models.AvailabilityRecord
	if err := q.Order("date ASC, barber_name ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *BookingGormRepository) SetAvailability(
	ctx context.Context,
	barberName string,
	date string,
	isOff bool,
	closedHours []string,
) (*models.AvailabilityRecord, bool, error) {

	// fully working means no record at all; a missing delete target is fine
	if !isOff && len(closedHours) == 0 {
		err := r.db.WithContext(ctx).
			Where("barber_name = ? AND date = ?", barberName, date).
			Delete(&models.AvailabilityRecord{}).Error
		if err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	var rec models.AvailabilityRecord
	err := r.db.WithContext(ctx).
		Where("barber_name = ? AND date = ?", barberName, date).
		First(&rec).Error

	switch {
	case err == nil:
		rec.IsOff = isOff
		rec.ClosedHours = models.TimeList(closedHours)
		if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
			return nil, false, err
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = models.AvailabilityRecord{
			BarberName:  barberName,
			Date:        date,
			IsOff:       isOff,
			ClosedHours: models.TimeList(closedHours),
		}
		if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
			return nil, false, err
		}

	default:
		return nil, false, err
	}

	return &rec, false, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.AppointmentFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.Phone != "" {
		q = q.Where("phone = ?", filter.Phone)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if filter.SortByDate {
		q = q.Order("date DESC, time DESC")
	} else {
		q = q.Order("created_at DESC")
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id uint,
	status string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	ap.Status = status
	if err := r.db.WithContext(ctx).
		Model(&ap).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingGormRepository) CountAppointmentsAt(
	ctx context.Context,
	barberName string,
	date string,
	timeOfDay string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_name = ? AND date = ? AND time = ?",
			barberName, date, timeOfDay,
		).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
	onlyActive bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Model(&models.Service{})
	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) GetServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if len(ids) == 0 {
		return services, nil
	}

	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
