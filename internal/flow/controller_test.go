package flow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/berberhaus/barbershop-api/internal/audit"
	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/models"
	ucbooking "github.com/berberhaus/barbershop-api/internal/usecase/booking"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	shop         models.Shop
	availability []models.AvailabilityRecord
	appointments []models.Appointment
	services     []models.Service
	barbers      []models.Barber
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shop: models.Shop{
			ID:              1,
			Name:            "Berberhaus",
			Timezone:        "Europe/Berlin",
			DefaultLanguage: "de",
			CountryCode:     "+49",
		},
		services: []models.Service{
			{ID: 1, Names: models.LocalizedText{"de": "Haarschnitt", "en": "Haircut"}, Price: 25, Active: true},
			{ID: 2, Names: models.LocalizedText{"de": "Bartpflege", "en": "Beard Trim"}, Price: 12.5, Active: true},
		},
		barbers: []models.Barber{
			{ID: 1, Name: "Mehmet"},
			{ID: 2, Name: "Ahmet"},
		},
	}
}

func (f *fakeRepo) GetShop(context.Context) (*models.Shop, error) {
	shop := f.shop
	return &shop, nil
}

func (f *fakeRepo) ListAvailability(_ context.Context, barberName, date string) ([]models.AvailabilityRecord, error) {
	var out []models.AvailabilityRecord
	for _, rec := range f.availability {
		if barberName != "" && rec.BarberName != barberName {
			continue
		}
		if date != "" && rec.Date != date {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeRepo) SetAvailability(context.Context, string, string, bool, []string) (*models.AvailabilityRecord, bool, error) {
	panic("not used in flow tests")
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(f.appointments) + 1)
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) ListAppointments(context.Context, domain.AppointmentFilter) ([]models.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeRepo) GetAppointment(context.Context, uint) (*models.Appointment, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointmentStatus(context.Context, uint, string) (*models.Appointment, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) DeleteAppointment(context.Context, uint) error {
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) CountAppointmentsAt(context.Context, string, string, string) (int64, error) {
	return 0, nil
}

func (f *fakeRepo) ListServices(context.Context, bool) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeRepo) GetServicesByIDs(_ context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		for _, id := range ids {
			if s.ID == id {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBarbers(context.Context) ([]models.Barber, error) {
	return f.barbers, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	for i := range f.barbers {
		if f.barbers[i].ID == id {
			b := f.barbers[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// SETUP
// ======================================================

func newTestController(repo *fakeRepo) *Controller {
	dispatcher := audit.NewDispatcher(audit.New(nil))
	return NewController(
		repo,
		ucbooking.NewGetAvailability(repo),
		ucbooking.NewCreateAppointment(repo, dispatcher),
		NewMemoryStore(time.Hour),
	)
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format(domain.DateLayout)
}

// ======================================================
// TESTS
// ======================================================

func TestController_FullWalkthrough(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	ctl := newTestController(repo)

	s, err := ctl.Start(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, StateServiceSelection, s.State)
	assert.Equal(t, "de", s.Language, "language defaults from the shop")

	s, err = ctl.SelectServices(ctx, s.ID, []uint{1, 2})
	require.NoError(t, err)
	assert.Equal(t, StateDateTime, s.State)

	date := futureDate()
	s, err = ctl.SelectDateTime(ctx, s.ID, date, "11:30")
	require.NoError(t, err)
	assert.Equal(t, StateBarberSelection, s.State)

	barberID := uint(1)
	s, err = ctl.SelectBarber(ctx, s.ID, &barberID, false)
	require.NoError(t, err)
	assert.Equal(t, StateContactInfo, s.State)

	total, err := ctl.Quote(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 38.5, total, "25 + 12.5 + 1.0 barber surcharge")

	s, ap, err := ctl.Submit(ctx, s.ID, ContactInput{
		CustomerName: "Lena Fischer",
		Phone:        "0176 1234567",
	})
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, s.State)
	assert.Equal(t, ap.ID, s.AppointmentID)

	// names were resolved in the session language
	assert.Equal(t, "Haarschnitt, Bartpflege", ap.Services)
	assert.Equal(t, "Mehmet", ap.BarberName)
	assert.Equal(t, "+491761234567", ap.Phone)
	assert.Equal(t, 38.5, ap.Total)
	assert.Equal(t, "pending", ap.Status)
}

func TestController_NoPreferenceSkipsSurcharge(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	ctl := newTestController(repo)

	s, _ := ctl.Start(ctx, "en")
	s, err := ctl.SelectServices(ctx, s.ID, []uint{1})
	require.NoError(t, err)
	s, err = ctl.SelectDateTime(ctx, s.ID, futureDate(), "10:00")
	require.NoError(t, err)
	s, err = ctl.SelectBarber(ctx, s.ID, nil, true)
	require.NoError(t, err)

	total, err := ctl.Quote(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, total)

	_, ap, err := ctl.Submit(ctx, s.ID, ContactInput{
		CustomerName: "Jonas Weber",
		Phone:        "0176 1234567",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AnyBarber, ap.BarberName)
	assert.Nil(t, ap.BarberID)
	assert.Equal(t, "Haircut", ap.Services, "english session resolves english names")
}

func TestController_StepGuards(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController(newFakeRepo())

	s, _ := ctl.Start(ctx, "de")

	// skipping ahead is rejected at every step
	_, err := ctl.SelectDateTime(ctx, s.ID, futureDate(), "10:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))

	barberID := uint(1)
	_, err = ctl.SelectBarber(ctx, s.ID, &barberID, false)
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))

	_, _, err = ctl.Submit(ctx, s.ID, ContactInput{CustomerName: "X", Phone: "0176 1234567"})
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))
}

func TestController_UnknownService(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController(newFakeRepo())

	s, _ := ctl.Start(ctx, "de")
	_, err := ctl.SelectServices(ctx, s.ID, []uint{1, 99})
	assert.True(t, httperr.IsBusiness(err, "unknown_service"))
}

func TestController_SlotUnavailable(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	date := futureDate()
	repo.availability = []models.AvailabilityRecord{
		{BarberName: "", Date: date, ClosedHours: models.TimeList{"11:30"}},
	}
	ctl := newTestController(repo)

	s, _ := ctl.Start(ctx, "de")
	s, err := ctl.SelectServices(ctx, s.ID, []uint{1})
	require.NoError(t, err)

	_, err = ctl.SelectDateTime(ctx, s.ID, date, "11:30")
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))

	// a neighbouring open slot still works
	_, err = ctl.SelectDateTime(ctx, s.ID, date, "12:15")
	assert.NoError(t, err)
}

func TestController_OffBarberRejected(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	date := futureDate()
	repo.availability = []models.AvailabilityRecord{
		{BarberName: "Ahmet", Date: date, IsOff: true},
	}
	ctl := newTestController(repo)

	s, _ := ctl.Start(ctx, "de")
	s, err := ctl.SelectServices(ctx, s.ID, []uint{1})
	require.NoError(t, err)
	s, err = ctl.SelectDateTime(ctx, s.ID, date, "10:00")
	require.NoError(t, err)

	ahmet := uint(2)
	_, err = ctl.SelectBarber(ctx, s.ID, &ahmet, false)
	assert.True(t, httperr.IsBusiness(err, "barber_unavailable"))

	mehmet := uint(1)
	_, err = ctl.SelectBarber(ctx, s.ID, &mehmet, false)
	assert.NoError(t, err)
}

func TestController_BackKeepsLaterInput(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController(newFakeRepo())

	s, _ := ctl.Start(ctx, "de")
	s, err := ctl.SelectServices(ctx, s.ID, []uint{1, 2})
	require.NoError(t, err)

	date := futureDate()
	s, err = ctl.SelectDateTime(ctx, s.ID, date, "11:30")
	require.NoError(t, err)

	s, err = ctl.Back(ctx, s.ID, StateServiceSelection)
	require.NoError(t, err)
	assert.Equal(t, StateServiceSelection, s.State)

	// the date and time survive going back
	assert.Equal(t, date, s.Date)
	assert.Equal(t, "11:30", s.Time)
	assert.Equal(t, []uint{1, 2}, s.ServiceIDs)

	// forward-only and same-step targets are rejected
	_, err = ctl.Back(ctx, s.ID, StateContactInfo)
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))
	_, err = ctl.Back(ctx, s.ID, StateServiceSelection)
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))
}

func TestController_DateChangeClearsOffBarber(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	date := futureDate()
	laterDate := time.Now().AddDate(0, 0, 8).Format(domain.DateLayout)
	repo.availability = []models.AvailabilityRecord{
		{BarberName: "Mehmet", Date: laterDate, IsOff: true},
	}
	ctl := newTestController(repo)

	s, _ := ctl.Start(ctx, "de")
	s, err := ctl.SelectServices(ctx, s.ID, []uint{1})
	require.NoError(t, err)
	s, err = ctl.SelectDateTime(ctx, s.ID, date, "10:00")
	require.NoError(t, err)

	mehmet := uint(1)
	s, err = ctl.SelectBarber(ctx, s.ID, &mehmet, false)
	require.NoError(t, err)

	// go back and pick a date on which Mehmet is off
	s, err = ctl.Back(ctx, s.ID, StateDateTime)
	require.NoError(t, err)
	s, err = ctl.SelectDateTime(ctx, s.ID, laterDate, "10:00")
	require.NoError(t, err)

	assert.Nil(t, s.BarberID, "the stale barber choice is cleared")
	assert.False(t, s.AnyBarber)
}

func TestController_Reset(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController(newFakeRepo())

	s, _ := ctl.Start(ctx, "tr")
	s, err := ctl.SelectServices(ctx, s.ID, []uint{1})
	require.NoError(t, err)

	fresh, err := ctl.Reset(ctx, s.ID)
	require.NoError(t, err)

	assert.Equal(t, s.ID, fresh.ID)
	assert.Equal(t, "tr", fresh.Language)
	assert.Equal(t, StateServiceSelection, fresh.State)
	assert.Empty(t, fresh.ServiceIDs)
}

func TestController_SubmitContactValidation(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController(newFakeRepo())

	s, _ := ctl.Start(ctx, "de")
	s, err := ctl.SelectServices(ctx, s.ID, []uint{1})
	require.NoError(t, err)
	s, err = ctl.SelectDateTime(ctx, s.ID, futureDate(), "10:00")
	require.NoError(t, err)
	s, err = ctl.SelectBarber(ctx, s.ID, nil, true)
	require.NoError(t, err)

	_, _, err = ctl.Submit(ctx, s.ID, ContactInput{Phone: "0176 1234567"})
	assert.True(t, httperr.IsBusiness(err, "missing_name"))

	_, _, err = ctl.Submit(ctx, s.ID, ContactInput{CustomerName: "Lena Fischer"})
	assert.True(t, httperr.IsBusiness(err, "missing_phone"))

	_, _, err = ctl.Submit(ctx, s.ID, ContactInput{CustomerName: "Lena Fischer", Phone: "12"})
	assert.True(t, httperr.IsBusiness(err, "invalid_phone"))

	// failures keep the session at the contact step for a retry
	current, err := ctl.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, StateContactInfo, current.State)
}

func TestController_SessionNotFound(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController(newFakeRepo())

	_, err := ctl.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
