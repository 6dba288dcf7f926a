package flow

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/models"
	ucbooking "github.com/berberhaus/barbershop-api/internal/usecase/booking"
)

// Controller drives the booking wizard:
//
//	ServiceSelection → DateTime → BarberSelection → ContactInfo → Submitted
//
// Every step validates against the live stores; nothing is trusted from the
// session except the customer's raw selections.
type Controller struct {
	repo   domain.Repository
	avail  *ucbooking.GetAvailability
	create *ucbooking.CreateAppointment
	store  Store
}

func NewController(
	repo domain.Repository,
	avail *ucbooking.GetAvailability,
	create *ucbooking.CreateAppointment,
	store Store,
) *Controller {
	return &Controller{
		repo:   repo,
		avail:  avail,
		create: create,
		store:  store,
	}
}

// ======================================================
// SESSION LIFECYCLE
// ======================================================

func (ctl *Controller) Start(ctx context.Context, language string) (*Session, error) {
	if language == "" {
		if shop, err := ctl.repo.GetShop(ctx); err == nil {
			language = shop.DefaultLanguage
		}
	}

	s := &Session{
		ID:       uuid.NewString(),
		State:    StateServiceSelection,
		Language: language,
	}

	if err := ctl.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (ctl *Controller) Get(ctx context.Context, id string) (*Session, error) {
	return ctl.store.Get(ctx, id)
}

// Reset clears every selection and returns to the first step ("book another").
func (ctl *Controller) Reset(ctx context.Context, id string) (*Session, error) {
	s, err := ctl.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fresh := &Session{
		ID:       s.ID,
		State:    StateServiceSelection,
		Language: s.Language,
	}

	if err := ctl.store.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// Back moves to an earlier step without touching later-step input.
func (ctl *Controller) Back(ctx context.Context, id string, target State) (*Session, error) {
	s, err := ctl.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	targetPos, ok := stateOrder[target]
	if !ok || s.State == StateSubmitted || targetPos >= stateOrder[s.State] {
		return nil, httperr.ErrBusiness("invalid_step")
	}

	s.State = target
	if err := ctl.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ======================================================
// STEP 1 — SERVICES
// ======================================================

func (ctl *Controller) SelectServices(ctx context.Context, id string, serviceIDs []uint) (*Session, error) {
	s, err := ctl.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.State != StateServiceSelection {
		return nil, httperr.ErrBusiness("invalid_step")
	}
	if len(serviceIDs) == 0 {
		return nil, httperr.ErrBusiness("missing_services")
	}

	services, err := ctl.repo.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, httperr.ErrBusiness("store_unavailable")
	}
	if len(services) != len(uniqueIDs(serviceIDs)) {
		return nil, httperr.ErrBusiness("unknown_service")
	}

	s.ServiceIDs = uniqueIDs(serviceIDs)
	s.State = StateDateTime

	if err := ctl.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ======================================================
// STEP 2 — DATE & TIME
// ======================================================

// Availability is fetched again on every date pick, across all barbers, so
// the barber step can exclude whoever is off that day.
func (ctl *Controller) Availability(ctx context.Context, date string) (*domain.DayAvailability, error) {
	return ctl.avail.Execute(ctx, domain.AvailabilityInput{Date: date})
}

func (ctl *Controller) SelectDateTime(ctx context.Context, id, date, timeOfDay string) (*Session, error) {
	s, err := ctl.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.State != StateDateTime {
		return nil, httperr.ErrBusiness("invalid_step")
	}

	day, err := ctl.avail.Execute(ctx, domain.AvailabilityInput{Date: date})
	if err != nil {
		return nil, err
	}

	if !contains(day.Slots, timeOfDay) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	s.Date = date
	s.Time = timeOfDay

	// a barber picked on an earlier pass may be off on the new date; the
	// customer has to choose again
	if s.BarberID != nil {
		if barber, err := ctl.repo.GetBarber(ctx, *s.BarberID); err != nil || contains(day.OffBarbers, barber.Name) {
			s.clearBarber()
		}
	}

	s.State = StateBarberSelection

	if err := ctl.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ======================================================
// STEP 3 — BARBER
// ======================================================

func (ctl *Controller) SelectBarber(ctx context.Context, id string, barberID *uint, noPreference bool) (*Session, error) {
	s, err := ctl.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.State != StateBarberSelection {
		return nil, httperr.ErrBusiness("invalid_step")
	}
	if !noPreference && barberID == nil {
		return nil, httperr.ErrBusiness("missing_barber")
	}

	if noPreference {
		s.BarberID = nil
		s.AnyBarber = true
	} else {
		barber, err := ctl.repo.GetBarber(ctx, *barberID)
		if err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}

		day, err := ctl.avail.Execute(ctx, domain.AvailabilityInput{Date: s.Date})
		if err != nil {
			return nil, err
		}
		if contains(day.OffBarbers, barber.Name) {
			return nil, httperr.ErrBusiness("barber_unavailable")
		}

		s.BarberID = barberID
		s.AnyBarber = false
	}

	s.State = StateContactInfo

	if err := ctl.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ======================================================
// PRICE
// ======================================================

// Quote recomputes the running total from the current selections on every
// call: service prices plus the surcharge when a specific barber is chosen.
func (ctl *Controller) Quote(ctx context.Context, id string) (float64, error) {
	s, err := ctl.store.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	services, err := ctl.repo.GetServicesByIDs(ctx, s.ServiceIDs)
	if err != nil {
		return 0, httperr.ErrBusiness("store_unavailable")
	}

	return domain.Total(services, s.BarberID != nil), nil
}

// ======================================================
// STEP 4 — CONTACT & SUBMIT
// ======================================================

type ContactInput struct {
	CustomerName string
	Email        string
	Phone        string
	CountryCode  string
}

// Submit validates contact info and writes the appointment. On any failure
// the session stays in ContactInfo so the customer can retry.
func (ctl *Controller) Submit(ctx context.Context, id string, in ContactInput) (*Session, *models.Appointment, error) {
	s, err := ctl.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if s.State != StateContactInfo {
		return nil, nil, httperr.ErrBusiness("invalid_step")
	}
	if in.CustomerName == "" {
		return nil, nil, httperr.ErrBusiness("missing_name")
	}
	if in.Phone == "" {
		return nil, nil, httperr.ErrBusiness("missing_phone")
	}

	shop, err := ctl.repo.GetShop(ctx)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("store_unavailable")
	}

	countryCode := in.CountryCode
	if countryCode == "" {
		countryCode = shop.CountryCode
	}
	if _, err := domain.NormalizePhone(in.Phone, countryCode); err != nil {
		return nil, nil, err
	}

	services, err := ctl.repo.GetServicesByIDs(ctx, s.ServiceIDs)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("store_unavailable")
	}

	names := make([]string, 0, len(services))
	for i := range services {
		names = append(names, services[i].DisplayName(s.Language, shop.DefaultLanguage))
	}

	barberName := domain.AnyBarber
	if s.BarberID != nil {
		barber, err := ctl.repo.GetBarber(ctx, *s.BarberID)
		if err != nil {
			return nil, nil, httperr.ErrBusiness("barber_not_found")
		}
		barberName = barber.Name
	}

	ap, err := ctl.create.Execute(ctx, ucbooking.CreateAppointmentInput{
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		CountryCode:  countryCode,
		Date:         s.Date,
		Time:         s.Time,
		Services:     names,
		Total:        domain.Total(services, s.BarberID != nil),
		BarberID:     s.BarberID,
		BarberName:   barberName,
	})
	if err != nil {
		return nil, nil, err
	}

	s.CustomerName = in.CustomerName
	s.Email = in.Email
	s.Phone = in.Phone
	s.CountryCode = countryCode
	s.AppointmentID = ap.ID
	s.State = StateSubmitted

	if err := ctl.store.Save(ctx, s); err != nil {
		return s, ap, nil // appointment exists; losing the session is harmless
	}
	return s, ap, nil
}

// ======================================================
// helpers
// ======================================================

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	var out []uint
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
