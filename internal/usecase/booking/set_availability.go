package booking

import (
	"context"
	"time"

	"github.com/berberhaus/barbershop-api/internal/audit"
	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/models"
)

type SetAvailabilityInput struct {
	BarberName  string
	Date        string
	IsOff       bool
	ClosedHours []string

	AdminID uint
}

type SetAvailabilityResult struct {
	Record  *models.AvailabilityRecord
	Deleted bool
}

type SetAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetAvailability(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetAvailability {
	return &SetAvailability{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetAvailability) Execute(
	ctx context.Context,
	in SetAvailabilityInput,
) (*SetAvailabilityResult, error) {

	if in.BarberName == "" {
		return nil, httperr.ErrBusiness("missing_barber")
	}
	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// closed hours must come from the shared slot template, otherwise the
	// admin blocks slots customers are never offered
	for _, h := range in.ClosedHours {
		if !domain.IsTemplateSlot(h) {
			return nil, httperr.ErrBusiness("invalid_slot")
		}
	}

	closed := in.ClosedHours
	if in.IsOff {
		// whole day off, individual hours are meaningless
		closed = nil
	}

	rec, deleted, err := uc.repo.SetAvailability(ctx, in.BarberName, in.Date, in.IsOff, closed)
	if err != nil {
		return nil, err
	}

	shop, shopErr := uc.repo.GetShop(ctx)
	if shopErr == nil {
		action := audit.ActionAvailabilitySet
		if deleted {
			action = audit.ActionAvailabilityCleared
		}
		uc.audit.Dispatch(audit.Event{
			ShopID: shop.ID,
			UserID: &in.AdminID,
			Action: action,
			Entity: "availability",
			Metadata: map[string]any{
				"barber": in.BarberName,
				"date":   in.Date,
			},
		})
	}

	return &SetAvailabilityResult{Record: rec, Deleted: deleted}, nil
}
