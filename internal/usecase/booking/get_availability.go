package booking

import (
	"context"
	"log"
	"time"

	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute computes the bookable slots for a date. BarberName narrows the
// calculation to one barber; empty means "any barber context" (the date/time
// step of the flow, where slots are offered before a barber is picked).
//
// An unreachable availability store degrades to "no restrictions": booking
// stays usable and the admin resolves collisions manually.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.DayAvailability, error) {

	now := uc.shopNow(ctx)

	records, err := uc.repo.ListAvailability(ctx, "", in.Date)
	if err != nil {
		log.Printf("availability read failed, assuming no restrictions: %v", err)
		records = nil
	}

	return &domain.DayAvailability{
		Date:       in.Date,
		Slots:      domain.AvailableSlots(in.Date, in.BarberName, records, now),
		OffBarbers: domain.OffBarbers(in.Date, records),
	}, nil
}

func (uc *GetAvailability) shopNow(ctx context.Context) time.Time {
	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return timezone.Now()
	}
	return timezone.NowIn(shop.Timezone)
}
