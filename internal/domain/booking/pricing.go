package booking

import (
	"strings"

	"github.com/berberhaus/barbershop-api/internal/models"
)

// AnyBarber is the stored sentinel for "no preference".
const AnyBarber = "Any"

// BarberSurcharge is added exactly once when the customer picks a specific
// barber instead of AnyBarber.
const BarberSurcharge = 1.0

// Total is a pure function of the current selections and is recomputed on
// every change; it is never cached before submission.
func Total(services []models.Service, specificBarber bool) float64 {
	var total float64
	for _, s := range services {
		total += s.Price
	}
	if specificBarber {
		total += BarberSurcharge
	}
	return total
}

// JoinServiceNames normalizes a selection to the single comma-joined string
// stored on the appointment ("Haircut, Beard Trim").
func JoinServiceNames(names []string) string {
	return strings.Join(names, ", ")
}
