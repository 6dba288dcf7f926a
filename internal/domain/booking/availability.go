package booking

type AvailabilityInput struct {
	Date       string
	BarberName string
}

// DayAvailability is what the booking flow needs after picking a date: the
// bookable slots plus the barbers who are off that day (they are removed from
// the selectable list).
type DayAvailability struct {
	Date       string   `json:"date"`
	Slots      []string `json:"slots"`
	OffBarbers []string `json:"off_barbers"`
}
