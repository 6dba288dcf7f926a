package booking

import (
	"fmt"
	"time"

	"github.com/berberhaus/barbershop-api/internal/models"
)

// ===============================
// Daily slot template
// ===============================

// The template is shared by the booking flow and the admin availability
// editor. Both sides must offer exactly these strings, otherwise admins can
// block slots customers are never shown (and vice versa).
const (
	DayOpen         = "10:00"
	DayClose        = "19:00"
	SlotStepMinutes = 45

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// SlotTemplate returns the ordered daily slots from DayOpen to DayClose at
// SlotStepMinutes granularity. A fresh slice is returned on every call so
// callers can filter in place.
func SlotTemplate() []string {
	open, _ := time.Parse(TimeLayout, DayOpen)
	close, _ := time.Parse(TimeLayout, DayClose)

	var slots []string
	for cur := open; !cur.After(close); cur = cur.Add(SlotStepMinutes * time.Minute) {
		slots = append(slots, cur.Format(TimeLayout))
	}
	return slots
}

// IsTemplateSlot reports whether t is one of the template slots.
func IsTemplateSlot(t string) bool {
	for _, slot := range SlotTemplate() {
		if slot == t {
			return true
		}
	}
	return false
}

// ===============================
// Slot calculation
// ===============================

// AvailableSlots derives the bookable slots for a barber on a date:
//
//  1. start from the full template;
//  2. a matching record with IsOff=true empties the day;
//  3. slots in the record's closed hours are removed;
//  4. if the date is today (local calendar equality), slots whose time of day
//     has already passed are removed; a past date yields nothing.
//
// No matching record means no restrictions, so callers degrade to the full
// template when the availability store is unreachable.
func AvailableSlots(date, barberName string, records []models.AvailabilityRecord, now time.Time) []string {
	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return nil
	}

	today := DateKey(now)
	if day.Before(startOfDay(now)) {
		return nil
	}

	record := recordFor(barberName, date, records)
	if record != nil && record.IsOff {
		return nil
	}

	closed := map[string]bool{}
	if record != nil {
		for _, h := range record.ClosedHours {
			closed[h] = true
		}
	}

	nowClock := now.Format(TimeLayout)

	var slots []string
	for _, slot := range SlotTemplate() {
		if closed[slot] {
			continue
		}
		// zero-padded HH:MM compares correctly as a string
		if date == today && slot <= nowClock {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// OffBarbers lists the barbers whose record marks the whole date off. The
// booking flow removes them from the selectable list for that date.
func OffBarbers(date string, records []models.AvailabilityRecord) []string {
	var off []string
	for _, rec := range records {
		if rec.Date == date && rec.IsOff {
			off = append(off, rec.BarberName)
		}
	}
	return off
}

// DateKey normalizes a time to its local calendar date as a zero-padded
// "YYYY-MM-DD" string. All availability keys go through here so a timezone
// conversion can never shift the day.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

func recordFor(barberName, date string, records []models.AvailabilityRecord) *models.AvailabilityRecord {
	for i := range records {
		if records[i].BarberName == barberName && records[i].Date == date {
			return &records[i]
		}
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
