package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berberhaus/barbershop-api/internal/models"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return parsed
}

func TestSlotTemplate(t *testing.T) {
	slots := SlotTemplate()

	require.NotEmpty(t, slots)
	assert.Equal(t, "10:00", slots[0])
	assert.Equal(t, "19:00", slots[len(slots)-1])
	assert.Len(t, slots, 13)

	// consecutive slots are exactly 45 minutes apart
	for i := 1; i < len(slots); i++ {
		prev, _ := time.Parse(TimeLayout, slots[i-1])
		cur, _ := time.Parse(TimeLayout, slots[i])
		assert.Equal(t, 45*time.Minute, cur.Sub(prev))
	}
}

func TestIsTemplateSlot(t *testing.T) {
	assert.True(t, IsTemplateSlot("10:00"))
	assert.True(t, IsTemplateSlot("12:15"))
	assert.True(t, IsTemplateSlot("19:00"))

	assert.False(t, IsTemplateSlot("10:30"))
	assert.False(t, IsTemplateSlot("19:45"))
	assert.False(t, IsTemplateSlot(""))
}

func TestAvailableSlots_NoRestrictions(t *testing.T) {
	now := mustTime(t, "2026-09-01 08:00")

	slots := AvailableSlots("2026-09-02", "Mehmet", nil, now)

	assert.Equal(t, SlotTemplate(), slots)
}

func TestAvailableSlots_DayOff(t *testing.T) {
	now := mustTime(t, "2026-09-01 08:00")
	records := []models.AvailabilityRecord{
		{BarberName: "Ahmet", Date: "2026-09-02", IsOff: true},
	}

	assert.Empty(t, AvailableSlots("2026-09-02", "Ahmet", records, now))

	// the record belongs to Ahmet only
	assert.Equal(t, SlotTemplate(), AvailableSlots("2026-09-02", "Mehmet", records, now))
}

func TestAvailableSlots_ClosedHours(t *testing.T) {
	now := mustTime(t, "2026-09-01 08:00")
	records := []models.AvailabilityRecord{
		{BarberName: "Mehmet", Date: "2026-09-02", ClosedHours: models.TimeList{"12:15", "13:00"}},
	}

	slots := AvailableSlots("2026-09-02", "Mehmet", records, now)

	assert.NotContains(t, slots, "12:15")
	assert.NotContains(t, slots, "13:00")
	assert.Contains(t, slots, "11:30")
	assert.Len(t, slots, len(SlotTemplate())-2)
}

func TestAvailableSlots_TodayFiltersPastSlots(t *testing.T) {
	now := mustTime(t, "2026-09-02 13:00")

	slots := AvailableSlots("2026-09-02", "Mehmet", nil, now)

	// 13:00 itself already started; the first offered slot is 13:45
	require.NotEmpty(t, slots)
	assert.Equal(t, "13:45", slots[0])
	assert.NotContains(t, slots, "13:00")
	assert.NotContains(t, slots, "12:15")
}

func TestAvailableSlots_PastDate(t *testing.T) {
	now := mustTime(t, "2026-09-02 13:00")

	assert.Empty(t, AvailableSlots("2026-09-01", "Mehmet", nil, now))
}

func TestAvailableSlots_InvalidDate(t *testing.T) {
	now := mustTime(t, "2026-09-02 13:00")

	assert.Empty(t, AvailableSlots("02.09.2026", "Mehmet", nil, now))
}

func TestOffBarbers(t *testing.T) {
	records := []models.AvailabilityRecord{
		{BarberName: "Ahmet", Date: "2026-09-02", IsOff: true},
		{BarberName: "Mehmet", Date: "2026-09-02", ClosedHours: models.TimeList{"10:00"}},
		{BarberName: "Ahmet", Date: "2026-09-03", IsOff: true},
	}

	assert.Equal(t, []string{"Ahmet"}, OffBarbers("2026-09-02", records))
	assert.Empty(t, OffBarbers("2026-09-04", records))
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2026-09-02", DateKey(mustTime(t, "2026-09-02 23:59")))
	assert.Equal(t, "2026-01-05", DateKey(mustTime(t, "2026-01-05 00:00")))
}
