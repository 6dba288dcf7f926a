package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// TimeList is a JSON-encoded array of "HH:MM" strings inside a text column.
type TimeList []string

func (l TimeList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *TimeList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = TimeList{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	}
	return errors.New("unsupported source type for TimeList")
}

// AvailabilityRecord marks a barber's whole day off or a set of blocked slots
// for one calendar date. The natural key is (barber_name, date).
//
// Dates are plain local "YYYY-MM-DD" strings on purpose: a timestamp column
// would shift the day whenever server and shop timezones disagree.
//
// A record with IsOff=false and no closed hours means "fully working" and is
// never persisted; the store deletes it instead (see SetAvailability).
type AvailabilityRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberName string `gorm:"size:100;not null;uniqueIndex:idx_avail_barber_date" json:"barber_name"`
	Date       string `gorm:"size:10;not null;uniqueIndex:idx_avail_barber_date" json:"date"`

	IsOff       bool     `json:"is_off"`
	ClosedHours TimeList `gorm:"type:text" json:"closed_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
