package models

import "time"

// Shop is the single active shop record. Booking and admin surfaces read the
// defaults (language, calling code, timezone) from here.
type Shop struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone        string `gorm:"size:50" json:"timezone"`
	DefaultLanguage string `gorm:"size:5;default:'de'" json:"default_language"`
	CountryCode     string `gorm:"size:5;default:'+49'" json:"country_code"`

	// When enabled, two appointments can no longer share (barber, date, time).
	// Off by default: walk-in overflow is handled manually by staff.
	EnforceSlotUniqueness bool `gorm:"default:false" json:"enforce_slot_uniqueness"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
