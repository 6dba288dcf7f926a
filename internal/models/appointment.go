package models

import "time"

// Appointment stores the customer's booking exactly as submitted. Services are
// kept as the comma-joined display names shown at booking time, and BarberName
// is a snapshot so renaming or deleting a barber never rewrites history.
// BarberID is nil when the customer had no preference (BarberName "Any").
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	Email        string `gorm:"size:100" json:"email"`
	Phone        string `gorm:"size:20" json:"phone"`

	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Services string  `gorm:"size:255;not null" json:"services"`
	Total    float64 `json:"total"`

	BarberID   *uint  `json:"barber_id"`
	BarberName string `gorm:"size:100" json:"barber"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
