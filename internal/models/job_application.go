package models

import "time"

// JobApplication keeps rejection as a stored status rather than a deletion, so
// the hiring trail survives (unlike appointments, where reject removes the row).
type JobApplication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Message string `gorm:"type:text" json:"message"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
