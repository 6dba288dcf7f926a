package models

import "time"

type Barber struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	Name      string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	ImageURL  string `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
