package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// LocalizedText maps a language code ("de", "en", "tr") to a display string.
// Stored as JSON inside a text column.
type LocalizedText map[string]string

func (t LocalizedText) Value() (driver.Value, error) {
	if t == nil {
		return "{}", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *LocalizedText) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = LocalizedText{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), t)
	case []byte:
		return json.Unmarshal(v, t)
	}
	return errors.New("unsupported source type for LocalizedText")
}

type Service struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	Names       LocalizedText `gorm:"type:text" json:"names"`
	Price       float64       `json:"price"`
	DurationMin int           `json:"duration_min"`
	Active      bool          `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName resolves the service name for a language, falling back to the
// given default language and then to any entry at all.
func (s *Service) DisplayName(lang, fallback string) string {
	if name, ok := s.Names[lang]; ok && name != "" {
		return name
	}
	if name, ok := s.Names[fallback]; ok && name != "" {
		return name
	}
	for _, name := range s.Names {
		if name != "" {
			return name
		}
	}
	return ""
}
