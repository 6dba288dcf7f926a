package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/berberhaus/barbershop-api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	shopID uint,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	// no database attached means auditing is disabled
	if l.db == nil {
		return nil
	}

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		ShopID:   shopID,
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&log).Error
}
