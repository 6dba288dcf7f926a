package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/berberhaus/barbershop-api/internal/config"
	"github.com/berberhaus/barbershop-api/internal/models"
	"github.com/berberhaus/barbershop-api/internal/timezone"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Shop{},
		&models.AdminUser{},
		&models.Service{},
		&models.Barber{},
		&models.AvailabilityRecord{},
		&models.Appointment{},
		&models.JobApplication{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE shops
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, timezone.DefaultTimezone)

	return db
}
