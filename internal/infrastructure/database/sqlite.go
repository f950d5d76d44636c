package database

import (
	"fmt"

	"go-medical-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewSQLiteConnection opens a SQLite database. Use ":memory:" for an
// ephemeral database; the pool is pinned to one connection so every
// statement sees the same in-memory database.
func NewSQLiteConnection(path string, gormLogLevel string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{
		Logger: newGormLogger(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	logrus.Infof("Successfully opened SQLite database %s", path)

	return db, nil
}

// AutoMigrate creates the schema from the entities and seeds the roles.
// Only used for SQLite; PostgreSQL is migrated with golang-migrate.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Provider{},
		&entity.Patient{},
		&entity.MedicalService{},
		&entity.ProviderService{},
		&entity.RecurringSchedule{},
		&entity.ScheduleException{},
		&entity.Appointment{},
		&entity.StatusHistory{},
		&entity.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate schema: %w", err)
	}

	roles := entity.DefaultRoles()
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
}
