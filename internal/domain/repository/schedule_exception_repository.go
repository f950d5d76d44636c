package repository

import (
	"time"

	"go-medical-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleExceptionRepository interface {
	Create(db *gorm.DB, exception *entity.ScheduleException) error
	FindByID(db *gorm.DB, id int) (*entity.ScheduleException, error)
	FindByProvider(db *gorm.DB, providerID uuid.UUID) ([]entity.ScheduleException, error)
	FindByProviderOnDate(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.ScheduleException, error)
	FindByProviderInRange(db *gorm.DB, providerID uuid.UUID, from, to time.Time) ([]entity.ScheduleException, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
