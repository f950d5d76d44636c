package repository

import (
	"go-medical-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecurringScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.RecurringSchedule) error
	FindByID(db *gorm.DB, id int) (*entity.RecurringSchedule, error)
	FindByProvider(db *gorm.DB, providerID uuid.UUID) ([]entity.RecurringSchedule, error)
	FindByProviderAndDay(db *gorm.DB, providerID uuid.UUID, dayOfWeek int) ([]entity.RecurringSchedule, error)
	Update(db *gorm.DB, schedule *entity.RecurringSchedule) error
	Delete(db *gorm.DB, id int) (int64, error)
}
