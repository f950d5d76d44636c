package repository

import (
	"errors"

	"go-medical-booking/internal/domain/entity"
	domainRepo "go-medical-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recurringScheduleRepository struct{}

func NewRecurringScheduleRepository() domainRepo.RecurringScheduleRepository {
	return &recurringScheduleRepository{}
}

func (r *recurringScheduleRepository) Create(db *gorm.DB, schedule *entity.RecurringSchedule) error {
	return db.Create(schedule).Error
}

func (r *recurringScheduleRepository) FindByID(db *gorm.DB, id int) (*entity.RecurringSchedule, error) {
	var schedule entity.RecurringSchedule
	err := db.Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *recurringScheduleRepository) FindByProvider(db *gorm.DB, providerID uuid.UUID) ([]entity.RecurringSchedule, error) {
	var schedules []entity.RecurringSchedule
	err := db.Where("provider_id = ?", providerID).
		Order("day_of_week ASC, start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// FindByProviderAndDay returns every entry for the weekday regardless of its
// effective range; callers filter with RecurringSchedule.AppliesOn.
func (r *recurringScheduleRepository) FindByProviderAndDay(db *gorm.DB, providerID uuid.UUID, dayOfWeek int) ([]entity.RecurringSchedule, error) {
	var schedules []entity.RecurringSchedule
	err := db.Where("provider_id = ? AND day_of_week = ?", providerID, dayOfWeek).
		Order("start_time ASC, id ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *recurringScheduleRepository) Update(db *gorm.DB, schedule *entity.RecurringSchedule) error {
	return db.Save(schedule).Error
}

func (r *recurringScheduleRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.RecurringSchedule{})
	return result.RowsAffected, result.Error
}
