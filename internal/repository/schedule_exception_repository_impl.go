package repository

import (
	"errors"
	"time"

	"go-medical-booking/internal/domain/entity"
	domainRepo "go-medical-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleExceptionRepository struct{}

func NewScheduleExceptionRepository() domainRepo.ScheduleExceptionRepository {
	return &scheduleExceptionRepository{}
}

func (r *scheduleExceptionRepository) Create(db *gorm.DB, exception *entity.ScheduleException) error {
	return db.Create(exception).Error
}

func (r *scheduleExceptionRepository) FindByID(db *gorm.DB, id int) (*entity.ScheduleException, error) {
	var exception entity.ScheduleException
	err := db.Where("id = ?", id).First(&exception).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exception, nil
}

func (r *scheduleExceptionRepository) FindByProvider(db *gorm.DB, providerID uuid.UUID) ([]entity.ScheduleException, error) {
	var exceptions []entity.ScheduleException
	err := db.Where("provider_id = ?", providerID).Order("date_from DESC").Find(&exceptions).Error
	if err != nil {
		return nil, err
	}
	return exceptions, nil
}

func (r *scheduleExceptionRepository) FindByProviderOnDate(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.ScheduleException, error) {
	day := entity.DateOf(date)
	var exceptions []entity.ScheduleException
	err := db.Where("provider_id = ? AND date_from <= ? AND date_to >= ?", providerID, day, day).
		Order("date_from ASC, id ASC").
		Find(&exceptions).Error
	if err != nil {
		return nil, err
	}
	return exceptions, nil
}

// FindByProviderInRange returns exceptions overlapping the inclusive range [from, to].
func (r *scheduleExceptionRepository) FindByProviderInRange(db *gorm.DB, providerID uuid.UUID, from, to time.Time) ([]entity.ScheduleException, error) {
	var exceptions []entity.ScheduleException
	err := db.Where("provider_id = ? AND date_from <= ? AND date_to >= ?", providerID, entity.DateOf(to), entity.DateOf(from)).
		Order("date_from ASC, id ASC").
		Find(&exceptions).Error
	if err != nil {
		return nil, err
	}
	return exceptions, nil
}

func (r *scheduleExceptionRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.ScheduleException{})
	return result.RowsAffected, result.Error
}
