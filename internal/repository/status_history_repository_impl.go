package repository

import (
	"go-medical-booking/internal/domain/entity"
	domainRepo "go-medical-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type statusHistoryRepository struct{}

func NewStatusHistoryRepository() domainRepo.StatusHistoryRepository {
	return &statusHistoryRepository{}
}

func (r *statusHistoryRepository) Append(db *gorm.DB, entry *entity.StatusHistory) error {
	return db.Create(entry).Error
}

// FindByAppointment lists entries newest first. The id breaks ties between
// entries written within the same clock tick.
func (r *statusHistoryRepository) FindByAppointment(db *gorm.DB, appointmentID uuid.UUID) ([]entity.StatusHistory, error) {
	var entries []entity.StatusHistory
	err := db.Where("appointment_id = ?", appointmentID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
