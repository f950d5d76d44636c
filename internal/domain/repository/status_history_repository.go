package repository

import (
	"go-medical-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusHistoryRepository is insert-only; there is no update or delete.
type StatusHistoryRepository interface {
	Append(db *gorm.DB, entry *entity.StatusHistory) error
	FindByAppointment(db *gorm.DB, appointmentID uuid.UUID) ([]entity.StatusHistory, error)
}
