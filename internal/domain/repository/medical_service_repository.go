package repository

import (
	"go-medical-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalServiceRepository interface {
	Create(db *gorm.DB, service *entity.MedicalService) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalService, error)
	AssignToProvider(db *gorm.DB, pairing *entity.ProviderService) error
	FindByProvider(db *gorm.DB, providerID uuid.UUID) ([]entity.MedicalService, error)
	IsOfferedBy(db *gorm.DB, providerID, serviceID uuid.UUID) (bool, error)
}
