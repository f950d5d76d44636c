package repository

import (
	"errors"

	"go-medical-booking/internal/domain/entity"
	domainRepo "go-medical-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalServiceRepository struct{}

func NewMedicalServiceRepository() domainRepo.MedicalServiceRepository {
	return &medicalServiceRepository{}
}

func (r *medicalServiceRepository) Create(db *gorm.DB, service *entity.MedicalService) error {
	return db.Create(service).Error
}

func (r *medicalServiceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalService, error) {
	var service entity.MedicalService
	err := db.Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *medicalServiceRepository) AssignToProvider(db *gorm.DB, pairing *entity.ProviderService) error {
	return db.Omit("Service").Create(pairing).Error
}

func (r *medicalServiceRepository) FindByProvider(db *gorm.DB, providerID uuid.UUID) ([]entity.MedicalService, error) {
	var services []entity.MedicalService
	err := db.
		Joins("JOIN provider_services ON provider_services.service_id = medical_services.id").
		Where("provider_services.provider_id = ?", providerID).
		Order("medical_services.name ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *medicalServiceRepository) IsOfferedBy(db *gorm.DB, providerID, serviceID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.ProviderService{}).
		Where("provider_id = ? AND service_id = ?", providerID, serviceID).
		Count(&count).Error
	return count > 0, err
}
