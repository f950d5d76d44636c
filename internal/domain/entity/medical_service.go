package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MedicalService is a bookable clinic service (consultation, procedure).
type MedicalService struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	DurationMinutes int             `gorm:"not null" json:"duration_minutes"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MedicalService) TableName() string {
	return "medical_services"
}

func (s *MedicalService) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ProviderService pairs a provider with a service they are allowed to perform.
type ProviderService struct {
	ProviderID uuid.UUID `gorm:"type:uuid;primaryKey" json:"provider_id"`
	ServiceID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"service_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Service MedicalService `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (ProviderService) TableName() string {
	return "provider_services"
}
