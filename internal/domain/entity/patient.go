package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient is a person receiving care. UserID is set only for patients
// who have an account in the patient portal.
type Patient struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	FullName       string     `gorm:"type:varchar(255);not null" json:"full_name"`
	DocumentNumber string     `gorm:"type:varchar(32);uniqueIndex;not null" json:"document_number"`
	PhoneNumber    string     `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	DateOfBirth    time.Time  `gorm:"type:date;not null" json:"date_of_birth"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
