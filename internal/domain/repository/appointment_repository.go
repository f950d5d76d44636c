package repository

import (
	"time"

	"go-medical-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindActiveByProviderAndDate(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	FindByProviderAndDate(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	FindActiveByProviderInRange(db *gorm.DB, providerID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	FindByFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindUpcomingByPatient(db *gorm.DB, patientID uuid.UUID, from time.Time) ([]entity.Appointment, error)
	CountByStatus(db *gorm.DB, providerID uuid.UUID, from, to time.Time) (map[entity.AppointmentStatus]int, error)
	// UpdateStatus writes status and cancel reason only if the stored version
	// still equals appointment.Version, then bumps the version. Returns rows affected.
	UpdateStatus(db *gorm.DB, appointment *entity.Appointment) (int64, error)
	UpdateTime(db *gorm.DB, appointment *entity.Appointment) (int64, error)
}
