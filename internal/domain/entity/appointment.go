package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentSource records the channel the appointment was booked through
type AppointmentSource string

const (
	AppointmentSourceOnline   AppointmentSource = "ONLINE"
	AppointmentSourceInPerson AppointmentSource = "IN_PERSON"
	AppointmentSourcePhone    AppointmentSource = "PHONE"
	AppointmentSourceOther    AppointmentSource = "OTHER"
)

func (s AppointmentSource) IsValid() bool {
	switch s {
	case AppointmentSourceOnline, AppointmentSourceInPerson, AppointmentSourcePhone, AppointmentSourceOther:
		return true
	}
	return false
}

// Appointment links a patient, provider and service to a time interval.
// Collaborators are referenced by id only.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProviderID      uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointment_provider_date" json:"provider_id"`
	ServiceID       uuid.UUID         `gorm:"type:uuid;not null" json:"service_id"`
	ScheduleID      *int              `gorm:"index" json:"schedule_id,omitempty"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index:idx_appointment_provider_date" json:"appointment_date"`
	StartTime       time.Time         `gorm:"not null" json:"start_time"`
	EndTime         time.Time         `gorm:"not null" json:"end_time"`
	IsPaid          bool              `gorm:"not null;default:false" json:"is_paid"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'WAITING';index" json:"status"`
	Source          AppointmentSource `gorm:"type:varchar(20);not null;default:'ONLINE'" json:"source"`
	CancelReason    *string           `gorm:"type:text" json:"cancel_reason,omitempty"`
	CreatedBy       uuid.UUID         `gorm:"type:uuid;not null" json:"created_by"`
	Version         int               `gorm:"not null;default:1" json:"version"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the appointment still holds its time slot
func (a *Appointment) IsActive() bool {
	return a.Status.HoldsSlot()
}

// Overlaps applies the open-interval test: touching at a boundary is not an overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}

// ApplyStatus moves the appointment to status. The cancel reason is only
// written when the target is CANCELLED and is left untouched otherwise.
func (a *Appointment) ApplyStatus(status AppointmentStatus, reason *string) AppointmentStatus {
	old := a.Status
	a.Status = status
	if status == AppointmentStatusCancelled {
		a.CancelReason = reason
	}
	return old
}

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	ProviderID *uuid.UUID
	PatientID  *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
	Status     *AppointmentStatus
}
