package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatusHistory is an immutable record of one appointment status change.
// OldStatus is nil for the entry written when the appointment is created.
type StatusHistory struct {
	ID            int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID uuid.UUID          `gorm:"type:uuid;not null;index" json:"appointment_id"`
	OldStatus     *AppointmentStatus `gorm:"type:varchar(20)" json:"old_status,omitempty"`
	NewStatus     AppointmentStatus  `gorm:"type:varchar(20);not null" json:"new_status"`
	ChangedBy     uuid.UUID          `gorm:"type:uuid;not null" json:"changed_by"`
	Reason        *string            `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt     time.Time          `gorm:"autoCreateTime;index" json:"created_at"`
}

func (StatusHistory) TableName() string {
	return "appointment_status_history"
}
