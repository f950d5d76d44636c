package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ExceptionType classifies a schedule exception
type ExceptionType string

const (
	ExceptionTypeVacation  ExceptionType = "VACATION"
	ExceptionTypeSickLeave ExceptionType = "SICK_LEAVE"
	ExceptionTypeOther     ExceptionType = "OTHER"
)

var ErrExceptionDateOrder = errors.New("date from must be before or equal to date to")

// IsValid checks the type against the known set
func (t ExceptionType) IsValid() bool {
	switch t {
	case ExceptionTypeVacation, ExceptionTypeSickLeave, ExceptionTypeOther:
		return true
	}
	return false
}

// ScheduleException blacks out whole days of a provider's schedule.
// DateFrom and DateTo are inclusive. Rows are never updated, only deleted.
type ScheduleException struct {
	ID            int           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"provider_id"`
	ExceptionType ExceptionType `gorm:"type:varchar(20);not null" json:"exception_type"`
	DateFrom      time.Time     `gorm:"type:date;not null;index" json:"date_from"`
	DateTo        time.Time     `gorm:"type:date;not null;index" json:"date_to"`
	Reason        string        `gorm:"type:text" json:"reason,omitempty"`
	CreatedBy     uuid.UUID     `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (ScheduleException) TableName() string {
	return "schedule_exceptions"
}

// Validate checks the range invariant
func (e *ScheduleException) Validate() error {
	if DateKey(e.DateFrom) > DateKey(e.DateTo) {
		return ErrExceptionDateOrder
	}
	return nil
}

// Covers reports whether date falls within the inclusive range.
func (e *ScheduleException) Covers(date time.Time) bool {
	day := DateKey(date)
	return DateKey(e.DateFrom) <= day && day <= DateKey(e.DateTo)
}
