package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditLog records administrative changes to schedules, exceptions and the directory.
// Appointment status changes are tracked separately in StatusHistory.
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// AuditLogFilter narrows an audit trail query. Zero fields match everything
// and a zero Limit returns every match.
type AuditLogFilter struct {
	UserID *uuid.UUID
	Action string
	Limit  int
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value implements driver.Valuer
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column value of type %T", value)
	}

	result := JSON{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// Audit actions
const (
	AuditActionScheduleCreate  = "schedule.create"
	AuditActionScheduleUpdate  = "schedule.update"
	AuditActionScheduleDelete  = "schedule.delete"
	AuditActionExceptionCreate = "exception.create"
	AuditActionExceptionDelete = "exception.delete"
	AuditActionPatientCreate   = "patient.create"
	AuditActionProviderCreate  = "provider.create"
	AuditActionServiceCreate   = "service.create"
	AuditActionServiceAssign   = "provider_service.create"
	AuditActionUserLogin       = "user.login"
	AuditActionUserLogout      = "user.logout"
)
