package dto

import (
	"time"

	"go-medical-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

// AuditLogFilterRequest is built from query parameters. A zero Limit takes the default page size.
type AuditLogFilterRequest struct {
	UserID *uuid.UUID
	Action string
	Limit  int
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	UserID    *uuid.UUID  `json:"user_id,omitempty"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
