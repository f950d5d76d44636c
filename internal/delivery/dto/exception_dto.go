package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateExceptionRequest struct {
	ProviderID    uuid.UUID `json:"provider_id" validate:"required"`
	ExceptionType string    `json:"exception_type" validate:"required,oneof=VACATION SICK_LEAVE OTHER"`
	DateFrom      string    `json:"date_from" validate:"required,date"`
	DateTo        string    `json:"date_to" validate:"required,date"`
	Reason        string    `json:"reason" validate:"omitempty,max=1000"`
}

// Response DTOs

type ExceptionResponse struct {
	ID            int       `json:"id"`
	ProviderID    uuid.UUID `json:"provider_id"`
	ExceptionType string    `json:"exception_type"`
	DateFrom      string    `json:"date_from"`
	DateTo        string    `json:"date_to"`
	Reason        string    `json:"reason,omitempty"`
	CreatedBy     uuid.UUID `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

type ExceptionListResponse struct {
	Exceptions []ExceptionResponse `json:"exceptions"`
	Total      int                 `json:"total"`
}
