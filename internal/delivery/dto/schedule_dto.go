package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateScheduleRequest struct {
	ProviderID    uuid.UUID `json:"provider_id" validate:"required"`
	DayOfWeek     int       `json:"day_of_week" validate:"required,min=1,max=7"`
	StartTime     string    `json:"start_time" validate:"required,hhmm"`
	EndTime       string    `json:"end_time" validate:"required,hhmm"`
	PaidStartTime *string   `json:"paid_start_time" validate:"omitempty,hhmm"`
	PaidEndTime   *string   `json:"paid_end_time" validate:"omitempty,hhmm"`
	Location      *string   `json:"location" validate:"omitempty,max=50"`
	EffectiveFrom string    `json:"effective_from" validate:"required,date"`
	EffectiveTo   *string   `json:"effective_to" validate:"omitempty,date"`
}

// UpdateScheduleRequest replaces every editable field of an entry
type UpdateScheduleRequest struct {
	DayOfWeek     int     `json:"day_of_week" validate:"required,min=1,max=7"`
	StartTime     string  `json:"start_time" validate:"required,hhmm"`
	EndTime       string  `json:"end_time" validate:"required,hhmm"`
	PaidStartTime *string `json:"paid_start_time" validate:"omitempty,hhmm"`
	PaidEndTime   *string `json:"paid_end_time" validate:"omitempty,hhmm"`
	Location      *string `json:"location" validate:"omitempty,max=50"`
	EffectiveFrom string  `json:"effective_from" validate:"required,date"`
	EffectiveTo   *string `json:"effective_to" validate:"omitempty,date"`
}

// Response DTOs

type ScheduleResponse struct {
	ID            int       `json:"id"`
	ProviderID    uuid.UUID `json:"provider_id"`
	DayOfWeek     int       `json:"day_of_week"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	PaidStartTime *string   `json:"paid_start_time,omitempty"`
	PaidEndTime   *string   `json:"paid_end_time,omitempty"`
	Location      *string   `json:"location,omitempty"`
	EffectiveFrom string    `json:"effective_from"`
	EffectiveTo   *string   `json:"effective_to,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
