package dto

import "github.com/google/uuid"

type WindowResponse struct {
	ScheduleID      int     `json:"schedule_id"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	PaidStart       *string `json:"paid_start,omitempty"`
	PaidEnd         *string `json:"paid_end,omitempty"`
	Location        *string `json:"location,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
}

type AvailabilityResponse struct {
	ProviderID uuid.UUID        `json:"provider_id"`
	Date       string           `json:"date"`
	Windows    []WindowResponse `json:"windows"`
}

type BlackoutResponse struct {
	Blackout    bool    `json:"blackout"`
	ExceptionID *int    `json:"exception_id,omitempty"`
	Type        *string `json:"type,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	DateFrom    *string `json:"date_from,omitempty"`
	DateTo      *string `json:"date_to,omitempty"`
}

// DayAvailabilityResponse combines schedule and exceptions. Windows is empty
// on a blackout day.
type DayAvailabilityResponse struct {
	ProviderID uuid.UUID        `json:"provider_id"`
	Date       string           `json:"date"`
	Blackout   BlackoutResponse `json:"blackout"`
	Windows    []WindowResponse `json:"windows"`
}

type ConflictQuery struct {
	ProviderID           uuid.UUID
	Date                 string     `validate:"required,date"`
	StartTime            string     `validate:"required,hhmm"`
	EndTime              string     `validate:"required,hhmm"`
	ExcludeAppointmentID *uuid.UUID `validate:"omitempty"`
}

type ConflictResponse struct {
	Conflict bool `json:"conflict"`
}
