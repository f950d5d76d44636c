package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID  uuid.UUID `json:"patient_id" validate:"required"`
	ProviderID uuid.UUID `json:"provider_id" validate:"required"`
	ServiceID  uuid.UUID `json:"service_id" validate:"required"`
	ScheduleID *int      `json:"schedule_id" validate:"omitempty,min=1"`
	Date       string    `json:"date" validate:"required,date"`
	StartTime  string    `json:"start_time" validate:"required,hhmm"`
	EndTime    string    `json:"end_time" validate:"required,hhmm"`
	Source     string    `json:"source" validate:"required,oneof=ONLINE IN_PERSON PHONE OTHER"`
	IsPaid     bool      `json:"is_paid"`
}

type UpdateAppointmentTimeRequest struct {
	Date      string `json:"date" validate:"required,date"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}

type TransitionStatusRequest struct {
	Status string  `json:"status" validate:"required,appointment_status"`
	Reason *string `json:"reason" validate:"omitempty,max=1000"`
}

// AppointmentFilterRequest carries the list query parameters
type AppointmentFilterRequest struct {
	ProviderID *uuid.UUID
	PatientID  *uuid.UUID
	DateFrom   string `validate:"omitempty,date"`
	DateTo     string `validate:"omitempty,date"`
	Status     string `validate:"omitempty,appointment_status"`
}

// Response DTOs

type AppointmentResponse struct {
	ID           uuid.UUID `json:"id"`
	PatientID    uuid.UUID `json:"patient_id"`
	ProviderID   uuid.UUID `json:"provider_id"`
	ServiceID    uuid.UUID `json:"service_id"`
	ScheduleID   *int      `json:"schedule_id,omitempty"`
	Date         string    `json:"date"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	IsPaid       bool      `json:"is_paid"`
	Status       string    `json:"status"`
	Source       string    `json:"source"`
	CancelReason *string   `json:"cancel_reason,omitempty"`
	CreatedBy    uuid.UUID `json:"created_by"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type StatusHistoryResponse struct {
	ID            int64     `json:"id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	OldStatus     *string   `json:"old_status"`
	NewStatus     string    `json:"new_status"`
	ChangedBy     uuid.UUID `json:"changed_by"`
	Reason        *string   `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type StatusHistoryListResponse struct {
	History []StatusHistoryResponse `json:"history"`
	Total   int                     `json:"total"`
}

type TransitionResponse struct {
	Appointment AppointmentResponse   `json:"appointment"`
	History     StatusHistoryResponse `json:"history"`
}
