package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePatientRequest struct {
	UserID         *uuid.UUID `json:"user_id" validate:"omitempty"`
	FullName       string     `json:"full_name" validate:"required,min=2,max=255"`
	DocumentNumber string     `json:"document_number" validate:"required,min=4,max=32"`
	PhoneNumber    string     `json:"phone_number" validate:"omitempty,min=6,max=20"`
	DateOfBirth    string     `json:"date_of_birth" validate:"required,date"`
}

// CreateProviderRequest creates the login account and the provider record together
type CreateProviderRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FullName       string `json:"full_name" validate:"required,min=2,max=255"`
	Specialization string `json:"specialization" validate:"required,max=100"`
}

type CreateServiceRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,min=5,max=480"`
	Price           decimal.Decimal `json:"price"`
}

type AssignServiceRequest struct {
	ServiceID uuid.UUID `json:"service_id" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	FullName       string     `json:"full_name"`
	DocumentNumber string     `json:"document_number"`
	PhoneNumber    string     `json:"phone_number,omitempty"`
	DateOfBirth    string     `json:"date_of_birth"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ProviderResponse struct {
	ID             uuid.UUID         `json:"id"`
	Email          string            `json:"email,omitempty"`
	FullName       string            `json:"full_name"`
	Specialization string            `json:"specialization"`
	IsActive       bool              `json:"is_active"`
	Services       []ServiceResponse `json:"services,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

type ServiceResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
}
