package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WorkloadResponse struct {
	ProviderID   uuid.UUID       `json:"provider_id"`
	ProviderName string          `json:"provider_name,omitempty"`
	Date         string          `json:"date"`
	Blackout     bool            `json:"blackout"`
	TotalSlots   int             `json:"total_slots"`
	Occupied     int             `json:"occupied"`
	Free         int             `json:"free"`
	LoadPercent  decimal.Decimal `json:"load_percent"`
}

type ClinicWorkloadResponse struct {
	Date      string             `json:"date"`
	Providers []WorkloadResponse `json:"providers"`
}

type NoShowRateResponse struct {
	ProviderID   uuid.UUID       `json:"provider_id"`
	DateFrom     string          `json:"date_from"`
	DateTo       string          `json:"date_to"`
	StatusCounts map[string]int  `json:"status_counts"`
	Total        int             `json:"total"`
	NoShow       int             `json:"no_show"`
	Rate         decimal.Decimal `json:"rate"`
}
