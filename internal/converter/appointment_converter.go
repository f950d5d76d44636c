package converter

import (
	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:           appointment.ID,
		PatientID:    appointment.PatientID,
		ProviderID:   appointment.ProviderID,
		ServiceID:    appointment.ServiceID,
		ScheduleID:   appointment.ScheduleID,
		Date:         appointment.AppointmentDate.Format(entity.DateLayout),
		StartTime:    appointment.StartTime,
		EndTime:      appointment.EndTime,
		IsPaid:       appointment.IsPaid,
		Status:       string(appointment.Status),
		Source:       string(appointment.Source),
		CancelReason: appointment.CancelReason,
		CreatedBy:    appointment.CreatedBy,
		Version:      appointment.Version,
		CreatedAt:    appointment.CreatedAt,
		UpdatedAt:    appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

func StatusHistoryToResponse(entry *entity.StatusHistory) *dto.StatusHistoryResponse {
	if entry == nil {
		return nil
	}

	response := &dto.StatusHistoryResponse{
		ID:            entry.ID,
		AppointmentID: entry.AppointmentID,
		NewStatus:     string(entry.NewStatus),
		ChangedBy:     entry.ChangedBy,
		Reason:        entry.Reason,
		CreatedAt:     entry.CreatedAt,
	}
	if entry.OldStatus != nil {
		old := string(*entry.OldStatus)
		response.OldStatus = &old
	}
	return response
}

func StatusHistoriesToResponses(entries []entity.StatusHistory) []dto.StatusHistoryResponse {
	responses := make([]dto.StatusHistoryResponse, len(entries))
	for i := range entries {
		responses[i] = *StatusHistoryToResponse(&entries[i])
	}
	return responses
}
