package converter

import (
	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             patient.ID,
		UserID:         patient.UserID,
		FullName:       patient.FullName,
		DocumentNumber: patient.DocumentNumber,
		PhoneNumber:    patient.PhoneNumber,
		DateOfBirth:    patient.DateOfBirth.Format(entity.DateLayout),
		CreatedAt:      patient.CreatedAt,
	}
}

func ProviderToResponse(provider *entity.Provider) *dto.ProviderResponse {
	if provider == nil {
		return nil
	}

	return &dto.ProviderResponse{
		ID:             provider.ID,
		FullName:       provider.FullName,
		Specialization: provider.Specialization,
		IsActive:       provider.IsActive,
		CreatedAt:      provider.CreatedAt,
	}
}

func ServiceToResponse(service *entity.MedicalService) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.ServiceResponse{
		ID:              service.ID,
		Name:            service.Name,
		DurationMinutes: service.DurationMinutes,
		Price:           service.Price,
	}
}

func ServicesToResponses(services []entity.MedicalService) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i := range services {
		responses[i] = *ServiceToResponse(&services[i])
	}
	return responses
}
