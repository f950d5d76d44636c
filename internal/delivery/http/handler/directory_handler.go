package handler

import (
	"net/http"

	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/usecase"
	"go-medical-booking/pkg/response"
	"go-medical-booking/pkg/validator"
)

// DirectoryHandler manages patients, providers and the services they offer
type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase, validator *validator.CustomValidator) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *DirectoryHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	patient, err := h.directoryUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *DirectoryHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathUUID(w, r, "id", "patient")
	if !ok {
		return
	}

	patient, err := h.directoryUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *DirectoryHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProviderRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	provider, err := h.directoryUsecase.CreateProvider(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Provider created successfully", provider)
}

func (h *DirectoryHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathUUID(w, r, "id", "provider")
	if !ok {
		return
	}

	provider, err := h.directoryUsecase.GetProvider(r.Context(), providerID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Provider retrieved successfully", provider)
}

func (h *DirectoryHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	service, err := h.directoryUsecase.CreateService(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", service)
}

func (h *DirectoryHandler) GetService(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := pathUUID(w, r, "id", "service")
	if !ok {
		return
	}

	service, err := h.directoryUsecase.GetService(r.Context(), serviceID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", service)
}

func (h *DirectoryHandler) AssignService(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathUUID(w, r, "id", "provider")
	if !ok {
		return
	}

	var req dto.AssignServiceRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	provider, err := h.directoryUsecase.AssignService(r.Context(), providerID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Service assigned successfully", provider)
}
