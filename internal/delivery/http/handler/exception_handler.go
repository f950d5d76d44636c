package handler

import (
	"net/http"

	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/usecase"
	"go-medical-booking/pkg/response"
	"go-medical-booking/pkg/validator"
)

type ExceptionHandler struct {
	exceptionUsecase usecase.ScheduleExceptionUsecase
	validator        *validator.CustomValidator
}

func NewExceptionHandler(exceptionUsecase usecase.ScheduleExceptionUsecase, validator *validator.CustomValidator) *ExceptionHandler {
	return &ExceptionHandler{
		exceptionUsecase: exceptionUsecase,
		validator:        validator,
	}
}

func (h *ExceptionHandler) CreateException(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExceptionRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	exception, err := h.exceptionUsecase.CreateException(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Schedule exception created successfully", exception)
}

func (h *ExceptionHandler) GetException(w http.ResponseWriter, r *http.Request) {
	exceptionID, ok := pathInt(w, r, "id", "exception")
	if !ok {
		return
	}

	exception, err := h.exceptionUsecase.GetException(r.Context(), exceptionID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule exception retrieved successfully", exception)
}

func (h *ExceptionHandler) DeleteException(w http.ResponseWriter, r *http.Request) {
	exceptionID, ok := pathInt(w, r, "id", "exception")
	if !ok {
		return
	}

	if err := h.exceptionUsecase.DeleteException(r.Context(), exceptionID); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule exception deleted successfully", nil)
}

func (h *ExceptionHandler) ListExceptions(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathUUID(w, r, "id", "provider")
	if !ok {
		return
	}

	q := r.URL.Query()
	exceptions, err := h.exceptionUsecase.ListExceptions(r.Context(), providerID, q.Get("from"), q.Get("to"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule exceptions retrieved successfully", exceptions)
}

// AffectedAppointments lists the bookings a planned exception would strand.
func (h *ExceptionHandler) AffectedAppointments(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathUUID(w, r, "id", "provider")
	if !ok {
		return
	}

	q := r.URL.Query()
	appointments, err := h.exceptionUsecase.AffectedAppointments(r.Context(), providerID, q.Get("from"), q.Get("to"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Affected appointments retrieved successfully", appointments)
}
