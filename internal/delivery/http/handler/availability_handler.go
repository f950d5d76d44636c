package handler

import (
	"net/http"

	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/usecase"
	"go-medical-booking/pkg/response"
	"go-medical-booking/pkg/validator"
)

// AvailabilityHandler serves the per-provider calendar views
type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	appointmentUsecase  usecase.AppointmentUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		appointmentUsecase:  appointmentUsecase,
		validator:           validator,
	}
}

func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathUUID(w, r, "id", "provider")
	if !ok {
		return
	}

	availability, err := h.availabilityUsecase.ResolveAvailability(r.Context(), providerID, r.URL.Query().Get("date"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

func (h *AvailabilityHandler) GetBlackout(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathUUID(w, r, "id", "provider")
	if !ok {
		return
	}

	blackout, err := h.availabilityUsecase.IsBlackoutDay(r.Context(), providerID, r.URL.Query().Get("date"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Blackout status retrieved successfully", blackout)
}

func (h *AvailabilityHandler) GetDayAvailability(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathUUID(w, r, "id", "provider")
	if !ok {
		return
	}

	day, err := h.availabilityUsecase.GetDayAvailability(r.Context(), providerID, r.URL.Query().Get("date"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Day availability retrieved successfully", day)
}

func (h *AvailabilityHandler) CheckConflict(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathUUID(w, r, "id", "provider")
	if !ok {
		return
	}
	exclude, ok := queryUUID(w, r, "exclude")
	if !ok {
		return
	}

	q := r.URL.Query()
	query := &dto.ConflictQuery{
		ProviderID:           providerID,
		Date:                 q.Get("date"),
		StartTime:            q.Get("start"),
		EndTime:              q.Get("end"),
		ExcludeAppointmentID: exclude,
	}
	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.appointmentUsecase.CheckConflict(r.Context(), query)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Conflict check completed", result)
}
