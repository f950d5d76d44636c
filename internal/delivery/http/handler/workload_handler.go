package handler

import (
	"net/http"

	"go-medical-booking/internal/usecase"
	"go-medical-booking/pkg/response"
)

type WorkloadHandler struct {
	workloadUsecase usecase.WorkloadUsecase
}

func NewWorkloadHandler(workloadUsecase usecase.WorkloadUsecase) *WorkloadHandler {
	return &WorkloadHandler{
		workloadUsecase: workloadUsecase,
	}
}

func (h *WorkloadHandler) GetProviderWorkload(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathUUID(w, r, "id", "provider")
	if !ok {
		return
	}

	workload, err := h.workloadUsecase.GetProviderWorkload(r.Context(), providerID, r.URL.Query().Get("date"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Workload retrieved successfully", workload)
}

func (h *WorkloadHandler) GetClinicWorkload(w http.ResponseWriter, r *http.Request) {
	workload, err := h.workloadUsecase.GetClinicWorkload(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Clinic workload retrieved successfully", workload)
}

func (h *WorkloadHandler) GetNoShowRate(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathUUID(w, r, "id", "provider")
	if !ok {
		return
	}

	q := r.URL.Query()
	rate, err := h.workloadUsecase.GetNoShowRate(r.Context(), providerID, q.Get("from"), q.Get("to"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "No-show rate retrieved successfully", rate)
}
