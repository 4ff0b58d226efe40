package handler

import (
	"net/http"

	"health-predict-backend/internal/delivery/http/middleware"
	"health-predict-backend/internal/usecase"
	"health-predict-backend/pkg/response"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{doctorUsecase: doctorUsecase}
}

// ListDoctors returns the public doctor directory, optionally filtered by
// ?specialization=.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	specialization := r.URL.Query().Get("specialization")

	result, err := h.doctorUsecase.ListDoctors(r.Context(), specialization)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch doctors")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Dashboard returns the doctor's alerts plus recent patient activity.
// Routed behind Authenticate + RequireDoctor.
func (h *DoctorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.doctorUsecase.Dashboard(r.Context(), email)
	if err != nil {
		response.InternalServerError(w, "Error fetching doctor dashboard data")
		return
	}

	response.JSON(w, http.StatusOK, result)
}
