package handler

import (
	"encoding/json"
	"net/http"

	"health-predict-backend/internal/delivery/dto"
	"health-predict-backend/internal/delivery/http/middleware"
	"health-predict-backend/internal/usecase"
	"health-predict-backend/pkg/response"
	"health-predict-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AlertHandler struct {
	alertUsecase usecase.AlertUsecase
	validator    *validator.CustomValidator
}

func NewAlertHandler(alertUsecase usecase.AlertUsecase, validator *validator.CustomValidator) *AlertHandler {
	return &AlertHandler{
		alertUsecase: alertUsecase,
		validator:    validator,
	}
}

// SendAlert sends the risk alert email and logs it.
func (h *AlertHandler) SendAlert(w http.ResponseWriter, r *http.Request) {
	var req dto.SendAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	// The endpoint is public; attribute the alert to the caller when a
	// patient token happens to be present.
	var userID *uuid.UUID
	if raw, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		if id, err := uuid.Parse(raw); err == nil {
			userID = &id
		}
	}

	if err := h.alertUsecase.SendAlert(r.Context(), userID, &req); err != nil {
		response.InternalServerError(w, "Failed to send email")
		return
	}

	response.JSON(w, http.StatusOK, dto.SendAlertResponse{Message: "Email sent successfully"})
}

// GetRecommendations returns advisories for the risk level in the path.
func (h *AlertHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	riskLevel := mux.Vars(r)["riskLevel"]

	result, err := h.alertUsecase.GetRecommendations(r.Context(), riskLevel)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch recommendations")
		return
	}

	response.JSON(w, http.StatusOK, result)
}
