package handler

import (
	"encoding/json"
	"net/http"

	"health-predict-backend/internal/delivery/dto"
	"health-predict-backend/internal/delivery/http/middleware"
	"health-predict-backend/internal/domain/entity"
	"health-predict-backend/internal/usecase"
	"health-predict-backend/pkg/response"
	"health-predict-backend/pkg/validator"

	"github.com/google/uuid"
)

type PredictionHandler struct {
	predictionUsecase usecase.PredictionUsecase
	validator         *validator.CustomValidator
}

func NewPredictionHandler(predictionUsecase usecase.PredictionUsecase, validator *validator.CustomValidator) *PredictionHandler {
	return &PredictionHandler{
		predictionUsecase: predictionUsecase,
		validator:         validator,
	}
}

// PredictCardiovascular forwards the 13 cardiovascular features to the
// external service and returns its result.
func (h *PredictionHandler) PredictCardiovascular(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CardiovascularRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.predictionUsecase.Predict(r.Context(), userID, entity.PredictionTypeCardiovascular, &req)
	if err != nil {
		response.InternalServerError(w, "Error processing cardiovascular prediction")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// PredictDiabetic forwards the payload to the diabetic service untouched.
func (h *PredictionHandler) PredictDiabetic(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var features map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&features); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.predictionUsecase.Predict(r.Context(), userID, entity.PredictionTypeDiabetic, features)
	if err != nil {
		response.InternalServerError(w, "Error processing diabetic prediction")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// History returns the caller's recent predictions.
func (h *PredictionHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.predictionUsecase.History(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Error fetching prediction history")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Save stores an externally computed prediction for the caller.
func (h *PredictionHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SavePredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if req.PredictionType == "" || len(req.Result) == 0 {
		response.Error(w, http.StatusBadRequest, "Missing required fields", nil)
		return
	}

	if err := h.predictionUsecase.Save(r.Context(), userID, &req); err != nil {
		response.InternalServerError(w, "Failed to save prediction")
		return
	}

	response.JSON(w, http.StatusOK, dto.SavePredictionResponse{
		Success: true,
		Message: "Prediction saved successfully",
	})
}

// authenticatedUserID pulls the patient UUID injected by the auth gate.
// Doctor tokens carry numeric IDs and fail the parse, which is fine: the
// prediction endpoints are patient-facing.
func authenticatedUserID(r *http.Request) (uuid.UUID, bool) {
	raw, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
