package dto

import (
	"time"

	"health-predict-backend/internal/domain/entity"
)

type SendAlertRequest struct {
	Email           string `json:"email" validate:"required,email"`
	AdditionalEmail string `json:"additionalEmail" validate:"omitempty,email"`
	RiskLevel       string `json:"riskLevel" validate:"required,oneof=high medium low"`
	PredictionType  string `json:"predictionType" validate:"required"`
	PatientName     string `json:"patientName"`
}

type SendAlertResponse struct {
	Message string `json:"message"`
}

type AlertRecord struct {
	ID             uint      `json:"id"`
	PatientName    string    `json:"patient_name"`
	RecipientEmail string    `json:"recipient_email"`
	PredictionType string    `json:"prediction_type"`
	RiskLevel      string    `json:"risk_level"`
	SentAt         time.Time `json:"sent_at"`
}

// DoctorDashboardResponse combines the alerts addressed to the doctor with
// recent prediction activity across all patients.
type DoctorDashboardResponse struct {
	Alerts         []AlertRecord               `json:"alerts"`
	AllPredictions []entity.PredictionActivity `json:"allPredictions"`
}

type RecommendationItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type RecommendationsResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
}
