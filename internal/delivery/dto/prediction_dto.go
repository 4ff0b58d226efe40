package dto

import (
	"encoding/json"
	"time"
)

// CardiovascularRequest carries the 13 features the cardiovascular model
// expects. Values are forwarded to the service untouched.
type CardiovascularRequest struct {
	Age      float64 `json:"age"`
	Sex      float64 `json:"sex"`
	Cp       float64 `json:"cp"`
	Trestbps float64 `json:"trestbps"`
	Chol     float64 `json:"chol"`
	Fbs      float64 `json:"fbs"`
	Restecg  float64 `json:"restecg"`
	Thalach  float64 `json:"thalach"`
	Exang    float64 `json:"exang"`
	Oldpeak  float64 `json:"oldpeak"`
	Slope    float64 `json:"slope"`
	Ca       float64 `json:"ca"`
	Thal     float64 `json:"thal"`
}

type PredictionResponse struct {
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type PredictionRecord struct {
	ID             uint            `json:"id"`
	PredictionType string          `json:"prediction_type"`
	InputData      json.RawMessage `json:"input_data"`
	Result         json.RawMessage `json:"result"`
	CreatedAt      time.Time       `json:"created_at"`
}

type PredictionHistoryResponse struct {
	Predictions []PredictionRecord `json:"predictions"`
}

type SavePredictionRequest struct {
	PredictionType string          `json:"prediction_type" validate:"required"`
	InputData      json.RawMessage `json:"input_data"`
	Result         json.RawMessage `json:"result" validate:"required"`
}

type SavePredictionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
