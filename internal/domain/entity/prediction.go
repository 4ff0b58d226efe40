package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prediction type values accepted by the proxy endpoints.
const (
	PredictionTypeCardiovascular = "cardiovascular"
	PredictionTypeDiabetic       = "diabetic"
)

// Prediction is one completed call to an external ML service. Input and
// result are stored as raw JSON text, the service never interprets them.
type Prediction struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PredictionType string    `gorm:"type:varchar(50);not null" json:"prediction_type"`
	InputData      string    `gorm:"type:text" json:"input_data"`
	Result         string    `gorm:"type:text" json:"result"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Prediction) TableName() string {
	return "predictions"
}

// PredictionActivity is the read model behind the doctor dashboard's
// "all patient activity" view: recent predictions joined with the owning
// patient's name and email.
type PredictionActivity struct {
	ID             uint      `json:"id"`
	PredictionType string    `json:"prediction_type"`
	Result         string    `json:"result"`
	CreatedAt      time.Time `json:"created_at"`
	PatientName    string    `json:"patient_name"`
	PatientEmail   string    `json:"patient_email"`
}
