package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailAlert records one sent risk alert. Rows addressed to a doctor's email
// feed the doctor dashboard.
type EmailAlert struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	PatientName    string     `gorm:"type:varchar(255)" json:"patient_name"`
	RecipientEmail string     `gorm:"type:varchar(255);not null;index" json:"recipient_email"`
	PredictionType string     `gorm:"type:varchar(50);not null" json:"prediction_type"`
	RiskLevel      string     `gorm:"type:varchar(20);not null" json:"risk_level"`
	SentAt         time.Time  `gorm:"autoCreateTime" json:"sent_at"`
}

func (EmailAlert) TableName() string {
	return "email_alerts"
}
