package entity

// Risk level values used by recommendations and alerts.
const (
	RiskLevelHigh   = "high"
	RiskLevelMedium = "medium"
	RiskLevelLow    = "low"
)

// Recommendation is a static advisory shown to patients by risk level and
// included in alert emails. Seeded at startup.
type Recommendation struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	RiskLevel   string `gorm:"type:varchar(20);not null;index" json:"risk_level"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Priority    string `gorm:"type:varchar(20);not null" json:"priority"`
	Category    string `gorm:"type:varchar(100)" json:"category,omitempty"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
