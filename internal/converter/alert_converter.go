package converter

import (
	"health-predict-backend/internal/delivery/dto"
	"health-predict-backend/internal/domain/entity"
)

func AlertToRecord(a *entity.EmailAlert) dto.AlertRecord {
	return dto.AlertRecord{
		ID:             a.ID,
		PatientName:    a.PatientName,
		RecipientEmail: a.RecipientEmail,
		PredictionType: a.PredictionType,
		RiskLevel:      a.RiskLevel,
		SentAt:         a.SentAt,
	}
}

func AlertsToRecords(alerts []entity.EmailAlert) []dto.AlertRecord {
	records := make([]dto.AlertRecord, 0, len(alerts))
	for i := range alerts {
		records = append(records, AlertToRecord(&alerts[i]))
	}
	return records
}

func RecommendationsToItems(recommendations []entity.Recommendation) []dto.RecommendationItem {
	items := make([]dto.RecommendationItem, 0, len(recommendations))
	for _, r := range recommendations {
		items = append(items, dto.RecommendationItem{
			Title:       r.Title,
			Description: r.Description,
			Priority:    r.Priority,
		})
	}
	return items
}
