package converter

import (
	"encoding/json"

	"health-predict-backend/internal/delivery/dto"
	"health-predict-backend/internal/domain/entity"
)

func PredictionToRecord(p *entity.Prediction) dto.PredictionRecord {
	return dto.PredictionRecord{
		ID:             p.ID,
		PredictionType: p.PredictionType,
		InputData:      json.RawMessage(p.InputData),
		Result:         json.RawMessage(p.Result),
		CreatedAt:      p.CreatedAt,
	}
}

func PredictionsToRecords(predictions []entity.Prediction) []dto.PredictionRecord {
	records := make([]dto.PredictionRecord, 0, len(predictions))
	for i := range predictions {
		records = append(records, PredictionToRecord(&predictions[i]))
	}
	return records
}
