package repository

import (
	"context"

	"health-predict-backend/internal/domain/entity"
)

type RecommendationRepository interface {
	FindByRiskLevel(ctx context.Context, riskLevel string) ([]entity.Recommendation, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, recommendations []entity.Recommendation) error
}
