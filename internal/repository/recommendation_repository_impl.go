package repository

import (
	"context"

	"health-predict-backend/internal/domain/entity"
	domainRepo "health-predict-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) domainRepo.RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) FindByRiskLevel(ctx context.Context, riskLevel string) ([]entity.Recommendation, error) {
	var recommendations []entity.Recommendation
	err := r.db.WithContext(ctx).
		Where("risk_level = ?", riskLevel).
		Order("id ASC").
		Find(&recommendations).Error
	if err != nil {
		return nil, err
	}
	return recommendations, nil
}

func (r *recommendationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Recommendation{}).Count(&count).Error
	return count, err
}

func (r *recommendationRepository) CreateBatch(ctx context.Context, recommendations []entity.Recommendation) error {
	return r.db.WithContext(ctx).Create(&recommendations).Error
}
