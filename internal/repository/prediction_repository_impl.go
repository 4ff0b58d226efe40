package repository

import (
	"context"

	"health-predict-backend/internal/domain/entity"
	domainRepo "health-predict-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type predictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) domainRepo.PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Create(ctx context.Context, prediction *entity.Prediction) error {
	return r.db.WithContext(ctx).Create(prediction).Error
}

func (r *predictionRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Prediction, error) {
	var predictions []entity.Prediction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *predictionRepository) FindRecentActivity(ctx context.Context, limit int) ([]entity.PredictionActivity, error) {
	var activity []entity.PredictionActivity
	err := r.db.WithContext(ctx).
		Model(&entity.Prediction{}).
		Select("predictions.id, predictions.prediction_type, predictions.result, predictions.created_at, users.full_name AS patient_name, users.email AS patient_email").
		Joins("JOIN users ON predictions.user_id = users.id").
		Order("predictions.created_at DESC").
		Limit(limit).
		Scan(&activity).Error
	if err != nil {
		return nil, err
	}
	return activity, nil
}
