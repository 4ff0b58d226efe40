package repository

import (
	"context"

	"health-predict-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type PredictionRepository interface {
	Create(ctx context.Context, prediction *entity.Prediction) error
	// FindByUser returns the user's predictions, newest first, up to limit.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Prediction, error)
	// FindRecentActivity returns the newest predictions across all users
	// joined with the owning patient's name and email, up to limit.
	FindRecentActivity(ctx context.Context, limit int) ([]entity.PredictionActivity, error)
}
