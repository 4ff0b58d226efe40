package repository

import (
	"context"

	"health-predict-backend/internal/domain/entity"
	domainRepo "health-predict-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) domainRepo.AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *entity.EmailAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) FindByRecipient(ctx context.Context, email string) ([]entity.EmailAlert, error) {
	var alerts []entity.EmailAlert
	err := r.db.WithContext(ctx).
		Where("recipient_email = ?", email).
		Order("sent_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}
