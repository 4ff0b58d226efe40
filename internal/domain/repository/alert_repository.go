package repository

import (
	"context"

	"health-predict-backend/internal/domain/entity"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *entity.EmailAlert) error
	// FindByRecipient returns alerts addressed to the given email, newest first.
	FindByRecipient(ctx context.Context, email string) ([]entity.EmailAlert, error)
}
