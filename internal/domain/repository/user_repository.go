package repository

import (
	"context"

	"health-predict-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail matches the stored email exactly (case-sensitive).
	// Returns (nil, nil) when no account exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
