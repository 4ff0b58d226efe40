package repository

import (
	"context"

	"health-predict-backend/internal/domain/entity"
)

type DoctorRepository interface {
	// FindByEmail matches the stored email exactly. Returns (nil, nil) when
	// no doctor record has that email.
	FindByEmail(ctx context.Context, email string) (*entity.Doctor, error)
	// FindDefault returns the doctor with the lowest ID. This is the
	// deterministic record the demo login fallback authenticates against.
	// Returns (nil, nil) when the table is empty.
	FindDefault(ctx context.Context) (*entity.Doctor, error)
	// FindAll lists doctors, optionally filtered by exact specialization.
	FindAll(ctx context.Context, specialization string) ([]entity.Doctor, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, doctors []entity.Doctor) error
}
