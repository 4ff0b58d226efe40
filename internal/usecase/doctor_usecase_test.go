package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"health-predict-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seededDoctorRepo(t *testing.T) *fakeDoctorRepo {
	t.Helper()
	return &fakeDoctorRepo{doctors: []entity.Doctor{
		{ID: 1, Name: "Dr. Devi Shetty", Specialization: "Cardiologist", Hospital: "Narayana Health", Password: mustHash(t, "Doctor@123")},
		{ID: 2, Name: "Dr. V. Mohan", Specialization: "Diabetologist", Hospital: "Dr. Mohan's Diabetes Centre", Password: mustHash(t, "Doctor@123")},
		{ID: 3, Name: "Dr. Naresh Trehan", Specialization: "Cardiologist", Hospital: "Medanta", Password: mustHash(t, "Doctor@123")},
	}}
}

func TestListDoctors(t *testing.T) {
	uc := NewDoctorUsecase(testLogger(), seededDoctorRepo(t), &fakeAlertRepo{}, &fakePredictionRepo{}, nil, 5*time.Second)

	resp, err := uc.ListDoctors(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)
	require.Len(t, resp.Doctors, 3)
}

func TestListDoctorsBySpecialization(t *testing.T) {
	uc := NewDoctorUsecase(testLogger(), seededDoctorRepo(t), &fakeAlertRepo{}, &fakePredictionRepo{}, nil, 5*time.Second)

	resp, err := uc.ListDoctors(context.Background(), "Cardiologist")
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	for _, d := range resp.Doctors {
		require.Equal(t, "Cardiologist", d.Specialization)
	}
}

func TestListDoctorsStoreFailure(t *testing.T) {
	repo := &fakeDoctorRepo{findErr: errors.New("connection refused")}
	uc := NewDoctorUsecase(testLogger(), repo, &fakeAlertRepo{}, &fakePredictionRepo{}, nil, 5*time.Second)

	_, err := uc.ListDoctors(context.Background(), "")
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestDashboard(t *testing.T) {
	alertRepo := &fakeAlertRepo{}
	predictionRepo := &fakePredictionRepo{}
	uc := NewDoctorUsecase(testLogger(), seededDoctorRepo(t), alertRepo, predictionRepo, nil, 5*time.Second)

	require.NoError(t, alertRepo.Create(context.Background(), &entity.EmailAlert{
		PatientName:    "Alice Smith",
		RecipientEmail: "doctor@hospital.com",
		PredictionType: entity.PredictionTypeCardiovascular,
		RiskLevel:      entity.RiskLevelHigh,
	}))
	require.NoError(t, alertRepo.Create(context.Background(), &entity.EmailAlert{
		PatientName:    "Bob Jones",
		RecipientEmail: "other@hospital.com",
		PredictionType: entity.PredictionTypeDiabetic,
		RiskLevel:      entity.RiskLevelLow,
	}))
	require.NoError(t, predictionRepo.Create(context.Background(), &entity.Prediction{
		UserID:         uuid.New(),
		PredictionType: entity.PredictionTypeCardiovascular,
		Result:         `{"prediction":1}`,
	}))

	resp, err := uc.Dashboard(context.Background(), "doctor@hospital.com")
	require.NoError(t, err)

	// Only alerts addressed to this doctor, but activity across all patients.
	require.Len(t, resp.Alerts, 1)
	require.Equal(t, "Alice Smith", resp.Alerts[0].PatientName)
	require.Len(t, resp.AllPredictions, 1)
}
