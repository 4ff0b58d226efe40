package usecase

import (
	"context"
	"encoding/json"
	"time"

	"health-predict-backend/internal/converter"
	"health-predict-backend/internal/delivery/dto"
	"health-predict-backend/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	doctorCacheKeyPrefix = "doctors:"
	doctorCacheTTL       = 60 * time.Second
	activityLimit        = 50
)

type DoctorUsecase interface {
	// ListDoctors returns the directory, optionally filtered by exact
	// specialization.
	ListDoctors(ctx context.Context, specialization string) (*dto.DoctorListResponse, error)
	// Dashboard returns the alerts addressed to the doctor plus recent
	// prediction activity across all patients.
	Dashboard(ctx context.Context, doctorEmail string) (*dto.DoctorDashboardResponse, error)
}

type doctorUsecase struct {
	log            *logrus.Logger
	doctorRepo     repository.DoctorRepository
	alertRepo      repository.AlertRepository
	predictionRepo repository.PredictionRepository
	redisClient    *redis.Client
	storeTimeout   time.Duration
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	alertRepo repository.AlertRepository,
	predictionRepo repository.PredictionRepository,
	redisClient *redis.Client,
	storeTimeout time.Duration,
) DoctorUsecase {
	return &doctorUsecase{
		log:            log,
		doctorRepo:     doctorRepo,
		alertRepo:      alertRepo,
		predictionRepo: predictionRepo,
		redisClient:    redisClient,
		storeTimeout:   storeTimeout,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, specialization string) (*dto.DoctorListResponse, error) {
	cacheKey := doctorCacheKeyPrefix + "all"
	if specialization != "" {
		cacheKey = doctorCacheKeyPrefix + "spec:" + specialization
	}

	// The directory changes only at seed time, so a short cache absorbs
	// most reads. Cache failures degrade to the database silently.
	if u.redisClient != nil {
		if cached, err := u.redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
			var response dto.DoctorListResponse
			if err := json.Unmarshal(cached, &response); err == nil {
				return &response, nil
			}
		}
	}

	dbCtx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	doctors, err := u.doctorRepo.FindAll(dbCtx, specialization)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, ErrStoreUnavailable
	}

	responses := converter.DoctorsToResponses(doctors)
	response := &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}

	if u.redisClient != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := u.redisClient.Set(ctx, cacheKey, payload, doctorCacheTTL).Err(); err != nil {
				u.log.Warnf("Failed to cache doctor list: %+v", err)
			}
		}
	}

	return response, nil
}

func (u *doctorUsecase) Dashboard(ctx context.Context, doctorEmail string) (*dto.DoctorDashboardResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	alerts, err := u.alertRepo.FindByRecipient(ctx, doctorEmail)
	if err != nil {
		u.log.Warnf("Failed to fetch alerts for doctor: %+v", err)
		return nil, ErrStoreUnavailable
	}

	activity, err := u.predictionRepo.FindRecentActivity(ctx, activityLimit)
	if err != nil {
		u.log.Warnf("Failed to fetch prediction activity: %+v", err)
		return nil, ErrStoreUnavailable
	}

	return &dto.DoctorDashboardResponse{
		Alerts:         converter.AlertsToRecords(alerts),
		AllPredictions: activity,
	}, nil
}
