package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"health-predict-backend/internal/converter"
	"health-predict-backend/internal/delivery/dto"
	"health-predict-backend/internal/domain/entity"
	"health-predict-backend/internal/domain/repository"
	"health-predict-backend/internal/infrastructure/predictor"
	"health-predict-backend/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownPredictionType = errors.New("unknown prediction type")
	ErrPredictionUnavailable = errors.New("prediction service unavailable")
)

const historyLimit = 20

type PredictionUsecase interface {
	Predict(ctx context.Context, userID uuid.UUID, predictionType string, features interface{}) (*dto.PredictionResponse, error)
	History(ctx context.Context, userID uuid.UUID) (*dto.PredictionHistoryResponse, error)
	Save(ctx context.Context, userID uuid.UUID, req *dto.SavePredictionRequest) error
}

type predictionUsecase struct {
	log            *logrus.Logger
	predictionRepo repository.PredictionRepository
	clients        map[string]*predictor.Client
	collector      *metrics.Collector
	storeTimeout   time.Duration
}

func NewPredictionUsecase(
	log *logrus.Logger,
	predictionRepo repository.PredictionRepository,
	cardiovascularClient *predictor.Client,
	diabeticClient *predictor.Client,
	collector *metrics.Collector,
	storeTimeout time.Duration,
) PredictionUsecase {
	return &predictionUsecase{
		log:            log,
		predictionRepo: predictionRepo,
		clients: map[string]*predictor.Client{
			entity.PredictionTypeCardiovascular: cardiovascularClient,
			entity.PredictionTypeDiabetic:       diabeticClient,
		},
		collector:    collector,
		storeTimeout: storeTimeout,
	}
}

func (u *predictionUsecase) Predict(ctx context.Context, userID uuid.UUID, predictionType string, features interface{}) (*dto.PredictionResponse, error) {
	client, ok := u.clients[predictionType]
	if !ok {
		return nil, ErrUnknownPredictionType
	}

	result, err := client.Predict(ctx, features)
	if err != nil {
		u.log.Warnf("Failed to call %s prediction service: %+v", predictionType, err)
		u.collector.RecordPrediction(predictionType, false)
		return nil, ErrPredictionUnavailable
	}
	u.collector.RecordPrediction(predictionType, true)

	// Persist the result best-effort: a failed write is logged but never
	// turns a successful prediction into an error response.
	inputJSON, err := json.Marshal(features)
	if err != nil {
		inputJSON = []byte("{}")
	}

	saveCtx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()
	prediction := &entity.Prediction{
		UserID:         userID,
		PredictionType: predictionType,
		InputData:      string(inputJSON),
		Result:         string(result),
	}
	if err := u.predictionRepo.Create(saveCtx, prediction); err != nil {
		u.log.Warnf("Failed to save prediction: %+v", err)
	}

	return &dto.PredictionResponse{
		Message: predictionMessage(predictionType),
		Result:  result,
	}, nil
}

func (u *predictionUsecase) History(ctx context.Context, userID uuid.UUID) (*dto.PredictionHistoryResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	predictions, err := u.predictionRepo.FindByUser(ctx, userID, historyLimit)
	if err != nil {
		u.log.Warnf("Failed to fetch prediction history: %+v", err)
		return nil, ErrStoreUnavailable
	}

	return &dto.PredictionHistoryResponse{
		Predictions: converter.PredictionsToRecords(predictions),
	}, nil
}

func (u *predictionUsecase) Save(ctx context.Context, userID uuid.UUID, req *dto.SavePredictionRequest) error {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	inputData := req.InputData
	if len(inputData) == 0 {
		inputData = json.RawMessage("{}")
	}

	prediction := &entity.Prediction{
		UserID:         userID,
		PredictionType: req.PredictionType,
		InputData:      string(inputData),
		Result:         string(req.Result),
	}
	if err := u.predictionRepo.Create(ctx, prediction); err != nil {
		u.log.Warnf("Failed to save prediction: %+v", err)
		return ErrStoreUnavailable
	}

	return nil
}

func predictionMessage(predictionType string) string {
	switch predictionType {
	case entity.PredictionTypeCardiovascular:
		return "Cardiovascular prediction completed"
	case entity.PredictionTypeDiabetic:
		return "Diabetic prediction completed"
	default:
		return "Prediction completed"
	}
}
