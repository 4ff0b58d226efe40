package usecase

import (
	"context"
	"errors"
	"time"

	"health-predict-backend/internal/converter"
	"health-predict-backend/internal/delivery/dto"
	"health-predict-backend/internal/domain/entity"
	"health-predict-backend/internal/domain/repository"
	"health-predict-backend/internal/infrastructure/mail"
	"health-predict-backend/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrMailDeliveryFailed = errors.New("failed to send email")

type AlertUsecase interface {
	// SendAlert renders and sends the risk alert email, then logs it.
	// The log write is best-effort; the email result decides success.
	SendAlert(ctx context.Context, userID *uuid.UUID, req *dto.SendAlertRequest) error
	// GetRecommendations returns advisories for a risk level, falling back
	// to the medium set for unknown levels.
	GetRecommendations(ctx context.Context, riskLevel string) (*dto.RecommendationsResponse, error)
}

type alertUsecase struct {
	log                *logrus.Logger
	alertRepo          repository.AlertRepository
	recommendationRepo repository.RecommendationRepository
	mailer             mail.Mailer
	collector          *metrics.Collector
	storeTimeout       time.Duration
}

func NewAlertUsecase(
	log *logrus.Logger,
	alertRepo repository.AlertRepository,
	recommendationRepo repository.RecommendationRepository,
	mailer mail.Mailer,
	collector *metrics.Collector,
	storeTimeout time.Duration,
) AlertUsecase {
	return &alertUsecase{
		log:                log,
		alertRepo:          alertRepo,
		recommendationRepo: recommendationRepo,
		mailer:             mailer,
		collector:          collector,
		storeTimeout:       storeTimeout,
	}
}

func (u *alertUsecase) SendAlert(ctx context.Context, userID *uuid.UUID, req *dto.SendAlertRequest) error {
	recommendations := u.lookupRecommendations(ctx, req.RiskLevel)

	html, err := mail.RenderAlertHTML(req.PredictionType, req.RiskLevel, recommendations)
	if err != nil {
		u.log.Warnf("Failed to render alert email: %+v", err)
		return err
	}

	recipients := []string{req.Email}
	if req.AdditionalEmail != "" {
		recipients = append(recipients, req.AdditionalEmail)
	}

	if err := u.mailer.Send(recipients, mail.AlertSubject(req.RiskLevel), html); err != nil {
		u.log.Warnf("Failed to send alert email: %+v", err)
		return ErrMailDeliveryFailed
	}
	u.collector.RecordAlertSent()

	patientName := req.PatientName
	if patientName == "" {
		patientName = "Anonymous"
	}

	saveCtx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()
	alert := &entity.EmailAlert{
		UserID:         userID,
		PatientName:    patientName,
		RecipientEmail: req.Email,
		PredictionType: req.PredictionType,
		RiskLevel:      req.RiskLevel,
	}
	if err := u.alertRepo.Create(saveCtx, alert); err != nil {
		// The email went out; a failed log row must not fail the request.
		u.log.Warnf("Failed to log email alert: %+v", err)
	}

	return nil
}

func (u *alertUsecase) GetRecommendations(ctx context.Context, riskLevel string) (*dto.RecommendationsResponse, error) {
	recommendations := u.lookupRecommendations(ctx, riskLevel)
	return &dto.RecommendationsResponse{
		Recommendations: converter.RecommendationsToItems(recommendations),
	}, nil
}

// lookupRecommendations fetches advisories for the risk level, falling back
// to the medium set when the level is unknown or the store misbehaves.
func (u *alertUsecase) lookupRecommendations(ctx context.Context, riskLevel string) []entity.Recommendation {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	recommendations, err := u.recommendationRepo.FindByRiskLevel(ctx, riskLevel)
	if err != nil {
		u.log.Warnf("Failed to fetch recommendations: %+v", err)
		recommendations = nil
	}
	if len(recommendations) == 0 && riskLevel != entity.RiskLevelMedium {
		fallback, err := u.recommendationRepo.FindByRiskLevel(ctx, entity.RiskLevelMedium)
		if err != nil {
			u.log.Warnf("Failed to fetch fallback recommendations: %+v", err)
			return nil
		}
		recommendations = fallback
	}
	return recommendations
}
