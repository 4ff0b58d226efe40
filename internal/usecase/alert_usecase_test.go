package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"health-predict-backend/internal/delivery/dto"
	"health-predict-backend/internal/domain/entity"
	"health-predict-backend/pkg/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type fakeAlertRepo struct {
	alerts    []entity.EmailAlert
	createErr error
}

func (r *fakeAlertRepo) Create(ctx context.Context, alert *entity.EmailAlert) error {
	if r.createErr != nil {
		return r.createErr
	}
	alert.ID = uint(len(r.alerts) + 1)
	alert.SentAt = time.Now()
	r.alerts = append(r.alerts, *alert)
	return nil
}

func (r *fakeAlertRepo) FindByRecipient(ctx context.Context, email string) ([]entity.EmailAlert, error) {
	var out []entity.EmailAlert
	for i := len(r.alerts) - 1; i >= 0; i-- {
		if r.alerts[i].RecipientEmail == email {
			out = append(out, r.alerts[i])
		}
	}
	return out, nil
}

type fakeRecommendationRepo struct {
	byLevel map[string][]entity.Recommendation
	findErr error
}

func (r *fakeRecommendationRepo) FindByRiskLevel(ctx context.Context, riskLevel string) ([]entity.Recommendation, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.byLevel[riskLevel], nil
}

func (r *fakeRecommendationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	for _, recs := range r.byLevel {
		n += int64(len(recs))
	}
	return n, nil
}

func (r *fakeRecommendationRepo) CreateBatch(ctx context.Context, recommendations []entity.Recommendation) error {
	if r.byLevel == nil {
		r.byLevel = make(map[string][]entity.Recommendation)
	}
	for _, rec := range recommendations {
		r.byLevel[rec.RiskLevel] = append(r.byLevel[rec.RiskLevel], rec)
	}
	return nil
}

type fakeMailer struct {
	sent    [][]string
	subject string
	body    string
	sendErr error
}

func (m *fakeMailer) Send(to []string, subject, htmlBody string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, to)
	m.subject = subject
	m.body = htmlBody
	return nil
}

func seededRecommendations() *fakeRecommendationRepo {
	return &fakeRecommendationRepo{byLevel: map[string][]entity.Recommendation{
		entity.RiskLevelHigh: {
			{RiskLevel: entity.RiskLevelHigh, Title: "Consult a Doctor Immediately", Description: "Schedule an appointment with a specialist.", Priority: "urgent"},
		},
		entity.RiskLevelMedium: {
			{RiskLevel: entity.RiskLevelMedium, Title: "Schedule a Check-up", Description: "Book a routine health check-up.", Priority: "moderate"},
		},
		entity.RiskLevelLow: {
			{RiskLevel: entity.RiskLevelLow, Title: "Maintain Healthy Habits", Description: "Keep up your current lifestyle.", Priority: "low"},
		},
	}}
}

func newAlertFixture(t *testing.T, alertRepo *fakeAlertRepo, recRepo *fakeRecommendationRepo, mailer *fakeMailer) AlertUsecase {
	t.Helper()
	collector := metrics.NewCollector(prometheus.NewRegistry())
	return NewAlertUsecase(testLogger(), alertRepo, recRepo, mailer, collector, 5*time.Second)
}

func TestSendAlert(t *testing.T) {
	alertRepo := &fakeAlertRepo{}
	mailer := &fakeMailer{}
	uc := newAlertFixture(t, alertRepo, seededRecommendations(), mailer)
	userID := uuid.New()

	err := uc.SendAlert(context.Background(), &userID, &dto.SendAlertRequest{
		Email:          "alice@example.com",
		RiskLevel:      entity.RiskLevelHigh,
		PredictionType: entity.PredictionTypeCardiovascular,
		PatientName:    "Alice Smith",
	})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	require.Equal(t, []string{"alice@example.com"}, mailer.sent[0])
	require.Contains(t, mailer.subject, "HIGH Risk")
	require.Contains(t, mailer.body, "Consult a Doctor Immediately")

	require.Len(t, alertRepo.alerts, 1)
	require.Equal(t, "Alice Smith", alertRepo.alerts[0].PatientName)
	require.Equal(t, entity.RiskLevelHigh, alertRepo.alerts[0].RiskLevel)
	require.Equal(t, &userID, alertRepo.alerts[0].UserID)
}

func TestSendAlertAdditionalRecipient(t *testing.T) {
	mailer := &fakeMailer{}
	uc := newAlertFixture(t, &fakeAlertRepo{}, seededRecommendations(), mailer)

	err := uc.SendAlert(context.Background(), nil, &dto.SendAlertRequest{
		Email:           "alice@example.com",
		AdditionalEmail: "doctor@hospital.com",
		RiskLevel:       entity.RiskLevelMedium,
		PredictionType:  entity.PredictionTypeDiabetic,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"alice@example.com", "doctor@hospital.com"}, mailer.sent[0])
}

func TestSendAlertAnonymousPatient(t *testing.T) {
	alertRepo := &fakeAlertRepo{}
	uc := newAlertFixture(t, alertRepo, seededRecommendations(), &fakeMailer{})

	err := uc.SendAlert(context.Background(), nil, &dto.SendAlertRequest{
		Email:          "alice@example.com",
		RiskLevel:      entity.RiskLevelLow,
		PredictionType: entity.PredictionTypeCardiovascular,
	})
	require.NoError(t, err)
	require.Equal(t, "Anonymous", alertRepo.alerts[0].PatientName)
	require.Nil(t, alertRepo.alerts[0].UserID)
}

func TestSendAlertMailFailure(t *testing.T) {
	alertRepo := &fakeAlertRepo{}
	mailer := &fakeMailer{sendErr: errors.New("smtp: connection refused")}
	uc := newAlertFixture(t, alertRepo, seededRecommendations(), mailer)

	err := uc.SendAlert(context.Background(), nil, &dto.SendAlertRequest{
		Email:          "alice@example.com",
		RiskLevel:      entity.RiskLevelHigh,
		PredictionType: entity.PredictionTypeCardiovascular,
	})
	require.ErrorIs(t, err, ErrMailDeliveryFailed)
	require.Empty(t, alertRepo.alerts)
}

func TestSendAlertSurvivesFailedLogRow(t *testing.T) {
	alertRepo := &fakeAlertRepo{createErr: errors.New("connection refused")}
	mailer := &fakeMailer{}
	uc := newAlertFixture(t, alertRepo, seededRecommendations(), mailer)

	// The email went out, so a failed log write must not fail the request.
	err := uc.SendAlert(context.Background(), nil, &dto.SendAlertRequest{
		Email:          "alice@example.com",
		RiskLevel:      entity.RiskLevelHigh,
		PredictionType: entity.PredictionTypeCardiovascular,
	})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
}

func TestGetRecommendations(t *testing.T) {
	uc := newAlertFixture(t, &fakeAlertRepo{}, seededRecommendations(), &fakeMailer{})

	resp, err := uc.GetRecommendations(context.Background(), entity.RiskLevelHigh)
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	require.Equal(t, "Consult a Doctor Immediately", resp.Recommendations[0].Title)
}

func TestGetRecommendationsUnknownLevelFallsBack(t *testing.T) {
	uc := newAlertFixture(t, &fakeAlertRepo{}, seededRecommendations(), &fakeMailer{})

	resp, err := uc.GetRecommendations(context.Background(), "catastrophic")
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	require.Equal(t, "Schedule a Check-up", resp.Recommendations[0].Title)
}
