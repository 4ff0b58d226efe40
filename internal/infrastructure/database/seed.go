package database

import (
	"context"

	"health-predict-backend/internal/domain/entity"
	"health-predict-backend/internal/domain/repository"
	"health-predict-backend/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// defaultDoctorPassword is the shared password every seeded doctor starts
// with. It doubles as the demo "master password": the doctor login fallback
// verifies unknown emails against the first seeded doctor's hash.
const defaultDoctorPassword = "Doctor@123"

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Doctor{},
		&entity.Prediction{},
		&entity.EmailAlert{},
		&entity.Recommendation{},
	)
}

// SeedDoctors inserts the doctor directory when the table is empty. Insertion
// order matters: the first row becomes the default doctor for the demo login
// fallback.
func SeedDoctors(ctx context.Context, repo repository.DoctorRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := password.Hash(defaultDoctorPassword)
	if err != nil {
		return err
	}

	doctors := []entity.Doctor{
		{
			Name:            "Dr. Devi Shetty",
			Specialization:  "Cardiologist",
			Phone:           "+91-80-27835000",
			Email:           "dr.devi@narayana.health",
			Password:        hashed,
			Hospital:        "Narayana Health City, Bangalore",
			Availability:    "Mon-Thu, 10AM-4PM",
			ExperienceYears: 35,
		},
		{
			Name:            "Dr. C.N. Manjunath",
			Specialization:  "Cardiologist",
			Phone:           "+91-80-22977400",
			Email:           "director@jayadevacardiology.com",
			Password:        hashed,
			Hospital:        "Jayadeva Institute, Bangalore",
			Availability:    "Tue-Fri, 9AM-2PM",
			ExperienceYears: 30,
		},
		{
			Name:            "Dr. Vivek Jawali",
			Specialization:  "Cardiologist",
			Phone:           "+91-80-40134013",
			Email:           "dr.vivek@fortis.com",
			Password:        hashed,
			Hospital:        "Fortis Hospital, Bannerghatta Rd",
			Availability:    "Mon-Sat, 11AM-5PM",
			ExperienceYears: 28,
		},
		{
			Name:            "Dr. Bhujang Shetty",
			Specialization:  "Ophthalmologist",
			Phone:           "+91-80-26620200",
			Email:           "dr.bhujang@narayananethralaya.org",
			Password:        hashed,
			Hospital:        "Narayana Nethralaya, Bangalore",
			Availability:    "Mon-Fri, 9AM-6PM",
			ExperienceYears: 32,
		},
		{
			Name:            "Dr. Rohit Shetty",
			Specialization:  "Ophthalmologist",
			Phone:           "+91-80-66660655",
			Email:           "dr.rohit@narayananethralaya.org",
			Password:        hashed,
			Hospital:        "Narayana Nethralaya, Bangalore",
			Availability:    "Wed-Sat, 10AM-4PM",
			ExperienceYears: 22,
		},
		{
			Name:            "Dr. K. Bhujang Rao",
			Specialization:  "Ophthalmologist",
			Phone:           "+91-80-23330000",
			Email:           "contact@bwlionseye.org",
			Password:        hashed,
			Hospital:        "Minto Eye Hospital, Bangalore",
			Availability:    "Mon-Sat, 8AM-2PM",
			ExperienceYears: 25,
		},
	}

	if err := repo.CreateBatch(ctx, doctors); err != nil {
		return err
	}

	logrus.Infof("Seeded %d doctors", len(doctors))
	return nil
}

// SeedRecommendations inserts the static risk-level advisories when the
// table is empty.
func SeedRecommendations(ctx context.Context, repo repository.RecommendationRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	recommendations := []entity.Recommendation{
		{RiskLevel: entity.RiskLevelHigh, Title: "Immediate Medical Attention", Description: "Consult a specialist within 24-48 hours", Priority: "urgent"},
		{RiskLevel: entity.RiskLevelHigh, Title: "Comprehensive Health Screening", Description: "Schedule detailed tests and examinations", Priority: "urgent"},
		{RiskLevel: entity.RiskLevelHigh, Title: "Daily Monitoring", Description: "Track your symptoms and vital signs daily", Priority: "high"},
		{RiskLevel: entity.RiskLevelHigh, Title: "Lifestyle Changes", Description: "Implement diet and exercise modifications immediately", Priority: "high"},
		{RiskLevel: entity.RiskLevelMedium, Title: "Schedule Check-up", Description: "Book an appointment within 2 weeks", Priority: "moderate"},
		{RiskLevel: entity.RiskLevelMedium, Title: "Preventive Measures", Description: "Start implementing healthy lifestyle changes", Priority: "moderate"},
		{RiskLevel: entity.RiskLevelMedium, Title: "Regular Monitoring", Description: "Keep track of key health indicators", Priority: "moderate"},
		{RiskLevel: entity.RiskLevelMedium, Title: "Dietary Adjustments", Description: "Consult a nutritionist for personalized diet plan", Priority: "moderate"},
		{RiskLevel: entity.RiskLevelLow, Title: "Maintain Healthy Habits", Description: "Continue your current healthy lifestyle", Priority: "low"},
		{RiskLevel: entity.RiskLevelLow, Title: "Annual Check-up", Description: "Schedule routine health screening once a year", Priority: "low"},
		{RiskLevel: entity.RiskLevelLow, Title: "Stay Active", Description: "Regular exercise and balanced nutrition", Priority: "low"},
		{RiskLevel: entity.RiskLevelLow, Title: "Preventive Care", Description: "Stay informed about health and wellness", Priority: "low"},
	}

	if err := repo.CreateBatch(ctx, recommendations); err != nil {
		return err
	}

	logrus.Infof("Seeded %d recommendations", len(recommendations))
	return nil
}
