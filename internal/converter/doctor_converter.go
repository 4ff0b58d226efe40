package converter

import (
	"health-predict-backend/internal/delivery/dto"
	"health-predict-backend/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Specialization:  doctor.Specialization,
		Phone:           doctor.Phone,
		Email:           doctor.Email,
		Hospital:        doctor.Hospital,
		Availability:    doctor.Availability,
		ExperienceYears: doctor.ExperienceYears,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		responses = append(responses, *DoctorToResponse(&doctors[i]))
	}
	return responses
}

func DoctorToSummary(doctor *entity.Doctor) *dto.DoctorSummary {
	return &dto.DoctorSummary{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Specialization: doctor.Specialization,
		Hospital:       doctor.Hospital,
	}
}
