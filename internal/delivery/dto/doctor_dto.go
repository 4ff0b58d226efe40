package dto

type DoctorResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Specialization  string `json:"specialization"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	Hospital        string `json:"hospital,omitempty"`
	Availability    string `json:"availability,omitempty"`
	ExperienceYears int    `json:"experience_years"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
