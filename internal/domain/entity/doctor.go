package entity

import "time"

// Doctor represents a directory entry a patient can consult. Doctors are
// seeded at startup and authenticated against, never registered through the
// API. The email column is optional and not guaranteed unique.
//
// The lowest-ID row is the "default doctor" used by the demo login fallback;
// the auto-increment primary key makes that choice deterministic.
type Doctor struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialization  string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Phone           string    `gorm:"type:varchar(50);not null" json:"phone"`
	Email           string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Password        string    `gorm:"type:text;not null" json:"-"`
	Hospital        string    `gorm:"type:varchar(255)" json:"hospital,omitempty"`
	Availability    string    `gorm:"type:varchar(100)" json:"availability,omitempty"`
	ExperienceYears int       `gorm:"not null;default:0" json:"experience_years"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
