package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered patient account. Accounts are never deleted by
// the auth core; the only mutation after registration would be a password
// reset, which this service does not expose.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Predictions []Prediction `gorm:"foreignKey:UserID" json:"predictions,omitempty"`
}

func (User) TableName() string {
	return "users"
}
