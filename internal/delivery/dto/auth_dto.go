package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// DoctorLoginRequest does not constrain the email format: the demo fallback
// accepts arbitrary identifiers as long as the password matches the default
// doctor's.
type DoctorLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
}

// DoctorSummary is the doctor identity returned on login. It is a subset of
// the directory entry; the password hash never leaves the store.
type DoctorSummary struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	Hospital       string `json:"hospital"`
}

type DoctorAuthResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	Doctor  *DoctorSummary `json:"doctor"`
}
