package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterCustomerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Address     string `json:"address" validate:"omitempty,max=255"`
}

type RegisterVeterinaryRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	FullName      string `json:"full_name" validate:"required,min=2"`
	ClinicName    string `json:"clinic_name" validate:"required,min=2"`
	LicenseNumber string `json:"license_number" validate:"required"`
	Specialty     string `json:"specialty" validate:"omitempty,max=100"`
	PhoneNumber   string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Address       string `json:"address" validate:"omitempty,max=255"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID                uuid.UUID                  `json:"id"`
	Email             string                     `json:"email"`
	FullName          string                     `json:"full_name"`
	Role              string                     `json:"role"`
	VeterinaryProfile *VeterinaryProfileResponse `json:"veterinary_profile,omitempty"`
	CustomerProfile   *CustomerProfileResponse   `json:"customer_profile,omitempty"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         time.Time                  `json:"updated_at"`
}
