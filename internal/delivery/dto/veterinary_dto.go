package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type JoinClinicRequest struct {
	VeterinaryID uuid.UUID `json:"veterinary_id" validate:"required"`
}

// Response DTOs

type VeterinaryProfileResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	FullName      string    `json:"full_name,omitempty"`
	ClinicName    string    `json:"clinic_name"`
	LicenseNumber string    `json:"license_number"`
	Specialty     string    `json:"specialty,omitempty"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	Address       string    `json:"address,omitempty"`
}

type VeterinaryListResponse struct {
	Veterinaries []VeterinaryProfileResponse `json:"veterinaries"`
	Total        int                         `json:"total"`
}

type CustomerProfileResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	FullName     string     `json:"full_name,omitempty"`
	VeterinaryID *uuid.UUID `json:"veterinary_id,omitempty"`
	PhoneNumber  string     `json:"phone_number,omitempty"`
	Address      string     `json:"address,omitempty"`
	JoinedAt     time.Time  `json:"joined_at"`
}

type CustomerListResponse struct {
	Customers []CustomerProfileResponse `json:"customers"`
	Total     int                       `json:"total"`
}
