package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePetRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=100"`
	Species         string   `json:"species" validate:"required,min=2,max=50"`
	Breed           string   `json:"breed" validate:"omitempty,max=100"`
	Gender          string   `json:"gender" validate:"required,oneof=M F"`
	DateOfBirth     string   `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	WeightKg        *float64 `json:"weight_kg" validate:"omitempty,gte=0"`
	Color           string   `json:"color" validate:"omitempty,max=50"`
	MicrochipNumber string   `json:"microchip_number" validate:"omitempty,max=50"`
	Allergies       string   `json:"allergies" validate:"omitempty"`
	Notes           string   `json:"notes" validate:"omitempty"`
}

type UpdatePetRequest struct {
	Name            string   `json:"name" validate:"omitempty,min=1,max=100"`
	Breed           string   `json:"breed" validate:"omitempty,max=100"`
	WeightKg        *float64 `json:"weight_kg" validate:"omitempty,gte=0"`
	Color           string   `json:"color" validate:"omitempty,max=50"`
	MicrochipNumber string   `json:"microchip_number" validate:"omitempty,max=50"`
	Allergies       string   `json:"allergies" validate:"omitempty"`
	Notes           string   `json:"notes" validate:"omitempty"`
}

// Response DTOs

type PetResponse struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	OwnerName       string    `json:"owner_name,omitempty"`
	Name            string    `json:"name"`
	Species         string    `json:"species"`
	Breed           string    `json:"breed,omitempty"`
	Gender          string    `json:"gender"`
	DateOfBirth     string    `json:"date_of_birth"`
	AgeYears        int       `json:"age_years"`
	WeightKg        *float64  `json:"weight_kg,omitempty"`
	Color           string    `json:"color,omitempty"`
	MicrochipNumber string    `json:"microchip_number,omitempty"`
	Allergies       string    `json:"allergies,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}
