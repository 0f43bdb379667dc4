package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicalRecordRequest struct {
	PetID      uuid.UUID `json:"pet_id" validate:"required"`
	RecordType string    `json:"record_type" validate:"required,oneof=ANALYSIS VACCINE SURGERY PRESCRIPTION"`
	VisitDate  string    `json:"visit_date" validate:"required"` // Format: YYYY-MM-DD

	Diagnosis   string `json:"diagnosis" validate:"omitempty,max=1000"`
	Treatment   string `json:"treatment" validate:"omitempty,max=1000"`
	Medications string `json:"medications" validate:"omitempty,max=500"`
	Notes       string `json:"notes" validate:"omitempty"`

	// Analysis fields
	AnalysisType string   `json:"analysis_type" validate:"omitempty,max=50"`
	Temperature  *float64 `json:"temperature" validate:"omitempty,gte=0"`
	HeartRate    *int     `json:"heart_rate" validate:"omitempty,gte=0"`
	WeightKg     *float64 `json:"weight_kg" validate:"omitempty,gte=0"`

	// Vaccine fields
	VaccineName         string `json:"vaccine_name" validate:"omitempty,max=100"`
	Manufacturer        string `json:"manufacturer" validate:"omitempty,max=100"`
	BatchNumber         string `json:"batch_number" validate:"omitempty,max=50"`
	NextVaccinationDate string `json:"next_vaccination_date" validate:"omitempty"` // Format: YYYY-MM-DD

	// Surgery fields
	SurgeryType    string `json:"surgery_type" validate:"omitempty,max=100"`
	AnesthesiaType string `json:"anesthesia_type" validate:"omitempty,max=100"`
	DurationMin    *int   `json:"duration_min" validate:"omitempty,min=1"`

	Cost     decimal.Decimal `json:"cost" validate:"omitempty"`
	Currency string          `json:"currency" validate:"omitempty,len=3"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID            uuid.UUID  `json:"id"`
	PetID         uuid.UUID  `json:"pet_id"`
	PetName       string     `json:"pet_name,omitempty"`
	VeterinaryID  uuid.UUID  `json:"veterinary_id"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	RecordType    string     `json:"record_type"`
	VisitDate     string     `json:"visit_date"`

	Diagnosis   string `json:"diagnosis,omitempty"`
	Treatment   string `json:"treatment,omitempty"`
	Medications string `json:"medications,omitempty"`
	Notes       string `json:"notes,omitempty"`

	AnalysisType string   `json:"analysis_type,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	HeartRate    *int     `json:"heart_rate,omitempty"`
	WeightKg     *float64 `json:"weight_kg,omitempty"`

	VaccineName         string `json:"vaccine_name,omitempty"`
	Manufacturer        string `json:"manufacturer,omitempty"`
	BatchNumber         string `json:"batch_number,omitempty"`
	NextVaccinationDate string `json:"next_vaccination_date,omitempty"`

	SurgeryType    string `json:"surgery_type,omitempty"`
	AnesthesiaType string `json:"anesthesia_type,omitempty"`
	DurationMin    *int   `json:"duration_min,omitempty"`

	Cost     decimal.Decimal `json:"cost"`
	Currency string          `json:"currency"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}

type AnalysisEvaluationResponse struct {
	RecordID       uuid.UUID `json:"record_id"`
	AnalysisType   string    `json:"analysis_type"`
	Abnormal       bool      `json:"abnormal"`
	Findings       []string  `json:"findings,omitempty"`
	Recommendation string    `json:"recommendation"`
}
