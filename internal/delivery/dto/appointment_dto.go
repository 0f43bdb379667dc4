package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	VeterinaryID    uuid.UUID `json:"veterinary_id" validate:"required"`
	PetID           uuid.UUID `json:"pet_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"` // Format: RFC 3339
	Reason          string    `json:"reason" validate:"required,min=3,max=500"`
	CustomerNotes   string    `json:"customer_notes" validate:"omitempty,max=1000"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type CompleteAppointmentRequest struct {
	VeterinaryNotes string `json:"veterinary_notes" validate:"omitempty,max=1000"`
	Diagnosis       string `json:"diagnosis" validate:"required,min=3,max=1000"`
	Treatment       string `json:"treatment" validate:"omitempty,max=1000"`
	Medications     string `json:"medications" validate:"omitempty,max=500"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                 uuid.UUID    `json:"id"`
	VeterinaryID       uuid.UUID    `json:"veterinary_id"`
	VeterinaryName     string       `json:"veterinary_name,omitempty"`
	CustomerID         uuid.UUID    `json:"customer_id"`
	CustomerName       string       `json:"customer_name,omitempty"`
	PetID              uuid.UUID    `json:"pet_id"`
	PetName            string       `json:"pet_name,omitempty"`
	AppointmentDate    time.Time    `json:"appointment_date"`
	Reason             string       `json:"reason"`
	Status             string       `json:"status"`
	CustomerNotes      string       `json:"customer_notes,omitempty"`
	VeterinaryNotes    string       `json:"veterinary_notes,omitempty"`
	Diagnosis          string       `json:"diagnosis,omitempty"`
	Treatment          string       `json:"treatment,omitempty"`
	Medications        string       `json:"medications,omitempty"`
	CancellationReason string       `json:"cancellation_reason,omitempty"`
	CompletedAt        *time.Time   `json:"completed_at,omitempty"`
	CancelledAt        *time.Time   `json:"cancelled_at,omitempty"`
	Pet                *PetResponse `json:"pet,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// SlotConflictResponse describes why a booking was rejected: the requested
// time collides with an existing active appointment.
type SlotConflictResponse struct {
	RequestedAt   time.Time `json:"requested_at"`
	ConflictingID uuid.UUID `json:"conflicting_id"`
}
