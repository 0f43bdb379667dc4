package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusRequested  AppointmentStatus = "REQUESTED"
	StatusConfirmed  AppointmentStatus = "CONFIRMED"
	StatusInProgress AppointmentStatus = "IN_PROGRESS"
	StatusCompleted  AppointmentStatus = "COMPLETED"
	StatusCancelled  AppointmentStatus = "CANCELLED"
	StatusNoShow     AppointmentStatus = "NO_SHOW"
)

var (
	ErrInvalidTransition   = errors.New("invalid appointment status transition")
	ErrNotAppointmentVet   = errors.New("appointment belongs to another veterinary")
	ErrNotAppointmentParty = errors.New("user is not a participant of this appointment")
)

// Terminal reports whether no further transition is permitted from s.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// Occupies reports whether an appointment in this status blocks its time slot.
// Cancelled and no-show appointments free the slot; every other status keeps
// it occupied, including a completed appointment that still lies in the future.
func (s AppointmentStatus) Occupies() bool {
	return s != StatusCancelled && s != StatusNoShow
}

// Appointment represents one booking between a customer's pet and a veterinary.
// Rows are never deleted; terminal states preserve the full history.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VeterinaryID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"veterinary_id"`
	CustomerID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	PetID           uuid.UUID         `gorm:"type:uuid;not null;index" json:"pet_id"`
	AppointmentDate time.Time         `gorm:"type:timestamptz;not null;index" json:"appointment_date"`
	Reason          string            `gorm:"type:varchar(500);not null" json:"reason"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'REQUESTED';index" json:"status"`
	CustomerNotes   string            `gorm:"type:varchar(1000)" json:"customer_notes,omitempty"`

	// Clinical outcome, populated on completion only
	VeterinaryNotes string `gorm:"type:varchar(1000)" json:"veterinary_notes,omitempty"`
	Diagnosis       string `gorm:"type:varchar(1000)" json:"diagnosis,omitempty"`
	Treatment       string `gorm:"type:varchar(1000)" json:"treatment,omitempty"`
	Medications     string `gorm:"type:varchar(500)" json:"medications,omitempty"`

	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CompletedAt        *time.Time `gorm:"type:timestamptz" json:"completed_at,omitempty"`
	CancelledAt        *time.Time `gorm:"type:timestamptz" json:"cancelled_at,omitempty"`
	CancellationReason string     `gorm:"type:varchar(500)" json:"cancellation_reason,omitempty"`

	// Relationships
	Veterinary VeterinaryProfile `gorm:"foreignKey:VeterinaryID" json:"veterinary,omitempty"`
	Customer   CustomerProfile   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Pet        Pet               `gorm:"foreignKey:PetID" json:"pet,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// CompletionOutcome carries the clinical fields recorded when a veterinary
// completes an appointment.
type CompletionOutcome struct {
	VeterinaryNotes string
	Diagnosis       string
	Treatment       string
	Medications     string
}

// Confirm moves a REQUESTED appointment to CONFIRMED. Only the appointment's
// veterinary may confirm.
func (a *Appointment) Confirm(vetID uuid.UUID, now time.Time) error {
	if a.VeterinaryID != vetID {
		return ErrNotAppointmentVet
	}
	if a.Status != StatusRequested {
		return ErrInvalidTransition
	}
	a.Status = StatusConfirmed
	a.UpdatedAt = now
	return nil
}

// Cancel moves a REQUESTED or CONFIRMED appointment to CANCELLED. The actor
// must be the appointment's veterinary or its customer. The cancellation
// timestamp and reason are written exactly once; a second cancel attempt
// fails instead of overwriting them.
func (a *Appointment) Cancel(actorID uuid.UUID, reason string, now time.Time) error {
	if a.VeterinaryID != actorID && a.CustomerID != actorID {
		return ErrNotAppointmentParty
	}
	if a.Status != StatusRequested && a.Status != StatusConfirmed {
		return ErrInvalidTransition
	}
	a.Status = StatusCancelled
	a.CancellationReason = reason
	a.CancelledAt = &now
	a.UpdatedAt = now
	return nil
}

// Complete moves a CONFIRMED appointment to COMPLETED and records the
// clinical outcome. Only the appointment's veterinary may complete, and only
// from CONFIRMED; the completion timestamp is written exactly once.
func (a *Appointment) Complete(vetID uuid.UUID, outcome CompletionOutcome, now time.Time) error {
	if a.VeterinaryID != vetID {
		return ErrNotAppointmentVet
	}
	if a.Status != StatusConfirmed {
		return ErrInvalidTransition
	}
	a.Status = StatusCompleted
	a.VeterinaryNotes = outcome.VeterinaryNotes
	a.Diagnosis = outcome.Diagnosis
	a.Treatment = outcome.Treatment
	a.Medications = outcome.Medications
	a.CompletedAt = &now
	a.UpdatedAt = now
	return nil
}

// IsPast reports whether the appointment date has already passed.
func (a *Appointment) IsPast(now time.Time) bool {
	return a.AppointmentDate.Before(now)
}
