package repository

import (
	"time"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)

	// FindByVeterinaryAndDateBetween returns appointments whose date falls in
	// [start, end), ordered chronologically. All statuses are included; the
	// caller filters by occupancy.
	FindByVeterinaryAndDateBetween(db *gorm.DB, veterinaryID uuid.UUID, start, end time.Time) ([]entity.Appointment, error)

	// FindByVeterinaryAndDateWithin is the closed-range variant [start, end],
	// used by the booking conflict check so both window edges collide.
	FindByVeterinaryAndDateWithin(db *gorm.DB, veterinaryID uuid.UUID, start, end time.Time) ([]entity.Appointment, error)

	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error)
	FindByVeterinaryID(db *gorm.DB, veterinaryID uuid.UUID) ([]entity.Appointment, error)
	FindByVeterinaryAndStatus(db *gorm.DB, veterinaryID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error)
	FindUpcomingByCustomer(db *gorm.DB, customerID uuid.UUID, after time.Time) ([]entity.Appointment, error)

	// Conditional status transitions. Each updates the row only when its
	// current status matches the expected source state and reports the number
	// of affected rows; 0 means the transition lost a race or was illegal.
	Confirm(db *gorm.DB, id uuid.UUID, now time.Time) (int64, error)
	Cancel(db *gorm.DB, id uuid.UUID, reason string, now time.Time) (int64, error)
	Complete(db *gorm.DB, id uuid.UUID, outcome entity.CompletionOutcome, now time.Time) (int64, error)
}
