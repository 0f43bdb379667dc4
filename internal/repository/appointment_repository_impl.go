package repository

import (
	"errors"
	"time"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Pet").
		Preload("Customer.User").
		Preload("Veterinary").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByVeterinaryAndDateBetween(db *gorm.DB, veterinaryID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("veterinary_id = ? AND appointment_date >= ? AND appointment_date < ?", veterinaryID, start, end).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByVeterinaryAndDateWithin(db *gorm.DB, veterinaryID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("veterinary_id = ? AND appointment_date BETWEEN ? AND ?", veterinaryID, start, end).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Pet").
		Preload("Veterinary").
		Where("customer_id = ?", customerID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByVeterinaryID(db *gorm.DB, veterinaryID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Pet").
		Preload("Customer.User").
		Where("veterinary_id = ?", veterinaryID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByVeterinaryAndStatus(db *gorm.DB, veterinaryID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Pet").
		Preload("Customer.User").
		Where("veterinary_id = ? AND status = ?", veterinaryID, status).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcomingByCustomer(db *gorm.DB, customerID uuid.UUID, after time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Pet").
		Preload("Veterinary").
		Where("customer_id = ? AND appointment_date > ? AND status IN ?",
			customerID, after, []entity.AppointmentStatus{entity.StatusRequested, entity.StatusConfirmed}).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// Confirm transitions REQUESTED -> CONFIRMED only if the row is still REQUESTED.
func (r *appointmentRepository) Confirm(db *gorm.DB, id uuid.UUID, now time.Time) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.StatusRequested).
		Updates(map[string]interface{}{
			"status":     entity.StatusConfirmed,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}

// Cancel transitions REQUESTED/CONFIRMED -> CANCELLED; the guard keeps a
// repeated cancel (or a cancel racing a complete) from touching the row.
func (r *appointmentRepository) Cancel(db *gorm.DB, id uuid.UUID, reason string, now time.Time) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status IN ?", id, []entity.AppointmentStatus{entity.StatusRequested, entity.StatusConfirmed}).
		Updates(map[string]interface{}{
			"status":              entity.StatusCancelled,
			"cancellation_reason": reason,
			"cancelled_at":        now,
			"updated_at":          now,
		})
	return result.RowsAffected, result.Error
}

// Complete transitions CONFIRMED -> COMPLETED and records the clinical outcome.
func (r *appointmentRepository) Complete(db *gorm.DB, id uuid.UUID, outcome entity.CompletionOutcome, now time.Time) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.StatusConfirmed).
		Updates(map[string]interface{}{
			"status":           entity.StatusCompleted,
			"veterinary_notes": outcome.VeterinaryNotes,
			"diagnosis":        outcome.Diagnosis,
			"treatment":        outcome.Treatment,
			"medications":      outcome.Medications,
			"completed_at":     now,
			"updated_at":       now,
		})
	return result.RowsAffected, result.Error
}
