package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"
	"vetclinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrPastAppointmentDate  = errors.New("appointment date must be in the future")
	ErrPetNotFound          = errors.New("pet not found")
	ErrNotPetOwner          = errors.New("pet belongs to another customer")
	ErrPetInactive          = errors.New("pet is deactivated")
	ErrNotBoundToVeterinary = errors.New("customer is not registered with this veterinary")
	ErrInvalidDatetime      = errors.New("invalid datetime format, use RFC 3339")
)

// conflictWindow is how close to an existing active appointment a new booking
// may not land, on either side.
const conflictWindow = 30 * time.Minute

// SlotConflictError reports that a requested booking time collides with an
// existing active appointment.
type SlotConflictError struct {
	RequestedAt   time.Time
	ConflictingID uuid.UUID
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot at %s conflicts with appointment %s", e.RequestedAt.Format(time.RFC3339), e.ConflictingID)
}

// ClinicalRecorder turns a completed appointment into a medical record entry.
type ClinicalRecorder interface {
	RecordFromAppointment(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
}

type AppointmentUsecase interface {
	// SetClinicalRecorder wires the completion hook. Optional; without it a
	// completed appointment simply produces no medical record.
	SetClinicalRecorder(recorder ClinicalRecorder)

	CreateAppointment(ctx context.Context, customerID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*dto.AppointmentResponse, error)
	ApproveAppointment(ctx context.Context, veterinaryID uuid.UUID, id uuid.UUID) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, veterinaryID uuid.UUID, id uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error)

	ListMyAppointments(ctx context.Context, customerID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListUpcomingAppointments(ctx context.Context, customerID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListVeterinaryAppointments(ctx context.Context, veterinaryID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListPendingAppointments(ctx context.Context, veterinaryID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListTodayAppointments(ctx context.Context, veterinaryID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListAppointmentsByRange(ctx context.Context, veterinaryID uuid.UUID, from, to string) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	location        *time.Location
	appointmentRepo repository.AppointmentRepository
	custProfileRepo repository.CustomerProfileRepository
	petRepo         repository.PetRepository
	recorder        ClinicalRecorder
	auditService    service.AuditService

	// One mutex per veterinary, held across the conflict check and the
	// insert so two bookings in-process cannot both pass the check. The
	// partial unique index on active appointment slots backs this up across
	// processes.
	vetLocks sync.Map
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	location *time.Location,
	appointmentRepo repository.AppointmentRepository,
	custProfileRepo repository.CustomerProfileRepository,
	petRepo repository.PetRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		location:        location,
		appointmentRepo: appointmentRepo,
		custProfileRepo: custProfileRepo,
		petRepo:         petRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) SetClinicalRecorder(recorder ClinicalRecorder) {
	u.recorder = recorder
}

func (u *appointmentUsecase) lockVeterinary(veterinaryID uuid.UUID) *sync.Mutex {
	lock, _ := u.vetLocks.LoadOrStore(veterinaryID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, customerID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	when, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDatetime
	}
	when = when.In(u.location)

	if !when.After(time.Now()) {
		return nil, ErrPastAppointmentDate
	}

	db := u.db.WithContext(ctx)

	// The customer must be registered with the requested veterinary
	profile, err := u.custProfileRepo.FindByUserID(db, customerID)
	if err != nil {
		u.log.Warnf("Failed to find customer profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrCustomerNotFound
	}
	if profile.VeterinaryID == nil || *profile.VeterinaryID != req.VeterinaryID {
		return nil, ErrNotBoundToVeterinary
	}

	// The pet must exist, be active, and belong to the booking customer
	pet, err := u.petRepo.FindByID(db, req.PetID)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if pet.OwnerID != customerID {
		return nil, ErrNotPetOwner
	}
	if !pet.IsActive {
		return nil, ErrPetInactive
	}

	appointment := &entity.Appointment{
		VeterinaryID:    req.VeterinaryID,
		CustomerID:      customerID,
		PetID:           req.PetID,
		AppointmentDate: when,
		Reason:          req.Reason,
		Status:          entity.StatusRequested,
		CustomerNotes:   req.CustomerNotes,
	}

	// Conflict check and insert under the veterinary's lock
	lock := u.lockVeterinary(req.VeterinaryID)
	lock.Lock()
	err = func() error {
		defer lock.Unlock()

		if conflictErr := u.checkSlotConflict(db, req.VeterinaryID, when); conflictErr != nil {
			return conflictErr
		}

		if createErr := u.appointmentRepo.Create(db, appointment); createErr != nil {
			if isDuplicateKeyError(createErr, "uq_appointments_vet_slot") {
				return &SlotConflictError{RequestedAt: when}
			}
			u.log.Warnf("Failed to create appointment: %+v", createErr)
			return createErr
		}
		return nil
	}()
	if err != nil {
		return nil, err
	}

	u.auditService.Log(ctx, u.db, &customerID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), entity.JSON{
		"veterinary_id":    req.VeterinaryID.String(),
		"appointment_date": when.Format(time.RFC3339),
	})

	return converter.AppointmentToResponse(appointment), nil
}

// checkSlotConflict rejects a booking that lands within conflictWindow of an
// existing REQUESTED or CONFIRMED appointment for the same veterinary. The
// window is inclusive on both ends, so exactly 30 minutes before or after an
// existing booking still conflicts.
func (u *appointmentUsecase) checkSlotConflict(db *gorm.DB, veterinaryID uuid.UUID, when time.Time) error {
	nearby, err := u.appointmentRepo.FindByVeterinaryAndDateWithin(db, veterinaryID, when.Add(-conflictWindow), when.Add(conflictWindow))
	if err != nil {
		u.log.Warnf("Failed to find nearby appointments: %+v", err)
		return err
	}

	for _, other := range nearby {
		if other.Status == entity.StatusRequested || other.Status == entity.StatusConfirmed {
			return &SlotConflictError{RequestedAt: when, ConflictingID: other.ID}
		}
	}
	return nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.VeterinaryID != actorID && appointment.CustomerID != actorID {
		return nil, entity.ErrNotAppointmentParty
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ApproveAppointment(ctx context.Context, veterinaryID uuid.UUID, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := appointment.Confirm(veterinaryID, now); err != nil {
		return nil, err
	}

	// Conditional update; zero affected rows means the status changed under us
	affected, err := u.appointmentRepo.Confirm(u.db.WithContext(ctx), id, now)
	if err != nil {
		u.log.Warnf("Failed to confirm appointment: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, entity.ErrInvalidTransition
	}

	u.auditService.Log(ctx, u.db, &veterinaryID, entity.AuditActionAppointmentApprove, "appointment", id.String(), nil)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := appointment.Cancel(actorID, req.Reason, now); err != nil {
		return nil, err
	}

	affected, err := u.appointmentRepo.Cancel(u.db.WithContext(ctx), id, req.Reason, now)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, entity.ErrInvalidTransition
	}

	u.auditService.Log(ctx, u.db, &actorID, entity.AuditActionAppointmentCancel, "appointment", id.String(), entity.JSON{
		"reason": req.Reason,
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, veterinaryID uuid.UUID, id uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	outcome := entity.CompletionOutcome{
		VeterinaryNotes: req.VeterinaryNotes,
		Diagnosis:       req.Diagnosis,
		Treatment:       req.Treatment,
		Medications:     req.Medications,
	}

	now := time.Now()
	if err := appointment.Complete(veterinaryID, outcome, now); err != nil {
		return nil, err
	}

	affected, err := u.appointmentRepo.Complete(u.db.WithContext(ctx), id, outcome, now)
	if err != nil {
		u.log.Warnf("Failed to complete appointment: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, entity.ErrInvalidTransition
	}

	// Best-effort clinical record; the completion itself already committed
	if u.recorder != nil {
		if err := u.recorder.RecordFromAppointment(ctx, u.db.WithContext(ctx), appointment); err != nil {
			u.log.Warnf("Failed to create medical record for appointment %s: %+v", id, err)
		}
	}

	u.auditService.Log(ctx, u.db, &veterinaryID, entity.AuditActionAppointmentComplete, "appointment", id.String(), nil)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListMyAppointments(ctx context.Context, customerID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByCustomerID(u.db.WithContext(ctx), customerID)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func (u *appointmentUsecase) ListUpcomingAppointments(ctx context.Context, customerID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindUpcomingByCustomer(u.db.WithContext(ctx), customerID, time.Now())
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments: %+v", err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func (u *appointmentUsecase) ListVeterinaryAppointments(ctx context.Context, veterinaryID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByVeterinaryID(u.db.WithContext(ctx), veterinaryID)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func (u *appointmentUsecase) ListPendingAppointments(ctx context.Context, veterinaryID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByVeterinaryAndStatus(u.db.WithContext(ctx), veterinaryID, entity.StatusRequested)
	if err != nil {
		u.log.Warnf("Failed to find pending appointments: %+v", err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func (u *appointmentUsecase) ListTodayAppointments(ctx context.Context, veterinaryID uuid.UUID) (*dto.AppointmentListResponse, error) {
	now := time.Now().In(u.location)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, u.location)

	appointments, err := u.appointmentRepo.FindByVeterinaryAndDateBetween(u.db.WithContext(ctx), veterinaryID, start, start.AddDate(0, 0, 1))
	if err != nil {
		u.log.Warnf("Failed to find today's appointments: %+v", err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func (u *appointmentUsecase) ListAppointmentsByRange(ctx context.Context, veterinaryID uuid.UUID, from, to string) (*dto.AppointmentListResponse, error) {
	start, err := time.ParseInLocation("2006-01-02", from, u.location)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := time.ParseInLocation("2006-01-02", to, u.location)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if end.Before(start) {
		return nil, ErrInvalidTimeRange
	}

	// The range is inclusive of the last calendar day
	appointments, err := u.appointmentRepo.FindByVeterinaryAndDateBetween(u.db.WithContext(ctx), veterinaryID, start, end.AddDate(0, 0, 1))
	if err != nil {
		u.log.Warnf("Failed to find appointments in range: %+v", err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func (u *appointmentUsecase) findAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func listResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}
}
