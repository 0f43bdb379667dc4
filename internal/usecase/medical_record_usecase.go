package usecase

import (
	"context"
	"errors"
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
	ErrRecordNotFound    = errors.New("medical record not found")
	ErrNotClinicPatient  = errors.New("pet is not a patient of this clinic")
	ErrRecordNotAnalysis = errors.New("record is not an analysis")
)

type MedicalRecordUsecase interface {
	CreateMedicalRecord(ctx context.Context, veterinaryID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetMedicalRecord(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*dto.MedicalRecordResponse, error)
	ListPetRecords(ctx context.Context, actorID uuid.UUID, petID uuid.UUID) (*dto.MedicalRecordListResponse, error)
	EvaluateAnalysis(ctx context.Context, actorID uuid.UUID, recordID uuid.UUID) (*dto.AnalysisEvaluationResponse, error)

	// ClinicalRecorder
	RecordFromAppointment(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
}

type medicalRecordUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	recordRepo      repository.MedicalRecordRepository
	petRepo         repository.PetRepository
	custProfileRepo repository.CustomerProfileRepository
	auditService    service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	petRepo repository.PetRepository,
	custProfileRepo repository.CustomerProfileRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:              db,
		log:             log,
		recordRepo:      recordRepo,
		petRepo:         petRepo,
		custProfileRepo: custProfileRepo,
		auditService:    auditService,
	}
}

func (u *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, veterinaryID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	db := u.db.WithContext(ctx)

	visitDate, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	var nextVaccination *time.Time
	if req.NextVaccinationDate != "" {
		next, err := time.Parse("2006-01-02", req.NextVaccinationDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		nextVaccination = &next
	}

	// The pet must be a patient of the recording veterinary's clinic
	if err := u.checkClinicPatient(db, veterinaryID, req.PetID); err != nil {
		return nil, err
	}

	record, err := entity.NewMedicalRecord(entity.MedicalRecordType(req.RecordType), entity.RecordInput{
		PetID:           req.PetID,
		VeterinaryID:    veterinaryID,
		VisitDate:       visitDate,
		Diagnosis:       req.Diagnosis,
		Treatment:       req.Treatment,
		Medications:     req.Medications,
		Notes:           req.Notes,
		AnalysisType:    req.AnalysisType,
		Temperature:     req.Temperature,
		HeartRate:       req.HeartRate,
		WeightKg:        req.WeightKg,
		VaccineName:     req.VaccineName,
		Manufacturer:    req.Manufacturer,
		BatchNumber:     req.BatchNumber,
		NextVaccination: nextVaccination,
		SurgeryType:     req.SurgeryType,
		AnesthesiaType:  req.AnesthesiaType,
		DurationMin:     req.DurationMin,
		Cost:            req.Cost,
		Currency:        req.Currency,
	})
	if err != nil {
		return nil, err
	}

	if err := u.recordRepo.Create(db, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, u.db, &veterinaryID, entity.AuditActionRecordCreate, "medical_record", record.ID.String(), entity.JSON{
		"pet_id":      req.PetID.String(),
		"record_type": req.RecordType,
	})

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetMedicalRecord(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*dto.MedicalRecordResponse, error) {
	record, err := u.findAuthorizedRecord(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) ListPetRecords(ctx context.Context, actorID uuid.UUID, petID uuid.UUID) (*dto.MedicalRecordListResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.checkPetAccess(db, actorID, petID); err != nil {
		return nil, err
	}

	records, err := u.recordRepo.FindByPetID(db, petID)
	if err != nil {
		u.log.Warnf("Failed to find medical records: %+v", err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

// EvaluateAnalysis runs the threshold evaluation over a stored ANALYSIS
// record and returns the findings. The record itself is not modified.
func (u *medicalRecordUsecase) EvaluateAnalysis(ctx context.Context, actorID uuid.UUID, recordID uuid.UUID) (*dto.AnalysisEvaluationResponse, error) {
	record, err := u.findAuthorizedRecord(ctx, actorID, recordID)
	if err != nil {
		return nil, err
	}
	if record.RecordType != entity.RecordTypeAnalysis {
		return nil, ErrRecordNotAnalysis
	}

	result := service.EvaluateAnalysis(record)

	return &dto.AnalysisEvaluationResponse{
		RecordID:       record.ID,
		AnalysisType:   result.AnalysisType,
		Abnormal:       result.Abnormal,
		Findings:       result.Findings,
		Recommendation: result.Recommendation,
	}, nil
}

// RecordFromAppointment writes the clinical outcome of a completed
// appointment into the pet's medical history as a prescription-style entry.
func (u *medicalRecordUsecase) RecordFromAppointment(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	record := entity.NewPrescriptionRecord(entity.RecordInput{
		PetID:         appointment.PetID,
		VeterinaryID:  appointment.VeterinaryID,
		AppointmentID: &appointment.ID,
		VisitDate:     appointment.AppointmentDate,
		Diagnosis:     appointment.Diagnosis,
		Treatment:     appointment.Treatment,
		Medications:   appointment.Medications,
		Notes:         appointment.VeterinaryNotes,
	})

	if err := u.recordRepo.Create(db, record); err != nil {
		return err
	}

	u.auditService.Log(ctx, u.db, &appointment.VeterinaryID, entity.AuditActionRecordCreate, "medical_record", record.ID.String(), entity.JSON{
		"appointment_id": appointment.ID.String(),
	})

	return nil
}

func (u *medicalRecordUsecase) findAuthorizedRecord(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*entity.MedicalRecord, error) {
	db := u.db.WithContext(ctx)

	record, err := u.recordRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if record.VeterinaryID != actorID {
		if err := u.checkPetAccess(db, actorID, record.PetID); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// checkPetAccess permits the pet's owner and the owner's bound veterinary.
func (u *medicalRecordUsecase) checkPetAccess(db *gorm.DB, actorID uuid.UUID, petID uuid.UUID) error {
	pet, err := u.petRepo.FindByID(db, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return err
	}
	if pet == nil {
		return ErrPetNotFound
	}
	if pet.OwnerID == actorID {
		return nil
	}

	owner, err := u.custProfileRepo.FindByUserID(db, pet.OwnerID)
	if err != nil {
		u.log.Warnf("Failed to find pet owner: %+v", err)
		return err
	}
	if owner == nil || owner.VeterinaryID == nil || *owner.VeterinaryID != actorID {
		return ErrNotPetOwner
	}
	return nil
}

// checkClinicPatient verifies the pet exists, is active, and its owner is
// bound to the given veterinary.
func (u *medicalRecordUsecase) checkClinicPatient(db *gorm.DB, veterinaryID uuid.UUID, petID uuid.UUID) error {
	pet, err := u.petRepo.FindByID(db, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return err
	}
	if pet == nil {
		return ErrPetNotFound
	}

	owner, err := u.custProfileRepo.FindByUserID(db, pet.OwnerID)
	if err != nil {
		u.log.Warnf("Failed to find pet owner: %+v", err)
		return err
	}
	if owner == nil || owner.VeterinaryID == nil || *owner.VeterinaryID != veterinaryID {
		return ErrNotClinicPatient
	}
	return nil
}
