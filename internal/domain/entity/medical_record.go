package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MedicalRecordType discriminates the clinical record variants
type MedicalRecordType string

const (
	RecordTypeAnalysis     MedicalRecordType = "ANALYSIS"
	RecordTypeVaccine      MedicalRecordType = "VACCINE"
	RecordTypeSurgery      MedicalRecordType = "SURGERY"
	RecordTypePrescription MedicalRecordType = "PRESCRIPTION"
)

var ErrInvalidRecordType = errors.New("invalid medical record type")

// MedicalRecord is a single clinical record for a pet. One table holds all
// variants; RecordType selects which of the variant-specific fields apply.
type MedicalRecord struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PetID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"pet_id"`
	VeterinaryID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"veterinary_id"`
	AppointmentID *uuid.UUID        `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	RecordType    MedicalRecordType `gorm:"type:varchar(20);not null;index" json:"record_type"`
	VisitDate     time.Time         `gorm:"type:timestamptz;not null" json:"visit_date"`

	Diagnosis   string `gorm:"type:varchar(1000)" json:"diagnosis,omitempty"`
	Treatment   string `gorm:"type:varchar(1000)" json:"treatment,omitempty"`
	Medications string `gorm:"type:varchar(500)" json:"medications,omitempty"`
	Notes       string `gorm:"type:text" json:"notes,omitempty"`

	// Vitals, recorded with analyses
	AnalysisType string   `gorm:"type:varchar(50)" json:"analysis_type,omitempty"`
	Temperature  *float64 `gorm:"type:numeric(4,1)" json:"temperature,omitempty"`
	HeartRate    *int     `json:"heart_rate,omitempty"`
	WeightKg     *float64 `gorm:"type:numeric(6,2)" json:"weight_kg,omitempty"`

	// Vaccine fields
	VaccineName         string     `gorm:"type:varchar(100)" json:"vaccine_name,omitempty"`
	Manufacturer        string     `gorm:"type:varchar(100)" json:"manufacturer,omitempty"`
	BatchNumber         string     `gorm:"type:varchar(50)" json:"batch_number,omitempty"`
	NextVaccinationDate *time.Time `gorm:"type:date" json:"next_vaccination_date,omitempty"`

	// Surgery fields
	SurgeryType    string `gorm:"type:varchar(100)" json:"surgery_type,omitempty"`
	AnesthesiaType string `gorm:"type:varchar(100)" json:"anesthesia_type,omitempty"`
	DurationMin    *int   `json:"duration_min,omitempty"`

	Cost     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"cost"`
	Currency string          `gorm:"type:char(3);not null;default:'USD'" json:"currency"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pet         Pet               `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Veterinary  VeterinaryProfile `gorm:"foreignKey:VeterinaryID" json:"veterinary,omitempty"`
	Appointment *Appointment      `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// RecordInput carries the caller-supplied fields shared by all record variants.
type RecordInput struct {
	PetID         uuid.UUID
	VeterinaryID  uuid.UUID
	AppointmentID *uuid.UUID
	VisitDate     time.Time
	Diagnosis     string
	Treatment     string
	Medications   string
	Notes         string
	AnalysisType  string
	Temperature   *float64
	HeartRate     *int
	WeightKg      *float64
	VaccineName   string
	Manufacturer  string
	BatchNumber   string
	NextVaccination *time.Time
	SurgeryType    string
	AnesthesiaType string
	DurationMin    *int
	Cost           decimal.Decimal
	Currency       string
}

func baseRecord(recordType MedicalRecordType, in RecordInput) *MedicalRecord {
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	return &MedicalRecord{
		PetID:         in.PetID,
		VeterinaryID:  in.VeterinaryID,
		AppointmentID: in.AppointmentID,
		RecordType:    recordType,
		VisitDate:     in.VisitDate,
		Diagnosis:     in.Diagnosis,
		Treatment:     in.Treatment,
		Medications:   in.Medications,
		Notes:         in.Notes,
		Cost:          in.Cost,
		Currency:      currency,
	}
}

// NewAnalysisRecord builds an ANALYSIS record carrying vitals and test results.
func NewAnalysisRecord(in RecordInput) *MedicalRecord {
	rec := baseRecord(RecordTypeAnalysis, in)
	rec.AnalysisType = in.AnalysisType
	rec.Temperature = in.Temperature
	rec.HeartRate = in.HeartRate
	rec.WeightKg = in.WeightKg
	return rec
}

// NewVaccineRecord builds a VACCINE record.
func NewVaccineRecord(in RecordInput) *MedicalRecord {
	rec := baseRecord(RecordTypeVaccine, in)
	rec.VaccineName = in.VaccineName
	rec.Manufacturer = in.Manufacturer
	rec.BatchNumber = in.BatchNumber
	rec.NextVaccinationDate = in.NextVaccination
	return rec
}

// NewSurgeryRecord builds a SURGERY record.
func NewSurgeryRecord(in RecordInput) *MedicalRecord {
	rec := baseRecord(RecordTypeSurgery, in)
	rec.SurgeryType = in.SurgeryType
	rec.AnesthesiaType = in.AnesthesiaType
	rec.DurationMin = in.DurationMin
	return rec
}

// NewPrescriptionRecord builds a PRESCRIPTION record.
func NewPrescriptionRecord(in RecordInput) *MedicalRecord {
	return baseRecord(RecordTypePrescription, in)
}

// NewMedicalRecord dispatches to the variant constructor for recordType.
func NewMedicalRecord(recordType MedicalRecordType, in RecordInput) (*MedicalRecord, error) {
	switch recordType {
	case RecordTypeAnalysis:
		return NewAnalysisRecord(in), nil
	case RecordTypeVaccine:
		return NewVaccineRecord(in), nil
	case RecordTypeSurgery:
		return NewSurgeryRecord(in), nil
	case RecordTypePrescription:
		return NewPrescriptionRecord(in), nil
	default:
		return nil, ErrInvalidRecordType
	}
}
