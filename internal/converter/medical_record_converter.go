package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:             record.ID,
		PetID:          record.PetID,
		VeterinaryID:   record.VeterinaryID,
		AppointmentID:  record.AppointmentID,
		RecordType:     string(record.RecordType),
		VisitDate:      record.VisitDate.Format("2006-01-02"),
		Diagnosis:      record.Diagnosis,
		Treatment:      record.Treatment,
		Medications:    record.Medications,
		Notes:          record.Notes,
		AnalysisType:   record.AnalysisType,
		Temperature:    record.Temperature,
		HeartRate:      record.HeartRate,
		WeightKg:       record.WeightKg,
		VaccineName:    record.VaccineName,
		Manufacturer:   record.Manufacturer,
		BatchNumber:    record.BatchNumber,
		SurgeryType:    record.SurgeryType,
		AnesthesiaType: record.AnesthesiaType,
		DurationMin:    record.DurationMin,
		Cost:           record.Cost,
		Currency:       record.Currency,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}

	if record.NextVaccinationDate != nil {
		response.NextVaccinationDate = record.NextVaccinationDate.Format("2006-01-02")
	}
	if record.Pet.ID != uuid.Nil {
		response.PetName = record.Pet.Name
	}

	return response
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		resp := MedicalRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
