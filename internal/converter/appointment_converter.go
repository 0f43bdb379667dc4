package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:                 appointment.ID,
		VeterinaryID:       appointment.VeterinaryID,
		CustomerID:         appointment.CustomerID,
		PetID:              appointment.PetID,
		AppointmentDate:    appointment.AppointmentDate,
		Reason:             appointment.Reason,
		Status:             string(appointment.Status),
		CustomerNotes:      appointment.CustomerNotes,
		VeterinaryNotes:    appointment.VeterinaryNotes,
		Diagnosis:          appointment.Diagnosis,
		Treatment:          appointment.Treatment,
		Medications:        appointment.Medications,
		CancellationReason: appointment.CancellationReason,
		CompletedAt:        appointment.CompletedAt,
		CancelledAt:        appointment.CancelledAt,
		CreatedAt:          appointment.CreatedAt,
		UpdatedAt:          appointment.UpdatedAt,
	}

	// Include names when the relationships were preloaded
	if appointment.Veterinary.User.FullName != "" {
		response.VeterinaryName = appointment.Veterinary.User.FullName
	}
	if appointment.Customer.User.FullName != "" {
		response.CustomerName = appointment.Customer.User.FullName
	}
	if appointment.Pet.ID != uuid.Nil {
		response.PetName = appointment.Pet.Name
		response.Pet = PetToResponse(&appointment.Pet)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
