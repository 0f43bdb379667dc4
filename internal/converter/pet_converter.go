package converter

import (
	"time"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

// PetToResponse converts a Pet entity to PetResponse DTO
func PetToResponse(pet *entity.Pet) *dto.PetResponse {
	if pet == nil {
		return nil
	}

	response := &dto.PetResponse{
		ID:              pet.ID,
		OwnerID:         pet.OwnerID,
		Name:            pet.Name,
		Species:         pet.Species,
		Breed:           pet.Breed,
		Gender:          pet.Gender,
		AgeYears:        pet.AgeYears(time.Now()),
		WeightKg:        pet.WeightKg,
		Color:           pet.Color,
		MicrochipNumber: pet.MicrochipNumber,
		Allergies:       pet.Allergies,
		Notes:           pet.Notes,
		IsActive:        pet.IsActive,
		CreatedAt:       pet.CreatedAt,
		UpdatedAt:       pet.UpdatedAt,
	}

	if pet.DateOfBirth != nil {
		response.DateOfBirth = pet.DateOfBirth.Format("2006-01-02")
	}
	if pet.Owner.User.FullName != "" {
		response.OwnerName = pet.Owner.User.FullName
	}

	return response
}

// PetsToResponses converts a slice of Pet entities to slice of PetResponse DTOs
func PetsToResponses(pets []entity.Pet) []dto.PetResponse {
	responses := make([]dto.PetResponse, len(pets))
	for i, pet := range pets {
		resp := PetToResponse(&pet)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
