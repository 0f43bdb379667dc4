package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      entity.RoleNameByID(user.RoleID),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.VeterinaryProfile != nil {
		response.VeterinaryProfile = VeterinaryProfileToResponse(user.VeterinaryProfile)
	}
	if user.CustomerProfile != nil {
		response.CustomerProfile = CustomerProfileToResponse(user.CustomerProfile)
	}

	return response
}

// VeterinaryProfileToResponse converts a VeterinaryProfile entity to its DTO
func VeterinaryProfileToResponse(profile *entity.VeterinaryProfile) *dto.VeterinaryProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.VeterinaryProfileResponse{
		UserID:        profile.UserID,
		FullName:      profile.User.FullName,
		ClinicName:    profile.ClinicName,
		LicenseNumber: profile.LicenseNumber,
		Specialty:     profile.Specialty,
		PhoneNumber:   profile.PhoneNumber,
		Address:       profile.Address,
	}
}

// VeterinaryProfilesToResponses converts a slice of VeterinaryProfile entities
func VeterinaryProfilesToResponses(profiles []entity.VeterinaryProfile) []dto.VeterinaryProfileResponse {
	responses := make([]dto.VeterinaryProfileResponse, len(profiles))
	for i, profile := range profiles {
		resp := VeterinaryProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// CustomerProfileToResponse converts a CustomerProfile entity to its DTO
func CustomerProfileToResponse(profile *entity.CustomerProfile) *dto.CustomerProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.CustomerProfileResponse{
		UserID:       profile.UserID,
		FullName:     profile.User.FullName,
		VeterinaryID: profile.VeterinaryID,
		PhoneNumber:  profile.PhoneNumber,
		Address:      profile.Address,
	}
	if profile.JoinedAt != nil {
		response.JoinedAt = *profile.JoinedAt
	}

	return response
}

// CustomerProfilesToResponses converts a slice of CustomerProfile entities
func CustomerProfilesToResponses(profiles []entity.CustomerProfile) []dto.CustomerProfileResponse {
	responses := make([]dto.CustomerProfileResponse, len(profiles))
	for i, profile := range profiles {
		resp := CustomerProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
