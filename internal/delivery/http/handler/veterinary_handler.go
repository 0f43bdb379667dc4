package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/delivery/http/middleware"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"
	"vetclinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VeterinaryHandler struct {
	veterinaryUsecase usecase.VeterinaryUsecase
	validator         *validator.CustomValidator
}

func NewVeterinaryHandler(veterinaryUsecase usecase.VeterinaryUsecase, validator *validator.CustomValidator) *VeterinaryHandler {
	return &VeterinaryHandler{
		veterinaryUsecase: veterinaryUsecase,
		validator:         validator,
	}
}

func (h *VeterinaryHandler) ListVeterinaries(w http.ResponseWriter, r *http.Request) {
	veterinaries, err := h.veterinaryUsecase.ListVeterinaries(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get veterinaries")
		return
	}

	response.Success(w, http.StatusOK, "Veterinaries retrieved successfully", veterinaries)
}

func (h *VeterinaryHandler) GetVeterinary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	veterinaryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid veterinary ID", nil)
		return
	}

	veterinary, err := h.veterinaryUsecase.GetVeterinary(r.Context(), veterinaryID)
	if err != nil {
		switch err {
		case usecase.ErrVeterinaryNotFound:
			response.NotFound(w, "Veterinary not found")
		default:
			response.InternalServerError(w, "Failed to get veterinary")
		}
		return
	}

	response.Success(w, http.StatusOK, "Veterinary retrieved successfully", veterinary)
}

func (h *VeterinaryHandler) JoinClinic(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.JoinClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.veterinaryUsecase.JoinClinic(r.Context(), customerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVeterinaryNotFound:
			response.NotFound(w, "Veterinary not found")
		case usecase.ErrCustomerNotFound:
			response.NotFound(w, "Customer profile not found")
		case usecase.ErrAlreadyJoined:
			response.Conflict(w, "You already belong to a clinic", nil)
		default:
			response.InternalServerError(w, "Failed to join clinic")
		}
		return
	}

	response.Success(w, http.StatusOK, "Joined clinic successfully", profile)
}

func (h *VeterinaryHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	veterinaryID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	customers, err := h.veterinaryUsecase.ListCustomers(r.Context(), veterinaryID)
	if err != nil {
		response.InternalServerError(w, "Failed to get customers")
		return
	}

	response.Success(w, http.StatusOK, "Customers retrieved successfully", customers)
}
