package usecase

import (
	"context"
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

type PetUsecase interface {
	CreatePet(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	GetPet(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*dto.PetResponse, error)
	UpdatePet(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error)
	DeactivatePet(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	ListMyPets(ctx context.Context, ownerID uuid.UUID) (*dto.PetListResponse, error)
	ListClinicPets(ctx context.Context, veterinaryID uuid.UUID) (*dto.PetListResponse, error)
}

type petUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	petRepo         repository.PetRepository
	custProfileRepo repository.CustomerProfileRepository
	auditService    service.AuditService
}

func NewPetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	petRepo repository.PetRepository,
	custProfileRepo repository.CustomerProfileRepository,
	auditService service.AuditService,
) PetUsecase {
	return &petUsecase{
		db:              db,
		log:             log,
		petRepo:         petRepo,
		custProfileRepo: custProfileRepo,
		auditService:    auditService,
	}
}

func (u *petUsecase) CreatePet(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	pet := &entity.Pet{
		OwnerID:         ownerID,
		Name:            req.Name,
		Species:         req.Species,
		Breed:           req.Breed,
		Gender:          req.Gender,
		DateOfBirth:     &dob,
		WeightKg:        req.WeightKg,
		Color:           req.Color,
		MicrochipNumber: req.MicrochipNumber,
		Allergies:       req.Allergies,
		Notes:           req.Notes,
		IsActive:        true,
	}

	if err := u.petRepo.Create(u.db.WithContext(ctx), pet); err != nil {
		if isForeignKeyError(err, "owner") {
			return nil, ErrCustomerNotFound
		}
		u.log.Warnf("Failed to create pet: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, u.db, &ownerID, entity.AuditActionPetCreate, "pet", pet.ID.String(), entity.JSON{
		"name":    pet.Name,
		"species": pet.Species,
	})

	return converter.PetToResponse(pet), nil
}

// GetPet allows the pet's owner and the owner's bound veterinary to read the
// pet.
func (u *petUsecase) GetPet(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*dto.PetResponse, error) {
	db := u.db.WithContext(ctx)

	pet, err := u.petRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	if pet.OwnerID != actorID {
		owner, err := u.custProfileRepo.FindByUserID(db, pet.OwnerID)
		if err != nil {
			u.log.Warnf("Failed to find pet owner: %+v", err)
			return nil, err
		}
		if owner == nil || owner.VeterinaryID == nil || *owner.VeterinaryID != actorID {
			return nil, ErrNotPetOwner
		}
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) UpdatePet(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error) {
	db := u.db.WithContext(ctx)

	pet, err := u.petRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if pet.OwnerID != ownerID {
		return nil, ErrNotPetOwner
	}
	if !pet.IsActive {
		return nil, ErrPetInactive
	}

	if req.Name != "" {
		pet.Name = req.Name
	}
	if req.Breed != "" {
		pet.Breed = req.Breed
	}
	if req.WeightKg != nil {
		pet.WeightKg = req.WeightKg
	}
	if req.Color != "" {
		pet.Color = req.Color
	}
	if req.MicrochipNumber != "" {
		pet.MicrochipNumber = req.MicrochipNumber
	}
	if req.Allergies != "" {
		pet.Allergies = req.Allergies
	}
	if req.Notes != "" {
		pet.Notes = req.Notes
	}

	if err := u.petRepo.Update(db, pet); err != nil {
		u.log.Warnf("Failed to update pet: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, u.db, &ownerID, entity.AuditActionPetUpdate, "pet", pet.ID.String(), nil)

	return converter.PetToResponse(pet), nil
}

// DeactivatePet soft-deletes a pet. Its appointment and medical history stays
// readable; new bookings for the pet are rejected.
func (u *petUsecase) DeactivatePet(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	pet, err := u.petRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return err
	}
	if pet == nil {
		return ErrPetNotFound
	}
	if pet.OwnerID != ownerID {
		return ErrNotPetOwner
	}

	affected, err := u.petRepo.Deactivate(db, id)
	if err != nil {
		u.log.Warnf("Failed to deactivate pet: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPetInactive
	}

	u.auditService.Log(ctx, u.db, &ownerID, entity.AuditActionPetDelete, "pet", id.String(), nil)

	return nil
}

func (u *petUsecase) ListMyPets(ctx context.Context, ownerID uuid.UUID) (*dto.PetListResponse, error) {
	pets, err := u.petRepo.FindByOwnerID(u.db.WithContext(ctx), ownerID)
	if err != nil {
		u.log.Warnf("Failed to find pets: %+v", err)
		return nil, err
	}

	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}

func (u *petUsecase) ListClinicPets(ctx context.Context, veterinaryID uuid.UUID) (*dto.PetListResponse, error) {
	pets, err := u.petRepo.FindByVeterinaryID(u.db.WithContext(ctx), veterinaryID)
	if err != nil {
		u.log.Warnf("Failed to find clinic pets: %+v", err)
		return nil, err
	}

	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}
