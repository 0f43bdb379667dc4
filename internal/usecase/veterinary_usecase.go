package usecase

import (
	"context"
	"errors"

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
	ErrVeterinaryNotFound = errors.New("veterinary not found")
	ErrCustomerNotFound   = errors.New("customer profile not found")
	ErrAlreadyJoined      = errors.New("customer already belongs to a clinic")
)

type VeterinaryUsecase interface {
	ListVeterinaries(ctx context.Context) (*dto.VeterinaryListResponse, error)
	GetVeterinary(ctx context.Context, veterinaryID uuid.UUID) (*dto.VeterinaryProfileResponse, error)
	JoinClinic(ctx context.Context, customerID uuid.UUID, req *dto.JoinClinicRequest) (*dto.CustomerProfileResponse, error)
	ListCustomers(ctx context.Context, veterinaryID uuid.UUID) (*dto.CustomerListResponse, error)
}

type veterinaryUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	vetProfileRepo  repository.VeterinaryProfileRepository
	custProfileRepo repository.CustomerProfileRepository
	auditService    service.AuditService
}

func NewVeterinaryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vetProfileRepo repository.VeterinaryProfileRepository,
	custProfileRepo repository.CustomerProfileRepository,
	auditService service.AuditService,
) VeterinaryUsecase {
	return &veterinaryUsecase{
		db:              db,
		log:             log,
		vetProfileRepo:  vetProfileRepo,
		custProfileRepo: custProfileRepo,
		auditService:    auditService,
	}
}

func (u *veterinaryUsecase) ListVeterinaries(ctx context.Context) (*dto.VeterinaryListResponse, error) {
	profiles, err := u.vetProfileRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find veterinaries: %+v", err)
		return nil, err
	}

	return &dto.VeterinaryListResponse{
		Veterinaries: converter.VeterinaryProfilesToResponses(profiles),
		Total:        len(profiles),
	}, nil
}

func (u *veterinaryUsecase) GetVeterinary(ctx context.Context, veterinaryID uuid.UUID) (*dto.VeterinaryProfileResponse, error) {
	profile, err := u.vetProfileRepo.FindByUserID(u.db.WithContext(ctx), veterinaryID)
	if err != nil {
		u.log.Warnf("Failed to find veterinary profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrVeterinaryNotFound
	}

	return converter.VeterinaryProfileToResponse(profile), nil
}

// JoinClinic binds a customer to a veterinary. The binding is permanent: a
// customer that already belongs to a clinic cannot join another one.
func (u *veterinaryUsecase) JoinClinic(ctx context.Context, customerID uuid.UUID, req *dto.JoinClinicRequest) (*dto.CustomerProfileResponse, error) {
	db := u.db.WithContext(ctx)

	vet, err := u.vetProfileRepo.FindByUserID(db, req.VeterinaryID)
	if err != nil {
		u.log.Warnf("Failed to find veterinary profile: %+v", err)
		return nil, err
	}
	if vet == nil {
		return nil, ErrVeterinaryNotFound
	}

	// Conditional update so two concurrent joins cannot rebind the customer
	affected, err := u.custProfileRepo.BindVeterinary(db, customerID, req.VeterinaryID)
	if err != nil {
		u.log.Warnf("Failed to bind customer to veterinary: %+v", err)
		return nil, err
	}
	if affected == 0 {
		existing, err := u.custProfileRepo.FindByUserID(db, customerID)
		if err != nil {
			u.log.Warnf("Failed to find customer profile: %+v", err)
			return nil, err
		}
		if existing == nil {
			return nil, ErrCustomerNotFound
		}
		return nil, ErrAlreadyJoined
	}

	profile, err := u.custProfileRepo.FindByUserID(db, customerID)
	if err != nil {
		u.log.Warnf("Failed to find customer profile: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, u.db, &customerID, entity.AuditActionCustomerJoinClinic, "customer_profile", customerID.String(), entity.JSON{
		"veterinary_id": req.VeterinaryID.String(),
	})

	return converter.CustomerProfileToResponse(profile), nil
}

func (u *veterinaryUsecase) ListCustomers(ctx context.Context, veterinaryID uuid.UUID) (*dto.CustomerListResponse, error) {
	customers, err := u.custProfileRepo.FindByVeterinaryID(u.db.WithContext(ctx), veterinaryID)
	if err != nil {
		u.log.Warnf("Failed to find customers: %+v", err)
		return nil, err
	}

	return &dto.CustomerListResponse{
		Customers: converter.CustomerProfilesToResponses(customers),
		Total:     len(customers),
	}, nil
}
