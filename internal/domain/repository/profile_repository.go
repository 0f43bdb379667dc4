package repository

import (
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VeterinaryProfileRepository interface {
	Create(db *gorm.DB, profile *entity.VeterinaryProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VeterinaryProfile, error)
	FindAllActive(db *gorm.DB) ([]entity.VeterinaryProfile, error)
}

type CustomerProfileRepository interface {
	Create(db *gorm.DB, profile *entity.CustomerProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.CustomerProfile, error)
	FindByVeterinaryID(db *gorm.DB, veterinaryID uuid.UUID) ([]entity.CustomerProfile, error)
	BindVeterinary(db *gorm.DB, userID, veterinaryID uuid.UUID) (int64, error)
}
