package repository

import (
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PetRepository interface {
	Create(db *gorm.DB, pet *entity.Pet) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error)
	FindByVeterinaryID(db *gorm.DB, veterinaryID uuid.UUID) ([]entity.Pet, error)
	Update(db *gorm.DB, pet *entity.Pet) error
	Deactivate(db *gorm.DB, id uuid.UUID) (int64, error)
}
