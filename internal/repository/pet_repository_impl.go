package repository

import (
	"errors"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type petRepository struct{}

func NewPetRepository() domainRepo.PetRepository {
	return &petRepository{}
}

func (r *petRepository) Create(db *gorm.DB, pet *entity.Pet) error {
	return db.Create(pet).Error
}

func (r *petRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
	var pet entity.Pet
	err := db.Preload("Owner.User").Where("id = ?", id).First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("name ASC").
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

// FindByVeterinaryID lists active pets owned by customers bound to the clinic.
func (r *petRepository) FindByVeterinaryID(db *gorm.DB, veterinaryID uuid.UUID) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.
		Joins("JOIN customer_profiles ON customer_profiles.user_id = pets.owner_id").
		Where("customer_profiles.veterinary_id = ? AND pets.is_active = ?", veterinaryID, true).
		Preload("Owner.User").
		Order("pets.name ASC").
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) Update(db *gorm.DB, pet *entity.Pet) error {
	return db.Omit("Owner").Save(pet).Error
}

// Deactivate soft-deletes a pet; appointment and medical history stay intact.
func (r *petRepository) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Pet{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
