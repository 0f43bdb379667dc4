package repository

import (
	"errors"
	"time"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type veterinaryProfileRepository struct{}

func NewVeterinaryProfileRepository() domainRepo.VeterinaryProfileRepository {
	return &veterinaryProfileRepository{}
}

func (r *veterinaryProfileRepository) Create(db *gorm.DB, profile *entity.VeterinaryProfile) error {
	return db.Create(profile).Error
}

func (r *veterinaryProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VeterinaryProfile, error) {
	var profile entity.VeterinaryProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *veterinaryProfileRepository) FindAllActive(db *gorm.DB) ([]entity.VeterinaryProfile, error) {
	var profiles []entity.VeterinaryProfile
	err := db.
		Joins("JOIN users ON users.id = veterinary_profiles.user_id").
		Where("users.is_active = ?", true).
		Preload("User").
		Order("clinic_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

type customerProfileRepository struct{}

func NewCustomerProfileRepository() domainRepo.CustomerProfileRepository {
	return &customerProfileRepository{}
}

func (r *customerProfileRepository) Create(db *gorm.DB, profile *entity.CustomerProfile) error {
	return db.Create(profile).Error
}

func (r *customerProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.CustomerProfile, error) {
	var profile entity.CustomerProfile
	err := db.Preload("User").Preload("Veterinary").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *customerProfileRepository) FindByVeterinaryID(db *gorm.DB, veterinaryID uuid.UUID) ([]entity.CustomerProfile, error) {
	var profiles []entity.CustomerProfile
	err := db.Preload("User").
		Where("veterinary_id = ?", veterinaryID).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// BindVeterinary assigns the customer to a clinic. The binding is set once;
// a customer already bound to a veterinary is not rebound (0 rows affected).
func (r *customerProfileRepository) BindVeterinary(db *gorm.DB, userID, veterinaryID uuid.UUID) (int64, error) {
	now := time.Now()
	result := db.Model(&entity.CustomerProfile{}).
		Where("user_id = ? AND veterinary_id IS NULL", userID).
		Updates(map[string]interface{}{
			"veterinary_id": veterinaryID,
			"joined_at":     now,
		})
	return result.RowsAffected, result.Error
}
