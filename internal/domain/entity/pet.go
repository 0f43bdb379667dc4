package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pet represents an animal patient owned by a customer
type Pet struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name            string     `gorm:"type:varchar(100);not null" json:"name"`
	Species         string     `gorm:"type:varchar(50);not null;index" json:"species"`
	Breed           string     `gorm:"type:varchar(100)" json:"breed,omitempty"`
	Gender          string     `gorm:"type:char(1)" json:"gender,omitempty"`
	DateOfBirth     *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	WeightKg        *float64   `gorm:"type:numeric(6,2)" json:"weight_kg,omitempty"`
	Color           string     `gorm:"type:varchar(50)" json:"color,omitempty"`
	MicrochipNumber string     `gorm:"type:varchar(50)" json:"microchip_number,omitempty"`
	Allergies       string     `gorm:"type:text" json:"allergies,omitempty"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	IsActive        bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner          CustomerProfile `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Appointments   []Appointment   `gorm:"foreignKey:PetID" json:"appointments,omitempty"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:PetID" json:"medical_records,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// AgeYears returns the pet's age in whole years, or 0 when the birth date is unknown.
func (p *Pet) AgeYears(now time.Time) int {
	if p.DateOfBirth == nil {
		return 0
	}
	years := now.Year() - p.DateOfBirth.Year()
	if now.YearDay() < p.DateOfBirth.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
