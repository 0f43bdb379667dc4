package entity

import "github.com/google/uuid"

// VeterinaryProfile represents clinic-specific profile data for a veterinary user
type VeterinaryProfile struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	ClinicName    string    `gorm:"type:varchar(255);not null" json:"clinic_name"`
	LicenseNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialty     string    `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	PhoneNumber   string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Address       string    `gorm:"type:text" json:"address,omitempty"`

	// Relationships
	User      User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Schedules []WeeklySchedule `gorm:"foreignKey:VeterinaryID" json:"schedules,omitempty"`
	Customers []CustomerProfile `gorm:"foreignKey:VeterinaryID" json:"customers,omitempty"`
}

func (VeterinaryProfile) TableName() string {
	return "veterinary_profiles"
}
