package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerProfile represents pet-owner profile data.
// VeterinaryID is nil until the customer registers with a clinic; bookings
// are always placed with the bound veterinary.
type CustomerProfile struct {
	UserID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	VeterinaryID *uuid.UUID `gorm:"type:uuid;index" json:"veterinary_id,omitempty"`
	PhoneNumber  string     `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	Address      string     `gorm:"type:text" json:"address,omitempty"`
	JoinedAt     *time.Time `gorm:"type:timestamptz" json:"joined_at,omitempty"`

	// Relationships
	User       User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Veterinary *VeterinaryProfile `gorm:"foreignKey:VeterinaryID" json:"veterinary,omitempty"`
	Pets       []Pet              `gorm:"foreignKey:OwnerID" json:"pets,omitempty"`
}

func (CustomerProfile) TableName() string {
	return "customer_profiles"
}
