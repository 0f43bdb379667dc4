package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin      = 1
	RoleIDVeterinary = 2
	RoleIDCustomer   = 3
)

// Role name constants
const (
	RoleAdmin      = "admin"
	RoleVeterinary = "veterinary"
	RoleCustomer   = "customer"
)

// RoleName returns the canonical name for a role ID.
func RoleNameByID(id int) string {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDVeterinary:
		return RoleVeterinary
	case RoleIDCustomer:
		return RoleCustomer
	default:
		return ""
	}
}
