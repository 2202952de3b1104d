package profile

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type UserType string

const (
	UserTypeDemander UserType = "demander"
	UserTypeSupplier UserType = "supplier"
	UserTypeBoth     UserType = "both"
)

// Profile is a platform account. Exactly one profile exists per auth user;
// it is created on first login and never deleted.
type Profile struct {
	ID        string    `gorm:"primaryKey;type:uuid;column:id" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex;type:uuid;column:user_id" json:"user_id"`
	Phone     string    `gorm:"not null;size:20;index;column:phone" json:"phone"`
	Username  string    `gorm:"size:50;column:username" json:"username"`
	Role      Role      `gorm:"default:'user';type:varchar(10);column:role" json:"role"`
	UserType  UserType  `gorm:"default:'demander';type:varchar(10);column:user_type" json:"user_type"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.UserID == "" {
		p.UserID = uuid.NewString()
	}
	return nil
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
