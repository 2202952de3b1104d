package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const TypeLogin = "login"

// UserActivity is an append-only audit record. Rows are never updated or
// deleted except by the retention cleanup task.
type UserActivity struct {
	ID           string            `gorm:"primaryKey;type:uuid;column:id" json:"id"`
	UserID       string            `gorm:"not null;type:uuid;index;column:user_id" json:"user_id"`
	ActivityType string            `gorm:"not null;size:50;index;column:activity_type" json:"activity_type"`
	ActivityData datatypes.JSONMap `gorm:"column:activity_data" json:"activity_data"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}

func (a *UserActivity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// LoginInfo is the payload captured on each login activity.
type LoginInfo struct {
	Username    string `json:"username"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	LoginMethod string `json:"login_method"`
	IPAddress   string `json:"ip_address"`
	UserAgent   string `json:"user_agent"`
}
