package schedule

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SharingSchedule is a recurring weekly availability window for one GPU.
// DayOfWeek runs 0-6 with 0 = Sunday; times are "HH:MM" local wall clock.
type SharingSchedule struct {
	ID        string    `gorm:"primaryKey;type:uuid;column:id" json:"id"`
	UserID    string    `gorm:"not null;type:uuid;column:user_id" json:"user_id"`
	GpuID     string    `gorm:"not null;type:uuid;index;column:gpu_id" json:"gpu_id"`
	DayOfWeek int       `gorm:"not null;column:day_of_week" json:"day_of_week"`
	StartTime string    `gorm:"not null;size:5;column:start_time" json:"start_time"`
	EndTime   string    `gorm:"not null;size:5;column:end_time" json:"end_time"`
	IsActive  bool      `gorm:"default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SharingSchedule) TableName() string {
	return "sharing_schedules"
}

func (s *SharingSchedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
