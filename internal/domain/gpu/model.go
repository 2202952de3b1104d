package gpu

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
	StatusBusy    Status = "busy"
)

// ValidStatus reports whether s is one of the three liveness states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOnline, StatusOffline, StatusBusy:
		return true
	}
	return false
}

// GpuResource is one GPU device offered by a profile. Status and IsShared
// are independent axes: a device is in the shared pool only when it is
// online AND shared.
type GpuResource struct {
	ID                string    `gorm:"primaryKey;type:uuid;column:id" json:"id"`
	OwnerID           string    `gorm:"not null;type:uuid;index;column:owner_id" json:"owner_id"`
	GpuName           string    `gorm:"not null;size:100;column:gpu_name" json:"gpu_name"`
	GpuMemory         int       `gorm:"not null;column:gpu_memory" json:"gpu_memory"`
	ComputeCapability *string   `gorm:"size:20;column:compute_capability" json:"compute_capability,omitempty"`
	Status            Status    `gorm:"default:'offline';type:varchar(10);column:status" json:"status"`
	IsShared          bool      `gorm:"default:false;column:is_shared" json:"is_shared"`
	PerformanceScore  float64   `gorm:"default:0;column:performance_score" json:"performance_score"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GpuResource) TableName() string {
	return "gpu_resources"
}

func (g *GpuResource) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// Available reports whether the device belongs to the matching pool.
func (g *GpuResource) Available() bool {
	return g.Status == StatusOnline && g.IsShared
}
