package request

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusMatched   Status = "matched"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusMatched, StatusRunning, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

// ComputeRequest is a demand for compute submitted by a profile.
// StartedAt and CompletedAt are set only on the relevant transitions and
// are independently settable (matching stamps StartedAt as well).
type ComputeRequest struct {
	ID                string     `gorm:"primaryKey;type:uuid;column:id" json:"id"`
	RequesterID       string     `gorm:"not null;type:uuid;index;column:requester_id" json:"requester_id"`
	AssignedGpuID     *string    `gorm:"type:uuid;column:assigned_gpu_id" json:"assigned_gpu_id,omitempty"`
	TaskDescription   string     `gorm:"not null;type:text;column:task_description" json:"task_description"`
	RequiredMemory    int        `gorm:"not null;column:required_memory" json:"required_memory"`
	EstimatedDuration int        `gorm:"not null;column:estimated_duration" json:"estimated_duration"`
	Priority          Priority   `gorm:"default:'normal';type:varchar(10);column:priority" json:"priority"`
	Status            Status     `gorm:"default:'pending';type:varchar(10);column:status" json:"status"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	StartedAt         *time.Time `gorm:"column:started_at" json:"started_at,omitempty"`
	CompletedAt       *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
}

func (ComputeRequest) TableName() string {
	return "compute_requests"
}

func (r *ComputeRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
