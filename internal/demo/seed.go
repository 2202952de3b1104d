package demo

import (
	"time"

	"github.com/gpushare/market-go/internal/domain/activity"
	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/internal/domain/profile"
	"github.com/gpushare/market-go/internal/domain/request"
	"github.com/gpushare/market-go/internal/domain/schedule"
	"gorm.io/datatypes"
)

// Seed loads a small, self-consistent marketplace: three accounts, a mixed
// GPU fleet and requests in several lifecycle states. CreatedAt values are
// staggered so list ordering is deterministic.
func Seed(s *Store) {
	base := time.Now().Add(-48 * time.Hour)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	admin := profile.Profile{
		ID:        "11111111-1111-4111-8111-111111111111",
		UserID:    "a1111111-1111-4111-8111-111111111111",
		Phone:     "13800000001",
		Username:  "admin",
		Role:      profile.RoleAdmin,
		UserType:  profile.UserTypeBoth,
		CreatedAt: at(0),
	}
	supplier := profile.Profile{
		ID:        "22222222-2222-4222-8222-222222222222",
		UserID:    "a2222222-2222-4222-8222-222222222222",
		Phone:     "13800000002",
		Username:  "supplier_wang",
		Role:      profile.RoleUser,
		UserType:  profile.UserTypeSupplier,
		CreatedAt: at(1),
	}
	demander := profile.Profile{
		ID:        "33333333-3333-4333-8333-333333333333",
		UserID:    "a3333333-3333-4333-8333-333333333333",
		Phone:     "13800000003",
		Username:  "demander_li",
		Role:      profile.RoleUser,
		UserType:  profile.UserTypeDemander,
		CreatedAt: at(2),
	}
	for _, p := range []profile.Profile{admin, supplier, demander} {
		s.profiles[p.ID] = p
	}

	cc89 := "8.9"
	cc86 := "8.6"
	gpus := []gpu.GpuResource{
		{
			ID:                "44444444-4444-4444-8444-444444444441",
			OwnerID:           supplier.ID,
			GpuName:           "RTX 4090",
			GpuMemory:         24,
			ComputeCapability: &cc89,
			Status:            gpu.StatusOnline,
			IsShared:          true,
			PerformanceScore:  90,
			CreatedAt:         at(3),
			UpdatedAt:         at(3),
		},
		{
			ID:                "44444444-4444-4444-8444-444444444442",
			OwnerID:           supplier.ID,
			GpuName:           "RTX 3090",
			GpuMemory:         24,
			ComputeCapability: &cc86,
			Status:            gpu.StatusOnline,
			IsShared:          true,
			PerformanceScore:  70,
			CreatedAt:         at(4),
			UpdatedAt:         at(4),
		},
		{
			ID:               "44444444-4444-4444-8444-444444444443",
			OwnerID:          admin.ID,
			GpuName:          "RTX 3060",
			GpuMemory:        12,
			Status:           gpu.StatusOnline,
			IsShared:         true,
			PerformanceScore: 50,
			CreatedAt:        at(5),
			UpdatedAt:        at(5),
		},
		{
			ID:               "44444444-4444-4444-8444-444444444444",
			OwnerID:          supplier.ID,
			GpuName:          "Tesla T4",
			GpuMemory:        16,
			Status:           gpu.StatusOffline,
			IsShared:         true,
			PerformanceScore: 40,
			CreatedAt:        at(6),
			UpdatedAt:        at(6),
		},
	}
	for _, g := range gpus {
		s.gpus[g.ID] = g
	}

	doneStart := at(7)
	doneEnd := at(9)
	requests := []request.ComputeRequest{
		{
			ID:                "55555555-5555-4555-8555-555555555551",
			RequesterID:       demander.ID,
			TaskDescription:   "Train an image classifier",
			RequiredMemory:    16,
			EstimatedDuration: 120,
			Priority:          request.PriorityHigh,
			Status:            request.StatusPending,
			CreatedAt:         at(10),
		},
		{
			ID:                "55555555-5555-4555-8555-555555555552",
			RequesterID:       demander.ID,
			AssignedGpuID:     &gpus[0].ID,
			TaskDescription:   "Batch inference over nightly data",
			RequiredMemory:    8,
			EstimatedDuration: 60,
			Priority:          request.PriorityNormal,
			Status:            request.StatusCompleted,
			CreatedAt:         at(6),
			StartedAt:         &doneStart,
			CompletedAt:       &doneEnd,
		},
	}
	for _, req := range requests {
		s.requests[req.ID] = req
	}

	schedules := []schedule.SharingSchedule{
		{
			ID:        "66666666-6666-4666-8666-666666666661",
			UserID:    supplier.UserID,
			GpuID:     gpus[0].ID,
			DayOfWeek: 1,
			StartTime: "09:00",
			EndTime:   "18:00",
			IsActive:  true,
			CreatedAt: at(3),
		},
		{
			ID:        "66666666-6666-4666-8666-666666666662",
			UserID:    supplier.UserID,
			GpuID:     gpus[0].ID,
			DayOfWeek: 6,
			StartTime: "00:00",
			EndTime:   "23:59",
			IsActive:  true,
			CreatedAt: at(4),
		},
	}
	for _, sc := range schedules {
		s.schedules[sc.ID] = sc
	}

	s.activities["77777777-7777-4777-8777-777777777771"] = activity.UserActivity{
		ID:           "77777777-7777-4777-8777-777777777771",
		UserID:       admin.UserID,
		ActivityType: activity.TypeLogin,
		ActivityData: datatypes.JSONMap{"username": admin.Username, "login_method": "phone_code"},
		CreatedAt:    at(12),
	}
}

// NewSeededStore is the one-call entry point for demo mode.
func NewSeededStore() *Store {
	s := NewStore()
	Seed(s)
	return s
}
