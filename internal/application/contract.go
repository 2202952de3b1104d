package application

import (
	"github.com/gpushare/market-go/internal/domain/activity"
	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/internal/domain/profile"
	"github.com/gpushare/market-go/internal/domain/request"
	"github.com/gpushare/market-go/internal/domain/schedule"
	"github.com/gpushare/market-go/internal/domain/stats"
)

// The API interfaces are the backend-neutral data-access contract. The
// service layer implements them over repositories; the restclient package
// implements them over a remote HTTP endpoint. Callers that program
// against these interfaces work unchanged on either binding.

type ProfileAPI interface {
	// CurrentProfile returns nil without error when no profile exists
	// for the given id.
	CurrentProfile(profileID string) (*profile.Profile, error)
	UpdateProfile(id string, input profile.UpdateProfileInput) (profile.Profile, error)
	AllProfiles() ([]profile.Profile, error)
}

type GpuAPI interface {
	// AvailableGpus returns online AND shared devices, best score first.
	AvailableGpus() ([]gpu.GpuResource, error)
	UserGpus(ownerID string) ([]gpu.GpuResource, error)
	CreateGpu(ownerID string, form gpu.CreateGpuResourceForm) (gpu.GpuResource, error)
	UpdateGpuStatus(id string, status gpu.Status) (gpu.GpuResource, error)
	ToggleGpuSharing(id string, isShared bool) (gpu.GpuResource, error)
}

type RequestAPI interface {
	AllRequests() ([]request.ComputeRequest, error)
	UserRequests(requesterID string) ([]request.ComputeRequest, error)
	CreateRequest(requesterID string, form request.CreateComputeRequestForm) (request.ComputeRequest, error)
	MatchRequestToGpu(requestID, gpuID string) (request.ComputeRequest, error)
	UpdateRequestStatus(requestID string, status request.Status) (request.ComputeRequest, error)
}

type ScheduleAPI interface {
	GpuSchedules(gpuID string) ([]schedule.SharingSchedule, error)
	CreateSchedule(userID string, form schedule.CreateSharingScheduleForm) (schedule.SharingSchedule, error)
	UpdateSchedule(id string, input schedule.UpdateScheduleInput) (schedule.SharingSchedule, error)
	DeleteSchedule(id string) error
}

type ActivityAPI interface {
	RecordActivity(userID, activityType string, data map[string]interface{}) error
	RecordLogin(userID string, info activity.LoginInfo) error
	UserActivities(userID string, limit int) ([]activity.UserActivity, error)
	RecentActivities(limit int) ([]activity.UserActivity, error)
	ActivityStats() (stats.ActivityStats, error)
}

type StatsAPI interface {
	PlatformStats() (stats.PlatformStats, error)
}

// API bundles one implementation of each contract interface.
type API struct {
	Profile  ProfileAPI
	Gpu      GpuAPI
	Request  RequestAPI
	Schedule ScheduleAPI
	Activity ActivityAPI
	Stats    StatsAPI
}
