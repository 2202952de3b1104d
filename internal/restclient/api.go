package restclient

import (
	"net/url"
	"sort"

	"github.com/gpushare/market-go/internal/application"
	"github.com/gpushare/market-go/internal/domain/activity"
	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/internal/domain/profile"
	"github.com/gpushare/market-go/internal/domain/request"
	"github.com/gpushare/market-go/internal/domain/schedule"
	"github.com/gpushare/market-go/internal/domain/stats"
	"github.com/gpushare/market-go/internal/repository"
)

// API assembles the contract over the remote endpoint.
func (c *Client) API() *application.API {
	return &application.API{
		Profile:  &profileAPI{c},
		Gpu:      &gpuAPI{c},
		Request:  &requestAPI{c},
		Schedule: &scheduleAPI{c},
		Activity: &activityAPI{c},
		Stats:    &statsAPI{c},
	}
}

type profileAPI struct{ c *Client }

var _ application.ProfileAPI = (*profileAPI)(nil)

// CurrentProfile reports no session: the remote endpoint has no profile
// lookup yet.
func (a *profileAPI) CurrentProfile(profileID string) (*profile.Profile, error) {
	return nil, nil
}

func (a *profileAPI) UpdateProfile(id string, input profile.UpdateProfileInput) (profile.Profile, error) {
	return profile.Profile{}, repository.ErrNotImplemented
}

func (a *profileAPI) AllProfiles() ([]profile.Profile, error) {
	return nil, repository.ErrNotImplemented
}

type gpuAPI struct{ c *Client }

var _ application.GpuAPI = (*gpuAPI)(nil)

// AllGpus mirrors GET /gpus with optional name and status filters.
func (a *gpuAPI) AllGpus(q string, status gpu.Status) ([]gpu.GpuResource, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	if status != "" {
		query.Set("status", string(status))
	}
	gpus := []gpu.GpuResource{}
	if err := a.c.get("/gpus", query, &gpus); err != nil {
		return nil, err
	}
	return gpus, nil
}

// AvailableGpus narrows the online fleet to shared devices client-side;
// the remote listing has no is_shared filter.
func (a *gpuAPI) AvailableGpus() ([]gpu.GpuResource, error) {
	all, err := a.AllGpus("", gpu.StatusOnline)
	if err != nil {
		return nil, err
	}
	out := []gpu.GpuResource{}
	for _, g := range all {
		if g.IsShared {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PerformanceScore > out[j].PerformanceScore })
	return out, nil
}

func (a *gpuAPI) UserGpus(ownerID string) ([]gpu.GpuResource, error) {
	return []gpu.GpuResource{}, nil
}

func (a *gpuAPI) CreateGpu(ownerID string, form gpu.CreateGpuResourceForm) (gpu.GpuResource, error) {
	return gpu.GpuResource{}, repository.ErrNotImplemented
}

func (a *gpuAPI) UpdateGpuStatus(id string, status gpu.Status) (gpu.GpuResource, error) {
	return gpu.GpuResource{}, repository.ErrNotImplemented
}

func (a *gpuAPI) ToggleGpuSharing(id string, isShared bool) (gpu.GpuResource, error) {
	return gpu.GpuResource{}, repository.ErrNotImplemented
}

type requestAPI struct{ c *Client }

var _ application.RequestAPI = (*requestAPI)(nil)

func (a *requestAPI) AllRequests() ([]request.ComputeRequest, error) {
	reqs := []request.ComputeRequest{}
	if err := a.c.get("/requests", nil, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// UserRequests broadens to the full listing; the remote endpoint cannot
// scope by requester yet.
func (a *requestAPI) UserRequests(requesterID string) ([]request.ComputeRequest, error) {
	return a.AllRequests()
}

func (a *requestAPI) CreateRequest(requesterID string, form request.CreateComputeRequestForm) (request.ComputeRequest, error) {
	var req request.ComputeRequest
	if err := a.c.post("/requests", form, &req); err != nil {
		return request.ComputeRequest{}, err
	}
	return req, nil
}

func (a *requestAPI) MatchRequestToGpu(requestID, gpuID string) (request.ComputeRequest, error) {
	var req request.ComputeRequest
	if err := a.c.post("/requests/"+requestID+"/match", request.MatchRequestInput{GpuID: gpuID}, &req); err != nil {
		return request.ComputeRequest{}, err
	}
	return req, nil
}

func (a *requestAPI) UpdateRequestStatus(requestID string, status request.Status) (request.ComputeRequest, error) {
	var req request.ComputeRequest
	input := request.UpdateRequestStatusInput{Status: string(status)}
	if err := a.c.post("/requests/"+requestID+"/status", input, &req); err != nil {
		return request.ComputeRequest{}, err
	}
	return req, nil
}

type scheduleAPI struct{ c *Client }

var _ application.ScheduleAPI = (*scheduleAPI)(nil)

func (a *scheduleAPI) GpuSchedules(gpuID string) ([]schedule.SharingSchedule, error) {
	return []schedule.SharingSchedule{}, nil
}

func (a *scheduleAPI) CreateSchedule(userID string, form schedule.CreateSharingScheduleForm) (schedule.SharingSchedule, error) {
	return schedule.SharingSchedule{}, repository.ErrNotImplemented
}

func (a *scheduleAPI) UpdateSchedule(id string, input schedule.UpdateScheduleInput) (schedule.SharingSchedule, error) {
	return schedule.SharingSchedule{}, repository.ErrNotImplemented
}

func (a *scheduleAPI) DeleteSchedule(id string) error {
	return repository.ErrNotImplemented
}

type activityAPI struct{ c *Client }

var _ application.ActivityAPI = (*activityAPI)(nil)

func (a *activityAPI) RecordActivity(userID, activityType string, data map[string]interface{}) error {
	return repository.ErrNotImplemented
}

func (a *activityAPI) RecordLogin(userID string, info activity.LoginInfo) error {
	return repository.ErrNotImplemented
}

func (a *activityAPI) UserActivities(userID string, limit int) ([]activity.UserActivity, error) {
	return []activity.UserActivity{}, nil
}

func (a *activityAPI) RecentActivities(limit int) ([]activity.UserActivity, error) {
	return []activity.UserActivity{}, nil
}

func (a *activityAPI) ActivityStats() (stats.ActivityStats, error) {
	return stats.ActivityStats{}, nil
}

type statsAPI struct{ c *Client }

var _ application.StatsAPI = (*statsAPI)(nil)

func (a *statsAPI) PlatformStats() (stats.PlatformStats, error) {
	var st stats.PlatformStats
	if err := a.c.get("/stats", nil, &st); err != nil {
		return stats.PlatformStats{}, err
	}
	return st, nil
}
