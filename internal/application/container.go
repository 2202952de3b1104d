package application

import (
	"github.com/gpushare/market-go/internal/repository"
)

type Services struct {
	Profile  *ProfileService
	Gpu      *GpuService
	Request  *RequestService
	Schedule *ScheduleService
	Activity *ActivityService
	Stats    *StatsService
}

func New(repos *repository.Repos) *Services {
	activity := NewActivityService(repos)
	return &Services{
		Profile:  NewProfileService(repos, activity),
		Gpu:      NewGpuService(repos),
		Request:  NewRequestService(repos),
		Schedule: NewScheduleService(repos),
		Activity: activity,
		Stats:    NewStatsService(repos),
	}
}

// API exposes the services as the backend-neutral contract.
func (s *Services) API() *API {
	return &API{
		Profile:  s.Profile,
		Gpu:      s.Gpu,
		Request:  s.Request,
		Schedule: s.Schedule,
		Activity: s.Activity,
		Stats:    s.Stats,
	}
}
