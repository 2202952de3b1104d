package application

import (
	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/internal/domain/request"
	"github.com/gpushare/market-go/internal/domain/stats"
	"github.com/gpushare/market-go/internal/repository"
	log "github.com/sirupsen/logrus"
)

type StatsService struct {
	Repos *repository.Repos
}

func NewStatsService(repos *repository.Repos) *StatsService {
	return &StatsService{
		Repos: repos,
	}
}

var _ StatsAPI = (*StatsService)(nil)

// PlatformStats is computed by counting live rows. A count that fails is
// reported as zero rather than failing the whole aggregate.
func (s *StatsService) PlatformStats() (stats.PlatformStats, error) {
	var st stats.PlatformStats

	if n, err := s.Repos.Profile.Count(); err == nil {
		st.TotalUsers = n
	} else {
		log.WithError(err).Warn("failed to count profiles")
	}
	if n, err := s.Repos.Gpu.Count(); err == nil {
		st.TotalGpus = n
	} else {
		log.WithError(err).Warn("failed to count gpus")
	}
	if n, err := s.Repos.Gpu.CountByStatus(gpu.StatusOnline); err == nil {
		st.OnlineGpus = n
	} else {
		log.WithError(err).Warn("failed to count online gpus")
	}
	if n, err := s.Repos.Request.CountByStatus(request.StatusPending); err == nil {
		st.PendingRequests = n
	} else {
		log.WithError(err).Warn("failed to count pending requests")
	}
	if n, err := s.Repos.Request.CountByStatus(request.StatusCompleted); err == nil {
		st.CompletedRequests = n
	} else {
		log.WithError(err).Warn("failed to count completed requests")
	}

	return st, nil
}
