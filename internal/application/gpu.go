package application

import (
	"errors"
	"strings"

	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/internal/repository"
)

var ErrGpuNotFound = errors.New("gpu resource not found")

type GpuService struct {
	Repos *repository.Repos
}

func NewGpuService(repos *repository.Repos) *GpuService {
	return &GpuService{
		Repos: repos,
	}
}

var _ GpuAPI = (*GpuService)(nil)

func (s *GpuService) AvailableGpus() ([]gpu.GpuResource, error) {
	return s.Repos.Gpu.ListAvailable()
}

func (s *GpuService) UserGpus(ownerID string) ([]gpu.GpuResource, error) {
	return s.Repos.Gpu.ListByOwner(ownerID)
}

// ListGpus returns the whole fleet, optionally narrowed by status and a
// case-insensitive name substring.
func (s *GpuService) ListGpus(status gpu.Status, query string) ([]gpu.GpuResource, error) {
	if status != "" && !gpu.ValidStatus(status) {
		return nil, invalid("status", "must be online, offline or busy")
	}

	gpus, err := s.Repos.Gpu.ListAll()
	if err != nil {
		return nil, err
	}
	if status == "" && query == "" {
		return gpus, nil
	}

	q := strings.ToLower(query)
	out := []gpu.GpuResource{}
	for _, g := range gpus {
		if status != "" && g.Status != status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(g.GpuName), q) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// CreateGpu registers a device. Every device enters the fleet offline
// regardless of the submitted form; the owner flips it online afterwards.
func (s *GpuService) CreateGpu(ownerID string, form gpu.CreateGpuResourceForm) (gpu.GpuResource, error) {
	g := gpu.GpuResource{
		OwnerID:           ownerID,
		GpuName:           form.GpuName,
		GpuMemory:         form.GpuMemory,
		ComputeCapability: form.ComputeCapability,
		Status:            gpu.StatusOffline,
		IsShared:          form.IsShared,
	}
	if err := s.Repos.Gpu.Create(&g); err != nil {
		return gpu.GpuResource{}, err
	}
	return g, nil
}

func (s *GpuService) UpdateGpuStatus(id string, status gpu.Status) (gpu.GpuResource, error) {
	if !gpu.ValidStatus(status) {
		return gpu.GpuResource{}, invalid("status", "must be online, offline or busy")
	}

	g, err := s.Repos.Gpu.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return gpu.GpuResource{}, ErrGpuNotFound
		}
		return gpu.GpuResource{}, err
	}

	g.Status = status
	if err := s.Repos.Gpu.Save(&g); err != nil {
		return gpu.GpuResource{}, err
	}
	return g, nil
}

func (s *GpuService) ToggleGpuSharing(id string, isShared bool) (gpu.GpuResource, error) {
	g, err := s.Repos.Gpu.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return gpu.GpuResource{}, ErrGpuNotFound
		}
		return gpu.GpuResource{}, err
	}

	g.IsShared = isShared
	if err := s.Repos.Gpu.Save(&g); err != nil {
		return gpu.GpuResource{}, err
	}
	return g, nil
}
