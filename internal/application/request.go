package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gpushare/market-go/internal/domain/request"
	"github.com/gpushare/market-go/internal/repository"
)

var (
	ErrRequestNotFound    = errors.New("compute request not found")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrGpuUnavailable     = errors.New("gpu is not available for matching")
	ErrInsufficientMemory = errors.New("gpu memory below requested amount")
)

type RequestService struct {
	Repos *repository.Repos
}

func NewRequestService(repos *repository.Repos) *RequestService {
	return &RequestService{
		Repos: repos,
	}
}

var _ RequestAPI = (*RequestService)(nil)

func (s *RequestService) AllRequests() ([]request.ComputeRequest, error) {
	return s.Repos.Request.ListAll()
}

func (s *RequestService) UserRequests(requesterID string) ([]request.ComputeRequest, error) {
	return s.Repos.Request.ListByRequester(requesterID)
}

func (s *RequestService) CreateRequest(requesterID string, form request.CreateComputeRequestForm) (request.ComputeRequest, error) {
	if strings.TrimSpace(form.TaskDescription) == "" {
		return request.ComputeRequest{}, invalid("task_description", "must not be empty")
	}
	if form.RequiredMemory < 1 {
		return request.ComputeRequest{}, invalid("required_memory", "must be at least 1")
	}
	if form.EstimatedDuration < 1 {
		return request.ComputeRequest{}, invalid("estimated_duration", "must be at least 1")
	}

	priority := request.PriorityNormal
	if form.Priority != "" {
		priority = request.Priority(form.Priority)
		if !request.ValidPriority(priority) {
			return request.ComputeRequest{}, invalid("priority", "must be low, normal or high")
		}
	}

	req := request.ComputeRequest{
		RequesterID:       requesterID,
		TaskDescription:   form.TaskDescription,
		RequiredMemory:    form.RequiredMemory,
		EstimatedDuration: form.EstimatedDuration,
		Priority:          priority,
		Status:            request.StatusPending,
	}
	if err := s.Repos.Request.Create(&req); err != nil {
		return request.ComputeRequest{}, err
	}
	return req, nil
}

// MatchRequestToGpu assigns a device to a pending request and stamps the
// match time. The device itself is not flipped to busy; its status keeps
// tracking liveness only.
func (s *RequestService) MatchRequestToGpu(requestID, gpuID string) (request.ComputeRequest, error) {
	var matched request.ComputeRequest

	err := s.Repos.ExecTx(func(r *repository.Repos) error {
		req, err := r.Request.GetByID(requestID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		if !request.CanTransition(req.Status, request.StatusMatched) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, req.Status, request.StatusMatched)
		}

		g, err := r.Gpu.GetByID(gpuID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrGpuNotFound
			}
			return err
		}
		if !g.Available() {
			return ErrGpuUnavailable
		}
		if g.GpuMemory < req.RequiredMemory {
			return ErrInsufficientMemory
		}

		now := time.Now()
		req.AssignedGpuID = &g.ID
		req.Status = request.StatusMatched
		req.StartedAt = &now

		if err := r.Request.Save(&req); err != nil {
			return err
		}
		matched = req
		return nil
	})
	if err != nil {
		return request.ComputeRequest{}, err
	}
	return matched, nil
}

// UpdateRequestStatus walks the request along the lifecycle. Re-applying a
// terminal status is a no-op returning the stored row.
func (s *RequestService) UpdateRequestStatus(requestID string, status request.Status) (request.ComputeRequest, error) {
	if !request.ValidStatus(status) {
		return request.ComputeRequest{}, invalid("status", "unknown request status")
	}

	req, err := s.Repos.Request.GetByID(requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return request.ComputeRequest{}, ErrRequestNotFound
		}
		return request.ComputeRequest{}, err
	}

	if req.Status == status && status.Terminal() {
		return req, nil
	}

	if !request.CanTransition(req.Status, status) {
		return request.ComputeRequest{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, req.Status, status)
	}

	now := time.Now()
	switch status {
	case request.StatusRunning:
		if req.StartedAt == nil {
			req.StartedAt = &now
		}
	case request.StatusCompleted, request.StatusFailed:
		req.CompletedAt = &now
	}
	req.Status = status

	if err := s.Repos.Request.Save(&req); err != nil {
		return request.ComputeRequest{}, err
	}
	return req, nil
}
