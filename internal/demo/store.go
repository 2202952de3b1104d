// Package demo provides an in-memory binding of the repository contract so
// the whole stack runs without Postgres. It backs demo mode and the HTTP
// integration tests.
package demo

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gpushare/market-go/internal/domain/activity"
	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/internal/domain/profile"
	"github.com/gpushare/market-go/internal/domain/request"
	"github.com/gpushare/market-go/internal/domain/schedule"
	"github.com/gpushare/market-go/internal/repository"
	"gorm.io/gorm"
)

// Store keeps every collection behind one mutex. Fine for a single-process
// demo; it makes no durability promises.
type Store struct {
	mu         sync.Mutex
	profiles   map[string]profile.Profile
	gpus       map[string]gpu.GpuResource
	requests   map[string]request.ComputeRequest
	schedules  map[string]schedule.SharingSchedule
	activities map[string]activity.UserActivity
}

func NewStore() *Store {
	return &Store{
		profiles:   map[string]profile.Profile{},
		gpus:       map[string]gpu.GpuResource{},
		requests:   map[string]request.ComputeRequest{},
		schedules:  map[string]schedule.SharingSchedule{},
		activities: map[string]activity.UserActivity{},
	}
}

// NewRepos wraps the store in a repository container so the service layer
// runs on it unchanged.
func NewRepos(s *Store) *repository.Repos {
	return repository.NewWith(
		&profileRepo{s},
		&gpuRepo{s},
		&requestRepo{s},
		&scheduleRepo{s},
		&activityRepo{s},
	)
}

type profileRepo struct{ s *Store }

func (r *profileRepo) GetByID(id string) (profile.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[id]
	if !ok {
		return profile.Profile{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *profileRepo) GetByUserID(userID string) (profile.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return profile.Profile{}, repository.ErrNotFound
}

func (r *profileRepo) GetByPhone(phone string) (profile.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.profiles {
		if p.Phone == phone {
			return p, nil
		}
	}
	return profile.Profile{}, repository.ErrNotFound
}

func (r *profileRepo) Create(p *profile.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.UserID == "" {
		p.UserID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.s.profiles[p.ID] = *p
	return nil
}

func (r *profileRepo) Save(p *profile.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.profiles[p.ID] = *p
	return nil
}

func (r *profileRepo) ListAll() ([]profile.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []profile.Profile{}
	for _, p := range r.s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *profileRepo) Count() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.profiles)), nil
}

func (r *profileRepo) WithTx(tx *gorm.DB) repository.ProfileRepo { return r }

type gpuRepo struct{ s *Store }

func (r *gpuRepo) GetByID(id string) (gpu.GpuResource, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.gpus[id]
	if !ok {
		return gpu.GpuResource{}, repository.ErrNotFound
	}
	return g, nil
}

func (r *gpuRepo) Create(g *gpu.GpuResource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now
	r.s.gpus[g.ID] = *g
	return nil
}

func (r *gpuRepo) Save(g *gpu.GpuResource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g.UpdatedAt = time.Now()
	r.s.gpus[g.ID] = *g
	return nil
}

func (r *gpuRepo) ListAvailable() ([]gpu.GpuResource, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []gpu.GpuResource{}
	for _, g := range r.s.gpus {
		if g.Available() {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PerformanceScore > out[j].PerformanceScore })
	return out, nil
}

func (r *gpuRepo) ListByOwner(ownerID string) ([]gpu.GpuResource, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []gpu.GpuResource{}
	for _, g := range r.s.gpus {
		if g.OwnerID == ownerID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *gpuRepo) ListAll() ([]gpu.GpuResource, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []gpu.GpuResource{}
	for _, g := range r.s.gpus {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *gpuRepo) Count() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.gpus)), nil
}

func (r *gpuRepo) CountByStatus(status gpu.Status) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, g := range r.s.gpus {
		if g.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *gpuRepo) WithTx(tx *gorm.DB) repository.GpuRepo { return r }

type requestRepo struct{ s *Store }

func (r *requestRepo) GetByID(id string) (request.ComputeRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.requests[id]
	if !ok {
		return request.ComputeRequest{}, repository.ErrNotFound
	}
	return req, nil
}

func (r *requestRepo) Create(req *request.ComputeRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	r.s.requests[req.ID] = *req
	return nil
}

func (r *requestRepo) Save(req *request.ComputeRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.requests[req.ID] = *req
	return nil
}

func (r *requestRepo) ListByRequester(requesterID string) ([]request.ComputeRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []request.ComputeRequest{}
	for _, req := range r.s.requests {
		if req.RequesterID == requesterID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *requestRepo) ListAll() ([]request.ComputeRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []request.ComputeRequest{}
	for _, req := range r.s.requests {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *requestRepo) CountByStatus(status request.Status) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, req := range r.s.requests {
		if req.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *requestRepo) WithTx(tx *gorm.DB) repository.RequestRepo { return r }

type scheduleRepo struct{ s *Store }

func (r *scheduleRepo) GetByID(id string) (schedule.SharingSchedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sc, ok := r.s.schedules[id]
	if !ok {
		return schedule.SharingSchedule{}, repository.ErrNotFound
	}
	return sc, nil
}

func (r *scheduleRepo) Create(sc *schedule.SharingSchedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sc.ID == "" {
		sc.ID = uuid.NewString()
	}
	if sc.CreatedAt.IsZero() {
		sc.CreatedAt = time.Now()
	}
	r.s.schedules[sc.ID] = *sc
	return nil
}

func (r *scheduleRepo) Save(sc *schedule.SharingSchedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.schedules[sc.ID] = *sc
	return nil
}

func (r *scheduleRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.schedules, id)
	return nil
}

func (r *scheduleRepo) ListByGpu(gpuID string) ([]schedule.SharingSchedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []schedule.SharingSchedule{}
	for _, sc := range r.s.schedules {
		if sc.GpuID == gpuID {
			out = append(out, sc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out, nil
}

func (r *scheduleRepo) WithTx(tx *gorm.DB) repository.ScheduleRepo { return r }

type activityRepo struct{ s *Store }

func (r *activityRepo) Create(a *activity.UserActivity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	r.s.activities[a.ID] = *a
	return nil
}

func (r *activityRepo) ListByUser(userID string, limit int) ([]activity.UserActivity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []activity.UserActivity{}
	for _, a := range r.s.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return clip(out, limit), nil
}

func (r *activityRepo) ListAll(limit int) ([]activity.UserActivity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []activity.UserActivity{}
	for _, a := range r.s.activities {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return clip(out, limit), nil
}

func (r *activityRepo) Count() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.activities)), nil
}

func (r *activityRepo) CountByType(activityType string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, a := range r.s.activities {
		if a.ActivityType == activityType {
			n++
		}
	}
	return n, nil
}

func (r *activityRepo) CountSince(since time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, a := range r.s.activities {
		if !a.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *activityRepo) DeleteOlderThan(retentionDays int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	for id, a := range r.s.activities {
		if a.CreatedAt.Before(cutoff) {
			delete(r.s.activities, id)
		}
	}
	return nil
}

func (r *activityRepo) WithTx(tx *gorm.DB) repository.ActivityRepo { return r }

func clip[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
