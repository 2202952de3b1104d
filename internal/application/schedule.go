package application

import (
	"errors"
	"time"

	"github.com/gpushare/market-go/internal/domain/schedule"
	"github.com/gpushare/market-go/internal/repository"
)

var ErrScheduleNotFound = errors.New("sharing schedule not found")

type ScheduleService struct {
	Repos *repository.Repos
}

func NewScheduleService(repos *repository.Repos) *ScheduleService {
	return &ScheduleService{
		Repos: repos,
	}
}

var _ ScheduleAPI = (*ScheduleService)(nil)

func (s *ScheduleService) GpuSchedules(gpuID string) ([]schedule.SharingSchedule, error) {
	return s.Repos.Schedule.ListByGpu(gpuID)
}

func (s *ScheduleService) CreateSchedule(userID string, form schedule.CreateSharingScheduleForm) (schedule.SharingSchedule, error) {
	if err := validateWindow(form.DayOfWeek, form.StartTime, form.EndTime); err != nil {
		return schedule.SharingSchedule{}, err
	}

	if _, err := s.Repos.Gpu.GetByID(form.GpuID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return schedule.SharingSchedule{}, ErrGpuNotFound
		}
		return schedule.SharingSchedule{}, err
	}

	sc := schedule.SharingSchedule{
		UserID:    userID,
		GpuID:     form.GpuID,
		DayOfWeek: form.DayOfWeek,
		StartTime: form.StartTime,
		EndTime:   form.EndTime,
		IsActive:  true,
	}
	if err := s.Repos.Schedule.Create(&sc); err != nil {
		return schedule.SharingSchedule{}, err
	}
	return sc, nil
}

func (s *ScheduleService) UpdateSchedule(id string, input schedule.UpdateScheduleInput) (schedule.SharingSchedule, error) {
	sc, err := s.Repos.Schedule.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return schedule.SharingSchedule{}, ErrScheduleNotFound
		}
		return schedule.SharingSchedule{}, err
	}

	day := sc.DayOfWeek
	start := sc.StartTime
	end := sc.EndTime
	if input.DayOfWeek != nil {
		day = *input.DayOfWeek
	}
	if input.StartTime != nil {
		start = *input.StartTime
	}
	if input.EndTime != nil {
		end = *input.EndTime
	}
	if err := validateWindow(day, start, end); err != nil {
		return schedule.SharingSchedule{}, err
	}

	sc.DayOfWeek = day
	sc.StartTime = start
	sc.EndTime = end
	if input.IsActive != nil {
		sc.IsActive = *input.IsActive
	}

	if err := s.Repos.Schedule.Save(&sc); err != nil {
		return schedule.SharingSchedule{}, err
	}
	return sc, nil
}

func (s *ScheduleService) DeleteSchedule(id string) error {
	if _, err := s.Repos.Schedule.GetByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}
	return s.Repos.Schedule.Delete(id)
}

// validateWindow checks a weekly window before any store access. Day 0 is
// Sunday; times are HH:MM and the window must not be empty or inverted.
func validateWindow(day int, start, end string) error {
	if day < 0 || day > 6 {
		return invalid("day_of_week", "must be between 0 and 6")
	}
	startT, err := time.Parse("15:04", start)
	if err != nil {
		return invalid("start_time", "must be HH:MM")
	}
	endT, err := time.Parse("15:04", end)
	if err != nil {
		return invalid("end_time", "must be HH:MM")
	}
	if !startT.Before(endT) {
		return invalid("end_time", "must be after start_time")
	}
	return nil
}
