package repository

import (
	"github.com/gpushare/market-go/internal/domain/schedule"
	"gorm.io/gorm"
)

type ScheduleRepo interface {
	GetByID(id string) (schedule.SharingSchedule, error)
	Create(s *schedule.SharingSchedule) error
	Save(s *schedule.SharingSchedule) error
	Delete(id string) error
	ListByGpu(gpuID string) ([]schedule.SharingSchedule, error)
	WithTx(tx *gorm.DB) ScheduleRepo
}

type DBScheduleRepo struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) *DBScheduleRepo {
	return &DBScheduleRepo{
		db: db,
	}
}

func (r *DBScheduleRepo) GetByID(id string) (schedule.SharingSchedule, error) {
	var s schedule.SharingSchedule
	if err := r.db.Where("id = ?", id).First(&s).Error; err != nil {
		return s, mapNotFound(err)
	}
	return s, nil
}

func (r *DBScheduleRepo) Create(s *schedule.SharingSchedule) error {
	return r.db.Create(s).Error
}

func (r *DBScheduleRepo) Save(s *schedule.SharingSchedule) error {
	return r.db.Save(s).Error
}

func (r *DBScheduleRepo) Delete(id string) error {
	return r.db.Delete(&schedule.SharingSchedule{}, "id = ?", id).Error
}

func (r *DBScheduleRepo) ListByGpu(gpuID string) ([]schedule.SharingSchedule, error) {
	schedules := []schedule.SharingSchedule{}
	err := r.db.
		Where("gpu_id = ?", gpuID).
		Order("day_of_week ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *DBScheduleRepo) WithTx(tx *gorm.DB) ScheduleRepo {
	if tx == nil {
		return r
	}
	return &DBScheduleRepo{
		db: tx,
	}
}
