package repository

import (
	"time"

	"github.com/gpushare/market-go/internal/domain/activity"
	"gorm.io/gorm"
)

type ActivityRepo interface {
	Create(a *activity.UserActivity) error
	ListByUser(userID string, limit int) ([]activity.UserActivity, error)
	ListAll(limit int) ([]activity.UserActivity, error)
	Count() (int64, error)
	CountByType(activityType string) (int64, error)
	CountSince(since time.Time) (int64, error)
	DeleteOlderThan(retentionDays int) error
	WithTx(tx *gorm.DB) ActivityRepo
}

type DBActivityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) *DBActivityRepo {
	return &DBActivityRepo{
		db: db,
	}
}

func (r *DBActivityRepo) Create(a *activity.UserActivity) error {
	return r.db.Create(a).Error
}

func (r *DBActivityRepo) ListByUser(userID string, limit int) ([]activity.UserActivity, error) {
	activities := []activity.UserActivity{}
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

func (r *DBActivityRepo) ListAll(limit int) ([]activity.UserActivity, error) {
	activities := []activity.UserActivity{}
	err := r.db.Order("created_at DESC").Limit(limit).Find(&activities).Error
	return activities, err
}

func (r *DBActivityRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&activity.UserActivity{}).Count(&n).Error
	return n, err
}

func (r *DBActivityRepo) CountByType(activityType string) (int64, error) {
	var n int64
	err := r.db.Model(&activity.UserActivity{}).Where("activity_type = ?", activityType).Count(&n).Error
	return n, err
}

func (r *DBActivityRepo) CountSince(since time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&activity.UserActivity{}).Where("created_at >= ?", since).Count(&n).Error
	return n, err
}

func (r *DBActivityRepo) DeleteOlderThan(retentionDays int) error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return r.db.Where("created_at < ?", cutoff).Delete(&activity.UserActivity{}).Error
}

func (r *DBActivityRepo) WithTx(tx *gorm.DB) ActivityRepo {
	if tx == nil {
		return r
	}
	return &DBActivityRepo{
		db: tx,
	}
}
