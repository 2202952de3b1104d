package repository

import (
	"errors"

	"github.com/gpushare/market-go/internal/domain/profile"
	"gorm.io/gorm"
)

type ProfileRepo interface {
	GetByID(id string) (profile.Profile, error)
	GetByUserID(userID string) (profile.Profile, error)
	GetByPhone(phone string) (profile.Profile, error)
	Create(p *profile.Profile) error
	Save(p *profile.Profile) error
	ListAll() ([]profile.Profile, error)
	Count() (int64, error)
	WithTx(tx *gorm.DB) ProfileRepo
}

type DBProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *DBProfileRepo {
	return &DBProfileRepo{
		db: db,
	}
}

func (r *DBProfileRepo) GetByID(id string) (profile.Profile, error) {
	var p profile.Profile
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return p, mapNotFound(err)
	}
	return p, nil
}

func (r *DBProfileRepo) GetByUserID(userID string) (profile.Profile, error) {
	var p profile.Profile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return p, mapNotFound(err)
	}
	return p, nil
}

func (r *DBProfileRepo) GetByPhone(phone string) (profile.Profile, error) {
	var p profile.Profile
	if err := r.db.Where("phone = ?", phone).First(&p).Error; err != nil {
		return p, mapNotFound(err)
	}
	return p, nil
}

func (r *DBProfileRepo) Create(p *profile.Profile) error {
	return r.db.Create(p).Error
}

func (r *DBProfileRepo) Save(p *profile.Profile) error {
	return r.db.Save(p).Error
}

func (r *DBProfileRepo) ListAll() ([]profile.Profile, error) {
	profiles := []profile.Profile{}
	err := r.db.Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *DBProfileRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&profile.Profile{}).Count(&n).Error
	return n, err
}

func (r *DBProfileRepo) WithTx(tx *gorm.DB) ProfileRepo {
	if tx == nil {
		return r
	}
	return &DBProfileRepo{
		db: tx,
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
