package repository

import (
	"github.com/gpushare/market-go/internal/domain/gpu"
	"gorm.io/gorm"
)

type GpuRepo interface {
	GetByID(id string) (gpu.GpuResource, error)
	Create(g *gpu.GpuResource) error
	Save(g *gpu.GpuResource) error
	ListAvailable() ([]gpu.GpuResource, error)
	ListByOwner(ownerID string) ([]gpu.GpuResource, error)
	ListAll() ([]gpu.GpuResource, error)
	Count() (int64, error)
	CountByStatus(status gpu.Status) (int64, error)
	WithTx(tx *gorm.DB) GpuRepo
}

type DBGpuRepo struct {
	db *gorm.DB
}

func NewGpuRepo(db *gorm.DB) *DBGpuRepo {
	return &DBGpuRepo{
		db: db,
	}
}

func (r *DBGpuRepo) GetByID(id string) (gpu.GpuResource, error) {
	var g gpu.GpuResource
	if err := r.db.Where("id = ?", id).First(&g).Error; err != nil {
		return g, mapNotFound(err)
	}
	return g, nil
}

func (r *DBGpuRepo) Create(g *gpu.GpuResource) error {
	return r.db.Create(g).Error
}

func (r *DBGpuRepo) Save(g *gpu.GpuResource) error {
	return r.db.Save(g).Error
}

// ListAvailable returns the shared pool: online AND shared, best score first.
func (r *DBGpuRepo) ListAvailable() ([]gpu.GpuResource, error) {
	gpus := []gpu.GpuResource{}
	err := r.db.
		Where("is_shared = ? AND status = ?", true, gpu.StatusOnline).
		Order("performance_score DESC").
		Find(&gpus).Error
	return gpus, err
}

func (r *DBGpuRepo) ListByOwner(ownerID string) ([]gpu.GpuResource, error) {
	gpus := []gpu.GpuResource{}
	err := r.db.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&gpus).Error
	return gpus, err
}

func (r *DBGpuRepo) ListAll() ([]gpu.GpuResource, error) {
	gpus := []gpu.GpuResource{}
	err := r.db.Order("created_at DESC").Find(&gpus).Error
	return gpus, err
}

func (r *DBGpuRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&gpu.GpuResource{}).Count(&n).Error
	return n, err
}

func (r *DBGpuRepo) CountByStatus(status gpu.Status) (int64, error) {
	var n int64
	err := r.db.Model(&gpu.GpuResource{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *DBGpuRepo) WithTx(tx *gorm.DB) GpuRepo {
	if tx == nil {
		return r
	}
	return &DBGpuRepo{
		db: tx,
	}
}
