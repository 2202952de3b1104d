package repository

import (
	"github.com/gpushare/market-go/internal/domain/request"
	"gorm.io/gorm"
)

type RequestRepo interface {
	GetByID(id string) (request.ComputeRequest, error)
	Create(req *request.ComputeRequest) error
	Save(req *request.ComputeRequest) error
	ListByRequester(requesterID string) ([]request.ComputeRequest, error)
	ListAll() ([]request.ComputeRequest, error)
	CountByStatus(status request.Status) (int64, error)
	WithTx(tx *gorm.DB) RequestRepo
}

type DBRequestRepo struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) *DBRequestRepo {
	return &DBRequestRepo{
		db: db,
	}
}

func (r *DBRequestRepo) GetByID(id string) (request.ComputeRequest, error) {
	var req request.ComputeRequest
	if err := r.db.Where("id = ?", id).First(&req).Error; err != nil {
		return req, mapNotFound(err)
	}
	return req, nil
}

func (r *DBRequestRepo) Create(req *request.ComputeRequest) error {
	return r.db.Create(req).Error
}

func (r *DBRequestRepo) Save(req *request.ComputeRequest) error {
	return r.db.Save(req).Error
}

func (r *DBRequestRepo) ListByRequester(requesterID string) ([]request.ComputeRequest, error) {
	reqs := []request.ComputeRequest{}
	err := r.db.
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) ListAll() ([]request.ComputeRequest, error) {
	reqs := []request.ComputeRequest{}
	err := r.db.Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) CountByStatus(status request.Status) (int64, error) {
	var n int64
	err := r.db.Model(&request.ComputeRequest{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *DBRequestRepo) WithTx(tx *gorm.DB) RequestRepo {
	if tx == nil {
		return r
	}
	return &DBRequestRepo{
		db: tx,
	}
}
