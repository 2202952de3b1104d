package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Profile  ProfileRepo
	Gpu      GpuRepo
	Request  RequestRepo
	Schedule ScheduleRepo
	Activity ActivityRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Profile:  NewProfileRepo(db),
		Gpu:      NewGpuRepo(db),
		Request:  NewRequestRepo(db),
		Schedule: NewScheduleRepo(db),
		Activity: NewActivityRepo(db),
		db:       db,
	}
}

// NewWith assembles a container over non-database bindings (REST client,
// demo store). Such containers run ExecTx without a real transaction.
func NewWith(p ProfileRepo, g GpuRepo, r RequestRepo, s ScheduleRepo, a ActivityRepo) *Repos {
	return &Repos{
		Profile:  p,
		Gpu:      g,
		Request:  r,
		Schedule: s,
		Activity: a,
	}
}

func (r *Repos) Begin() *gorm.DB {
	if r.db == nil {
		return nil
	}
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Profile:  r.Profile.WithTx(tx),
		Gpu:      r.Gpu.WithTx(tx),
		Request:  r.Request.WithTx(tx),
		Schedule: r.Schedule.WithTx(tx),
		Activity: r.Activity.WithTx(tx),
		db:       tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
