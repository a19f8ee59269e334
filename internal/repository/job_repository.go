package repository

import (
	"craftconnect_backend/internal/model"

	"gorm.io/gorm"
)

type JobRepository struct {
	DB *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{DB: db}
}

func (r *JobRepository) Create(job *model.JobPosting) error {
	return r.DB.Create(job).Error
}

func (r *JobRepository) FindByID(id uint) (*model.JobPosting, error) {
	var job model.JobPosting
	err := r.DB.Preload("TradeCategory").First(&job, id).Error
	return &job, err
}

func (r *JobRepository) FindOpen() ([]model.JobPosting, error) {
	var jobs []model.JobPosting
	err := r.DB.Preload("TradeCategory").
		Where("status = ?", model.JobOpen).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) Update(job *model.JobPosting) error {
	return r.DB.Save(job).Error
}
