package repository

import (
	"craftconnect_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(assessment *model.Assessment) error {
	return r.DB.Create(assessment).Error
}

func (r *AssessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.DB.First(&assessment, id).Error
	return &assessment, err
}

func (r *AssessmentRepository) FindByArtisan(artisanID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.DB.Where("artisan_id = ?", artisanID).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}

func (r *AssessmentRepository) Update(assessment *model.Assessment) error {
	return r.DB.Save(assessment).Error
}
