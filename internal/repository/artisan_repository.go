package repository

import (
	"craftconnect_backend/internal/model"

	"gorm.io/gorm"
)

type ArtisanRepository struct {
	DB *gorm.DB
}

func NewArtisanRepository(db *gorm.DB) *ArtisanRepository {
	return &ArtisanRepository{DB: db}
}

func (r *ArtisanRepository) Create(artisan *model.Artisan) error {
	return r.DB.Create(artisan).Error
}

func (r *ArtisanRepository) FindByID(id uint) (*model.Artisan, error) {
	var artisan model.Artisan
	err := r.DB.Preload("TradeCategory").First(&artisan, id).Error
	return &artisan, err
}

func (r *ArtisanRepository) FindByEmail(email string) (*model.Artisan, error) {
	var artisan model.Artisan
	err := r.DB.Preload("TradeCategory").Where("email = ?", email).First(&artisan).Error
	return &artisan, err
}

func (r *ArtisanRepository) FindByPhone(phone string) (*model.Artisan, error) {
	var artisan model.Artisan
	err := r.DB.Where("phone_number = ?", phone).First(&artisan).Error
	return &artisan, err
}

func (r *ArtisanRepository) Update(artisan *model.Artisan) error {
	return r.DB.Save(artisan).Error
}
