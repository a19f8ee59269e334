package repository

import (
	"craftconnect_backend/internal/model"

	"gorm.io/gorm"
)

type TradeCategoryRepository struct {
	DB *gorm.DB
}

func NewTradeCategoryRepository(db *gorm.DB) *TradeCategoryRepository {
	return &TradeCategoryRepository{DB: db}
}

func (r *TradeCategoryRepository) Create(category *model.TradeCategory) error {
	return r.DB.Create(category).Error
}

func (r *TradeCategoryRepository) FindAll() ([]model.TradeCategory, error) {
	var categories []model.TradeCategory
	err := r.DB.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *TradeCategoryRepository) FindByID(id uint) (*model.TradeCategory, error) {
	var category model.TradeCategory
	err := r.DB.First(&category, id).Error
	return &category, err
}

func (r *TradeCategoryRepository) FindByName(name string) (*model.TradeCategory, error) {
	var category model.TradeCategory
	err := r.DB.Where("name = ?", name).First(&category).Error
	return &category, err
}
