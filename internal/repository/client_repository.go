package repository

import (
	"craftconnect_backend/internal/model"

	"gorm.io/gorm"
)

type ClientRepository struct {
	DB *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(client *model.Client) error {
	return r.DB.Create(client).Error
}

func (r *ClientRepository) FindByID(id uint) (*model.Client, error) {
	var client model.Client
	err := r.DB.First(&client, id).Error
	return &client, err
}

func (r *ClientRepository) FindByEmail(email string) (*model.Client, error) {
	var client model.Client
	err := r.DB.Where("email = ?", email).First(&client).Error
	return &client, err
}

func (r *ClientRepository) FindByPhone(phone string) (*model.Client, error) {
	var client model.Client
	err := r.DB.Where("phone_number = ?", phone).First(&client).Error
	return &client, err
}

func (r *ClientRepository) Update(client *model.Client) error {
	return r.DB.Save(client).Error
}
