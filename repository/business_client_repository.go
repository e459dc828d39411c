package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type BusinessClientRepository struct{ DB *gorm.DB }

func NewBusinessClientRepository(db *gorm.DB) *BusinessClientRepository {
	return &BusinessClientRepository{DB: db}
}

func (r *BusinessClientRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.BusinessClient{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BusinessClientRepository) Create(tx *gorm.DB, bc *entity.BusinessClient) error {
	return tx.Create(bc).Error
}

func (r *BusinessClientRepository) FindByEmail(email string) (*entity.BusinessClient, error) {
	var bc entity.BusinessClient
	if err := r.DB.Where("email = ?", email).First(&bc).Error; err != nil {
		return nil, err
	}
	return &bc, nil
}

func (r *BusinessClientRepository) List() ([]entity.BusinessClient, error) {
	var clients []entity.BusinessClient
	err := r.DB.Order("id DESC").Find(&clients).Error
	return clients, err
}
