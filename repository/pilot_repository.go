package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type PilotRepository struct{ DB *gorm.DB }

func NewPilotRepository(db *gorm.DB) *PilotRepository { return &PilotRepository{DB: db} }

func (r *PilotRepository) FindByEmail(email string) (*entity.Pilot, error) {
	var p entity.Pilot
	if err := r.DB.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PilotRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Pilot{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create runs inside the approval transaction.
func (r *PilotRepository) Create(tx *gorm.DB, p *entity.Pilot) error {
	return tx.Create(p).Error
}

func (r *PilotRepository) FindByID(id uint) (*entity.Pilot, error) {
	var p entity.Pilot
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PilotRepository) List() ([]entity.Pilot, error) {
	var pilots []entity.Pilot
	err := r.DB.Order("id DESC").Find(&pilots).Error
	return pilots, err
}

func (r *PilotRepository) Update(pilotID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Pilot{}).Where("id = ?", pilotID).Updates(updates).Error
}

func (r *PilotRepository) Delete(tx *gorm.DB, pilotID uint) error {
	return tx.Unscoped().Delete(&entity.Pilot{}, pilotID).Error
}
