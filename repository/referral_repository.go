package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ReferralRepository struct{ DB *gorm.DB }

func NewReferralRepository(db *gorm.DB) *ReferralRepository { return &ReferralRepository{DB: db} }

func (r *ReferralRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Referral{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReferralRepository) Create(tx *gorm.DB, ref *entity.Referral) error {
	return tx.Create(ref).Error
}

func (r *ReferralRepository) FindByID(id uint) (*entity.Referral, error) {
	var ref entity.Referral
	if err := r.DB.First(&ref, id).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *ReferralRepository) List() ([]entity.Referral, error) {
	var refs []entity.Referral
	err := r.DB.Order("id DESC").Find(&refs).Error
	return refs, err
}
