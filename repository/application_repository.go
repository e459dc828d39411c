package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ DB *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Create(app *entity.Application) error {
	return r.DB.Create(app).Error
}

func (r *ApplicationRepository) FindByID(id uint) (*entity.Application, error) {
	var app entity.Application
	if err := r.DB.First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// List filters by kind and/or status when given.
func (r *ApplicationRepository) List(kind, status string) ([]entity.Application, error) {
	var apps []entity.Application
	q := r.DB.Order("id DESC")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&apps).Error
	return apps, err
}

// CountPendingByEmail guards against duplicate signups still in the queue.
func (r *ApplicationRepository) CountPendingByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Application{}).
		Where("email = ? AND status = ?", email, "pending").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ApplicationRepository) Reject(app *entity.Application, comments string) error {
	app.Status = "rejected"
	app.AdminComments = comments
	return r.DB.Save(app).Error
}

// Delete consumes the row on approval; runs inside the approval transaction.
func (r *ApplicationRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Unscoped().Delete(&entity.Application{}, id).Error
}
