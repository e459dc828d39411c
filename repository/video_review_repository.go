package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type VideoReviewRepository struct{ DB *gorm.DB }

func NewVideoReviewRepository(db *gorm.DB) *VideoReviewRepository {
	return &VideoReviewRepository{DB: db}
}

func (r *VideoReviewRepository) Create(v *entity.VideoReview) error {
	return r.DB.Create(v).Error
}

func (r *VideoReviewRepository) FindByID(id uint) (*entity.VideoReview, error) {
	var v entity.VideoReview
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VideoReviewRepository) ListAll() ([]entity.VideoReview, error) {
	var reviews []entity.VideoReview
	err := r.DB.Order("submitted_date DESC").Find(&reviews).Error
	return reviews, err
}

func (r *VideoReviewRepository) ListForOrder(orderID uint) ([]entity.VideoReview, error) {
	var reviews []entity.VideoReview
	err := r.DB.Where("order_id = ?", orderID).Order("submitted_date DESC").Find(&reviews).Error
	return reviews, err
}

// Editor cuts carry the booking's pilot_id (and forwarding stamps editor_id
// onto pilot cuts), so history queries must also match the submission type.
func (r *VideoReviewRepository) ListForPilot(pilotID uint) ([]entity.VideoReview, error) {
	var reviews []entity.VideoReview
	err := r.DB.Where("pilot_id = ? AND submission_type = ?", pilotID, entity.SubmissionPilot).
		Order("submitted_date DESC").Find(&reviews).Error
	return reviews, err
}

func (r *VideoReviewRepository) ListForEditor(editorID uint) ([]entity.VideoReview, error) {
	var reviews []entity.VideoReview
	err := r.DB.Where("editor_id = ? AND submission_type = ?", editorID, entity.SubmissionEditor).
		Order("submitted_date DESC").Find(&reviews).Error
	return reviews, err
}

func (r *VideoReviewRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.VideoReview{}).Where("id = ?", id).Updates(updates).Error
}
