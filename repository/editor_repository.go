package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type EditorRepository struct{ DB *gorm.DB }

func NewEditorRepository(db *gorm.DB) *EditorRepository { return &EditorRepository{DB: db} }

func (r *EditorRepository) FindByEmail(email string) (*entity.Editor, error) {
	var e entity.Editor
	if err := r.DB.Where("email = ?", email).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EditorRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Editor{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EditorRepository) Create(tx *gorm.DB, e *entity.Editor) error {
	return tx.Create(e).Error
}

func (r *EditorRepository) FindByID(id uint) (*entity.Editor, error) {
	var e entity.Editor
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EditorRepository) List() ([]entity.Editor, error) {
	var editors []entity.Editor
	err := r.DB.Order("id DESC").Find(&editors).Error
	return editors, err
}

func (r *EditorRepository) Update(editorID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Editor{}).Where("id = ?", editorID).Updates(updates).Error
}

func (r *EditorRepository) Delete(tx *gorm.DB, editorID uint) error {
	return tx.Unscoped().Delete(&entity.Editor{}, editorID).Error
}
