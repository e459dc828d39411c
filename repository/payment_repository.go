package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) Create(p *entity.Payment) error {
	return r.DB.Create(p).Error
}

func (r *PaymentRepository) FindByMerchantTxnID(txnID string) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("merchant_transaction_id = ?", txnID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// LatestForBooking returns the most recent payment attempt for a booking.
func (r *PaymentRepository) LatestForBooking(bookingID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("booking_id = ?", bookingID).Order("id DESC").First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListAll() ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.DB.Order("id DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Payment{}).Where("id = ?", id).Updates(updates).Error
}
