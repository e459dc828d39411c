package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type BookingRepository struct{ DB *gorm.DB }

func NewBookingRepository(db *gorm.DB) *BookingRepository { return &BookingRepository{DB: db} }

func (r *BookingRepository) Create(b *entity.Booking) error {
	return r.DB.Create(b).Error
}

func (r *BookingRepository) FindByID(id uint) (*entity.Booking, error) {
	var b entity.Booking
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListAll() ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Order("id DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListForUser(userID uint) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListForPilot(pilotID uint) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Where("pilot_id = ?", pilotID).Order("id DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListForEditor(editorID uint) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Where("editor_id = ?", editorID).Order("id DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListForReferral(referralID uint) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Where("referral_id = ?", referralID).Order("id DESC").Find(&bookings).Error
	return bookings, err
}

// ListAvailable is the pilot-facing job board.
func (r *BookingRepository) ListAvailable() ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Where("status = ?", entity.BookingAvailable).Order("id DESC").Find(&bookings).Error
	return bookings, err
}

// Claim assigns a pilot with a single conditional update; the status guard
// makes concurrent claims race safely, exactly one sees RowsAffected == 1.
func (r *BookingRepository) Claim(bookingID, pilotID uint) (int64, error) {
	res := r.DB.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", bookingID, entity.BookingAvailable).
		Updates(map[string]any{"pilot_id": pilotID, "status": entity.BookingAssigned})
	return res.RowsAffected, res.Error
}

// UpdateStatusGuard flips status only when the current value matches,
// optionally setting extra columns in the same statement.
func (r *BookingRepository) UpdateStatusGuard(bookingID uint, from, to string, extra map[string]any) (int64, error) {
	updates := map[string]any{"status": to}
	for k, v := range extra {
		updates[k] = v
	}
	res := r.DB.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", bookingID, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *BookingRepository) Update(bookingID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Booking{}).Where("id = ?", bookingID).Updates(updates).Error
}

// CountActive counts bookings not yet in a terminal state for the given
// account column ("user_id", "pilot_id", "editor_id").
func (r *BookingRepository) CountActive(column string, accountID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Booking{}).
		Where(column+" = ? AND status NOT IN ?", accountID,
			[]string{entity.BookingCompleted, entity.BookingCancelled, entity.BookingRejected}).
		Count(&count).Error
	return count, err
}

func (r *BookingRepository) CreateCancellation(tx *gorm.DB, c *entity.Cancellation) error {
	return tx.Create(c).Error
}

func (r *BookingRepository) ListCancellations() ([]entity.Cancellation, error) {
	var cancellations []entity.Cancellation
	err := r.DB.Order("id DESC").Find(&cancellations).Error
	return cancellations, err
}
