package entity

import (
	"gorm.io/gorm"
)

// Referral agents don't log in; they are tracked for commission only.
type Referral struct {
	gorm.Model
	Name  string `json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Phone string `json:"phone"`

	Status         string  `gorm:"not null;default:active" json:"status"`
	CommissionRate float64 `gorm:"default:10" json:"commissionRate"`
	TotalEarnings  float64 `gorm:"default:0" json:"totalEarnings"`

	Bookings []Booking `gorm:"foreignKey:ReferralID" json:"-"`
}
