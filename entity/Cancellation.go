package entity

import (
	"gorm.io/gorm"
)

type Cancellation struct {
	gorm.Model
	BookingID uint    `gorm:"index" json:"bookingId"`
	Booking   Booking `json:"-"`

	Reason       string  `json:"reason"`
	RefundAmount float64 `json:"refundAmount"`
}
