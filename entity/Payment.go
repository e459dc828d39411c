package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Gateway payment states.
const (
	TxnPending   = "pending"
	TxnCompleted = "COMPLETED"
	TxnFailed    = "FAILED"
	TxnRefunded  = "refunded"
)

// One row per payment attempt; the merchant transaction id correlates the
// initiation with the asynchronous gateway callback.
type Payment struct {
	gorm.Model
	BookingID uint    `gorm:"index" json:"bookingId"`
	Booking   Booking `json:"-"`

	Amount float64 `json:"amount"`
	Status string  `gorm:"not null;default:pending" json:"status"`

	PaymentMethod  string `gorm:"default:phonepe" json:"paymentMethod"`
	PaymentGateway string `gorm:"default:phonepe" json:"paymentGateway"`

	MerchantTransactionID string `gorm:"uniqueIndex;not null" json:"merchantTransactionId"`

	GatewayResponse datatypes.JSON `json:"gatewayResponse"`
}
