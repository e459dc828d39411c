package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Application kinds.
const (
	KindPilot          = "pilot"
	KindEditor         = "editor"
	KindReferral       = "referral"
	KindBusinessClient = "business_client"
)

// One staging table for all four signup kinds; the kind-specific fields live
// in the JSON profile and are only unpacked on approval. The row is consumed
// (deleted) on approval and kept for audit on rejection.
type Application struct {
	gorm.Model
	Kind  string `gorm:"not null;index" json:"kind"`
	Name  string `json:"name"`
	Email string `gorm:"not null;index" json:"email"`
	Phone string `json:"phone"`

	Password string `json:"-"` // bcrypt hash, carried into the live account

	Profile datatypes.JSON `json:"profile"`

	// pending / rejected (approved rows are deleted)
	Status        string `gorm:"not null;default:pending" json:"status"`
	AdminComments string `json:"adminComments"`
}
