package entity

import (
	"gorm.io/gorm"
)

// Login account for admins and business clients. Pilots/editors keep their
// own tables because their credentials live with their profile.
type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `json:"-"`
	Name           string `json:"name"`
	Role           string `gorm:"not null;default:client" json:"role"`
	ApprovalStatus string `gorm:"default:approved" json:"approvalStatus"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"-"`
}
