package entity

import (
	"gorm.io/gorm"
)

type Editor struct {
	gorm.Model
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"-"`

	// position applied for (e.g. senior editor, colorist)
	Role string `json:"role"`

	YearsExperience int    `json:"yearsExperience"`
	PrimarySkills   string `json:"primarySkills"`
	Specialization  string `json:"specialization"`
	PortfolioURL    string `json:"portfolioUrl"`
	TimeZone        string `json:"timeZone"`
	GovernmentIDURL string `json:"governmentIdUrl"`
	TaxGSTNumber    string `json:"taxGstNumber"`

	Status         string `gorm:"not null;default:pending" json:"status"`
	ApprovalStatus string `gorm:"default:pending" json:"approvalStatus"`

	Bookings []Booking     `gorm:"foreignKey:EditorID" json:"-"`
	Videos   []VideoReview `gorm:"foreignKey:EditorID" json:"-"`
}
