package entity

import (
	"time"

	"gorm.io/gorm"
)

// Submission types.
const (
	SubmissionPilot  = "pilot"
	SubmissionEditor = "editor"
)

// Review dispositions.
const (
	ReviewSubmitted         = "submitted"
	ReviewChanges           = "review_changes"
	ReviewForwardedToEditor = "forwarded_to_editor"
	ReviewApproved          = "approved"
	ReviewCompleted         = "completed"
)

// One row per work-product submission; bookings accumulate a history and the
// latest row per (booking, role) drives the booking status.
type VideoReview struct {
	gorm.Model
	OrderID uint    `gorm:"index" json:"orderId"`
	Booking Booking `gorm:"foreignKey:OrderID" json:"-"`

	ClientID *uint `json:"clientId"`
	PilotID  *uint `json:"pilotId"`
	EditorID *uint `json:"editorId"`

	DriveLink      string `json:"driveLink"`
	PilotComments  string `json:"pilotComments"`
	EditorComments string `json:"editorComments"`
	AdminComments  string `json:"adminComments"`

	SubmissionType string `gorm:"not null" json:"submissionType"`
	Status         string `gorm:"not null;default:submitted" json:"status"`

	SubmittedDate time.Time `gorm:"autoCreateTime" json:"submittedDate"`
}
