package entity

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Booking lifecycle.
const (
	BookingPending    = "pending"
	BookingAvailable  = "available"
	BookingAssigned   = "assigned"
	BookingInProgress = "in_progress"
	BookingEditing    = "editing"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
	BookingRejected   = "rejected"
)

// Payment state on the booking itself.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

type Booking struct {
	gorm.Model
	UserID *uint `json:"userId"`
	User   User  `json:"-"`

	PilotID *uint `json:"pilotId"`
	Pilot   Pilot `json:"-"`

	EditorID *uint  `json:"editorId"`
	Editor   Editor `json:"-"`

	ReferralID *uint    `json:"referralId"`
	Referral   Referral `json:"-"`

	// job spec (client-created bookings)
	LocationAddress          string  `json:"locationAddress"`
	GPSCoordinates           string  `json:"gpsCoordinates"`
	PropertyType             string  `json:"propertyType"`
	IndoorOutdoor            string  `json:"indoorOutdoor"`
	AreaSize                 float64 `json:"areaSize"`
	AreaUnit                 string  `gorm:"default:sq_ft" json:"areaUnit"`
	RoomsSections            int     `json:"roomsSections"`
	PreferredDate            string  `json:"preferredDate"`
	PreferredTime            string  `json:"preferredTime"`
	SpecialRequirements      string  `json:"specialRequirements"`
	DronePermissionsRequired bool    `json:"dronePermissionsRequired"`

	// video spec
	FPVTourType              string `json:"fpvTourType"`
	VideoLength              int    `json:"videoLength"`
	Resolution               string `json:"resolution"`
	BackgroundMusicVoiceover bool   `json:"backgroundMusicVoiceover"`
	EditingStyle             string `json:"editingStyle"`
	NumFloors                int    `json:"numFloors"`

	// admin-created orders carry a reduced spec
	Industry     string `json:"industry"`
	Location     string `json:"location"`
	Duration     int    `json:"duration"`
	Requirements string `json:"requirements"`

	// cost breakdown
	BaseCost        int     `json:"baseCost"`
	FinalCost       int     `json:"finalCost"`
	BasePackageCost float64 `json:"basePackageCost"`
	TravelCost      float64 `json:"travelCost"`
	TaxPercentage   float64 `gorm:"default:18" json:"taxPercentage"`
	DiscountCode    string  `json:"discountCode"`
	DiscountAmount  float64 `json:"discountAmount"`
	TotalCost       float64 `json:"totalCost"`

	Status        string     `gorm:"not null;default:pending;index" json:"status"`
	PaymentStatus string     `gorm:"not null;default:pending" json:"paymentStatus"`
	PaymentAmount float64    `json:"paymentAmount"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`

	DriveLink         string     `json:"driveLink"`
	DeliveryVideoLink string     `json:"deliveryVideoLink"`
	CompletedDate     *time.Time `json:"completedDate,omitempty"`

	PilotNotes  string `json:"pilotNotes"`
	ClientNotes string `json:"clientNotes"`

	Videos   []VideoReview `gorm:"foreignKey:OrderID" json:"-"`
	Payments []Payment     `gorm:"foreignKey:BookingID" json:"-"`
}

// Reference shown to clients and admins, e.g. HMX0042.
func (b *Booking) Reference() string {
	return fmt.Sprintf("HMX%04d", b.ID)
}
