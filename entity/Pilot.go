package entity

import (
	"gorm.io/gorm"
)

type Pilot struct {
	gorm.Model
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"-"`

	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`

	GovernmentIDProof string `json:"governmentIdProof"`
	LicenseNumber     string `json:"licenseNumber"`
	IssuingAuthority  string `json:"issuingAuthority"`
	LicenseIssueDate  string `json:"licenseIssueDate"`
	LicenseExpiryDate string `json:"licenseExpiryDate"`

	DroneModel    string `json:"droneModel"`
	DroneSerial   string `json:"droneSerial"`
	DroneUIN      string `json:"droneUin"`
	DroneCategory string `json:"droneCategory"`

	TotalFlyingHours  string `json:"totalFlyingHours"`
	FlightRecords     string `json:"flightRecords"`
	InsurancePolicy   string `json:"insurancePolicy"`
	InsuranceValidity string `json:"insuranceValidity"`

	PilotLicenseURL         string `json:"pilotLicenseUrl"`
	IDProofURL              string `json:"idProofUrl"`
	TrainingCertificateURL  string `json:"trainingCertificateUrl"`
	PhotographURL           string `json:"photographUrl"`
	InsuranceCertificateURL string `json:"insuranceCertificateUrl"`

	Cities       string `json:"cities"`
	Experience   string `json:"experience"`
	Equipment    string `json:"equipment"`
	PortfolioURL string `json:"portfolioUrl"`
	BankAccount  string `json:"bankAccount"`

	// active / pending / rejected
	Status string `gorm:"not null;default:pending" json:"status"`

	Bookings []Booking     `gorm:"foreignKey:PilotID" json:"-"`
	Videos   []VideoReview `gorm:"foreignKey:PilotID" json:"-"`
}
