package entity

import (
	"gorm.io/gorm"
)

// Company profile behind a client login. The matching User row (same email)
// is what actually authenticates.
type BusinessClient struct {
	gorm.Model
	BusinessName       string `json:"businessName"`
	RegistrationNumber string `json:"registrationNumber"`
	OrganizationType   string `json:"organizationType"`
	IncorporationDate  string `json:"incorporationDate"`
	OfficialAddress    string `json:"officialAddress"`
	OfficialEmail      string `json:"officialEmail"`
	Phone              string `json:"phone"`

	ContactName              string `json:"contactName"`
	ContactPersonDesignation string `json:"contactPersonDesignation"`

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`

	RegistrationCertificateURL string `json:"registrationCertificateUrl"`
	TaxIdentificationURL       string `json:"taxIdentificationUrl"`
	BusinessLicenseURL         string `json:"businessLicenseUrl"`
	AddressProofURL            string `json:"addressProofUrl"`

	Status string `gorm:"not null;default:active" json:"status"`
}
