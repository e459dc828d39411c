package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"backend/entity"
)

func pilotFields(email string) map[string]any {
	return map[string]any{
		"name":              "Ravi Kumar",
		"fullName":          "Ravi Kumar",
		"email":             email,
		"phone":             "+91 90000 00000",
		"password":          "secret123",
		"dateOfBirth":       "1995-04-12",
		"gender":            "male",
		"address":           "Andheri East, Mumbai",
		"licenseNumber":     "DGCA-1234",
		"issuingAuthority":  "DGCA",
		"licenseIssueDate":  "2022-01-10",
		"licenseExpiryDate": "2027-01-10",
		"totalFlyingHours":  "350",
		"experience":        "4 years FPV",
		"equipment":         "DJI Avata 2",
		"pilotLicenseUrl":   "https://files.example.com/license.pdf",
		"idProofUrl":        "https://files.example.com/id.pdf",
		"photographUrl":     "https://files.example.com/photo.jpg",
		"droneModel":        "DJI Avata 2",
		"cities":            "Mumbai,Pune",
	}
}

func pilotApplication(email string) []byte {
	raw, _ := json.Marshal(pilotFields(email))
	return raw
}

func businessFields(email string) map[string]any {
	return map[string]any{
		"businessName":             "Acme Resorts",
		"contactName":              "Priya Shah",
		"email":                    email,
		"phone":                    "+91 92222 22222",
		"password":                 "longenough",
		"registrationNumber":       "CIN-42",
		"organizationType":         "Private Limited",
		"incorporationDate":        "2018-06-01",
		"officialAddress":          "Baga Road, Goa",
		"officialEmail":            "accounts@acme.example.com",
		"contactPersonDesignation": "Operations Head",
	}
}

func TestSubmitAndApprovePilot(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(db)

	app, err := svc.Submit(entity.KindPilot, pilotApplication("ravi@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "pending", app.Status)

	require.NoError(t, svc.Approve(app.ID, "looks good"))

	// profile landed in the live table with credentials intact
	var pilot entity.Pilot
	require.NoError(t, db.Where("email = ?", "ravi@example.com").First(&pilot).Error)
	assert.Equal(t, "active", pilot.Status)
	assert.Equal(t, "DGCA-1234", pilot.LicenseNumber)
	assert.Equal(t, "DJI Avata 2", pilot.DroneModel)
	assert.NotEmpty(t, pilot.Password)

	// staging row consumed: approving again is a 404
	err = svc.Approve(app.ID, "again")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRejectKeepsRow(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(db)

	app, err := svc.Submit(entity.KindPilot, pilotApplication("ravi@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Reject(app.ID, "incomplete insurance"))

	var got entity.Application
	require.NoError(t, db.First(&got, app.ID).Error)
	assert.Equal(t, "rejected", got.Status)
	assert.Equal(t, "incomplete insurance", got.AdminComments)

	// rejected rows cannot be approved afterwards
	assert.ErrorIs(t, svc.Approve(app.ID, ""), ErrConflict)
}

func TestSubmitDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(db)

	_, err := svc.Submit(entity.KindPilot, pilotApplication("ravi@example.com"))
	require.NoError(t, err)

	// still pending in staging
	_, err = svc.Submit(entity.KindPilot, pilotApplication("ravi@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// live pilot row blocks too
	seedPilot(t, db, "live@example.com")
	_, err = svc.Submit(entity.KindPilot, pilotApplication("live@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSubmitRequiredFieldsPerKind(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(db)

	// contact details alone are not a pilot application
	raw, _ := json.Marshal(map[string]any{
		"name":     "Ravi Kumar",
		"email":    "ravi@example.com",
		"password": "secret123",
	})
	_, err := svc.Submit(entity.KindPilot, raw)
	assert.ErrorIs(t, err, ErrValidation)

	missing := pilotFields("ravi@example.com")
	delete(missing, "licenseNumber")
	raw, _ = json.Marshal(missing)
	_, err = svc.Submit(entity.KindPilot, raw)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "licenseNumber")

	// blank counts as missing
	blank := pilotFields("ravi@example.com")
	blank["equipment"] = "  "
	raw, _ = json.Marshal(blank)
	_, err = svc.Submit(entity.KindPilot, raw)
	assert.ErrorIs(t, err, ErrValidation)

	// business clients must file incorporation details
	noIncorporation := businessFields("ops@acme.example.com")
	delete(noIncorporation, "incorporationDate")
	raw, _ = json.Marshal(noIncorporation)
	_, err = svc.Submit(entity.KindBusinessClient, raw)
	assert.ErrorIs(t, err, ErrValidation)

	// referrals stay contact-only
	raw, _ = json.Marshal(map[string]any{
		"name":  "Referrer",
		"email": "ref@example.com",
		"phone": "+91 91111 11111",
	})
	_, err = svc.Submit(entity.KindReferral, raw)
	assert.NoError(t, err)
}

func TestSubmitPasswordMinimums(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(db)

	short := func(kind, email, password string) error {
		var fields map[string]any
		if kind == entity.KindBusinessClient {
			fields = businessFields(email)
		} else {
			fields = pilotFields(email)
		}
		fields["password"] = password
		raw, _ := json.Marshal(fields)
		_, err := svc.Submit(kind, raw)
		return err
	}

	// pilots take 6+, business clients take 8+
	assert.ErrorIs(t, short(entity.KindPilot, "a@b.co", "five5"), ErrValidation)
	assert.NoError(t, short(entity.KindPilot, "a@b.co2", "sixsix"))
	assert.ErrorIs(t, short(entity.KindBusinessClient, "c@d.co", "sevense"), ErrValidation)
	assert.NoError(t, short(entity.KindBusinessClient, "c@d.co2", "eighteig"))
}

func TestSubmitEmailFormat(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(db)

	_, err := svc.Submit(entity.KindPilot, pilotApplication("not-an-email"))
	assert.ErrorIs(t, err, ErrValidation)

	bad := businessFields("ops@acme.example.com")
	bad["officialEmail"] = "not-an-email"
	raw, _ := json.Marshal(bad)
	_, err = svc.Submit(entity.KindBusinessClient, raw)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApproveBusinessClientCreatesLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(db)

	raw, _ := json.Marshal(businessFields("ops@acme.example.com"))
	app, err := svc.Submit(entity.KindBusinessClient, raw)
	require.NoError(t, err)

	require.NoError(t, svc.Approve(app.ID, ""))

	var bc entity.BusinessClient
	require.NoError(t, db.Where("email = ?", "ops@acme.example.com").First(&bc).Error)
	assert.Equal(t, "Acme Resorts", bc.BusinessName)

	// a matching users row carries the login
	var user entity.User
	require.NoError(t, db.Where("email = ?", "ops@acme.example.com").First(&user).Error)
	assert.Equal(t, "client", user.Role)
	assert.Equal(t, "approved", user.ApprovalStatus)
}

func TestApproveReferralHasNoLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(db)

	raw, _ := json.Marshal(map[string]any{
		"name":  "Referrer",
		"email": "ref@example.com",
		"phone": "+91 91111 11111",
	})
	app, err := svc.Submit(entity.KindReferral, raw)
	require.NoError(t, err)
	require.NoError(t, svc.Approve(app.ID, ""))

	var ref entity.Referral
	require.NoError(t, db.Where("email = ?", "ref@example.com").First(&ref).Error)
	assert.Equal(t, "active", ref.Status)
	assert.Equal(t, 10.0, ref.CommissionRate)
}

func TestProfileDropsCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(db)

	app, err := svc.Submit(entity.KindPilot, pilotApplication("ravi@example.com"))
	require.NoError(t, err)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(app.Profile, &stored))
	_, hasPassword := stored["password"]
	assert.False(t, hasPassword, "plaintext password must not be stored in the profile")
}
