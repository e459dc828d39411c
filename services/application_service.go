package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/mailer"
	"backend/pkg/notify"
	"backend/repository"
)

// ApplicationService runs the signup pipeline: applicants land in one staging
// table, admins approve or reject, approval copies the profile into the live
// table for the kind and consumes the staging row.
type ApplicationService struct {
	DB        *gorm.DB
	apps      *repository.ApplicationRepository
	users     *repository.UserRepository
	pilots    *repository.PilotRepository
	editors   *repository.EditorRepository
	referrals *repository.ReferralRepository
	business  *repository.BusinessClientRepository
	queue     *notify.Queue
}

func NewApplicationService(db *gorm.DB, apps *repository.ApplicationRepository, users *repository.UserRepository, pilots *repository.PilotRepository, editors *repository.EditorRepository, referrals *repository.ReferralRepository, business *repository.BusinessClientRepository, queue *notify.Queue) *ApplicationService {
	return &ApplicationService{
		DB:        db,
		apps:      apps,
		users:     users,
		pilots:    pilots,
		editors:   editors,
		referrals: referrals,
		business:  business,
		queue:     queue,
	}
}

// Each kind carries its own signup form, so each has its own required set:
// pilots file license, flight-record and document fields, business clients
// file incorporation details, referrals are contact-only.
var applicationRequired = map[string][]string{
	entity.KindPilot: {
		"name", "fullName", "email", "phone", "password", "dateOfBirth",
		"gender", "address", "licenseNumber", "issuingAuthority",
		"licenseIssueDate", "licenseExpiryDate", "totalFlyingHours",
		"experience", "equipment", "pilotLicenseUrl", "idProofUrl",
		"photographUrl",
	},
	entity.KindEditor:   {"name", "email", "phone", "password"},
	entity.KindReferral: {"name", "email", "phone"},
	entity.KindBusinessClient: {
		"businessName", "contactName", "email", "phone", "password",
		"registrationNumber", "organizationType", "incorporationDate",
		"officialAddress", "officialEmail", "contactPersonDesignation",
	},
}

// Submit stages a signup. The raw body is kept as the JSON profile (minus
// credentials) so each kind can carry its own fields without its own table.
func (s *ApplicationService) Submit(kind string, raw []byte) (*entity.Application, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON body", ErrValidation)
	}

	required, ok := applicationRequired[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown application kind", ErrValidation)
	}
	for _, field := range required {
		if !present(fields, field) {
			return nil, fmt.Errorf("%w: missing required field: %s", ErrValidation, field)
		}
	}

	name := str(fields, "name")
	if name == "" {
		name = str(fields, "fullName")
	}
	if kind == entity.KindBusinessClient && name == "" {
		name = str(fields, "contactName")
	}
	email := strings.ToLower(strings.TrimSpace(str(fields, "email")))
	phone := str(fields, "phone")
	password := str(fields, "password")

	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if kind == entity.KindBusinessClient {
		if oe := str(fields, "officialEmail"); !strings.Contains(oe, "@") || !strings.Contains(oe, ".") {
			return nil, fmt.Errorf("%w: invalid official email format", ErrValidation)
		}
	}

	// business accounts get the stricter minimum
	minLen := 6
	if kind == entity.KindBusinessClient {
		minLen = 8
	}
	if kind != entity.KindReferral && len(password) < minLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minLen)
	}

	if err := s.checkDuplicate(kind, email); err != nil {
		return nil, err
	}

	var hash string
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	// credentials never go into the stored profile
	delete(fields, "password")
	delete(fields, "confirmPassword")
	profile, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	app := &entity.Application{
		Kind:     kind,
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: hash,
		Profile:  profile,
		Status:   "pending",
	}
	if err := s.apps.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) checkDuplicate(kind, email string) error {
	if n, err := s.apps.CountPendingByEmail(email); err != nil {
		return err
	} else if n > 0 {
		return ErrDuplicateEmail
	}

	var n int64
	var err error
	switch kind {
	case entity.KindPilot:
		n, err = s.pilots.CountByEmail(email)
	case entity.KindEditor:
		n, err = s.editors.CountByEmail(email)
	case entity.KindReferral:
		n, err = s.referrals.CountByEmail(email)
	case entity.KindBusinessClient:
		// a matching users row is what logs in, so check both
		if n, err = s.business.CountByEmail(email); err == nil && n == 0 {
			n, err = s.users.CountByEmail(email)
		}
	default:
		return fmt.Errorf("%w: unknown application kind", ErrValidation)
	}
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicateEmail
	}
	return nil
}

func (s *ApplicationService) List(kind, status string) ([]entity.Application, error) {
	return s.apps.List(kind, status)
}

func (s *ApplicationService) Get(id uint) (*entity.Application, error) {
	return s.apps.FindByID(id)
}

// Approve copies the staged profile into the live table inside one
// transaction and deletes the staging row, so approving twice is a 404.
func (s *ApplicationService) Approve(id uint, comments string) error {
	app, err := s.apps.FindByID(id)
	if err != nil {
		return err
	}
	if app.Status != "pending" {
		return ErrConflict
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.promote(tx, app); err != nil {
			return err
		}
		return s.apps.Delete(tx, app.ID)
	})
	if err != nil {
		return err
	}

	subject, body := mailer.ApprovalEmail(app.Name, app.Kind, comments)
	s.queue.Publish(notify.Email{To: app.Email, Subject: subject, Body: body})
	return nil
}

func (s *ApplicationService) promote(tx *gorm.DB, app *entity.Application) error {
	switch app.Kind {
	case entity.KindPilot:
		var p entity.Pilot
		if err := json.Unmarshal(app.Profile, &p); err != nil {
			return err
		}
		p.Name, p.Email, p.Phone, p.Password = app.Name, app.Email, app.Phone, app.Password
		p.Status = "active"
		return s.pilots.Create(tx, &p)

	case entity.KindEditor:
		var e entity.Editor
		if err := json.Unmarshal(app.Profile, &e); err != nil {
			return err
		}
		e.Name, e.Email, e.Phone, e.Password = app.Name, app.Email, app.Phone, app.Password
		e.Status = "active"
		e.ApprovalStatus = "approved"
		return s.editors.Create(tx, &e)

	case entity.KindReferral:
		var ref entity.Referral
		if err := json.Unmarshal(app.Profile, &ref); err != nil {
			return err
		}
		ref.Name, ref.Email, ref.Phone = app.Name, app.Email, app.Phone
		ref.Status = "active"
		return s.referrals.Create(tx, &ref)

	case entity.KindBusinessClient:
		var bc entity.BusinessClient
		if err := json.Unmarshal(app.Profile, &bc); err != nil {
			return err
		}
		bc.Email, bc.Password = app.Email, app.Password
		bc.Phone = app.Phone
		bc.Status = "active"
		if bc.ContactName == "" {
			bc.ContactName = app.Name
		}
		if err := s.business.Create(tx, &bc); err != nil {
			return err
		}
		// the users row is the login identity for the company
		user := &entity.User{
			Email:          app.Email,
			Password:       app.Password,
			Name:           app.Name,
			Role:           "client",
			ApprovalStatus: "approved",
		}
		return tx.Create(user).Error

	default:
		return fmt.Errorf("%w: unknown application kind", ErrValidation)
	}
}

// Reject keeps the staging row for audit.
func (s *ApplicationService) Reject(id uint, comments string) error {
	app, err := s.apps.FindByID(id)
	if err != nil {
		return err
	}
	if app.Status != "pending" {
		return ErrConflict
	}
	if err := s.apps.Reject(app, comments); err != nil {
		return err
	}

	subject, body := mailer.RejectionEmail(app.Name, app.Kind, comments)
	s.queue.Publish(notify.Email{To: app.Email, Subject: subject, Body: body})
	return nil
}

func str(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// present treats absent, null, blank, false and zero as missing, the way
// the signup forms do.
func present(m map[string]any, key string) bool {
	switch v := m[key].(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return true
	}
}
