package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"backend/entity"
	"backend/repository"
)

// BookingService owns the booking lifecycle apart from the status
// transitions, which live in booking_transitions.go.
type BookingService struct {
	DB      *gorm.DB
	Repo    *repository.BookingRepository
	Pilots  *repository.PilotRepository
	Editors *repository.EditorRepository
	Users   *repository.UserRepository
}

func NewBookingService(db *gorm.DB, repo *repository.BookingRepository, pilots *repository.PilotRepository, editors *repository.EditorRepository, users *repository.UserRepository) *BookingService {
	return &BookingService{DB: db, Repo: repo, Pilots: pilots, Editors: editors, Users: users}
}

type CreateBookingInput struct {
	LocationAddress          string  `json:"locationAddress" binding:"required"`
	GPSCoordinates           string  `json:"gpsCoordinates"`
	PropertyType             string  `json:"propertyType" binding:"required"`
	IndoorOutdoor            string  `json:"indoorOutdoor" binding:"required"`
	AreaSize                 float64 `json:"areaSize"`
	AreaUnit                 string  `json:"areaUnit"`
	RoomsSections            int     `json:"roomsSections"`
	PreferredDate            string  `json:"preferredDate" binding:"required"`
	PreferredTime            string  `json:"preferredTime" binding:"required"`
	SpecialRequirements      string  `json:"specialRequirements"`
	DronePermissionsRequired bool    `json:"dronePermissionsRequired"`

	FPVTourType              string `json:"fpvTourType" binding:"required"`
	VideoLength              int    `json:"videoLength"`
	Resolution               string `json:"resolution" binding:"required"`
	BackgroundMusicVoiceover bool   `json:"backgroundMusicVoiceover"`
	EditingStyle             string `json:"editingStyle" binding:"required"`
	NumFloors                int    `json:"numFloors"`
}

// Create persists a client booking as pending after pricing it.
func (s *BookingService) Create(userID uint, in CreateBookingInput) (*entity.Booking, error) {
	if _, err := s.Users.FindByID(userID); err != nil {
		return nil, err
	}
	for _, f := range []struct{ name, value string }{
		{"location address", in.LocationAddress},
		{"property type", in.PropertyType},
		{"indoor/outdoor", in.IndoorOutdoor},
		{"preferred date", in.PreferredDate},
		{"preferred time", in.PreferredTime},
		{"fpv tour type", in.FPVTourType},
		{"resolution", in.Resolution},
		{"editing style", in.EditingStyle},
	} {
		if f.value == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrValidation, f.name)
		}
	}
	if in.AreaSize <= 0 {
		return nil, fmt.Errorf("%w: area size must be positive", ErrValidation)
	}
	if in.RoomsSections <= 0 {
		return nil, fmt.Errorf("%w: rooms/sections must be positive", ErrValidation)
	}
	if in.VideoLength <= 0 {
		return nil, fmt.Errorf("%w: video length must be positive", ErrValidation)
	}

	// bookings outside the price table (unlisted category, oversize area)
	// are taken at zero cost and quoted manually afterwards
	base, final, err := CalculateCost(in.PropertyType, in.AreaSize, in.NumFloors)
	if err != nil {
		if !errors.Is(err, ErrCustomQuote) && !errors.Is(err, ErrInvalidCategory) {
			return nil, err
		}
		base, final = 0, 0
	}

	b := &entity.Booking{
		UserID:                   &userID,
		LocationAddress:          in.LocationAddress,
		GPSCoordinates:           in.GPSCoordinates,
		PropertyType:             in.PropertyType,
		IndoorOutdoor:            in.IndoorOutdoor,
		AreaSize:                 in.AreaSize,
		AreaUnit:                 in.AreaUnit,
		RoomsSections:            in.RoomsSections,
		PreferredDate:            in.PreferredDate,
		PreferredTime:            in.PreferredTime,
		SpecialRequirements:      in.SpecialRequirements,
		DronePermissionsRequired: in.DronePermissionsRequired,
		FPVTourType:              in.FPVTourType,
		VideoLength:              in.VideoLength,
		Resolution:               in.Resolution,
		BackgroundMusicVoiceover: in.BackgroundMusicVoiceover,
		EditingStyle:             in.EditingStyle,
		NumFloors:                in.NumFloors,
		BaseCost:                 base,
		FinalCost:                final,
		TotalCost:                float64(final),
		Status:                   entity.BookingPending,
		PaymentStatus:            entity.PaymentPending,
	}
	if b.AreaUnit == "" {
		b.AreaUnit = "sq_ft"
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

type CreateAdminOrderInput struct {
	Industry      string  `json:"industry" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	Duration      int     `json:"duration"`
	Requirements  string  `json:"requirements"`
	PreferredDate string  `json:"preferredDate"`
	PilotID       uint    `json:"pilotId"`
	PaymentAmount float64 `json:"paymentAmount"`
	ClientID      *uint   `json:"clientId"`
}

// CreateAdminOrder pre-assigns a pilot and skips the claim step.
func (s *BookingService) CreateAdminOrder(in CreateAdminOrderInput) (*entity.Booking, error) {
	if in.Duration < 1 || in.Duration > 8 {
		return nil, fmt.Errorf("%w: duration must be between 1 and 8 hours", ErrValidation)
	}
	if in.PreferredDate != "" {
		if _, err := time.Parse("2006-01-02", in.PreferredDate); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
		}
	}
	if in.PaymentAmount <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrValidation)
	}
	if _, err := s.Pilots.FindByID(in.PilotID); err != nil {
		return nil, err
	}

	pilotID := in.PilotID
	b := &entity.Booking{
		UserID:        in.ClientID,
		PilotID:       &pilotID,
		Industry:      in.Industry,
		Location:      in.Location,
		Duration:      in.Duration,
		Requirements:  in.Requirements,
		PreferredDate: in.PreferredDate,
		PaymentAmount: in.PaymentAmount,
		Status:        entity.BookingAssigned,
		PaymentStatus: entity.PaymentPending,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

// List applies the role visibility filter: admin sees everything, a pilot
// sees the job board plus their own assignments, a client sees their own.
func (s *BookingService) List(role string, accountID uint) ([]entity.Booking, error) {
	switch role {
	case "admin":
		return s.Repo.ListAll()
	case "pilot":
		available, err := s.Repo.ListAvailable()
		if err != nil {
			return nil, err
		}
		mine, err := s.Repo.ListForPilot(accountID)
		if err != nil {
			return nil, err
		}
		return append(available, mine...), nil
	case "editor":
		return s.Repo.ListForEditor(accountID)
	default:
		return s.Repo.ListForUser(accountID)
	}
}

func (s *BookingService) Get(role string, accountID, bookingID uint) (*entity.Booking, error) {
	b, err := s.Repo.FindByID(bookingID)
	if err != nil {
		return nil, err
	}
	if !s.canView(role, accountID, b) {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *BookingService) canView(role string, accountID uint, b *entity.Booking) bool {
	switch role {
	case "admin":
		return true
	case "pilot":
		return b.Status == entity.BookingAvailable || (b.PilotID != nil && *b.PilotID == accountID)
	case "editor":
		return b.EditorID != nil && *b.EditorID == accountID
	default:
		return b.UserID != nil && *b.UserID == accountID
	}
}

// Per-role updatable columns; everything else in the payload is dropped.
var bookingUpdatable = map[string]map[string]bool{
	"admin":  {"status": true, "pilot_notes": true, "client_notes": true},
	"pilot":  {"status": true, "pilot_notes": true},
	"client": {"client_notes": true},
}

// jsonToColumn maps accepted payload keys onto their columns.
var jsonToColumn = map[string]string{
	"status":      "status",
	"pilotNotes":  "pilot_notes",
	"clientNotes": "client_notes",
}

// Update applies the role's allow-list; out-of-scope fields are silently
// ignored rather than rejected.
func (s *BookingService) Update(role string, accountID, bookingID uint, fields map[string]any) error {
	b, err := s.Repo.FindByID(bookingID)
	if err != nil {
		return err
	}

	switch role {
	case "admin":
	case "pilot":
		if b.PilotID == nil || *b.PilotID != accountID {
			return ErrForbidden
		}
	default:
		role = "client"
		if b.UserID == nil || *b.UserID != accountID {
			return ErrForbidden
		}
	}

	allowed := bookingUpdatable[role]
	updates := map[string]any{}
	for key, value := range fields {
		col, ok := jsonToColumn[key]
		if !ok || !allowed[col] {
			continue
		}
		updates[col] = value
	}
	if len(updates) == 0 {
		return nil
	}
	return s.Repo.Update(bookingID, updates)
}

// Cancel records the cancellation and moves the booking to its absorbing
// state in one transaction.
func (s *BookingService) Cancel(bookingID uint, reason string, refundAmount float64) error {
	if _, err := s.Repo.FindByID(bookingID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		c := &entity.Cancellation{
			BookingID:    bookingID,
			Reason:       reason,
			RefundAmount: refundAmount,
		}
		if err := s.Repo.CreateCancellation(tx, c); err != nil {
			return err
		}
		return tx.Model(&entity.Booking{}).
			Where("id = ?", bookingID).
			Update("status", entity.BookingCancelled).Error
	})
}

func (s *BookingService) ListCancellations() ([]entity.Cancellation, error) {
	return s.Repo.ListCancellations()
}

// CostPreview prices a prospective booking without persisting anything.
func (s *BookingService) CostPreview(category string, areaSqft float64, numFloors int) (base, final int, err error) {
	return CalculateCost(category, areaSqft, numFloors)
}

// DeleteAccount removes a login and its profile. Refused while the account
// still has bookings in a non-terminal state.
func (s *BookingService) DeleteAccount(role string, accountID uint) error {
	var column string
	switch role {
	case "pilot":
		column = "pilot_id"
	case "editor":
		column = "editor_id"
	default:
		column = "user_id"
	}

	active, err := s.Repo.CountActive(column, accountID)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrConflict
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		switch role {
		case "pilot":
			return s.Pilots.Delete(tx, accountID)
		case "editor":
			return s.Editors.Delete(tx, accountID)
		default:
			u, err := s.Users.FindByID(accountID)
			if err != nil {
				return err
			}
			// business clients keep a company profile next to the login row
			if err := tx.Unscoped().Where("email = ?", u.Email).Delete(&entity.BusinessClient{}).Error; err != nil {
				return err
			}
			return s.Users.Delete(tx, accountID)
		}
	})
}
