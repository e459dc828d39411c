package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/logger"
	"backend/pkg/notify"
	"backend/repository"
)

// newTestDB opens a throwaway shared in-memory database so concurrent
// connections in race tests see the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=20000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Pilot{}, &entity.Editor{}, &entity.Referral{},
		&entity.BusinessClient{}, &entity.Application{}, &entity.Booking{},
		&entity.VideoReview{}, &entity.Payment{}, &entity.Cancellation{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newBookingService(db *gorm.DB) *BookingService {
	return NewBookingService(db,
		repository.NewBookingRepository(db),
		repository.NewPilotRepository(db),
		repository.NewEditorRepository(db),
		repository.NewUserRepository(db),
	)
}

func newApplicationService(db *gorm.DB) *ApplicationService {
	return NewApplicationService(db,
		repository.NewApplicationRepository(db),
		repository.NewUserRepository(db),
		repository.NewPilotRepository(db),
		repository.NewEditorRepository(db),
		repository.NewReferralRepository(db),
		repository.NewBusinessClientRepository(db),
		notify.NewQueue(logger.Nop()),
	)
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(h)
}

func seedClient(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:          email,
		Password:       hash(t, "secret123"),
		Name:           "Test Client",
		Role:           "client",
		ApprovalStatus: "approved",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return u
}

func seedPilot(t *testing.T, db *gorm.DB, email string) *entity.Pilot {
	t.Helper()
	p := &entity.Pilot{
		Name:     "Test Pilot",
		Email:    email,
		Password: hash(t, "secret123"),
		Status:   "active",
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed pilot: %v", err)
	}
	return p
}

func seedEditor(t *testing.T, db *gorm.DB, email string) *entity.Editor {
	t.Helper()
	e := &entity.Editor{
		Name:           "Test Editor",
		Email:          email,
		Password:       hash(t, "secret123"),
		Status:         "active",
		ApprovalStatus: "approved",
	}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("seed editor: %v", err)
	}
	return e
}

func seedBooking(t *testing.T, db *gorm.DB, userID uint, status string) *entity.Booking {
	t.Helper()
	b := &entity.Booking{
		UserID:          &userID,
		LocationAddress: "123 Test Lane",
		PropertyType:    "Retail Store / Showroom",
		AreaSize:        800,
		RoomsSections:   3,
		VideoLength:     3,
		NumFloors:       1,
		Status:          status,
		PaymentStatus:   entity.PaymentPending,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}
