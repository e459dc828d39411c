package configs

import (
	"fmt"

	"backend/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	// busy timeout so concurrent writers wait instead of failing with
	// "database is locked" (sqlite serializes writers)
	dsn := fmt.Sprintf("%s?_busy_timeout=20000&_foreign_keys=on", source)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{}, &entity.BusinessClient{},
		&entity.Pilot{}, &entity.Editor{}, &entity.Referral{},
		&entity.Application{},
		&entity.Booking{}, &entity.Cancellation{},
		&entity.VideoReview{},
		&entity.Payment{},
	)
}
