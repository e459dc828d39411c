package configs

import (
	"log"

	"backend/entity"
	"golang.org/x/crypto/bcrypt"
)

// First-run admin account.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:          email,
		Password:       string(hash),
		Name:           "Admin",
		Role:           "admin",
		ApprovalStatus: "approved",
	}
	return db.Create(&admin).Error
}
