package configs

import (
	"log"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL /
// ADMIN_PASSWORD. Skips silently when the env is missing or the
// account already exists.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		FullName: "Administrator",
		IsActive: true,
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("seeded admin:", cfg.AdminEmail)
	return nil
}
