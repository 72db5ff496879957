package bootstrap

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"anoa.com/clanportal/internal/model"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Clan{},
		&model.JoinRequest{},
		&model.Announcement{},
	)
}

// SeedAdminUser creates the local admin account if it does not exist yet.
// This is the only account with a password hash; everyone else signs in
// through Discord.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("role = ?", model.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	hash := string(hashedPasswordBytes)
	admin := model.User{
		Name:         "admin",
		Role:         model.RoleAdmin,
		Status:       model.StatusAccepted,
		PasswordHash: &hash,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded")
	log.Println("   Name: admin")
	log.Println("   Password: admin123")

	return nil
}

// SeedDemoClan creates a demo clan with an owner so a fresh development
// database has something to apply to.
func SeedDemoClan(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Clan{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	owner := model.User{
		Name:   "demo_owner",
		Role:   model.RoleClanOwner,
		Status: model.StatusAccepted,
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	clan := model.Clan{
		Name:        "Los Santos Legends",
		Description: "Demo clan seeded for development",
		OwnerID:     owner.ID,
	}
	if err := db.Create(&clan).Error; err != nil {
		return err
	}

	return db.Model(&model.User{}).
		Where("id = ?", owner.ID).
		Update("clan_id", clan.ID).Error
}
