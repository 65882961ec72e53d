package database

import (
	"errors"

	"student-health-records/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedNurseUser creates the default clinic nurse account if it does not exist
// yet, so a fresh deployment has someone who can log in.
func SeedNurseUser(db *gorm.DB, password string) error {
	var existing entity.User
	err := db.Where("email = ?", "nurse@clinic.com").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	nurse := entity.User{
		Name:     "Admin Nurse",
		Email:    "nurse@clinic.com",
		Password: string(hashed),
		Role:     entity.RoleNurse,
	}
	if err := db.Create(&nurse).Error; err != nil {
		return err
	}

	logrus.WithField("user_id", nurse.ID).Info("Seeded default nurse account")

	return nil
}
