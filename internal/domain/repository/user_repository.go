package repository

import (
	"student-health-records/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindAll(db *gorm.DB) ([]entity.User, error)
	FindByID(db *gorm.DB, id uint) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, user *entity.User) error
	EmailExists(db *gorm.DB, email string, excludeID uint) (bool, error)
	StudentIDExists(db *gorm.DB, studentID string, excludeID uint) (bool, error)
}
