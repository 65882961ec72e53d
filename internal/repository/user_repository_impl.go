package repository

import (
	"student-health-records/internal/domain/entity"
	domainRepo "student-health-records/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.Order("id").Find(&users).Error
	return users, err
}

func (r *userRepository) FindByID(db *gorm.DB, id uint) (*entity.User, error) {
	var user entity.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Save(user).Error
}

func (r *userRepository) Delete(db *gorm.DB, user *entity.User) error {
	return db.Delete(user).Error
}

func (r *userRepository) EmailExists(db *gorm.DB, email string, excludeID uint) (bool, error) {
	var count int64
	err := db.Model(&entity.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) StudentIDExists(db *gorm.DB, studentID string, excludeID uint) (bool, error) {
	var count int64
	err := db.Model(&entity.User{}).
		Where("student_id = ? AND id <> ?", studentID, excludeID).
		Count(&count).Error
	return count > 0, err
}
