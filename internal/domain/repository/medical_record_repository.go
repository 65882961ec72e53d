package repository

import (
	"student-health-records/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindAll(db *gorm.DB) ([]entity.MedicalRecord, error)
	FindByID(db *gorm.DB, id uint) (*entity.MedicalRecord, error)
	// FindFirstByUserID returns the first record owned by the user, matching
	// the single-record-per-user access pattern.
	FindFirstByUserID(db *gorm.DB, userID uint) (*entity.MedicalRecord, error)
	Update(db *gorm.DB, record *entity.MedicalRecord) error
	Delete(db *gorm.DB, record *entity.MedicalRecord) error
	DeleteByUserID(db *gorm.DB, userID uint) error
}
