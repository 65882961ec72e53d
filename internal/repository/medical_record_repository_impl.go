package repository

import (
	"student-health-records/internal/domain/entity"
	domainRepo "student-health-records/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Create(record).Error
}

func (r *medicalRecordRepository) FindAll(db *gorm.DB) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.Order("id").Find(&records).Error
	return records, err
}

func (r *medicalRecordRepository) FindByID(db *gorm.DB, id uint) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	if err := db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindFirstByUserID(db *gorm.DB, userID uint) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	if err := db.Where("user_id = ?", userID).Order("id").First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) Update(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Save(record).Error
}

func (r *medicalRecordRepository) Delete(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Delete(record).Error
}

func (r *medicalRecordRepository) DeleteByUserID(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&entity.MedicalRecord{}).Error
}
