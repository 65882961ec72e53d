package usecase

import (
	"context"
	"errors"

	"student-health-records/internal/delivery/dto"
	"student-health-records/internal/domain/entity"
	"student-health-records/internal/domain/repository"
	"student-health-records/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("medical record not found")

type MedicalRecordUsecase interface {
	List(ctx context.Context) ([]entity.MedicalRecord, error)
	Get(ctx context.Context, id uint) (*entity.MedicalRecord, error)
	// GetByUser returns the first record owned by the user; ErrRecordNotFound
	// when the user has none.
	GetByUser(ctx context.Context, userID uint) (*entity.MedicalRecord, error)
	Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*entity.MedicalRecord, error)
	Update(ctx context.Context, id uint, req *dto.UpdateMedicalRecordRequest) (*entity.MedicalRecord, error)
	Delete(ctx context.Context, id uint) error
}

type medicalRecordUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	medicalRecordRepo repository.MedicalRecordRepository
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	medicalRecordRepo repository.MedicalRecordRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		medicalRecordRepo: medicalRecordRepo,
	}
}

func (u *medicalRecordUsecase) List(ctx context.Context) ([]entity.MedicalRecord, error) {
	records, err := u.medicalRecordRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}
	return records, nil
}

func (u *medicalRecordUsecase) Get(ctx context.Context, id uint) (*entity.MedicalRecord, error) {
	record, err := u.medicalRecordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	return record, nil
}

func (u *medicalRecordUsecase) GetByUser(ctx context.Context, userID uint) (*entity.MedicalRecord, error) {
	record, err := u.medicalRecordRepo.FindFirstByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			u.log.WithField("user_id", userID).Info("No medical records found for user")
			return nil, ErrRecordNotFound
		}
		u.log.Warnf("Failed to find medical record by user: %+v", err)
		return nil, err
	}
	return record, nil
}

func (u *medicalRecordUsecase) Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*entity.MedicalRecord, error) {
	// The owning user must exist before anything is written.
	if _, err := u.userRepo.FindByID(u.db.WithContext(ctx), req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fieldErrs := make(validator.FieldErrors)
			fieldErrs.Add("user_id", "The selected user id is invalid.")
			return nil, fieldErrs
		}
		u.log.Warnf("Failed to check owning user: %+v", err)
		return nil, err
	}

	record := &entity.MedicalRecord{
		UserID:                       req.UserID,
		PicturePath:                  req.PicturePath,
		DateOfBirth:                  req.DateOfBirth,
		Gender:                       req.Gender,
		Address:                      req.Address,
		ContactNumber:                req.ContactNumber,
		MaritalStatus:                req.MaritalStatus,
		Occupation:                   req.Occupation,
		Nationality:                  req.Nationality,
		EmergencyContactName:         req.EmergencyContactName,
		EmergencyContactRelationship: req.EmergencyContactRelationship,
		EmergencyContactNumber:       req.EmergencyContactNumber,
		EmergencyContactEmail:        req.EmergencyContactEmail,
		ChronicConditions:            req.ChronicConditions,
		PreviousIllnesses:            req.PreviousIllnesses,
		SurgeriesHospitalizations:    req.SurgeriesHospitalizations,
		Allergies:                    req.Allergies,
		ImmunizationHistory:          req.ImmunizationHistory,
		ChildhoodIllnesses:           req.ChildhoodIllnesses,
	}

	if err := u.medicalRecordRepo.Create(u.db.WithContext(ctx), record); err != nil {
		u.log.WithField("error", err.Error()).Error("Failed to create medical record")
		return nil, err
	}

	// Re-read the persisted row so defaults and computed columns are present.
	fresh, err := u.medicalRecordRepo.FindByID(u.db.WithContext(ctx), record.ID)
	if err != nil {
		u.log.Warnf("Failed to reload medical record: %+v", err)
		return nil, err
	}

	return fresh, nil
}

func (u *medicalRecordUsecase) Update(ctx context.Context, id uint, req *dto.UpdateMedicalRecordRequest) (*entity.MedicalRecord, error) {
	record, err := u.medicalRecordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}

	// Only the clinical fields are updatable here; fields absent from the
	// request stay as they are.
	if req.ChronicConditions != nil {
		record.ChronicConditions = req.ChronicConditions
	}
	if req.PreviousIllnesses != nil {
		record.PreviousIllnesses = req.PreviousIllnesses
	}
	if req.SurgeriesHospitalizations != nil {
		record.SurgeriesHospitalizations = req.SurgeriesHospitalizations
	}
	if req.Allergies != nil {
		record.Allergies = req.Allergies
	}
	if req.ImmunizationHistory != nil {
		record.ImmunizationHistory = req.ImmunizationHistory
	}
	if req.ChildhoodIllnesses != nil {
		record.ChildhoodIllnesses = req.ChildhoodIllnesses
	}

	if err := u.medicalRecordRepo.Update(u.db.WithContext(ctx), record); err != nil {
		u.log.WithField("error", err.Error()).Error("Failed to update medical record")
		return nil, err
	}

	fresh, err := u.medicalRecordRepo.FindByID(u.db.WithContext(ctx), record.ID)
	if err != nil {
		u.log.Warnf("Failed to reload medical record: %+v", err)
		return nil, err
	}

	return fresh, nil
}

func (u *medicalRecordUsecase) Delete(ctx context.Context, id uint) error {
	record, err := u.medicalRecordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		u.log.Warnf("Failed to find medical record: %+v", err)
		return err
	}

	if err := u.medicalRecordRepo.Delete(u.db.WithContext(ctx), record); err != nil {
		u.log.WithField("error", err.Error()).Error("Failed to delete medical record")
		return err
	}

	return nil
}
