package usecase

import (
	"context"
	"errors"
	"time"

	"student-health-records/internal/delivery/dto"
	"student-health-records/internal/domain/entity"
	"student-health-records/internal/domain/repository"
	"student-health-records/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserUsecase interface {
	List(ctx context.Context) ([]entity.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*entity.User, error)
	// Delete removes the user and every medical record owned by it in one
	// transaction.
	Delete(ctx context.Context, id uint) error
}

type userUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	medicalRecordRepo repository.MedicalRecordRepository
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	medicalRecordRepo repository.MedicalRecordRepository,
) UserUsecase {
	return &userUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		medicalRecordRepo: medicalRecordRepo,
	}
}

func (u *userUsecase) List(ctx context.Context) ([]entity.User, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}
	return users, nil
}

func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*entity.User, error) {
	fieldErrs := make(validator.FieldErrors)
	if taken, err := u.userRepo.EmailExists(u.db.WithContext(ctx), req.Email, req.ID); err != nil {
		u.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, err
	} else if taken {
		fieldErrs.Add("email", "The email has already been taken.")
	}
	if req.StudentID != nil {
		if taken, err := u.userRepo.StudentIDExists(u.db.WithContext(ctx), *req.StudentID, req.ID); err != nil {
			u.log.Warnf("Failed to check student_id uniqueness: %+v", err)
			return nil, err
		} else if taken {
			fieldErrs.Add("student_id", "The student id has already been taken.")
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		StudentID: req.StudentID,
		Role:      req.Role,
	}

	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		if isDuplicateKeyError(err, "email") {
			fieldErrs.Add("email", "The email has already been taken.")
			return nil, fieldErrs
		}
		if isDuplicateKeyError(err, "student_id") {
			fieldErrs.Add("student_id", "The student id has already been taken.")
			return nil, fieldErrs
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return user, nil
}

func (u *userUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*entity.User, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}

	fieldErrs := make(validator.FieldErrors)
	if req.Email != nil {
		if taken, err := u.userRepo.EmailExists(u.db.WithContext(ctx), *req.Email, user.ID); err != nil {
			u.log.Warnf("Failed to check email uniqueness: %+v", err)
			return nil, err
		} else if taken {
			fieldErrs.Add("email", "The email has already been taken.")
		}
	}
	if req.StudentID != nil {
		if taken, err := u.userRepo.StudentIDExists(u.db.WithContext(ctx), *req.StudentID, user.ID); err != nil {
			u.log.Warnf("Failed to check student_id uniqueness: %+v", err)
			return nil, err
		} else if taken {
			fieldErrs.Add("student_id", "The student id has already been taken.")
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	applyUserUpdate(user, req)

	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := u.userRepo.Update(u.db.WithContext(ctx), user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	return user, nil
}

func (u *userUsecase) Delete(ctx context.Context, id uint) error {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.medicalRecordRepo.DeleteByUserID(tx, user.ID); err != nil {
		u.log.Warnf("Failed to delete medical records for user: %+v", err)
		return err
	}
	if err := u.userRepo.Delete(tx, user); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// applyUserUpdate copies only the fields present in the request onto the
// entity, leaving everything else untouched.
func applyUserUpdate(user *entity.User, req *dto.UpdateUserRequest) {
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.StudentID != nil {
		user.StudentID = req.StudentID
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Course != nil {
		user.Course = req.Course
	}
	if req.YearLevel != nil {
		user.YearLevel = req.YearLevel
	}
	if req.DateOfBirth != nil {
		if dob, err := time.Parse("2006-01-02", *req.DateOfBirth); err == nil {
			user.DateOfBirth = &dob
		}
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.ContactNumber != nil {
		user.ContactNumber = req.ContactNumber
	}
	if req.MaritalStatus != nil {
		user.MaritalStatus = req.MaritalStatus
	}
	if req.Occupation != nil {
		user.Occupation = req.Occupation
	}
	if req.Nationality != nil {
		user.Nationality = req.Nationality
	}
	if req.EmergencyContactName != nil {
		user.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContactRelationship != nil {
		user.EmergencyContactRelationship = req.EmergencyContactRelationship
	}
	if req.EmergencyContactNumber != nil {
		user.EmergencyContactNumber = req.EmergencyContactNumber
	}
	if req.EmergencyContactEmail != nil {
		user.EmergencyContactEmail = req.EmergencyContactEmail
	}
}
