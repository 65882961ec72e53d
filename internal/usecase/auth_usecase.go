package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"student-health-records/internal/delivery/dto"
	"student-health-records/internal/domain/entity"
	"student-health-records/internal/domain/repository"
	"student-health-records/pkg/jwt"
	"student-health-records/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUsecase interface {
	// RegisterStudent creates a student account and returns it together with
	// a fresh bearer token.
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*entity.User, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, string, error)
	// Logout revokes every outstanding token of the user, not just the one
	// the request came in with.
	Logout(ctx context.Context, userID uint) error
	GetCurrentUser(ctx context.Context, userID uint) (*entity.User, error)
	// CheckCredentials looks up an account and reports whether the password
	// matches, without issuing a token. Backs the non-production debug route.
	CheckCredentials(ctx context.Context, email, password string) (*entity.User, bool, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func tokenKey(userID uint, tokenID string) string {
	return fmt.Sprintf("auth_token:%d:%s", userID, tokenID)
}

func (u *authUsecase) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*entity.User, string, error) {
	email := strings.ToLower(req.Email)

	fieldErrs := make(validator.FieldErrors)
	if taken, err := u.userRepo.EmailExists(u.db.WithContext(ctx), email, 0); err != nil {
		u.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, "", err
	} else if taken {
		fieldErrs.Add("email", "The email has already been taken.")
	}
	if taken, err := u.userRepo.StudentIDExists(u.db.WithContext(ctx), req.StudentID, 0); err != nil {
		u.log.Warnf("Failed to check student_id uniqueness: %+v", err)
		return nil, "", err
	} else if taken {
		fieldErrs.Add("student_id", "The student id has already been taken.")
	}
	if len(fieldErrs) > 0 {
		return nil, "", fieldErrs
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		fieldErrs.Add("date_of_birth", "The date of birth is not a valid date.")
		return nil, "", fieldErrs
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, "", err
	}

	studentID := req.StudentID
	user := &entity.User{
		Name:                         req.Name,
		Email:                        email,
		Password:                     string(hashedPassword),
		Role:                         entity.RoleStudent,
		StudentID:                    &studentID,
		Course:                       &req.Course,
		YearLevel:                    &req.YearLevel,
		DateOfBirth:                  &dob,
		Gender:                       &req.Gender,
		Address:                      &req.Address,
		ContactNumber:                &req.ContactNumber,
		MaritalStatus:                req.MaritalStatus,
		Occupation:                   req.Occupation,
		Nationality:                  req.Nationality,
		EmergencyContactName:         &req.EmergencyContactName,
		EmergencyContactRelationship: &req.EmergencyContactRelationship,
		EmergencyContactNumber:       &req.EmergencyContactNumber,
		EmergencyContactEmail:        req.EmergencyContactEmail,
	}

	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		// Uniqueness race fallback behind the application-level pre-checks.
		if isDuplicateKeyError(err, "email") {
			fieldErrs.Add("email", "The email has already been taken.")
			return nil, "", fieldErrs
		}
		if isDuplicateKeyError(err, "student_id") {
			fieldErrs.Add("student_id", "The student id has already been taken.")
			return nil, "", fieldErrs
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, "", err
	}

	token, err := u.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, string, error) {
	email := strings.ToLower(req.Email)

	// The existence pre-check is deliberate: the clients distinguish
	// "User not found" from "Invalid credentials".
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	u.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User logged in successfully")

	return user, token, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uint) error {
	pattern := fmt.Sprintf("auth_token:%d:*", userID)
	keys, err := u.redisClient.Keys(ctx, pattern).Result()
	if err != nil {
		u.log.Warnf("Failed to list token keys: %+v", err)
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
		u.log.Warnf("Failed to delete tokens: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) CheckCredentials(ctx context.Context, email, password string) (*entity.User, bool, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrUserNotFound
		}
		return nil, false, err
	}

	matches := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
	return user, matches, nil
}

// issueToken signs a bearer token and registers it in Redis. Each login gets
// its own entry, so several sessions per user can be live at once.
func (u *authUsecase) issueToken(ctx context.Context, user *entity.User) (string, error) {
	token, tokenID, err := u.jwtService.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return "", err
	}

	key := tokenKey(user.ID, tokenID)
	if err := u.redisClient.Set(ctx, key, "valid", u.jwtService.GetExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store token in Redis: %+v", err)
		return "", err
	}

	return token, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
