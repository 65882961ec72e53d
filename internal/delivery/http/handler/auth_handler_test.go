package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"student-health-records/internal/delivery/dto"
	"student-health-records/internal/delivery/http/middleware"
	"student-health-records/internal/domain/entity"
	"student-health-records/internal/usecase"
	"student-health-records/pkg/validator"

	"github.com/stretchr/testify/assert"
)

// Compile-time check to ensure mockAuthUsecase implements usecase.AuthUsecase
var _ usecase.AuthUsecase = (*mockAuthUsecase)(nil)

type mockAuthUsecase struct {
	registerStudentFunc  func(ctx context.Context, req *dto.RegisterStudentRequest) (*entity.User, string, error)
	loginFunc            func(ctx context.Context, req *dto.LoginRequest) (*entity.User, string, error)
	logoutFunc           func(ctx context.Context, userID uint) error
	getCurrentUserFunc   func(ctx context.Context, userID uint) (*entity.User, error)
	checkCredentialsFunc func(ctx context.Context, email, password string) (*entity.User, bool, error)
}

func (m *mockAuthUsecase) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*entity.User, string, error) {
	if m.registerStudentFunc != nil {
		return m.registerStudentFunc(ctx, req)
	}
	return nil, "", errors.New("not implemented")
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, string, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return nil, "", errors.New("not implemented")
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uint) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, userID)
	}
	return errors.New("not implemented")
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	if m.getCurrentUserFunc != nil {
		return m.getCurrentUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthUsecase) CheckCredentials(ctx context.Context, email, password string) (*entity.User, bool, error) {
	if m.checkCredentialsFunc != nil {
		return m.checkCredentialsFunc(ctx, email, password)
	}
	return nil, false, errors.New("not implemented")
}

func registerBody() map[string]interface{} {
	return map[string]interface{}{
		"name":                           "A",
		"email":                          "a@x.com",
		"password":                       "password1",
		"password_confirmation":          "password1",
		"student_id":                     "2025-1-00001",
		"course":                         "BS Nursing",
		"year_level":                     "1",
		"date_of_birth":                  "2005-06-01",
		"gender":                         "F",
		"address":                        "Somewhere",
		"contact_number":                 "09170000000",
		"emergency_contact_name":         "B",
		"emergency_contact_relationship": "Mother",
		"emergency_contact_number":       "09171111111",
	}
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegisterStudentSuccess(t *testing.T) {
	mock := &mockAuthUsecase{
		registerStudentFunc: func(ctx context.Context, req *dto.RegisterStudentRequest) (*entity.User, string, error) {
			assert.Equal(t, "a@x.com", req.Email)
			return &entity.User{ID: 1, Name: req.Name, Email: req.Email, Role: entity.RoleStudent}, "token-123", nil
		},
	}
	h := NewAuthHandler(mock, validator.NewValidator())

	rec := postJSON(t, h.RegisterStudent, "/register", registerBody())

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Student registered successfully", body["message"])
	assert.Equal(t, "token-123", body["access_token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "student", user["role"])
}

func TestRegisterStudentMissingFields(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, validator.NewValidator())

	body := registerBody()
	delete(body, "email")
	delete(body, "course")
	rec := postJSON(t, h.RegisterStudent, "/register", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "Validation error", resp["message"])
	errs := resp["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "course")
}

func TestRegisterStudentPasswordTooShort(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, validator.NewValidator())

	body := registerBody()
	body["password"] = "short"
	body["password_confirmation"] = "short"
	rec := postJSON(t, h.RegisterStudent, "/register", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := decodeBody(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "password")
}

func TestRegisterStudentDuplicateEmail(t *testing.T) {
	mock := &mockAuthUsecase{
		registerStudentFunc: func(ctx context.Context, req *dto.RegisterStudentRequest) (*entity.User, string, error) {
			fieldErrs := make(validator.FieldErrors)
			fieldErrs.Add("email", "The email has already been taken.")
			return nil, "", fieldErrs
		},
	}
	h := NewAuthHandler(mock, validator.NewValidator())

	rec := postJSON(t, h.RegisterStudent, "/register", registerBody())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := decodeBody(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")
}

func TestLoginUserNotFound(t *testing.T) {
	mock := &mockAuthUsecase{
		loginFunc: func(ctx context.Context, req *dto.LoginRequest) (*entity.User, string, error) {
			return nil, "", usecase.ErrUserNotFound
		},
	}
	h := NewAuthHandler(mock, validator.NewValidator())

	rec := postJSON(t, h.Login, "/login", map[string]string{"email": "ghost@x.com", "password": "whatever1"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "User not found", body["message"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	mock := &mockAuthUsecase{
		loginFunc: func(ctx context.Context, req *dto.LoginRequest) (*entity.User, string, error) {
			return nil, "", usecase.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(mock, validator.NewValidator())

	rec := postJSON(t, h.Login, "/login", map[string]string{"email": "a@x.com", "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
}

func TestLoginSuccess(t *testing.T) {
	mock := &mockAuthUsecase{
		loginFunc: func(ctx context.Context, req *dto.LoginRequest) (*entity.User, string, error) {
			return &entity.User{ID: 1, Email: req.Email, Role: entity.RoleNurse}, "token-abc", nil
		},
	}
	h := NewAuthHandler(mock, validator.NewValidator())

	rec := postJSON(t, h.Login, "/login", map[string]string{"email": "nurse@clinic.com", "password": "securepassword"})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "token-abc", body["access_token"])
	// Role comes back so the client can route by it; the server never branches.
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "nurse", user["role"])
}

func TestLoginValidationError(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, validator.NewValidator())

	rec := postJSON(t, h.Login, "/login", map[string]string{"email": "not-an-email"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := decodeBody(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestLogoutRevokesAllTokensForUser(t *testing.T) {
	var revokedUser uint
	mock := &mockAuthUsecase{
		logoutFunc: func(ctx context.Context, userID uint) error {
			revokedUser = userID
			return nil
		},
	}
	h := NewAuthHandler(mock, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uint(7))
	rec := httptest.NewRecorder()
	h.Logout(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), revokedUser)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Successfully logged out", body["message"])
}

func TestLogoutWithoutAuthContext(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCurrentUser(t *testing.T) {
	mock := &mockAuthUsecase{
		getCurrentUserFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
			return &entity.User{ID: userID, Name: "A", Email: "a@x.com", Role: entity.RoleStudent}, nil
		},
	}
	h := NewAuthHandler(mock, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uint(3))
	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, float64(3), user["id"])
}
