package handler

import (
	"encoding/json"
	"net/http"

	"student-health-records/internal/delivery/dto"
	"student-health-records/internal/delivery/http/middleware"
	"student-health-records/internal/usecase"
	"student-health-records/pkg/response"
	"student-health-records/pkg/validator"

	"errors"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// RegisterStudent handles the student intake form. The mobile register route
// points at the same handler.
func (h *AuthHandler) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "Validation error", h.validator.FormatValidationErrors(err))
		return
	}

	user, token, err := h.authUsecase.RegisterStudent(r.Context(), &req)
	if err != nil {
		var fieldErrs validator.FieldErrors
		if errors.As(err, &fieldErrs) {
			response.ValidationError(w, "Validation error", fieldErrs)
			return
		}
		response.InternalServerError(w, "Failed to register student")
		return
	}

	response.JSON(w, http.StatusCreated, dto.RegisterResponse{
		Status:      "success",
		Message:     "Student registered successfully",
		User:        user,
		AccessToken: token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "Validation error", h.validator.FormatValidationErrors(err))
		return
	}

	user, token, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.Error(w, http.StatusUnauthorized, "User not found")
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.LoginResponse{
		Status:      "success",
		User:        user,
		AccessToken: token,
	})
}

// Logout revokes every token the user holds, so all concurrent sessions stop
// authenticating at once. Calling it with no live tokens still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), userID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.JSON(w, http.StatusOK, response.StatusBody{
		Status:  "success",
		Message: "Successfully logged out",
	})
}

func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get user info")
		return
	}

	response.JSON(w, http.StatusOK, dto.CurrentUserResponse{
		Status: "success",
		User:   user,
	})
}
