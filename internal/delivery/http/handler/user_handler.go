package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"student-health-records/internal/converter"
	"student-health-records/internal/delivery/dto"
	"student-health-records/internal/domain/entity"
	"student-health-records/internal/usecase"
	"student-health-records/pkg/response"
	"student-health-records/pkg/validator"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.List(r.Context())
	if err != nil {
		response.JSON(w, http.StatusInternalServerError, dto.UserMessageResponse{
			Success: false,
			Message: "Failed to list users",
		})
		return
	}
	if users == nil {
		users = []entity.User{}
	}

	response.JSON(w, http.StatusOK, dto.UserListResponse{
		Success: true,
		Data:    users,
		Table:   converter.UsersToTable(users),
	})
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusBadRequest, dto.UserMessageResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.validationFailed(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Create(r.Context(), &req)
	if err != nil {
		var fieldErrs validator.FieldErrors
		if errors.As(err, &fieldErrs) {
			h.validationFailed(w, fieldErrs)
			return
		}
		response.JSON(w, http.StatusInternalServerError, dto.UserMessageResponse{
			Success: false,
			Message: "Failed to create user",
		})
		return
	}

	response.JSON(w, http.StatusCreated, dto.UserResponse{
		Success: true,
		User:    user,
		Table:   converter.UserToTable(user),
		Message: "User created successfully",
	})
}

func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.userUsecase.Get(r.Context(), id)
	if err != nil {
		h.lookupFailed(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.UserResponse{
		Success: true,
		User:    user,
		Table:   converter.UserToTable(user),
	})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusBadRequest, dto.UserMessageResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.validationFailed(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Update(r.Context(), id, &req)
	if err != nil {
		var fieldErrs validator.FieldErrors
		if errors.As(err, &fieldErrs) {
			h.validationFailed(w, fieldErrs)
			return
		}
		h.lookupFailed(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.UserResponse{
		Success: true,
		User:    user,
		Table:   converter.UserToTable(user),
		Message: "User updated successfully",
	})
}

func (h *UserHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.userUsecase.Delete(r.Context(), id); err != nil {
		h.lookupFailed(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.UserMessageResponse{
		Success: true,
		Message: "User deleted successfully",
	})
}

func (h *UserHandler) userID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 64)
	if err != nil {
		response.JSON(w, http.StatusNotFound, dto.UserMessageResponse{
			Success: false,
			Message: "User not found",
		})
		return 0, false
	}
	return uint(id), true
}

func (h *UserHandler) validationFailed(w http.ResponseWriter, errs validator.FieldErrors) {
	response.JSON(w, http.StatusUnprocessableEntity, dto.UserValidationResponse{
		Success: false,
		Errors:  errs,
		Message: "Validation failed",
	})
}

func (h *UserHandler) lookupFailed(w http.ResponseWriter, err error) {
	if err == usecase.ErrUserNotFound {
		response.JSON(w, http.StatusNotFound, dto.UserMessageResponse{
			Success: false,
			Message: "User not found",
		})
		return
	}
	response.JSON(w, http.StatusInternalServerError, dto.UserMessageResponse{
		Success: false,
		Message: "Internal server error",
	})
}
