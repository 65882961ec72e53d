package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"student-health-records/internal/delivery/dto"
	"student-health-records/internal/domain/entity"
	"student-health-records/internal/usecase"
	"student-health-records/pkg/response"
	"student-health-records/pkg/validator"

	"github.com/gorilla/mux"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *MedicalRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list medical records")
		return
	}
	if records == nil {
		records = []entity.MedicalRecord{}
	}

	response.JSON(w, http.StatusOK, dto.MedicalRecordDataResponse{
		Status: "success",
		Data:   records,
	})
}

func (h *MedicalRecordHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r, "id")
	if !ok {
		return
	}

	record, err := h.recordUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrRecordNotFound {
			response.NotFound(w, "Medical record not found")
			return
		}
		response.InternalServerError(w, "Failed to get medical record")
		return
	}

	response.JSON(w, http.StatusOK, dto.MedicalRecordDataResponse{
		Status: "success",
		Data:   record,
	})
}

// GetByUser returns the first record owned by the user. Even when the schema
// ends up holding more than one row per user, exactly one comes back.
func (h *MedicalRecordHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := recordID(w, r, "userId")
	if !ok {
		return
	}

	record, err := h.recordUsecase.GetByUser(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrRecordNotFound {
			response.NotFound(w, "No medical records found for this user")
			return
		}
		response.InternalServerError(w, "Failed to get medical record")
		return
	}

	response.JSON(w, http.StatusOK, dto.MedicalRecordDataResponse{
		Status: "success",
		Data:   record,
	})
}

func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "Validation failed", h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), &req)
	if err != nil {
		var fieldErrs validator.FieldErrors
		if errors.As(err, &fieldErrs) {
			response.ValidationError(w, "Validation failed", fieldErrs)
			return
		}
		// Persistence failures surface the underlying error to the caller.
		response.JSON(w, http.StatusInternalServerError, dto.MedicalRecordErrorResponse{
			Status:  "error",
			Message: "Failed to create medical record",
			Error:   err.Error(),
		})
		return
	}

	response.JSON(w, http.StatusCreated, dto.MedicalRecordDataResponse{
		Status: "success",
		Data:   record,
	})
}

func (h *MedicalRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.recordUsecase.Update(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrRecordNotFound {
			response.NotFound(w, "Medical record not found")
			return
		}
		response.JSON(w, http.StatusInternalServerError, dto.MedicalRecordErrorResponse{
			Status:  "error",
			Message: "Failed to update medical record",
			Error:   err.Error(),
		})
		return
	}

	response.JSON(w, http.StatusOK, dto.MedicalRecordDataResponse{
		Status: "success",
		Data:   record,
	})
}

func (h *MedicalRecordHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r, "id")
	if !ok {
		return
	}

	if err := h.recordUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrRecordNotFound {
			response.NotFound(w, "Medical record not found")
			return
		}
		response.JSON(w, http.StatusInternalServerError, dto.MedicalRecordErrorResponse{
			Status:  "error",
			Message: "Failed to delete medical record",
			Error:   err.Error(),
		})
		return
	}

	response.JSON(w, http.StatusOK, response.StatusBody{
		Status:  "success",
		Message: "Medical record deleted successfully",
	})
}

func recordID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars[name], 10, 64)
	if err != nil {
		response.NotFound(w, "Medical record not found")
		return 0, false
	}
	return uint(id), true
}
