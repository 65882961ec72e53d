package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"student-health-records/internal/delivery/dto"
	"student-health-records/internal/domain/entity"
	"student-health-records/internal/usecase"
	"student-health-records/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// Compile-time check to ensure mockRecordUsecase implements usecase.MedicalRecordUsecase
var _ usecase.MedicalRecordUsecase = (*mockRecordUsecase)(nil)

type mockRecordUsecase struct {
	listFunc      func(ctx context.Context) ([]entity.MedicalRecord, error)
	getFunc       func(ctx context.Context, id uint) (*entity.MedicalRecord, error)
	getByUserFunc func(ctx context.Context, userID uint) (*entity.MedicalRecord, error)
	createFunc    func(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*entity.MedicalRecord, error)
	updateFunc    func(ctx context.Context, id uint, req *dto.UpdateMedicalRecordRequest) (*entity.MedicalRecord, error)
	deleteFunc    func(ctx context.Context, id uint) error
}

func (m *mockRecordUsecase) List(ctx context.Context) ([]entity.MedicalRecord, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRecordUsecase) Get(ctx context.Context, id uint) (*entity.MedicalRecord, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRecordUsecase) GetByUser(ctx context.Context, userID uint) (*entity.MedicalRecord, error) {
	if m.getByUserFunc != nil {
		return m.getByUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRecordUsecase) Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*entity.MedicalRecord, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRecordUsecase) Update(ctx context.Context, id uint, req *dto.UpdateMedicalRecordRequest) (*entity.MedicalRecord, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRecordUsecase) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func recordRouter(h *MedicalRecordHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/medical-records", h.List).Methods(http.MethodGet)
	r.HandleFunc("/medical-records", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/medical-records/user/{userId}", h.GetByUser).Methods(http.MethodGet)
	r.HandleFunc("/medical-records/{id}", h.Show).Methods(http.MethodGet)
	r.HandleFunc("/medical-records/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/medical-records/{id}", h.Destroy).Methods(http.MethodDelete)
	return r
}

func TestRecordListEmpty(t *testing.T) {
	mock := &mockRecordUsecase{
		listFunc: func(ctx context.Context) ([]entity.MedicalRecord, error) { return nil, nil },
	}
	h := NewMedicalRecordHandler(mock, validator.NewValidator())

	rec := serve(recordRouter(h), http.MethodGet, "/medical-records", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestRecordGetByUserNotFound(t *testing.T) {
	mock := &mockRecordUsecase{
		getByUserFunc: func(ctx context.Context, userID uint) (*entity.MedicalRecord, error) {
			return nil, usecase.ErrRecordNotFound
		},
	}
	h := NewMedicalRecordHandler(mock, validator.NewValidator())

	rec := serve(recordRouter(h), http.MethodGet, "/medical-records/user/9", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "No medical records found for this user", body["message"])
}

func TestRecordGetByUserReturnsSingleRecord(t *testing.T) {
	mock := &mockRecordUsecase{
		getByUserFunc: func(ctx context.Context, userID uint) (*entity.MedicalRecord, error) {
			assert.Equal(t, uint(3), userID)
			return &entity.MedicalRecord{ID: 10, UserID: userID}, nil
		},
	}
	h := NewMedicalRecordHandler(mock, validator.NewValidator())

	rec := serve(recordRouter(h), http.MethodGet, "/medical-records/user/3", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	// The payload is one record, never a list.
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["id"])
}

func TestRecordCreateUnknownUser(t *testing.T) {
	mock := &mockRecordUsecase{
		createFunc: func(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*entity.MedicalRecord, error) {
			fieldErrs := make(validator.FieldErrors)
			fieldErrs.Add("user_id", "The selected user id is invalid.")
			return nil, fieldErrs
		},
	}
	h := NewMedicalRecordHandler(mock, validator.NewValidator())

	rec := postJSON(t, func(w http.ResponseWriter, r *http.Request) { h.Create(w, r) },
		"/medical-records", map[string]interface{}{"user_id": 999})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Validation failed", body["message"])
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "user_id")
}

func TestRecordCreateMissingUserID(t *testing.T) {
	h := NewMedicalRecordHandler(&mockRecordUsecase{}, validator.NewValidator())

	rec := postJSON(t, func(w http.ResponseWriter, r *http.Request) { h.Create(w, r) },
		"/medical-records", map[string]interface{}{"allergies": "pollen"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := decodeBody(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "user_id")
}

func TestRecordCreateWithEmptyClinicalFields(t *testing.T) {
	mock := &mockRecordUsecase{
		createFunc: func(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*entity.MedicalRecord, error) {
			assert.Nil(t, req.Allergies)
			assert.Nil(t, req.ChronicConditions)
			return &entity.MedicalRecord{ID: 1, UserID: req.UserID}, nil
		},
	}
	h := NewMedicalRecordHandler(mock, validator.NewValidator())

	rec := postJSON(t, func(w http.ResponseWriter, r *http.Request) { h.Create(w, r) },
		"/medical-records", map[string]interface{}{"user_id": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]interface{})
	assert.Nil(t, data["allergies"])
	assert.Nil(t, data["chronic_conditions"])
}

func TestRecordCreatePersistenceFailure(t *testing.T) {
	mock := &mockRecordUsecase{
		createFunc: func(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*entity.MedicalRecord, error) {
			return nil, errors.New("connection reset by peer")
		},
	}
	h := NewMedicalRecordHandler(mock, validator.NewValidator())

	rec := postJSON(t, func(w http.ResponseWriter, r *http.Request) { h.Create(w, r) },
		"/medical-records", map[string]interface{}{"user_id": 3})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Failed to create medical record", body["message"])
	// The underlying error is surfaced to the caller.
	assert.Equal(t, "connection reset by peer", body["error"])
}

func TestRecordUpdatePartialClinicalFields(t *testing.T) {
	var captured *dto.UpdateMedicalRecordRequest
	mock := &mockRecordUsecase{
		updateFunc: func(ctx context.Context, id uint, req *dto.UpdateMedicalRecordRequest) (*entity.MedicalRecord, error) {
			captured = req
			allergies := *req.Allergies
			return &entity.MedicalRecord{ID: id, UserID: 3, Allergies: &allergies}, nil
		},
	}
	h := NewMedicalRecordHandler(mock, validator.NewValidator())

	rec := serve(recordRouter(h), http.MethodPut, "/medical-records/10", map[string]string{"allergies": "penicillin"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, captured.Allergies)
	assert.Nil(t, captured.ChronicConditions)
	assert.Nil(t, captured.ImmunizationHistory)
}

func TestRecordUpdateNotFound(t *testing.T) {
	mock := &mockRecordUsecase{
		updateFunc: func(ctx context.Context, id uint, req *dto.UpdateMedicalRecordRequest) (*entity.MedicalRecord, error) {
			return nil, usecase.ErrRecordNotFound
		},
	}
	h := NewMedicalRecordHandler(mock, validator.NewValidator())

	rec := serve(recordRouter(h), http.MethodPut, "/medical-records/77", map[string]string{"allergies": "dust"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordDestroy(t *testing.T) {
	mock := &mockRecordUsecase{
		deleteFunc: func(ctx context.Context, id uint) error {
			assert.Equal(t, uint(5), id)
			return nil
		},
	}
	h := NewMedicalRecordHandler(mock, validator.NewValidator())

	rec := serve(recordRouter(h), http.MethodDelete, "/medical-records/5", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Medical record deleted successfully", body["message"])
}

func TestRecordDestroyFailure(t *testing.T) {
	mock := &mockRecordUsecase{
		deleteFunc: func(ctx context.Context, id uint) error {
			return errors.New("deadlock detected")
		},
	}
	h := NewMedicalRecordHandler(mock, validator.NewValidator())

	rec := serve(recordRouter(h), http.MethodDelete, "/medical-records/5", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "deadlock detected", body["error"])
}

func TestRecordShowNotFound(t *testing.T) {
	mock := &mockRecordUsecase{
		getFunc: func(ctx context.Context, id uint) (*entity.MedicalRecord, error) {
			return nil, usecase.ErrRecordNotFound
		},
	}
	h := NewMedicalRecordHandler(mock, validator.NewValidator())

	rec := serve(recordRouter(h), http.MethodGet, "/medical-records/404", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Medical record not found", decodeBody(t, rec)["message"])
}
