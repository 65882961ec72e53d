package handler

import (
	"encoding/json"
	"net/http"

	"student-health-records/internal/usecase"
	"student-health-records/pkg/response"

	"github.com/sirupsen/logrus"
)

// DebugHandler backs the /auth-check diagnostic route. It is only registered
// when the app does not run in production; it must never be reachable there.
type DebugHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewDebugHandler(authUsecase usecase.AuthUsecase) *DebugHandler {
	return &DebugHandler{authUsecase: authUsecase}
}

type authCheckRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *DebugHandler) AuthCheck(w http.ResponseWriter, r *http.Request) {
	var req authCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	logrus.WithFields(logrus.Fields{
		"email":             req.Email,
		"password_provided": req.Password != "",
	}).Info("Auth check request received")

	user, matches, err := h.authUsecase.CheckCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			logrus.WithField("email", req.Email).Warn("Auth check: user not found")
			response.JSON(w, http.StatusNotFound, map[string]interface{}{
				"status":         "error",
				"message":        "User not found",
				"email_provided": req.Email,
			})
			return
		}
		response.InternalServerError(w, "Failed to check credentials")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":           "debug",
		"user_exists":      true,
		"password_matches": matches,
		"user_details": map[string]interface{}{
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}
