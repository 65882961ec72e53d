package response

import (
	"encoding/json"
	"net/http"
)

// StatusBody is the {status, message} envelope shared by the auth and
// medical-record endpoints.
type StatusBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, StatusBody{Status: "error", Message: message})
}

// ValidationError writes the 422 envelope used by the auth and medical-record
// endpoints. Errors is always a field -> messages map.
func ValidationError(w http.ResponseWriter, message string, errors interface{}) {
	JSON(w, http.StatusUnprocessableEntity, StatusBody{
		Status:  "error",
		Message: message,
		Errors:  errors,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthenticated."
	}
	Error(w, http.StatusUnauthorized, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}
