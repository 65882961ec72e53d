package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"student-health-records/config"
	"student-health-records/internal/delivery/http/handler"
	"student-health-records/internal/delivery/http/middleware"
	"student-health-records/pkg/jwt"
	"student-health-records/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(enableDebugRoutes bool, allowedOrigins []string) http.Handler {
	cv := validator.NewValidator()
	jwtService := jwt.NewJWTService(config.TokenConfig{Secret: "test-secret"})
	redisClient := redis.NewClient(&redis.Options{})

	return NewRouter(
		handler.NewAuthHandler(nil, cv),
		handler.NewUserHandler(nil, cv),
		handler.NewMedicalRecordHandler(nil, cv),
		handler.NewDebugHandler(nil),
		middleware.NewAuthMiddleware(jwtService, redisClient),
		middleware.NewCORSMiddleware(allowedOrigins),
		enableDebugRoutes,
	).Setup()
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	newTestRouter(false, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestProtectedRoutesRequireAuthHeader(t *testing.T) {
	for _, path := range []string{"/users", "/medical-records", "/user"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)

		newTestRouter(false, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Authorization header is required")
	}
}

func TestAuthCheckOnlyOutsideProduction(t *testing.T) {
	// A malformed body reaches the handler and gets a 400 when the route
	// exists; when it does not, mux answers 404 before any handler runs.
	body := strings.NewReader("{")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth-check", body)
	newTestRouter(true, nil).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/auth-check", strings.NewReader("{"))
	newTestRouter(false, nil).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreflightAnsweredForUnroutedMethods(t *testing.T) {
	// No route registers OPTIONS, so preflights only work because CORS wraps
	// the router itself.
	router := newTestRouter(false, []string{"http://localhost:19000"})

	for _, path := range []string{"/users", "/medical-records", "/users/4"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "http://localhost:19000")

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "http://localhost:19000", rec.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"), path)
	}
}

func TestCrossOriginRequestCarriesCORSHeaders(t *testing.T) {
	router := newTestRouter(false, []string{"http://localhost:19006"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:19006")

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:19006", rec.Header().Get("Access-Control-Allow-Origin"))
}
