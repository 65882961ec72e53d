package http

import (
	"net/http"

	"student-health-records/internal/delivery/http/handler"
	"student-health-records/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	userHandler          *handler.UserHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	debugHandler         *handler.DebugHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	enableDebugRoutes    bool
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	debugHandler *handler.DebugHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	enableDebugRoutes bool,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		userHandler:          userHandler,
		medicalRecordHandler: medicalRecordHandler,
		debugHandler:         debugHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		enableDebugRoutes:    enableDebugRoutes,
	}
}

// Setup builds the route table and returns the handler chain. CORS wraps the
// router from outside rather than via router.Use: mux only runs middleware
// after a route matches, and no route registers OPTIONS, so preflight
// requests would never reach the middleware otherwise.
func (r *Router) Setup() http.Handler {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public auth routes
	r.router.HandleFunc("/register", r.authHandler.RegisterStudent).Methods(http.MethodPost)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Mobile-specific public routes; same handlers, distinct paths
	mobile := r.router.PathPrefix("/mobile").Subrouter()
	mobile.HandleFunc("/register", r.authHandler.RegisterStudent).Methods(http.MethodPost)
	mobile.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Protected auth routes
	authProtected := r.router.PathPrefix("").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/user", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// User management
	users := r.router.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.HandleFunc("", r.userHandler.List).Methods(http.MethodGet)
	users.HandleFunc("", r.userHandler.Create).Methods(http.MethodPost)
	users.HandleFunc("/{id}", r.userHandler.Show).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.Update).Methods(http.MethodPut)
	users.HandleFunc("/{id}", r.userHandler.Destroy).Methods(http.MethodDelete)

	// Medical records
	records := r.router.PathPrefix("/medical-records").Subrouter()
	records.Use(r.authMiddleware.Authenticate)
	records.HandleFunc("", r.medicalRecordHandler.List).Methods(http.MethodGet)
	records.HandleFunc("", r.medicalRecordHandler.Create).Methods(http.MethodPost)
	records.HandleFunc("/user/{userId}", r.medicalRecordHandler.GetByUser).Methods(http.MethodGet)
	records.HandleFunc("/{id}", r.medicalRecordHandler.Show).Methods(http.MethodGet)
	records.HandleFunc("/{id}", r.medicalRecordHandler.Update).Methods(http.MethodPut)
	records.HandleFunc("/{id}", r.medicalRecordHandler.Destroy).Methods(http.MethodDelete)

	// Diagnostic surface, never registered in production builds
	if r.enableDebugRoutes {
		r.router.HandleFunc("/auth-check", r.debugHandler.AuthCheck).Methods(http.MethodPost)
	}

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
