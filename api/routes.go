package api

import (
	"fmt"
	"net/http"

	"github.com/garnizeh/jobfinder/internal/config"
	"github.com/garnizeh/jobfinder/internal/repository/kv"
	"github.com/garnizeh/jobfinder/internal/store"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, s *store.Store) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := kv.New(s, nil)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, repo, repo, cfg.JWTSecret, cfg.TokenDuration)
	jobsHandler, err := NewJobsHandler(repo)
	if err != nil {
		return nil, fmt.Errorf("jobs handler: %w", err)
	}
	appsHandler := NewApplicationsHandler(repo, repo, repo)
	resumesHandler := NewResumesHandler(repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")
	r.HandleFunc("/v1/jobs", jobsHandler.ListJobs).Methods("GET")
	r.HandleFunc("/v1/jobs/{id}", jobsHandler.GetJob).Methods("GET")

	// Endpoints usable anonymously but aware of a valid token
	optional := OptionalJWTMiddleware(cfg.JWTSecret)
	r.Handle("/v1/jobs/{id}/apply", optional(http.HandlerFunc(appsHandler.Apply))).Methods("POST")
	r.Handle("/v1/applications", optional(http.HandlerFunc(appsHandler.ListApplications))).Methods("GET")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	apiV1.HandleFunc("/auth/signout", authHandler.Signout).Methods("POST")
	apiV1.HandleFunc("/me", authHandler.Me).Methods("GET")
	apiV1.HandleFunc("/jobs", jobsHandler.CreateJob).Methods("POST")
	apiV1.HandleFunc("/resume", resumesHandler.GetResume).Methods("GET")
	apiV1.HandleFunc("/resume", resumesHandler.PutResume).Methods("PUT")

	return r, nil
}
