package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/garnizeh/jobfinder/internal/ingest"
	"github.com/garnizeh/jobfinder/pkg/models"
	"github.com/garnizeh/jobfinder/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
)

// uploads are read into memory before encoding; the store itself enforces no
// ceiling beyond what the medium can hold
const maxUploadMemory = 32 << 20

type AuthHandler struct {
	userRepo      repository.UserRepo
	resumeRepo    repository.ResumeRepo
	sessionRepo   repository.SessionRepo
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ur repository.UserRepo, rr repository.ResumeRepo, sr repository.SessionRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{userRepo: ur, resumeRepo: rr, sessionRepo: sr, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Signup registers a user from a multipart form (name, email, password,
// role, optional "resume" file), stores the résumé when one was attached,
// and signs the new user in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	role := r.FormValue("role")
	if role == "" {
		role = models.RoleSeeker
	}
	user := models.User{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Role:     role,
	}

	ctx := r.Context()

	// Read the résumé before creating the user: a file that fails to read
	// aborts the whole registration with nothing written.
	var resumeName, resumeDataURL string
	if f, header, err := r.FormFile("resume"); err == nil {
		defer f.Close()
		dataURL, err := ingest.ReadDataURL(ctx, f, header.Filename)
		if err != nil {
			logger.Error("resume ingest failed", slog.Any("err", err))
			http.Error(w, "Failed to read resume", http.StatusBadRequest)
			return
		}
		resumeName, resumeDataURL = header.Filename, dataURL
	}

	if err := h.userRepo.CreateUser(ctx, &user); err != nil {
		switch {
		case errors.Is(err, repository.ErrMissingFields):
			http.Error(w, "Missing fields", http.StatusBadRequest)
		case errors.Is(err, repository.ErrDuplicateEmail):
			http.Error(w, "Email already registered", http.StatusConflict)
		default:
			http.Error(w, "Error creating user", http.StatusInternalServerError)
		}
		return
	}

	if resumeDataURL != "" {
		if err := h.resumeRepo.SetResume(ctx, user.ID, resumeName, resumeDataURL); err != nil {
			http.Error(w, "Error storing resume", http.StatusInternalServerError)
			return
		}
	}

	if err := h.sessionRepo.Login(ctx, user.ID); err != nil {
		http.Error(w, "Error recording session", http.StatusInternalServerError)
		return
	}

	tokenStr, err := h.issueToken(user.ID, user.Email)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, authResponse{Token: tokenStr, User: &user}, http.StatusCreated)
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	user, err := h.userRepo.GetByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		http.Error(w, "Error looking up user", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := h.sessionRepo.Login(ctx, user.ID); err != nil {
		http.Error(w, "Error recording session", http.StatusInternalServerError)
		return
	}

	tokenStr, err := h.issueToken(user.ID, user.Email)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, authResponse{Token: tokenStr, User: user}, http.StatusOK)
}

func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionRepo.Logout(r.Context()); err != nil {
		http.Error(w, "Error clearing session", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"message":"signed out"}`)
}

// Me resolves the stored session token. A stale token is not an error, it
// just reads as logged out.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessionRepo.CurrentUser(r.Context())
	if err != nil {
		http.Error(w, "Error resolving session", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "Not logged in", http.StatusUnauthorized)
		return
	}

	writeJSON(w, user, http.StatusOK)
}

func (h *AuthHandler) issueToken(userID, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(h.tokenDuration).Unix(),
	})

	return token.SignedString([]byte(h.jwtSecret))
}
