package api

import (
	"errors"
	"fmt"
	"net/http"

	"log/slog"

	"github.com/garnizeh/jobfinder/internal/ingest"
	"github.com/garnizeh/jobfinder/pkg/models"
	"github.com/garnizeh/jobfinder/pkg/repository"
	"github.com/gorilla/mux"
)

type ApplicationsHandler struct {
	jobRepo    repository.JobRepo
	appRepo    repository.ApplicationRepo
	resumeRepo repository.ResumeRepo
}

func NewApplicationsHandler(jr repository.JobRepo, ar repository.ApplicationRepo, rr repository.ResumeRepo) *ApplicationsHandler {
	return &ApplicationsHandler{jobRepo: jr, appRepo: ar, resumeRepo: rr}
}

// Apply submits a multipart application (name, email, contact, optional
// "resume" file) for a job. Anonymous submissions are allowed. A fresh
// upload becomes the logged-in user's saved résumé; with no upload the saved
// one is attached when available. A file that fails to read aborts the whole
// submission with nothing written.
func (h *ApplicationsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	jobID := mux.Vars(r)["id"]
	job, err := h.jobRepo.GetJob(ctx, jobID)
	if err != nil {
		http.Error(w, fmt.Sprintf("get job: %v", err), http.StatusInternalServerError)
		return
	}
	if job == nil {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}

	userID := UserIDFromContext(ctx)

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

		if userID != "" {
			if err := h.resumeRepo.SetResume(ctx, userID, resumeName, resumeDataURL); err != nil {
				http.Error(w, "Error storing resume", http.StatusInternalServerError)
				return
			}
		}
	} else if userID != "" {
		saved, err := h.resumeRepo.GetResume(ctx, userID)
		if err != nil {
			http.Error(w, "Error loading resume", http.StatusInternalServerError)
			return
		}
		if saved != nil {
			resumeName, resumeDataURL = saved.Name, saved.DataURL
		}
	}

	app := models.Application{
		JobID:         job.ID,
		JobTitle:      job.Title,
		ApplicantID:   userID,
		Name:          r.FormValue("name"),
		Email:         r.FormValue("email"),
		Contact:       r.FormValue("contact"),
		ResumeName:    resumeName,
		ResumeDataURL: resumeDataURL,
	}
	if err := h.appRepo.CreateApplication(ctx, &app); err != nil {
		if errors.Is(err, repository.ErrMissingFields) {
			http.Error(w, "Missing fields", http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("create application: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, app, http.StatusCreated)
}

// ListApplications returns the viewer's applications: by applicant id for a
// logged-in viewer, by ?email= for an anonymous one.
func (h *ApplicationsHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := UserIDFromContext(ctx)
	email := r.URL.Query().Get("email")

	apps, err := h.appRepo.ListForUser(ctx, userID, email)
	if err != nil {
		http.Error(w, fmt.Sprintf("list applications: %v", err), http.StatusInternalServerError)
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}

	writeJSON(w, apps, http.StatusOK)
}
