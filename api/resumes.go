package api

import (
	"fmt"
	"net/http"

	"log/slog"

	"github.com/garnizeh/jobfinder/internal/ingest"
	"github.com/garnizeh/jobfinder/pkg/repository"
)

type ResumesHandler struct {
	resumeRepo repository.ResumeRepo
}

func NewResumesHandler(rr repository.ResumeRepo) *ResumesHandler {
	return &ResumesHandler{resumeRepo: rr}
}

func (h *ResumesHandler) GetResume(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	rec, err := h.resumeRepo.GetResume(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("get resume: %v", err), http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.Error(w, "no resume on file", http.StatusNotFound)
		return
	}

	writeJSON(w, rec, http.StatusOK)
}

// PutResume overwrites the caller's saved résumé with the uploaded file.
func (h *ResumesHandler) PutResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	f, header, err := r.FormFile("resume")
	if err != nil {
		http.Error(w, "resume file required", http.StatusBadRequest)
		return
	}
	defer f.Close()

	ctx := r.Context()

	dataURL, err := ingest.ReadDataURL(ctx, f, header.Filename)
	if err != nil {
		logger.Error("resume ingest failed", slog.Any("err", err))
		http.Error(w, "Failed to read resume", http.StatusBadRequest)
		return
	}

	userID := UserIDFromContext(ctx)
	if err := h.resumeRepo.SetResume(ctx, userID, header.Filename, dataURL); err != nil {
		http.Error(w, fmt.Sprintf("store resume: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
