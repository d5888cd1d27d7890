package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/garnizeh/jobfinder/internal/filter"
	"github.com/garnizeh/jobfinder/pkg/models"
	"github.com/garnizeh/jobfinder/pkg/repository"
	"github.com/gorilla/mux"
	"github.com/qri-io/jsonschema"
)

// jobPostingSchema validates posting payloads before they reach the
// repository: required title/company/contact, skills as an array of strings.
const jobPostingSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["title", "company", "contact"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "company": {"type": "string", "minLength": 1},
    "location": {"type": "string"},
    "skills": {"type": "array", "items": {"type": "string"}},
    "salary": {"type": "string"},
    "description": {"type": "string"},
    "contact": {"type": "string", "minLength": 1}
  },
  "additionalProperties": false
}`

type JobsHandler struct {
	jobRepo repository.JobRepo
	schema  *jsonschema.Schema
}

func NewJobsHandler(jr repository.JobRepo) (*JobsHandler, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(jobPostingSchema), rs); err != nil {
		return nil, fmt.Errorf("compile job posting schema: %w", err)
	}

	return &JobsHandler{jobRepo: jr, schema: rs}, nil
}

// ListJobs returns the catalog newest-first, narrowed by the optional ?q=
// free-text query over title, company and skills.
func (h *JobsHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobRepo.ListJobs(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("list jobs: %v", err), http.StatusInternalServerError)
		return
	}

	jobs = filter.Jobs(jobs, r.URL.Query().Get("q"))
	if jobs == nil {
		jobs = []models.Job{}
	}

	writeJSON(w, jobs, http.StatusOK)
}

func (h *JobsHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	job, err := h.jobRepo.GetJob(r.Context(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("get job: %v", err), http.StatusInternalServerError)
		return
	}
	if job == nil {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}

	writeJSON(w, job, http.StatusOK)
}

type postJobRequest struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Skills      []string `json:"skills"`
	Salary      string   `json:"salary"`
	Description string   `json:"description"`
	Contact     string   `json:"contact"`
}

// CreateJob validates the payload against the posting schema and prepends
// the new job to the catalog.
func (h *JobsHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body failed", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	verrs, err := h.schema.ValidateBytes(ctx, body)
	if err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if len(verrs) > 0 {
		http.Error(w, fmt.Sprintf("invalid job posting: %v", verrs[0].Error()), http.StatusBadRequest)
		return
	}

	var req postJobRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	job := models.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Skills:      req.Skills,
		Salary:      req.Salary,
		Description: req.Description,
		Contact:     req.Contact,
	}
	if err := h.jobRepo.CreateJob(ctx, &job); err != nil {
		if errors.Is(err, repository.ErrMissingFields) {
			http.Error(w, "Missing fields", http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("create job: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, job, http.StatusCreated)
}
