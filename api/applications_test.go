package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garnizeh/jobfinder/api"
	"github.com/garnizeh/jobfinder/pkg/models"
	"github.com/garnizeh/jobfinder/pkg/repository/mock"
	"github.com/gorilla/mux"
)

func applicationsRouter(m *mock.Mocks) *mux.Router {
	handler := api.NewApplicationsHandler(m.Jobs, m.Apps, m.Resumes)

	r := mux.NewRouter()
	r.HandleFunc("/v1/jobs/{id}/apply", handler.Apply).Methods("POST")
	r.HandleFunc("/v1/applications", handler.ListApplications).Methods("GET")

	return r
}

func withUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), api.CtxUserID, userID))
}

func TestApplyHandler(t *testing.T) {
	applicantFields := map[string]string{
		"name":    "Alice",
		"email":   "alice@example.com",
		"contact": "9123456789",
	}

	tests := []struct {
		name       string
		jobID      string
		userID     string
		fields     map[string]string
		fileName   string
		prepare    func(m *mock.Mocks)
		wantStatus int
		check      func(t *testing.T, m *mock.Mocks, body []byte)
	}{
		{
			name:       "JobNotFound",
			jobID:      "id_missing",
			fields:     applicantFields,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "MissingFields",
			jobID:      "j1",
			fields:     map[string]string{"name": "Alice", "email": "alice@example.com"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "AnonymousSuccess",
			jobID:      "j1",
			fields:     applicantFields,
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, m *mock.Mocks, body []byte) {
				var app models.Application
				if err := json.Unmarshal(body, &app); err != nil {
					t.Fatalf("decode application: %v", err)
				}
				if app.ApplicantID != "" {
					t.Fatalf("expected anonymous application, got applicant %q", app.ApplicantID)
				}
				if app.JobTitle != "Software Engineer" {
					t.Fatalf("expected denormalized job title, got %q", app.JobTitle)
				}
				if app.ID == "" || app.AppliedAt == 0 {
					t.Fatalf("expected id and appliedAt to be assigned: %#v", app)
				}
			},
		},
		{
			name:       "LoggedInWithFileStoresResume",
			jobID:      "j1",
			userID:     "id_u1",
			fields:     applicantFields,
			fileName:   "cv.pdf",
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, m *mock.Mocks, body []byte) {
				var app models.Application
				if err := json.Unmarshal(body, &app); err != nil {
					t.Fatalf("decode application: %v", err)
				}
				if app.ApplicantID != "id_u1" {
					t.Fatalf("expected applicant id, got %q", app.ApplicantID)
				}
				if app.ResumeName != "cv.pdf" || app.ResumeDataURL == "" {
					t.Fatalf("expected uploaded resume on application: %#v", app)
				}
				rec, ok := m.Resumes.Stored["id_u1"]
				if !ok || rec.Name != "cv.pdf" {
					t.Fatalf("expected upload to replace saved resume, got %#v", m.Resumes.Stored)
				}
			},
		},
		{
			name:   "LoggedInFallsBackToSavedResume",
			jobID:  "j1",
			userID: "id_u1",
			fields: applicantFields,
			prepare: func(m *mock.Mocks) {
				m.Resumes.Stored["id_u1"] = models.ResumeRecord{Name: "saved.pdf", DataURL: "data:application/pdf;base64,QQ=="}
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, m *mock.Mocks, body []byte) {
				var app models.Application
				if err := json.Unmarshal(body, &app); err != nil {
					t.Fatalf("decode application: %v", err)
				}
				if app.ResumeName != "saved.pdf" {
					t.Fatalf("expected saved resume to be attached, got %q", app.ResumeName)
				}
			},
		},
		{
			name:     "ResumeStoreErrorAborts",
			jobID:    "j1",
			userID:   "id_u1",
			fields:   applicantFields,
			fileName: "cv.pdf",
			prepare: func(m *mock.Mocks) {
				m.Resumes.SetErr = errors.New("disk full")
			},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, m *mock.Mocks, body []byte) {
				if len(m.Apps.Stored) != 0 {
					t.Fatalf("expected no application written after store failure, got %#v", m.Apps.Stored)
				}
			},
		},
		{
			name:       "UploadWithoutLoginDoesNotSave",
			jobID:      "j1",
			fields:     applicantFields,
			fileName:   "cv.pdf",
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, m *mock.Mocks, body []byte) {
				if len(m.Resumes.Stored) != 0 {
					t.Fatalf("expected no saved resume for anonymous upload, got %#v", m.Resumes.Stored)
				}
				var app models.Application
				if err := json.Unmarshal(body, &app); err != nil || app.ResumeName != "cv.pdf" {
					t.Fatalf("expected resume attached to application: %#v err=%v", app, err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			mocks.Jobs.Stored = []models.Job{{ID: "j1", Title: "Software Engineer", Company: "Infosys", Contact: "91"}}
			if tt.prepare != nil {
				tt.prepare(mocks)
			}
			r := applicationsRouter(mocks)

			body, contentType := multipartBody(t, tt.fields, tt.fileName, "%PDF-1.4 fake")
			req := httptest.NewRequest(http.MethodPost, "/v1/jobs/"+tt.jobID+"/apply", body)
			req.Header.Set("Content-Type", contentType)
			if tt.userID != "" {
				req = withUserID(req, tt.userID)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()
			data, _ := io.ReadAll(res.Body)
			if res.StatusCode != tt.wantStatus {
				t.Fatalf("expected status %d got %d body=%s", tt.wantStatus, res.StatusCode, string(data))
			}
			if tt.check != nil {
				tt.check(t, mocks, data)
			}
		})
	}
}

func TestListApplicationsHandler(t *testing.T) {
	seed := []models.Application{
		{ID: "a3", JobID: "j1", ApplicantID: "id_u1", Name: "Mahesh", Email: "mahesh@example.com", Contact: "91"},
		{ID: "a2", JobID: "j2", Name: "Guest", Email: "guest@example.com", Contact: "92"},
		{ID: "a1", JobID: "j1", ApplicantID: "id_u2", Name: "Other", Email: "guest@example.com", Contact: "93"},
	}

	tests := []struct {
		name    string
		userID  string
		target  string
		wantIDs []string
	}{
		{name: "LoggedInByApplicantID", userID: "id_u1", target: "/v1/applications", wantIDs: []string{"a3"}},
		{name: "AnonymousByEmail", target: "/v1/applications?email=guest@example.com", wantIDs: []string{"a2"}},
		{name: "AnonymousWithoutEmail", target: "/v1/applications", wantIDs: []string{}},
		{name: "NoMatches", userID: "id_nobody", target: "/v1/applications", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			mocks.Apps.Stored = append([]models.Application{}, seed...)
			r := applicationsRouter(mocks)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.userID != "" {
				req = withUserID(req, tt.userID)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()
			if res.StatusCode != http.StatusOK {
				t.Fatalf("expected 200 got %d", res.StatusCode)
			}
			raw, _ := io.ReadAll(res.Body)
			if !strings.HasPrefix(strings.TrimSpace(string(raw)), "[") {
				t.Fatalf("expected a JSON array, got %s", string(raw))
			}

			var apps []models.Application
			if err := json.Unmarshal(raw, &apps); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(apps) != len(tt.wantIDs) {
				t.Fatalf("expected %d applications got %d", len(tt.wantIDs), len(apps))
			}
			for i, want := range tt.wantIDs {
				if apps[i].ID != want {
					t.Fatalf("application %d: got %q want %q", i, apps[i].ID, want)
				}
			}
		})
	}
}
