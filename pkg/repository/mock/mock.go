package mock

import (
	"context"

	"github.com/garnizeh/jobfinder/pkg/models"
	"github.com/garnizeh/jobfinder/pkg/repository"
)

// Test helpers and mocks
type Mocks struct {
	Users    *UserRepo
	Jobs     *JobRepo
	Resumes  *ResumeRepo
	Apps     *ApplicationRepo
	Sessions *SessionRepo
}

func NewMocks() *Mocks {
	m := &Mocks{
		Users:   &UserRepo{},
		Jobs:    &JobRepo{},
		Resumes: &ResumeRepo{Stored: map[string]models.ResumeRecord{}},
		Apps:    &ApplicationRepo{},
	}
	m.Sessions = &SessionRepo{users: m.Users}

	return m
}

type UserRepo struct {
	Stored    []models.User
	CreateErr error
}

func (m *UserRepo) CreateUser(ctx context.Context, u *models.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if u.Name == "" || u.Email == "" || u.Password == "" {
		return repository.ErrMissingFields
	}
	for _, existing := range m.Stored {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if u.ID == "" {
		u.ID = "id_mock0001"
	}
	m.Stored = append(m.Stored, *u)

	return nil
}

func (m *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.Stored {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.Stored {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *UserRepo) GetByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	for _, u := range m.Stored {
		if u.Email == email && u.Password == password {
			return &u, nil
		}
	}
	return nil, nil
}

type JobRepo struct {
	Stored    []models.Job
	CreateErr error
}

func (m *JobRepo) CreateJob(ctx context.Context, j *models.Job) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if j.Title == "" || j.Company == "" || j.Contact == "" {
		return repository.ErrMissingFields
	}
	if j.ID == "" {
		j.ID = "id_mockjob1"
	}
	if j.PostedAt == 0 {
		j.PostedAt = 1
	}
	m.Stored = append([]models.Job{*j}, m.Stored...)

	return nil
}

func (m *JobRepo) ListJobs(ctx context.Context) ([]models.Job, error) {
	return m.Stored, nil
}

func (m *JobRepo) GetJob(ctx context.Context, id string) (*models.Job, error) {
	for _, j := range m.Stored {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, nil
}

type ResumeRepo struct {
	Stored map[string]models.ResumeRecord
	SetErr error
}

func (m *ResumeRepo) GetResume(ctx context.Context, userID string) (*models.ResumeRecord, error) {
	rec, ok := m.Stored[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *ResumeRepo) SetResume(ctx context.Context, userID, name, dataURL string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Stored[userID] = models.ResumeRecord{Name: name, DataURL: dataURL}

	return nil
}

type ApplicationRepo struct {
	Stored    []models.Application
	CreateErr error
}

func (m *ApplicationRepo) CreateApplication(ctx context.Context, a *models.Application) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if a.Name == "" || a.Email == "" || a.Contact == "" {
		return repository.ErrMissingFields
	}
	if a.ID == "" {
		a.ID = "id_mockapp1"
	}
	if a.AppliedAt == 0 {
		a.AppliedAt = 1
	}
	m.Stored = append([]models.Application{*a}, m.Stored...)

	return nil
}

func (m *ApplicationRepo) ListApplications(ctx context.Context) ([]models.Application, error) {
	return m.Stored, nil
}

func (m *ApplicationRepo) ListForUser(ctx context.Context, userID, email string) ([]models.Application, error) {
	out := []models.Application{}
	for _, a := range m.Stored {
		if userID != "" && a.ApplicantID == userID {
			out = append(out, a)
			continue
		}
		if userID == "" && a.ApplicantID == "" && email != "" && a.Email == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *ApplicationRepo) ClearApplications(ctx context.Context) error {
	m.Stored = nil
	return nil
}

type SessionRepo struct {
	Token string
	users *UserRepo
}

func (m *SessionRepo) Login(ctx context.Context, userID string) error {
	m.Token = userID
	return nil
}

func (m *SessionRepo) Logout(ctx context.Context) error {
	m.Token = ""
	return nil
}

func (m *SessionRepo) CurrentUser(ctx context.Context) (*models.User, error) {
	if m.Token == "" {
		return nil, nil
	}
	return m.users.GetByID(ctx, m.Token)
}

// Ensure mocks satisfy the public interfaces.
var _ repository.UserRepo = (*UserRepo)(nil)
var _ repository.JobRepo = (*JobRepo)(nil)
var _ repository.ResumeRepo = (*ResumeRepo)(nil)
var _ repository.ApplicationRepo = (*ApplicationRepo)(nil)
var _ repository.SessionRepo = (*SessionRepo)(nil)
