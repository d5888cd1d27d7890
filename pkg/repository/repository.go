package repository

import (
	"context"

	"github.com/garnizeh/jobfinder/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type UserRepo interface {
	// CreateUser assigns an id when missing and appends. It rejects missing
	// required fields and duplicate emails without writing anything.
	CreateUser(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByCredentials matches email and password exactly (case-sensitive,
	// plaintext). Demo-only by contract.
	GetByCredentials(ctx context.Context, email, password string) (*models.User, error)
}

type JobRepo interface {
	// CreateJob assigns id and postedAt when missing and prepends, keeping
	// the listing newest-first without re-sorting.
	CreateJob(ctx context.Context, j *models.Job) error
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
}

type ResumeRepo interface {
	GetResume(ctx context.Context, userID string) (*models.ResumeRecord, error)
	// SetResume overwrites: last upload wins, no history.
	SetResume(ctx context.Context, userID, name, dataURL string) error
}

type ApplicationRepo interface {
	// CreateApplication assigns id and appliedAt when missing and prepends.
	CreateApplication(ctx context.Context, a *models.Application) error
	ListApplications(ctx context.Context) ([]models.Application, error)
	// ListForUser returns applications owned by userID, or, when userID is
	// empty, anonymous applications whose email matches.
	ListForUser(ctx context.Context, userID, email string) ([]models.Application, error)
	ClearApplications(ctx context.Context) error
}

type SessionRepo interface {
	Login(ctx context.Context, userID string) error
	Logout(ctx context.Context) error
	// CurrentUser resolves the stored token against users. A stale or missing
	// token degrades to (nil, nil), never an error.
	CurrentUser(ctx context.Context) (*models.User, error)
}

type Seeder interface {
	EnsureUsersAndResumes(ctx context.Context) error
	// EnsureJobs reseeds the catalog when fewer than 50 jobs are present and
	// reports whether it did; callers decide what else to reset alongside.
	EnsureJobs(ctx context.Context) (bool, error)
}
