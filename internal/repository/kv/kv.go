package kv

import (
	"time"

	"log/slog"

	"github.com/garnizeh/jobfinder/internal/store"
	"github.com/garnizeh/jobfinder/pkg/repository"
)

// Store keys for the domain collections. Each repository owns exactly one.
const (
	keyUsers        = "users"
	keyJobs         = "jobs"
	keyResumes      = "resumes"
	keyApplications = "applications"
	keySessionToken = "session-token"
)

// KVRepo implements the repository interfaces over the key-value store:
// every collection is a single JSON document read and rewritten whole.
type KVRepo struct {
	store  *store.Store
	logger *slog.Logger
}

// Ensure KVRepo implements the public interfaces.
var _ repository.UserRepo = (*KVRepo)(nil)
var _ repository.JobRepo = (*KVRepo)(nil)
var _ repository.ResumeRepo = (*KVRepo)(nil)
var _ repository.ApplicationRepo = (*KVRepo)(nil)
var _ repository.SessionRepo = (*KVRepo)(nil)
var _ repository.Seeder = (*KVRepo)(nil)

func New(s *store.Store, logger *slog.Logger) *KVRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &KVRepo{store: s, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
