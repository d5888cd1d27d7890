package kv

import (
	"context"
	"fmt"

	"github.com/garnizeh/jobfinder/pkg/models"
	"github.com/garnizeh/jobfinder/pkg/repository"
)

func (r *KVRepo) loadApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if _, err := r.store.Get(ctx, keyApplications, &apps); err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *KVRepo) CreateApplication(ctx context.Context, a *models.Application) error {
	if a == nil {
		return fmt.Errorf("application is nil")
	}
	if a.Name == "" || a.Email == "" || a.Contact == "" {
		return repository.ErrMissingFields
	}

	apps, err := r.loadApplications(ctx)
	if err != nil {
		return err
	}

	if a.ID == "" {
		a.ID = NewID()
	}
	if a.AppliedAt == 0 {
		a.AppliedAt = now()
	}

	apps = append([]models.Application{*a}, apps...)

	return r.store.Put(ctx, keyApplications, apps)
}

func (r *KVRepo) ListApplications(ctx context.Context) ([]models.Application, error) {
	return r.loadApplications(ctx)
}

// ListForUser keeps the dashboard attribution rule: a logged-in viewer owns
// applications whose applicantId matches; an anonymous viewer owns anonymous
// applications whose email matches.
func (r *KVRepo) ListForUser(ctx context.Context, userID, email string) ([]models.Application, error) {
	apps, err := r.loadApplications(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Application, 0, len(apps))
	for _, a := range apps {
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

func (r *KVRepo) ClearApplications(ctx context.Context) error {
	return r.store.Put(ctx, keyApplications, []models.Application{})
}
