package kv

import (
	"context"
	"fmt"

	"github.com/garnizeh/jobfinder/pkg/models"
	"github.com/garnizeh/jobfinder/pkg/repository"
)

func (r *KVRepo) loadJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if _, err := r.store.Get(ctx, keyJobs, &jobs); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *KVRepo) CreateJob(ctx context.Context, j *models.Job) error {
	if j == nil {
		return fmt.Errorf("job is nil")
	}
	if j.Title == "" || j.Company == "" || j.Contact == "" {
		return repository.ErrMissingFields
	}

	jobs, err := r.loadJobs(ctx)
	if err != nil {
		return err
	}

	if j.ID == "" {
		j.ID = NewID()
	}
	if j.PostedAt == 0 {
		j.PostedAt = now()
	}
	j.Skills = dedupe(j.Skills)

	// prepend: the listing stays newest-first without re-sorting
	jobs = append([]models.Job{*j}, jobs...)

	return r.store.Put(ctx, keyJobs, jobs)
}

func (r *KVRepo) ListJobs(ctx context.Context) ([]models.Job, error) {
	return r.loadJobs(ctx)
}

func (r *KVRepo) GetJob(ctx context.Context, id string) (*models.Job, error) {
	jobs, err := r.loadJobs(ctx)
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		if j.ID == id {
			return &j, nil
		}
	}

	return nil, nil
}

// dedupe removes duplicate skills preserving first-seen order.
func dedupe(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}

	return out
}
