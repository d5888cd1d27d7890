package kv

import (
	"context"
	"fmt"

	"github.com/garnizeh/jobfinder/pkg/models"
)

func (r *KVRepo) loadResumes(ctx context.Context) (map[string]models.ResumeRecord, error) {
	resumes := make(map[string]models.ResumeRecord)
	if _, err := r.store.Get(ctx, keyResumes, &resumes); err != nil {
		return nil, err
	}

	return resumes, nil
}

func (r *KVRepo) GetResume(ctx context.Context, userID string) (*models.ResumeRecord, error) {
	resumes, err := r.loadResumes(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := resumes[userID]
	if !ok {
		return nil, nil
	}

	return &rec, nil
}

// SetResume overwrites the user's record: one résumé per user, last upload
// wins.
func (r *KVRepo) SetResume(ctx context.Context, userID, name, dataURL string) error {
	if userID == "" {
		return fmt.Errorf("user id is empty")
	}

	resumes, err := r.loadResumes(ctx)
	if err != nil {
		return err
	}
	resumes[userID] = models.ResumeRecord{Name: name, DataURL: dataURL}

	return r.store.Put(ctx, keyResumes, resumes)
}
