package kv

import (
	"context"
	"fmt"

	"github.com/garnizeh/jobfinder/pkg/models"
)

func (r *KVRepo) Login(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user id is empty")
	}

	return r.store.Put(ctx, keySessionToken, userID)
}

func (r *KVRepo) Logout(ctx context.Context) error {
	return r.store.Delete(ctx, keySessionToken)
}

// CurrentUser resolves the stored token against the users collection. A
// missing, malformed, or stale token degrades to (nil, nil): logged out.
func (r *KVRepo) CurrentUser(ctx context.Context) (*models.User, error) {
	var userID string
	ok, err := r.store.Get(ctx, keySessionToken, &userID)
	if err != nil {
		return nil, err
	}
	if !ok || userID == "" {
		return nil, nil
	}

	return r.GetByID(ctx, userID)
}
