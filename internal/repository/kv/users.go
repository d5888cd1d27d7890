package kv

import (
	"context"
	"fmt"

	"github.com/garnizeh/jobfinder/pkg/models"
	"github.com/garnizeh/jobfinder/pkg/repository"
)

func (r *KVRepo) loadUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := r.store.Get(ctx, keyUsers, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *KVRepo) CreateUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return fmt.Errorf("user is nil")
	}
	if u.Name == "" || u.Email == "" || u.Password == "" {
		return repository.ErrMissingFields
	}

	users, err := r.loadUsers(ctx)
	if err != nil {
		return err
	}
	for _, existing := range users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}

	if u.ID == "" {
		u.ID = NewID()
	}
	users = append(users, *u)

	return r.store.Put(ctx, keyUsers, users)
}

func (r *KVRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return &u, nil
		}
	}

	return nil, nil
}

func (r *KVRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return &u, nil
		}
	}

	return nil, nil
}

// GetByCredentials compares email and password exactly. Credentials are
// stored in the clear; the whole system is trust-the-client.
func (r *KVRepo) GetByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			return &u, nil
		}
	}

	return nil, nil
}
