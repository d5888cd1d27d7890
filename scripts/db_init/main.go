package main

import (
	"context"
	"fmt"
	"os"

	"github.com/garnizeh/jobfinder/internal/config"
	"github.com/garnizeh/jobfinder/internal/repository/kv"
	"github.com/garnizeh/jobfinder/internal/store"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	s, err := store.Open(ctx, cfg.DatabasePath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Store init error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	repo := kv.New(s, nil)
	if err := repo.EnsureUsersAndResumes(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Seed users error: %v\n", err)
		os.Exit(1)
	}
	reseeded, err := repo.EnsureJobs(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed jobs error: %v\n", err)
		os.Exit(1)
	}
	if reseeded {
		if err := repo.ClearApplications(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Clear applications error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Database initialized successfully.")
}
