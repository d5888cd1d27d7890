package store_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/garnizeh/jobfinder/internal/store"
)

func setupStore(t *testing.T) (*store.Store, func()) {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(ctx, "file::memory:?cache=shared", nil)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	return s, func() { s.Close() }
}

func TestPutGetRoundTrip(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	type record struct {
		Name   string   `json:"name"`
		Count  int      `json:"count"`
		Labels []string `json:"labels"`
	}

	want := []record{
		{Name: "a", Count: 1, Labels: []string{"x", "y"}},
		{Name: "b", Count: 2},
	}
	if err := s.Put(ctx, "records", want); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	var got []record
	ok, err := s.Get(ctx, "records", &got)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !ok {
		t.Fatalf("expected key to be present")
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: got %#v want %#v", got, want)
	}
}

func TestPutOverwrites(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	if err := s.Put(ctx, "k", "first"); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := s.Put(ctx, "k", "second"); err != nil {
		t.Fatalf("Put overwrite error: %v", err)
	}

	var got string
	ok, err := s.Get(ctx, "k", &got)
	if err != nil || !ok {
		t.Fatalf("Get error: ok=%v err=%v", ok, err)
	}
	if got != "second" {
		t.Fatalf("expected overwrite to win, got %q", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	var got map[string]string
	ok, err := s.Get(ctx, "absent", &got)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if ok {
		t.Fatalf("expected absent key to report ok=false")
	}
}

func TestGetMalformedValueFallsBack(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	// the stored text is valid JSON for a string, not for the struct asked for
	if err := s.Put(ctx, "k", "just a string"); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	var got struct{ N int }
	ok, err := s.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("expected malformed value to degrade, got error: %v", err)
	}
	if ok {
		t.Fatalf("expected malformed value to report ok=false")
	}
}

func TestDelete(t *testing.T) {
	s, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	if err := s.Put(ctx, "k", 42); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	var got int
	ok, err := s.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("Get after delete error: %v", err)
	}
	if ok {
		t.Fatalf("expected key to be gone after delete")
	}

	// deleting again is a no-op
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete of absent key error: %v", err)
	}
}
