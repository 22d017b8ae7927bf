package main

import (
	"context"
	"errors"
	"testing"
)

type fakeSchema struct {
	err    error
	called bool
}

func (f *fakeSchema) EnsureSchema(ctx context.Context) error {
	f.called = true
	return f.err
}

type fakeCloser struct {
	closed int
}

func (f *fakeCloser) Close() error {
	f.closed++
	return nil
}

func TestPrepareSnapshotStore_ClosesDBOnSchemaError(t *testing.T) {
	repo := &fakeSchema{err: errors.New("permission denied")}
	db := &fakeCloser{}

	err := prepareSnapshotStore(context.Background(), repo, db)
	if !errors.Is(err, repo.err) {
		t.Fatalf("expected schema error, got %v", err)
	}
	if db.closed != 1 {
		t.Fatalf("expected db to be closed once, got %d", db.closed)
	}
}

func TestPrepareSnapshotStore_KeepsDBOpen(t *testing.T) {
	repo := &fakeSchema{}
	db := &fakeCloser{}

	if err := prepareSnapshotStore(context.Background(), repo, db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.called {
		t.Fatalf("expected EnsureSchema to be called")
	}
	if db.closed != 0 {
		t.Fatalf("db must stay open, closed %d times", db.closed)
	}
}
