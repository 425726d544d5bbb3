package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreCopiesData(t *testing.T) {
	store := NewMemoryStore(WithCleanupInterval(24 * time.Hour))
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	original := []byte("abc")
	if err := store.Save(ctx, "s1", original, time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	original[0] = 'z'

	loaded, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(loaded) != "abc" {
		t.Fatalf("Load returned mutated data: %q", loaded)
	}
	loaded[1] = 'y'
	if again, _ := store.Load(ctx, "s1"); string(again) != "abc" {
		t.Fatalf("caller mutation leaked into store: %q", again)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStore(WithCleanupInterval(24*time.Hour), WithStoreClock(func() time.Time { return now }))
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	_ = store.Save(ctx, "s1", []byte("x"), now.Add(time.Minute))
	now = now.Add(2 * time.Minute)
	if data, err := store.Load(ctx, "s1"); data != nil || err != nil {
		t.Fatalf("Load expired = %q, %v; want nil, nil", data, err)
	}

	_ = store.Touch(ctx, "s1", now.Add(time.Minute))
	if data, _ := store.Load(ctx, "s1"); string(data) != "x" {
		t.Fatalf("Load after Touch = %q", data)
	}

	now = now.Add(time.Hour)
	store.cleanup()
	if store.Count() != 0 {
		t.Errorf("Count after cleanup = %d", store.Count())
	}
}

func TestMemoryStoreClosed(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	ctx := context.Background()
	var closed ErrStoreClosed
	if err := store.Save(ctx, "s", nil, time.Now()); !errors.As(err, &closed) {
		t.Errorf("Save after Close = %v", err)
	}
	if _, err := store.Load(ctx, "s"); !errors.As(err, &closed) {
		t.Errorf("Load after Close = %v", err)
	}
	if err := store.Delete(ctx, "s"); !errors.As(err, &closed) {
		t.Errorf("Delete after Close = %v", err)
	}
}
