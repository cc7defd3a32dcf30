package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	sess := New()
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("expected session %s, got %s", sess.ID, got.ID)
	}

	// The store hands back a copy; mutating it must not leak into the store.
	got.Step = StepResults
	again, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Step != StepProfile {
		t.Errorf("store entry mutated through returned copy: step %d", again.Step)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	if _, err := store.Get(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10 * time.Millisecond)

	sess := New()
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after TTL, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected expired entry dropped, %d entries remain", store.Len())
	}
}

func TestMemoryStoreSweepOnPut(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		if err := store.Put(ctx, New()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	time.Sleep(20 * time.Millisecond)

	fresh := New()
	if err := store.Put(ctx, fresh); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("expected sweep to leave 1 entry, got %d", store.Len())
	}
}

func TestMemoryStorePutRefreshesTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30 * time.Millisecond)

	sess := New()
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, err := store.Get(ctx, sess.ID); err != nil {
		t.Errorf("expected session alive after refreshed Put, got %v", err)
	}
}
