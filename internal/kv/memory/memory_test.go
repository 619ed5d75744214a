package memory

import (
	"context"
	"errors"
	"testing"

	"panelprompt/internal/kv"
)

func TestStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := New()

	value := []byte(`["a"]`)
	if err := s.Set(ctx, "projectOutline", value); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[2] = 'b'

	got, ok, err := s.Get(ctx, "projectOutline")
	if err != nil || !ok {
		t.Fatalf("expected key, got ok=%v err=%v", ok, err)
	}
	if string(got) != `["a"]` {
		t.Fatalf("stored value was mutated through caller slice: %q", got)
	}
	got[2] = 'c'
	again, _, _ := s.Get(ctx, "projectOutline")
	if string(again) != `["a"]` {
		t.Fatalf("stored value was mutated through returned slice: %q", again)
	}
}

func TestStoreClosed(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, _, err := s.Get(ctx, "x"); !errors.Is(err, kv.ErrClosed) {
		t.Fatalf("expected ErrClosed from Get, got %v", err)
	}
	if err := s.Set(ctx, "x", nil); !errors.Is(err, kv.ErrClosed) {
		t.Fatalf("expected ErrClosed from Set, got %v", err)
	}
	if _, err := s.Keys(ctx); !errors.Is(err, kv.ErrClosed) {
		t.Fatalf("expected ErrClosed from Keys, got %v", err)
	}
}
