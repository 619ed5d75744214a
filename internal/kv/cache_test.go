package kv_test

import (
	"context"
	"testing"
	"time"

	"panelprompt/internal/kv"
	"panelprompt/internal/kv/memory"
)

type countingStore struct {
	*memory.Store
	gets int
}

func (c *countingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.gets++
	return c.Store.Get(ctx, key)
}

func TestCachedStoreReadThrough(t *testing.T) {
	ctx := context.Background()
	backing := &countingStore{Store: memory.New()}
	if err := backing.Set(ctx, "comic_backgrounds", []byte(`[]`)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cached := kv.Cached(backing, time.Minute)
	for i := 0; i < 3; i++ {
		value, ok, err := cached.Get(ctx, "comic_backgrounds")
		if err != nil || !ok || string(value) != `[]` {
			t.Fatalf("get %d: value=%q ok=%v err=%v", i, value, ok, err)
		}
	}
	if backing.gets != 1 {
		t.Fatalf("expected 1 backing read, got %d", backing.gets)
	}
}

func TestCachedStoreWriteInvalidates(t *testing.T) {
	ctx := context.Background()
	backing := memory.New()
	cached := kv.Cached(backing, time.Minute)

	if err := cached.Set(ctx, "effects", []byte(`[1]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cached.Set(ctx, "effects", []byte(`[2]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, _, _ := cached.Get(ctx, "effects")
	if string(value) != `[2]` {
		t.Fatalf("expected latest value, got %q", value)
	}

	if err := cached.Delete(ctx, "effects"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := cached.Get(ctx, "effects"); ok {
		t.Fatalf("expected deleted key to miss")
	}
	if _, ok, _ := backing.Get(ctx, "effects"); ok {
		t.Fatalf("expected delete to reach backing store")
	}
}

func TestCachedStoreMissNotCached(t *testing.T) {
	ctx := context.Background()
	backing := memory.New()
	cached := kv.Cached(backing, time.Minute)

	if _, ok, _ := cached.Get(ctx, "saved_prompts"); ok {
		t.Fatalf("expected miss")
	}
	if err := backing.Set(ctx, "saved_prompts", []byte(`[]`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, ok, _ := cached.Get(ctx, "saved_prompts"); !ok {
		t.Fatalf("expected miss not to be cached")
	}
}
