package library

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"panelprompt/internal/kv"
)

// Collection is one entity kind persisted as a JSON array under a fixed key.
// Every mutation rewrites the whole array.
type Collection[T any, P interface {
	*T
	entity
}] struct {
	store kv.Store
	key   string
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewCollection[T any, P interface {
	*T
	entity
}](store kv.Store, key string) *Collection[T, P] {
	return &Collection[T, P]{
		store: store,
		key:   key,
		now:   time.Now,
		newID: newID,
	}
}

func (c *Collection[T, P]) Key() string { return c.key }

// All returns the stored records. A missing or unparsable value yields an
// empty list; only a failing store read is reported.
func (c *Collection[T, P]) All(ctx context.Context) ([]T, error) {
	_, items, err := c.read(ctx)
	return items, err
}

// read returns every record both as stored and decoded. The raw form keeps
// fields the typed record does not declare, so rewriting the array never
// drops them.
func (c *Collection[T, P]) read(ctx context.Context) ([]json.RawMessage, []T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", c.key, err)
	}
	if !ok || len(raw) == 0 {
		return make([]json.RawMessage, 0), make([]T, 0), nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		slog.Warn("ignoring malformed stored collection", "key", c.key, "error", err)
		return make([]json.RawMessage, 0), make([]T, 0), nil
	}
	items := make([]T, len(records))
	for i, record := range records {
		if err := json.Unmarshal(record, &items[i]); err != nil {
			slog.Warn("ignoring malformed stored collection", "key", c.key, "index", i, "error", err)
			return make([]json.RawMessage, 0), make([]T, 0), nil
		}
	}
	if records == nil {
		records = make([]json.RawMessage, 0)
	}
	return records, items, nil
}

func (c *Collection[T, P]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := c.All(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if P(&item).meta().ID == id {
			return item, nil
		}
	}
	return zero, fmt.Errorf("%s %s: %w", c.key, id, ErrNotFound)
}

// Find returns the first record match accepts.
func (c *Collection[T, P]) Find(ctx context.Context, match func(T) bool) (T, bool, error) {
	var zero T
	items, err := c.All(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if match(item) {
			return item, true, nil
		}
	}
	return zero, false, nil
}

func (c *Collection[T, P]) Save(ctx context.Context, item T) (T, error) {
	var zero T
	prepare(P(&item))
	if err := check(P(&item)); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, _, err := c.read(ctx)
	if err != nil {
		return zero, err
	}

	now := Timestamp(c.now())
	m := P(&item).meta()
	m.ID = c.newID()
	m.CreatedAt = now
	m.UpdatedAt = now

	encoded, err := json.Marshal(item)
	if err != nil {
		return zero, fmt.Errorf("encoding %s: %w", c.key, err)
	}
	records = append(records, encoded)
	if err := c.write(ctx, records); err != nil {
		return zero, err
	}
	return item, nil
}

// Update applies patch to the record with the given id. The id and creation
// time survive whatever patch does to them.
func (c *Collection[T, P]) Update(ctx context.Context, id string, patch func(*T)) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	records, items, err := c.read(ctx)
	if err != nil {
		return zero, err
	}

	idx := -1
	for i := range items {
		if P(&items[i]).meta().ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, fmt.Errorf("%s %s: %w", c.key, id, ErrNotFound)
	}

	updated := items[idx]
	original := *P(&updated).meta()
	if patch != nil {
		patch(&updated)
	}
	prepare(P(&updated))
	if err := check(P(&updated)); err != nil {
		return zero, err
	}

	m := P(&updated).meta()
	m.ID = original.ID
	m.CreatedAt = original.CreatedAt
	m.UpdatedAt = Timestamp(c.now())

	merged, err := mergeRecord(records[idx], items[idx], updated)
	if err != nil {
		return zero, fmt.Errorf("encoding %s: %w", c.key, err)
	}
	records[idx] = merged
	if err := c.write(ctx, records); err != nil {
		return zero, err
	}
	return updated, nil
}

func (c *Collection[T, P]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, items, err := c.read(ctx)
	if err != nil {
		return err
	}
	kept := make([]json.RawMessage, 0, len(records))
	for i := range items {
		if P(&items[i]).meta().ID != id {
			kept = append(kept, records[i])
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return c.write(ctx, kept)
}

func (c *Collection[T, P]) write(ctx context.Context, records []json.RawMessage) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, payload); err != nil {
		return fmt.Errorf("writing %s: %w", c.key, err)
	}
	return nil
}

// mergeRecord rewrites the stored record with the fields of after. Keys the
// typed record knows about (those before or after encodes) are replaced;
// every other stored key is kept.
func mergeRecord(stored json.RawMessage, before, after any) (json.RawMessage, error) {
	fields := objectFields(stored)

	known, err := json.Marshal(before)
	if err != nil {
		return nil, err
	}
	for key := range objectFields(known) {
		delete(fields, key)
	}

	encoded, err := json.Marshal(after)
	if err != nil {
		return nil, err
	}
	for key, value := range objectFields(encoded) {
		fields[key] = value
	}
	return json.Marshal(fields)
}

func objectFields(data []byte) map[string]json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return make(map[string]json.RawMessage)
	}
	return fields
}

func prepare(e entity) {
	if n, ok := e.(normalizer); ok {
		n.normalize()
	}
}

func check(e entity) error {
	if v, ok := e.(validator); ok {
		return v.validate()
	}
	return nil
}
