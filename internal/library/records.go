package library

import (
	"context"
	"encoding/json"
	"fmt"
)

// Record is an entity in its stored JSON shape.
type Record map[string]any

// Label is the display name of a record: its name, or a dialog's text.
func (r Record) Label() string {
	if name, ok := r["name"].(string); ok && name != "" {
		return name
	}
	text, _ := r["text"].(string)
	return text
}

func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Assets is one collection seen through Records, for callers that pick the
// kind at run time.
type Assets interface {
	Kind() Kind
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, fields Record) (Record, error)
	// Patch overwrites only the fields present in fields.
	Patch(ctx context.Context, id string, fields Record) (Record, error)
	Delete(ctx context.Context, id string) error
}

type collection[T any] interface {
	All(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Save(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, patch func(*T)) (T, error)
	Delete(ctx context.Context, id string) error
}

func (l *Library) Assets(kind Kind) (Assets, error) {
	switch kind {
	case KindCharacter:
		return records[Character]{kind, l.Characters}, nil
	case KindBackground:
		return records[Background]{kind, l.Backgrounds}, nil
	case KindArtStyle:
		return records[ArtStyle]{kind, l.ArtStyles}, nil
	case KindDialog:
		return records[Dialog]{kind, l.Dialogs}, nil
	case KindEffect:
		return records[Effect]{kind, l.Effects}, nil
	case KindProperty:
		return records[Property]{kind, l.Properties}, nil
	default:
		return nil, fmt.Errorf("unknown asset kind %q", kind)
	}
}

type records[T any] struct {
	kind Kind
	c    collection[T]
}

func (r records[T]) Kind() Kind { return r.kind }

func (r records[T]) List(ctx context.Context) ([]Record, error) {
	items, err := r.c.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		rec, err := toRecord(item)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r records[T]) Get(ctx context.Context, id string) (Record, error) {
	item, err := r.c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRecord(item)
}

func (r records[T]) Create(ctx context.Context, fields Record) (Record, error) {
	var item T
	if err := fromRecord(fields, &item); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.kind, err)
	}
	saved, err := r.c.Save(ctx, item)
	if err != nil {
		return nil, err
	}
	return toRecord(saved)
}

func (r records[T]) Patch(ctx context.Context, id string, fields Record) (Record, error) {
	var scratch T
	if err := fromRecord(fields, &scratch); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.kind, err)
	}
	var decodeErr error
	updated, err := r.c.Update(ctx, id, func(item *T) {
		decodeErr = fromRecord(fields, item)
	})
	if err != nil {
		return nil, err
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.kind, decodeErr)
	}
	return toRecord(updated)
}

func (r records[T]) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, id)
}

func toRecord(v any) (Record, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// fromRecord decodes fields over dst, leaving absent fields untouched.
func fromRecord(fields Record, dst any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, dst)
}
