package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Dump exports every key as one JSON object. Stored JSON arrays, objects and
// scalars are embedded as is; any other value, including a stored JSON
// string, is exported as a JSON string holding the raw text.
func Dump(ctx context.Context, s Store) ([]byte, error) {
	keys, err := s.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}
	sort.Strings(keys)

	out := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		value, ok, err := s.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", key, err)
		}
		if !ok {
			continue
		}
		if json.Valid(value) && !isJSONString(value) {
			out[key] = json.RawMessage(value)
			continue
		}
		quoted, err := json.Marshal(string(value))
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", key, err)
		}
		out[key] = quoted
	}

	payload, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encoding dump: %w", err)
	}
	return payload, nil
}

// Restore writes every key of a Dump document back into s. A string value
// is stored as its unquoted text, which is also the shape of a browser
// localStorage export. Existing keys not present in the document are left
// untouched.
func Restore(ctx context.Context, s Store, data []byte) (int, error) {
	var in map[string]json.RawMessage
	if err := json.Unmarshal(data, &in); err != nil {
		return 0, fmt.Errorf("decoding dump: %w", err)
	}

	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := []byte(in[key])
		if isJSONString(value) {
			var text string
			if err := json.Unmarshal(value, &text); err != nil {
				return 0, fmt.Errorf("decoding %s: %w", key, err)
			}
			value = []byte(text)
		}
		if err := s.Set(ctx, key, value); err != nil {
			return 0, fmt.Errorf("writing %s: %w", key, err)
		}
	}
	return len(keys), nil
}

func isJSONString(value []byte) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) > 0 && trimmed[0] == '"'
}
