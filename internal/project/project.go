// Package project keeps the per-project data that lives outside the asset
// collections: saved prompt history, project info and the story outline.
package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"panelprompt/internal/kv"
	"panelprompt/internal/library"
)

const (
	KeySavedPrompts = "saved_prompts"
	KeyInfo         = "projectInfo"
	KeyOutline      = "projectOutline"
)

var (
	ErrEmptyPrompt  = errors.New("prompt is empty")
	ErrEmptyOutline = errors.New("outline entry is empty")
)

type SavedPrompt struct {
	Prompt string `json:"prompt"`
	Date   string `json:"date"`
}

type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Creator     string `json:"creator"`
}

func (i Info) Empty() bool {
	return i.Name == "" && i.Description == "" && i.Creator == ""
}

type Store struct {
	kv  kv.Store
	mu  sync.Mutex
	now func() time.Time
}

func New(store kv.Store) *Store {
	return &Store{kv: store, now: time.Now}
}

// load decodes key into dst. Missing keys and malformed values leave dst
// untouched and report false.
func (s *Store) load(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("ignoring malformed stored value", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *Store) SavedPrompts(ctx context.Context) ([]SavedPrompt, error) {
	var prompts []SavedPrompt
	if _, err := s.load(ctx, KeySavedPrompts, &prompts); err != nil {
		return nil, err
	}
	if prompts == nil {
		prompts = []SavedPrompt{}
	}
	return prompts, nil
}

func (s *Store) SavePrompt(ctx context.Context, text string) (SavedPrompt, error) {
	if strings.TrimSpace(text) == "" {
		return SavedPrompt{}, ErrEmptyPrompt
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prompts, err := s.SavedPrompts(ctx)
	if err != nil {
		return SavedPrompt{}, err
	}
	entry := SavedPrompt{Prompt: text, Date: library.Timestamp(s.now())}
	prompts = append(prompts, entry)
	if err := s.save(ctx, KeySavedPrompts, prompts); err != nil {
		return SavedPrompt{}, err
	}
	return entry, nil
}

func (s *Store) ClearSavedPrompts(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeySavedPrompts); err != nil {
		return fmt.Errorf("clearing saved prompts: %w", err)
	}
	return nil
}

func (s *Store) Info(ctx context.Context) (Info, error) {
	var info Info
	if _, err := s.load(ctx, KeyInfo, &info); err != nil {
		return Info{}, err
	}
	return info, nil
}

func (s *Store) SetInfo(ctx context.Context, info Info) error {
	return s.save(ctx, KeyInfo, info)
}

func (s *Store) ClearInfo(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyInfo); err != nil {
		return fmt.Errorf("clearing project info: %w", err)
	}
	return nil
}

func (s *Store) Outline(ctx context.Context) ([]string, error) {
	var outline []string
	if _, err := s.load(ctx, KeyOutline, &outline); err != nil {
		return nil, err
	}
	if outline == nil {
		outline = []string{}
	}
	return outline, nil
}

func (s *Store) AddOutline(ctx context.Context, text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyOutline
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	outline, err := s.Outline(ctx)
	if err != nil {
		return nil, err
	}
	outline = append(outline, text)
	if err := s.save(ctx, KeyOutline, outline); err != nil {
		return nil, err
	}
	return outline, nil
}

func (s *Store) EditOutline(ctx context.Context, idx int, text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyOutline
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	outline, err := s.Outline(ctx)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(outline) {
		return nil, fmt.Errorf("outline index %d out of range (0-%d)", idx, len(outline)-1)
	}
	outline[idx] = text
	if err := s.save(ctx, KeyOutline, outline); err != nil {
		return nil, err
	}
	return outline, nil
}

func (s *Store) RemoveOutline(ctx context.Context, idx int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outline, err := s.Outline(ctx)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(outline) {
		return nil, fmt.Errorf("outline index %d out of range (0-%d)", idx, len(outline)-1)
	}
	outline = append(outline[:idx], outline[idx+1:]...)
	if err := s.save(ctx, KeyOutline, outline); err != nil {
		return nil, err
	}
	return outline, nil
}
