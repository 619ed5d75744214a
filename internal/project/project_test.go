package project

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"panelprompt/internal/kv/memory"
)

func newTestStore(t *testing.T) (*Store, *memory.Store) {
	t.Helper()
	kv := memory.New()
	s := New(kv)
	s.now = func() time.Time { return time.Date(2024, 6, 2, 8, 30, 0, 0, time.UTC) }
	return s, kv
}

func TestSavedPrompts(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	empty, err := s.SavedPrompts(ctx)
	if err != nil || len(empty) != 0 || empty == nil {
		t.Fatalf("expected empty non-nil history, got %#v (err %v)", empty, err)
	}

	if _, err := s.SavePrompt(ctx, "   "); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}

	first, err := s.SavePrompt(ctx, "PROMPT KOMIK PANEL\n\nsatu")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.Date != "2024-06-02T08:30:00.000Z" {
		t.Fatalf("unexpected date %q", first.Date)
	}
	if _, err := s.SavePrompt(ctx, "dua"); err != nil {
		t.Fatalf("save: %v", err)
	}

	all, _ := s.SavedPrompts(ctx)
	if len(all) != 2 || all[0].Prompt != "PROMPT KOMIK PANEL\n\nsatu" || all[1].Prompt != "dua" {
		t.Fatalf("unexpected history %+v", all)
	}

	if err := s.ClearSavedPrompts(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if all, _ := s.SavedPrompts(ctx); len(all) != 0 {
		t.Fatalf("expected cleared history, got %+v", all)
	}
}

func TestSavedPromptsReadsBrowserFormat(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	_ = kv.Set(ctx, KeySavedPrompts, []byte(`[{"prompt":"lama","date":"2023-01-01T00:00:00.000Z"}]`))

	all, err := s.SavedPrompts(ctx)
	if err != nil {
		t.Fatalf("saved prompts: %v", err)
	}
	if len(all) != 1 || all[0].Prompt != "lama" {
		t.Fatalf("unexpected history %+v", all)
	}
}

func TestInfo(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	info, err := s.Info(ctx)
	if err != nil || !info.Empty() {
		t.Fatalf("expected empty info, got %+v (err %v)", info, err)
	}

	want := Info{Name: "Hujan di Kota", Description: "komik pendek", Creator: "Rani"}
	if err := s.SetInfo(ctx, want); err != nil {
		t.Fatalf("set info: %v", err)
	}
	got, _ := s.Info(ctx)
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	if err := s.ClearInfo(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, KeyInfo); ok {
		t.Fatalf("expected info key removed")
	}
}

func TestMalformedInfoIsEmpty(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	_ = kv.Set(ctx, KeyInfo, []byte(`["not", "an", "object"]`))

	info, err := s.Info(ctx)
	if err != nil {
		t.Fatalf("expected malformed info to be ignored, got %v", err)
	}
	if !info.Empty() {
		t.Fatalf("expected empty info, got %+v", info)
	}
}

func TestOutline(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if _, err := s.AddOutline(ctx, "  "); !errors.Is(err, ErrEmptyOutline) {
		t.Fatalf("expected ErrEmptyOutline, got %v", err)
	}
	for _, entry := range []string{" Bab 1: Hujan ", "Bab 2: Payung", "Bab 3: Pulang"} {
		if _, err := s.AddOutline(ctx, entry); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	outline, err := s.EditOutline(ctx, 1, "Bab 2: Payung kuning ")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	want := []string{"Bab 1: Hujan", "Bab 2: Payung kuning", "Bab 3: Pulang"}
	if !reflect.DeepEqual(outline, want) {
		t.Fatalf("expected %v, got %v", want, outline)
	}

	outline, err = s.RemoveOutline(ctx, 0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	stored, _ := s.Outline(ctx)
	if !reflect.DeepEqual(outline, stored) || len(stored) != 2 || stored[0] != "Bab 2: Payung kuning" {
		t.Fatalf("unexpected outline after remove: %v", stored)
	}

	if _, err := s.EditOutline(ctx, 5, "x"); err == nil {
		t.Fatalf("expected out of range error on edit")
	}
	if _, err := s.RemoveOutline(ctx, -1); err == nil {
		t.Fatalf("expected out of range error on remove")
	}
	if _, err := s.EditOutline(ctx, 0, ""); !errors.Is(err, ErrEmptyOutline) {
		t.Fatalf("expected ErrEmptyOutline on empty edit, got %v", err)
	}
}
