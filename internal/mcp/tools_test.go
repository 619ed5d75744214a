package mcp

import (
	"context"
	"strings"
	"testing"

	"panelprompt/internal/kv/memory"
	"panelprompt/internal/library"
	"panelprompt/internal/project"
	"panelprompt/internal/prompt"
)

func newTestServer(t *testing.T) (*Server, *library.Library) {
	t.Helper()
	store := memory.New()
	lib := library.New(store)
	return NewServer(lib, project.New(store), "test"), lib
}

func TestSaveAndListAssets(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	_, saved, err := server.handleSaveAsset(ctx, nil, SaveAssetInput{
		Kind:   "character",
		Fields: map[string]any{"name": "Hiro", "physical": "tinggi"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !saved.Created || saved.Asset["id"] == "" {
		t.Fatalf("expected a created asset, got %+v", saved)
	}
	id, _ := saved.Asset["id"].(string)

	_, updated, err := server.handleSaveAsset(ctx, nil, SaveAssetInput{
		Kind:   "character",
		ID:     id,
		Fields: map[string]any{"clothing": "jaket"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Created || updated.Asset["physical"] != "tinggi" || updated.Asset["clothing"] != "jaket" {
		t.Fatalf("expected partial update, got %+v", updated)
	}

	_, list, err := server.handleListAssets(ctx, nil, KindInput{Kind: "character"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Kind != "character" || len(list.Assets) != 1 {
		t.Fatalf("unexpected list output: %+v", list)
	}

	_, got, err := server.handleGetAsset(ctx, nil, AssetInput{Kind: "character", ID: id})
	if err != nil || got.Asset["name"] != "Hiro" {
		t.Fatalf("unexpected get output: %+v (%v)", got, err)
	}

	if _, _, err := server.handleDeleteAsset(ctx, nil, AssetInput{Kind: "character", ID: id}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := server.handleGetAsset(ctx, nil, AssetInput{Kind: "character", ID: id}); err == nil {
		t.Fatalf("expected error after delete")
	}
}

func TestAssetInputErrors(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	if _, _, err := server.handleListAssets(ctx, nil, KindInput{}); err == nil {
		t.Fatalf("expected error for missing kind")
	}
	if _, _, err := server.handleListAssets(ctx, nil, KindInput{Kind: "vehicle"}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if _, _, err := server.handleGetAsset(ctx, nil, AssetInput{Kind: "dialog"}); err == nil {
		t.Fatalf("expected error for missing id")
	}
	if _, _, err := server.handleSaveAsset(ctx, nil, SaveAssetInput{Kind: "dialog"}); err == nil {
		t.Fatalf("expected error for missing fields")
	}
	if _, _, err := server.handleSaveAsset(ctx, nil, SaveAssetInput{Kind: "effect", Fields: map[string]any{"name": "x", "type": "smell"}}); err == nil {
		t.Fatalf("expected error for invalid effect type")
	}
}

func TestCatalogTools(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	_, all, err := server.handleListCatalogs(ctx, nil, EmptyInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Catalogs) < 20 {
		t.Fatalf("expected every catalog, got %d", len(all.Catalogs))
	}

	_, expr, err := server.handleGetCatalog(ctx, nil, CatalogInput{Name: "expression"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expr.Name != "expression" || len(expr.Options) == 0 {
		t.Fatalf("unexpected catalog output: %+v", expr)
	}
	if _, _, err := server.handleGetCatalog(ctx, nil, CatalogInput{Name: "nope"}); err == nil {
		t.Fatalf("expected error for unknown catalog")
	}
}

func TestBuildPromptAndHistory(t *testing.T) {
	ctx := context.Background()
	server, lib := newTestServer(t)

	hiro, err := lib.Characters.Save(ctx, library.Character{Name: "Hiro", Physical: "tinggi"})
	if err != nil {
		t.Fatalf("seeding character: %v", err)
	}

	doc := "characters:\n  - characterId: " + hiro.ID + "\n    action: running\nbackground: kota\nrenderQuality: cartoon\n"
	_, out, err := server.handleBuildPrompt(ctx, nil, BuildPromptInput{Scene: doc, Save: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Saved || !strings.HasPrefix(out.Prompt, prompt.HeaderTitle) || !strings.Contains(out.Prompt, "Nama/Identitas: Hiro") {
		t.Fatalf("unexpected prompt output: %+v", out)
	}

	if _, _, err := server.handleSavePrompt(ctx, nil, SavePromptInput{Prompt: "manual"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := server.handleSavePrompt(ctx, nil, SavePromptInput{Prompt: "  "}); err == nil {
		t.Fatalf("expected error for empty prompt")
	}

	_, history, err := server.handleListSavedPrompts(ctx, nil, EmptyInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history.Prompts) != 2 || history.Prompts[0].Prompt != out.Prompt || history.Prompts[1].Prompt != "manual" {
		t.Fatalf("unexpected history: %+v", history)
	}

	if _, _, err := server.handleBuildPrompt(ctx, nil, BuildPromptInput{Scene: "{}", Format: "xml"}); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestValidateScene(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	_, out, err := server.handleValidateScene(ctx, nil, SceneInput{Scene: `{"time": "night"}`, Format: "json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.HasErrors || len(out.Issues) == 0 || out.Issues[0].Code != "empty_scene" {
		t.Fatalf("expected empty_scene error, got %+v", out)
	}

	if _, _, err := server.handleValidateScene(ctx, nil, SceneInput{}); err == nil {
		t.Fatalf("expected error for missing scene")
	}
}
