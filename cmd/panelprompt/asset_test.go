package main

import (
	"context"
	"reflect"
	"testing"

	"github.com/spf13/cobra"

	"panelprompt/internal/kv/memory"
	"panelprompt/internal/library"
)

func specFor(t *testing.T, kind library.Kind) assetSpec {
	t.Helper()
	for _, spec := range assetSpecs {
		if spec.kind == kind {
			return spec
		}
	}
	t.Fatalf("no asset spec for %s", kind)
	return assetSpec{}
}

func TestAssetSpecsCoverEveryKind(t *testing.T) {
	if len(assetSpecs) != len(library.Kinds) {
		t.Fatalf("expected %d asset commands, got %d", len(library.Kinds), len(assetSpecs))
	}
	for _, kind := range library.Kinds {
		specFor(t, kind)
	}
}

func TestChangedFieldsOnlyIncludesSetFlags(t *testing.T) {
	spec := specFor(t, library.KindArtStyle)
	cmd := &cobra.Command{Use: "update"}
	registerFieldFlags(cmd, spec)
	if err := cmd.ParseFlags([]string{"--name", "Noir", "--characteristic", "kontras", "--characteristic", "bayangan"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	fields, err := changedFields(context.Background(), nil, spec, cmd.Flags())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := library.Record{"name": "Noir", "characteristics": []string{"kontras", "bayangan"}}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("expected %v, got %v", want, fields)
	}
}

func TestChangedFieldsResolvesDialogCharacter(t *testing.T) {
	ctx := context.Background()
	lib := library.New(memory.New())
	hiro, err := lib.Characters.Save(ctx, library.Character{Name: "Hiro"})
	if err != nil {
		t.Fatalf("seeding character: %v", err)
	}
	ws := &workspace{lib: lib}

	spec := specFor(t, library.KindDialog)
	cmd := &cobra.Command{Use: "add"}
	registerFieldFlags(cmd, spec)
	if err := cmd.ParseFlags([]string{"--character", "hiro", "--text", "Ayo!"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	fields, err := changedFields(ctx, ws, spec, cmd.Flags())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fields["characterId"] != hiro.ID {
		t.Fatalf("expected character id %s, got %v", hiro.ID, fields["characterId"])
	}

	if err := cmd.ParseFlags([]string{"--character", "Yuki"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	if _, err := changedFields(ctx, ws, spec, cmd.Flags()); err == nil {
		t.Fatalf("expected unknown character error")
	}
}

func TestOutlineIndex(t *testing.T) {
	idx, err := outlineIndex("3")
	if err != nil || idx != 2 {
		t.Fatalf("expected index 2, got %d (%v)", idx, err)
	}
	if _, err := outlineIndex("three"); err == nil {
		t.Fatalf("expected error for non-numeric index")
	}
}
