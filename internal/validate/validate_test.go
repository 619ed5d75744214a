package validate

import (
	"testing"

	"panelprompt/internal/library"
	"panelprompt/internal/scene"
)

const (
	hiroID  = "5f0c2a8e-8d4b-4b4e-9a53-0f1de3c1a001"
	yukiID  = "5f0c2a8e-8d4b-4b4e-9a53-0f1de3c1a002"
	ghostID = "5f0c2a8e-8d4b-4b4e-9a53-0f1de3c1a0ff"
)

func testSnapshot() *library.Snapshot {
	return library.NewSnapshot(
		[]library.Character{
			{Meta: library.Meta{ID: hiroID}, Name: "Hiro"},
			{Meta: library.Meta{ID: yukiID}, Name: "Yuki"},
		},
		nil, nil, nil, nil,
	)
}

func codes(r *Report) map[string]int {
	out := map[string]int{}
	for _, issue := range r.Issues {
		out[issue.Code]++
	}
	return out
}

func TestRunCleanScene(t *testing.T) {
	s := scene.Scene{
		Characters: []scene.Character{
			{CharacterID: hiroID, Interaction: "helping", InteractionTarget: yukiID},
		},
		Background:           "kota",
		Style:                "anime",
		BackgroundProperties: []string{"payung"},
		Effects:              []string{"glow"},
		RenderQuality:        "cartoon",
	}
	report := Run(s, testSnapshot())
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", report.Issues)
	}
}

func TestRunEmptyScene(t *testing.T) {
	report := Run(scene.Scene{}, testSnapshot())
	if !report.HasErrors() {
		t.Fatalf("expected an error for an empty scene")
	}
	if codes(report)[codeEmptyScene] != 1 {
		t.Fatalf("expected empty_scene, got %+v", report.Issues)
	}
}

func TestRunDanglingAndIncomplete(t *testing.T) {
	s := scene.Scene{
		Characters: []scene.Character{
			{CharacterID: ghostID},
			{CharacterID: hiroID, Interaction: "helping"},
			{CharacterID: yukiID, Interaction: "looking_at", InteractionTarget: ghostID},
		},
		Background:    ghostID,
		Style:         ghostID,
		Effects:       []string{ghostID, "kilat manual"},
		RenderQuality: "ultra",
	}
	report := Run(s, testSnapshot())
	got := codes(report)

	if got[codeDanglingCharacter] != 2 {
		t.Fatalf("expected 2 dangling characters, got %d: %+v", got[codeDanglingCharacter], report.Issues)
	}
	if got[codeInteractionIncomplete] != 1 {
		t.Fatalf("expected 1 incomplete interaction, got %+v", report.Issues)
	}
	if got[codeDanglingReference] != 3 {
		t.Fatalf("expected background, style and effect dangling references, got %+v", report.Issues)
	}
	if got[codeUnknownRenderQuality] != 1 {
		t.Fatalf("expected unknown render quality warning, got %+v", report.Issues)
	}
	if report.HasErrors() {
		t.Fatalf("dangling references must only warn")
	}
}

func TestDialogs(t *testing.T) {
	dialogs := []library.Dialog{
		{Meta: library.Meta{ID: "d1"}, CharacterID: hiroID, Text: "Ayo"},
		{Meta: library.Meta{ID: "d2"}, CharacterID: ghostID, Text: "Halo?"},
		{Meta: library.Meta{ID: "d3"}, Text: "Narasi"},
	}
	report := Dialogs(dialogs, testSnapshot())
	if len(report.Issues) != 1 || report.Issues[0].Entity != "d2" || report.Issues[0].Code != codeOrphanedDialog {
		t.Fatalf("unexpected issues %+v", report.Issues)
	}
}
