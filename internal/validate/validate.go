package validate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"panelprompt/internal/catalog"
	"panelprompt/internal/library"
	"panelprompt/internal/prompt"
	"panelprompt/internal/scene"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeEmptyScene            = "empty_scene"
	codeDanglingCharacter     = "dangling_character"
	codeDanglingReference     = "dangling_reference"
	codeInteractionIncomplete = "interaction_incomplete"
	codeUnknownRenderQuality  = "unknown_render_quality"
	codeOrphanedDialog        = "orphaned_dialog"
)

type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Field    string   `json:"field,omitempty"`
	Entity   string   `json:"entity,omitempty"`
}

type Report struct {
	Issues []Issue `json:"issues"`
}

func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Run checks a scene against the library. Nothing reported here stops a
// prompt from being built; dangling references only degrade to fallbacks.
func Run(s scene.Scene, snap *library.Snapshot) *Report {
	issues := make([]Issue, 0)

	if len(s.Characters) == 0 && strings.TrimSpace(s.Background) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     codeEmptyScene,
			Message:  "scene has no characters and no background",
		})
	}

	for i, sc := range s.Characters {
		issues = append(issues, validateCharacter(i, sc, snap)...)
	}

	if s.Background != "" && !catalog.Background.Contains(s.Background) {
		if _, ok := snap.Background(s.Background); !ok && looksLikeID(s.Background) {
			issues = append(issues, dangling("background", s.Background, "background"))
		}
	}

	if s.Style != "" && !catalog.Style.Contains(s.Style) {
		if _, ok := snap.ArtStyle(s.Style); !ok && looksLikeID(s.Style) {
			issues = append(issues, dangling("style", s.Style, "art style"))
		}
	}

	for i, id := range s.Effects {
		if id == "" || catalog.Effect.Contains(id) {
			continue
		}
		if _, ok := snap.Effect(id); !ok && looksLikeID(id) {
			issues = append(issues, dangling(fmt.Sprintf("effects[%d]", i), id, "effect"))
		}
	}

	issues = append(issues, validateProperties("backgroundProperties", s.BackgroundProperties, snap)...)

	if s.RenderQuality != "" && !prompt.KnownRenderQuality(s.RenderQuality) {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeUnknownRenderQuality,
			Message:  fmt.Sprintf("render quality %q has no dedicated instruction; a generic one is used", s.RenderQuality),
			Field:    "renderQuality",
		})
	}

	return &Report{Issues: issues}
}

func validateCharacter(idx int, sc scene.Character, snap *library.Snapshot) []Issue {
	var issues []Issue
	prefix := fmt.Sprintf("characters[%d]", idx)

	if _, ok := snap.Character(sc.CharacterID); !ok {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeDanglingCharacter,
			Message:  fmt.Sprintf("character %q not found; rendered as Unknown Character", sc.CharacterID),
			Field:    prefix + ".characterId",
			Entity:   sc.CharacterID,
		})
	}

	hasVerb := strings.TrimSpace(sc.Interaction) != ""
	hasTarget := strings.TrimSpace(sc.InteractionTarget) != ""
	if hasVerb != hasTarget {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeInteractionIncomplete,
			Message:  "interaction needs both a verb and a target; it is rendered as -",
			Field:    prefix + ".interaction",
		})
	}
	if hasTarget {
		if _, ok := snap.Character(sc.InteractionTarget); !ok {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeDanglingCharacter,
				Message:  fmt.Sprintf("interaction target %q not found; the interaction is rendered as -", sc.InteractionTarget),
				Field:    prefix + ".interactionTarget",
				Entity:   sc.InteractionTarget,
			})
		}
	}

	issues = append(issues, validateProperties(prefix+".interaksiProperties", sc.InteraksiProperties, snap)...)
	return issues
}

func validateProperties(field string, values []string, snap *library.Snapshot) []Issue {
	var issues []Issue
	for i, v := range values {
		if v == "" {
			continue
		}
		if _, ok := snap.Property(v); !ok && looksLikeID(v) {
			issues = append(issues, dangling(fmt.Sprintf("%s[%d]", field, i), v, "property"))
		}
	}
	return issues
}

// Dialogs reports dialogs whose character no longer exists. Deleting a
// character never removes its dialogs.
func Dialogs(dialogs []library.Dialog, snap *library.Snapshot) *Report {
	issues := make([]Issue, 0)
	for _, d := range dialogs {
		if d.CharacterID == "" {
			continue
		}
		if _, ok := snap.Character(d.CharacterID); !ok {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeOrphanedDialog,
				Message:  fmt.Sprintf("dialog refers to missing character %q", d.CharacterID),
				Entity:   d.ID,
			})
		}
	}
	return &Report{Issues: issues}
}

func dangling(field, value, kind string) Issue {
	return Issue{
		Severity: SeverityWarn,
		Code:     codeDanglingReference,
		Message:  fmt.Sprintf("%s %q not found in the library; rendered literally", kind, value),
		Field:    field,
		Entity:   value,
	}
}

// Free text is legal in every reference field, so only values shaped like
// generated ids are reported.
func looksLikeID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
