package prompt

import (
	"strings"

	"panelprompt/internal/catalog"
	"panelprompt/internal/library"
)

const (
	placeholder      = "-"
	unknownCharacter = "Unknown Character"
)

type resolver struct {
	snap *library.Snapshot
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// option resolves a field that only ever holds a catalog value or free text.
func (r resolver) option(c catalog.Catalog, value string) string {
	if value == "" {
		return placeholder
	}
	if label, ok := c.Lookup(value); ok {
		return label
	}
	return orDash(value)
}

// fx is option with the none sentinel meaning nothing was chosen.
func (r resolver) fx(c catalog.Catalog, value string) string {
	if catalog.SentinelNone.Is(value) {
		return placeholder
	}
	return r.option(c, value)
}

func (r resolver) soundFX(value, custom string) string {
	switch {
	case value == "":
		return placeholder
	case catalog.SentinelCustom.Is(value):
		return orDash(custom)
	case catalog.SentinelNone.Is(value):
		return placeholder
	}
	return r.option(catalog.SoundFXScene, value)
}

// background resolves the background selector. The matched library record is
// returned so its description can stand in for a missing detail text.
func (r resolver) background(value string) (string, *library.Background) {
	if value == "" {
		return placeholder, nil
	}
	if label, ok := catalog.Background.Lookup(value); ok {
		return label, nil
	}
	if bg, ok := r.snap.Background(value); ok {
		return orDash(bg.Name), &bg
	}
	return orDash(value), nil
}

func (r resolver) properties(values []string) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if p, ok := r.snap.Property(v); ok && p.Name != "" {
			names = append(names, p.Name)
			continue
		}
		names = append(names, v)
	}
	return joinOrDash(names)
}

func (r resolver) effects(values []string) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" || catalog.SentinelNone.Is(v) {
			continue
		}
		if label, ok := catalog.Effect.Lookup(v); ok {
			names = append(names, label)
			continue
		}
		if e, ok := r.snap.Effect(v); ok && e.Name != "" {
			names = append(names, e.Name)
			continue
		}
		names = append(names, v)
	}
	return joinOrDash(names)
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return placeholder
	}
	return strings.Join(items, ", ")
}
