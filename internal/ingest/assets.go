package ingest

import (
	"context"
	"fmt"
	"strings"

	"panelprompt/internal/library"
	"panelprompt/internal/parser"
)

// apply upserts one document into its collection. Records are matched by
// case-insensitive name; dialogs by character and text.
func apply(ctx context.Context, lib *library.Library, doc *parser.Document) (bool, error) {
	switch doc.Kind {
	case library.KindCharacter:
		return applyCharacter(ctx, lib, doc)
	case library.KindBackground:
		return applyBackground(ctx, lib, doc)
	case library.KindArtStyle:
		return applyArtStyle(ctx, lib, doc)
	case library.KindDialog:
		return applyDialog(ctx, lib, doc)
	case library.KindEffect:
		return applyEffect(ctx, lib, doc)
	case library.KindProperty:
		return applyProperty(ctx, lib, doc)
	default:
		return false, fmt.Errorf("unsupported asset kind %q", doc.Kind)
	}
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func applyCharacter(ctx context.Context, lib *library.Library, doc *parser.Document) (bool, error) {
	fill := func(c *library.Character) {
		c.Name = doc.Title
		c.Physical = doc.String("physical")
		c.Clothing = doc.String("clothing")
		c.Description = doc.Description()
		c.IsBackground = doc.Bool("isBackground")
	}
	existing, ok, err := lib.Characters.Find(ctx, func(c library.Character) bool { return sameName(c.Name, doc.Title) })
	if err != nil {
		return false, err
	}
	if ok {
		_, err := lib.Characters.Update(ctx, existing.ID, fill)
		return false, err
	}
	var c library.Character
	fill(&c)
	_, err = lib.Characters.Save(ctx, c)
	return err == nil, err
}

func applyBackground(ctx context.Context, lib *library.Library, doc *parser.Document) (bool, error) {
	fill := func(b *library.Background) {
		b.Name = doc.Title
		b.Description = doc.Description()
	}
	existing, ok, err := lib.Backgrounds.Find(ctx, func(b library.Background) bool { return sameName(b.Name, doc.Title) })
	if err != nil {
		return false, err
	}
	if ok {
		_, err := lib.Backgrounds.Update(ctx, existing.ID, fill)
		return false, err
	}
	var b library.Background
	fill(&b)
	_, err = lib.Backgrounds.Save(ctx, b)
	return err == nil, err
}

func applyArtStyle(ctx context.Context, lib *library.Library, doc *parser.Document) (bool, error) {
	characteristics, err := doc.Strings("characteristics")
	if err != nil {
		return false, err
	}
	examples, err := doc.Strings("examples")
	if err != nil {
		return false, err
	}
	fill := func(a *library.ArtStyle) {
		a.Name = doc.Title
		a.Description = doc.Description()
		a.Characteristics = characteristics
		a.Examples = examples
	}
	existing, ok, err := lib.ArtStyles.Find(ctx, func(a library.ArtStyle) bool { return sameName(a.Name, doc.Title) })
	if err != nil {
		return false, err
	}
	if ok {
		_, err := lib.ArtStyles.Update(ctx, existing.ID, fill)
		return false, err
	}
	var a library.ArtStyle
	fill(&a)
	_, err = lib.ArtStyles.Save(ctx, a)
	return err == nil, err
}

func applyEffect(ctx context.Context, lib *library.Library, doc *parser.Document) (bool, error) {
	effectType := library.EffectType(strings.ToLower(doc.String("effectType")))
	if effectType == "" {
		effectType = library.EffectVisual
	}
	fill := func(e *library.Effect) {
		e.Name = doc.Title
		e.Type = effectType
		e.Description = doc.Description()
	}
	existing, ok, err := lib.Effects.Find(ctx, func(e library.Effect) bool { return sameName(e.Name, doc.Title) })
	if err != nil {
		return false, err
	}
	if ok {
		_, err := lib.Effects.Update(ctx, existing.ID, fill)
		return false, err
	}
	var e library.Effect
	fill(&e)
	_, err = lib.Effects.Save(ctx, e)
	return err == nil, err
}

func applyProperty(ctx context.Context, lib *library.Library, doc *parser.Document) (bool, error) {
	fill := func(p *library.Property) {
		p.Name = doc.Title
		p.Description = doc.Description()
		p.Year = doc.String("year")
		p.Special = doc.String("special")
	}
	existing, ok, err := lib.Properties.Find(ctx, func(p library.Property) bool { return sameName(p.Name, doc.Title) })
	if err != nil {
		return false, err
	}
	if ok {
		_, err := lib.Properties.Update(ctx, existing.ID, fill)
		return false, err
	}
	var p library.Property
	fill(&p)
	_, err = lib.Properties.Save(ctx, p)
	return err == nil, err
}

// Dialog text is the body, falling back to the title. The character field
// may hold a character name or id.
func applyDialog(ctx context.Context, lib *library.Library, doc *parser.Document) (bool, error) {
	text := doc.Body
	if text == "" {
		text = doc.Title
	}

	characterID := ""
	if ref := doc.String("character"); ref != "" {
		c, ok, err := lib.Characters.Find(ctx, func(c library.Character) bool {
			return c.ID == ref || sameName(c.Name, ref)
		})
		if err != nil {
			return false, err
		}
		if !ok {
			return false, fmt.Errorf("dialog character %q not found", ref)
		}
		characterID = c.ID
	}

	fill := func(d *library.Dialog) {
		d.CharacterID = characterID
		d.Text = text
		d.BubbleType = library.BubbleType(strings.ToLower(doc.String("bubbleType")))
		d.Emotion = doc.String("emotion")
	}
	existing, ok, err := lib.Dialogs.Find(ctx, func(d library.Dialog) bool {
		return d.CharacterID == characterID && sameName(d.Text, text)
	})
	if err != nil {
		return false, err
	}
	if ok {
		_, err := lib.Dialogs.Update(ctx, existing.ID, fill)
		return false, err
	}
	var d library.Dialog
	fill(&d)
	_, err = lib.Dialogs.Save(ctx, d)
	return err == nil, err
}
