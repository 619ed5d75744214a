// Package prompt turns a scene and the asset library into the text prompt
// handed to an image generator.
package prompt

import (
	"fmt"
	"strings"

	"panelprompt/internal/catalog"
	"panelprompt/internal/library"
	"panelprompt/internal/scene"
)

const (
	HeaderTitle      = "PROMPT KOMIK PANEL"
	HeaderCharacters = "🧑‍🎤 KARAKTER UTAMA"
	HeaderBackground = "🖼️ LATAR (BACKGROUND)"
	HeaderCamera     = "📷 KAMERA & PANEL"
	HeaderEffects    = "✨ EFEK (FX)"
	HeaderRender     = "INSTRUKSI RENDER:"
)

type writer struct {
	strings.Builder
}

func (w *writer) header(title string) {
	w.WriteString(title)
	w.WriteString("\n\n")
}

func (w *writer) field(label, value string) {
	fmt.Fprintf(w, "%s: %s\n", label, value)
}

// Build renders s against the library snapshot. Missing and dangling
// references never fail; they fall back to a placeholder or the raw value.
func Build(s scene.Scene, snap *library.Snapshot) string {
	r := resolver{snap: snap}
	w := &writer{}

	w.header(HeaderTitle)

	w.header(HeaderCharacters)
	writeCharacters(w, r, s)

	w.header(HeaderBackground)
	// Style lines continue the background section without a header of
	// their own.
	writeBackground(w, r, s)
	writeStyle(w, r, s)
	w.WriteString("\n")

	w.header(HeaderCamera)
	writeCamera(w, r, s)
	w.WriteString("\n")

	w.header(HeaderEffects)
	writeEffects(w, r, s)

	if s.RenderQuality != "" {
		w.WriteString("\n")
		w.WriteString(HeaderRender)
		w.WriteString("\n")
		w.WriteString(Instruction(s.RenderQuality))
	}

	return w.String()
}

// BuildForm builds the active scene of form. Characters defined inline in the
// form are visible to the scene unless a stored record has the same id.
func BuildForm(form scene.FormState, snap *library.Snapshot) string {
	if len(form.Characters) > 0 {
		snap = snap.WithCharacters(form.Characters)
	}
	return Build(form.Active(), snap)
}

func writeCharacters(w *writer, r resolver, s scene.Scene) {
	if len(s.Characters) == 0 {
		w.WriteString(placeholder)
		w.WriteString("\n\n")
		return
	}
	for i, sc := range s.Characters {
		name := unknownCharacter
		physical, clothing := placeholder, placeholder
		if c, ok := r.snap.Character(sc.CharacterID); ok {
			if c.Name != "" {
				name = c.Name
			}
			physical = c.Physical
			if strings.TrimSpace(physical) == "" {
				physical = c.Description
			}
			physical = orDash(physical)
			clothing = orDash(c.Clothing)
		}

		fmt.Fprintf(w, "Karakter #%d\n", i+1)
		w.field("Nama/Identitas", name)
		w.field("Deskripsi fisik", physical)
		w.field("Pakaian", clothing)
		w.field("Ekspresi wajah", r.option(catalog.Expression, sc.Expression))
		w.field("Aksi saat ini", r.option(catalog.Action, sc.Action))
		w.field("Interaksi objek", orDash(sc.InteraksiObjek))
		w.field("Property", r.properties(sc.InteraksiProperties))
		w.field("Interaksi", interactionLine(r, name, sc))
		w.field("Dialog", orDash(sc.Dialog))
		w.field("Balon dialog", r.option(catalog.SpeechBubble, sc.SpeechBubbleType))
		if strings.TrimSpace(s.GerakanTubuh) != "" {
			w.field("Gerakan tubuh", s.GerakanTubuh)
		}
		w.WriteString("\n")
	}
}

// interactionLine needs a verb and a target that resolves to a stored
// character; anything less renders as the placeholder.
func interactionLine(r resolver, name string, sc scene.Character) string {
	if strings.TrimSpace(sc.Interaction) == "" || strings.TrimSpace(sc.InteractionTarget) == "" {
		return placeholder
	}
	target, ok := r.snap.Character(sc.InteractionTarget)
	if !ok || strings.TrimSpace(target.Name) == "" {
		return placeholder
	}
	return fmt.Sprintf("%s melakukan '%s' pada %s (bagian: %s)",
		name,
		r.option(catalog.Interaction, sc.Interaction),
		target.Name,
		r.option(catalog.BodyPart, sc.InteractionBodyPart),
	)
}

func writeBackground(w *writer, r resolver, s scene.Scene) {
	label, bg := r.background(s.Background)

	detailVisual := s.DetailVisual
	if strings.TrimSpace(detailVisual) == "" && bg != nil {
		detailVisual = bg.Description
	}

	w.field("Nama lokasi", label)
	w.field("Detail visual", orDash(detailVisual))
	w.field("Detail latar", orDash(s.DetailLatar))
	w.field("Property di background", r.properties(s.BackgroundProperties))
	w.field("Waktu", r.option(catalog.Time, s.Time))
	w.field("Cuaca", r.option(catalog.Atmosphere, s.Atmosphere))
	w.field("Pencahayaan", r.option(catalog.Lighting, s.Lighting))
	w.field("Pencahayaan detail", orDash(s.PencahayaanDetail))
	w.field("Arah pencahayaan", orDash(s.ArahPencahayaan))
	w.field("Orang sekitar", r.option(catalog.PeoplePresent, s.LatarOrang))
}

func writeStyle(w *writer, r resolver, s scene.Scene) {
	// A library id wins even when the same string is also a catalog value.
	if style, ok := r.snap.ArtStyle(s.Style); ok && s.Style != "" {
		w.field("Gaya artistik (library)", orDash(style.Name))
		w.field("Deskripsi gaya", orDash(style.Description))
		w.field("Karakteristik", joinOrDash(nonEmpty(style.Characteristics)))
		w.field("Contoh", joinOrDash(nonEmpty(style.Examples)))
	} else {
		w.field("Gaya artistik", r.option(catalog.Style, s.Style))
	}
	w.field("Custom style", orDash(s.StyleCustom))
	w.field("Render quality", orDash(s.RenderQuality))
	w.field("Tekstur", r.option(catalog.Texture, s.Texture))
	w.field("Detail tekstur", orDash(s.DetailTekstur))
	w.field("Detail warna", orDash(s.DetailWarna))
	w.field("Detail gaya", orDash(s.DetailGaya))
}

func writeCamera(w *writer, r resolver, s scene.Scene) {
	w.field("Jenis panel", r.option(catalog.PanelType, s.JenisPanel))
	w.field("Ukuran panel", r.option(catalog.PanelSize, s.UkuranPanel))
	w.field("Rasio panel", r.option(catalog.PanelRatio, s.RasioPanel))
	w.field("Orientasi", r.option(catalog.PanelOrientation, s.OrientasiPanel))
	w.field("Sudut kamera", r.option(catalog.CameraAngle, s.CameraAngle))
	w.field("Komposisi visual", orDash(s.KomposisiVisual))
	w.field("Komposisi karakter", orDash(s.KomposisiKarakter))
	w.field("Fokus kamera", orDash(s.FokusKamera))
	w.field("Efek motion blur", orDash(s.EfekMotionBlur))
	w.field("Efek depth", orDash(s.EfekDepth))
	w.field("Gaya teks dialog", orDash(s.GayaTeksDialog))
	w.field("Letak dialog", orDash(s.LetakDialog))
	w.field("Warna dialog", orDash(s.WarnaDialog))
}

func writeEffects(w *writer, r resolver, s scene.Scene) {
	w.field("Visual FX (VFX)", r.fx(catalog.VFX, s.VFX))
	w.field("Detail VFX", orDash(s.DetailVFX))
	w.field("Motion FX", r.fx(catalog.MotionFX, s.MotionFX))
	w.field("Detail Motion FX", orDash(s.DetailMotionFX))
	w.field("Sound FX", r.soundFX(s.SoundFXScene, s.SoundFXSceneCustom))
	w.field("Detail Sound FX", orDash(s.DetailSoundFX))
	w.field("Efek suara custom", orDash(s.EfekSuaraCustom))
	w.field("Efek library", r.effects(s.Effects))
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
