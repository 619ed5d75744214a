package prompt

import (
	"strings"
	"testing"

	"panelprompt/internal/library"
	"panelprompt/internal/scene"
)

func character(id, name, physical string) library.Character {
	return library.Character{Meta: library.Meta{ID: id}, Name: name, Physical: physical}
}

func TestBuildHiroScenario(t *testing.T) {
	snap := library.NewSnapshot([]library.Character{character("hiro", "Hiro", "tinggi, rambut hitam")}, nil, nil, nil, nil)
	s := scene.Scene{
		Characters:    []scene.Character{{CharacterID: "hiro", Expression: "happy"}},
		Background:    "kota",
		RenderQuality: "cartoon",
	}

	want := strings.Join([]string{
		HeaderTitle,
		"",
		HeaderCharacters,
		"",
		"Karakter #1",
		"Nama/Identitas: Hiro",
		"Deskripsi fisik: tinggi, rambut hitam",
		"Pakaian: -",
		"Ekspresi wajah: Senang",
		"Aksi saat ini: -",
		"Interaksi objek: -",
		"Property: -",
		"Interaksi: -",
		"Dialog: -",
		"Balon dialog: -",
		"",
		HeaderBackground,
		"",
		"Nama lokasi: Kota",
		"Detail visual: -",
		"Detail latar: -",
		"Property di background: -",
		"Waktu: -",
		"Cuaca: -",
		"Pencahayaan: -",
		"Pencahayaan detail: -",
		"Arah pencahayaan: -",
		"Orang sekitar: -",
		"Gaya artistik: -",
		"Custom style: -",
		"Render quality: cartoon",
		"Tekstur: -",
		"Detail tekstur: -",
		"Detail warna: -",
		"Detail gaya: -",
		"",
		HeaderCamera,
		"",
		"Jenis panel: -",
		"Ukuran panel: -",
		"Rasio panel: -",
		"Orientasi: -",
		"Sudut kamera: -",
		"Komposisi visual: -",
		"Komposisi karakter: -",
		"Fokus kamera: -",
		"Efek motion blur: -",
		"Efek depth: -",
		"Gaya teks dialog: -",
		"Letak dialog: -",
		"Warna dialog: -",
		"",
		HeaderEffects,
		"",
		"Visual FX (VFX): -",
		"Detail VFX: -",
		"Motion FX: -",
		"Detail Motion FX: -",
		"Sound FX: -",
		"Detail Sound FX: -",
		"Efek suara custom: -",
		"Efek library: -",
		"",
		HeaderRender,
		"Buat gambar dengan gaya kartun yang ceria dan menarik. Fokus pada:",
		"1. Garis yang jelas, tebal, dan konsisten",
		"2. Warna-warna yang hidup dan cerah",
		"3. Ekspresi wajah yang berlebihan dan ekspresif",
		"4. Proporsi yang dinamis dan menarik",
		"5. Bayangan dan highlight yang sederhana tapi efektif",
	}, "\n")

	got := Build(s, snap)
	if got != want {
		t.Fatalf("unexpected prompt.\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	snap := library.NewSnapshot(
		[]library.Character{character("a", "Ana", "kurus"), character("b", "Bima", "gemuk")},
		[]library.Background{{Meta: library.Meta{ID: "bg"}, Name: "Gudang", Description: "gelap"}},
		nil,
		[]library.Effect{{Meta: library.Meta{ID: "fx"}, Name: "Kilat", Type: library.EffectVisual}},
		[]library.Property{{Meta: library.Meta{ID: "p"}, Name: "Payung"}},
	)
	s := scene.Scene{
		Characters: []scene.Character{
			{CharacterID: "a", Interaction: "helping", InteractionTarget: "b", InteraksiProperties: []string{"p"}},
			{CharacterID: "b", Dialog: "Terima kasih"},
		},
		Background:           "bg",
		BackgroundProperties: []string{"p", "tali"},
		Effects:              []string{"fx", "glow"},
		RenderQuality:        "anime",
	}
	first := Build(s, snap)
	for i := 0; i < 20; i++ {
		if Build(s, snap) != first {
			t.Fatalf("build %d differs from first build", i)
		}
	}
}

func TestDanglingCharacter(t *testing.T) {
	snap := library.NewSnapshot([]library.Character{character("b", "Bima", "gemuk")}, nil, nil, nil, nil)
	s := scene.Scene{Characters: []scene.Character{
		{CharacterID: "ghost", Expression: "scared"},
		{CharacterID: "b", Interaction: "looking_at", InteractionTarget: "ghost"},
	}}

	got := Build(s, snap)
	if !strings.Contains(got, "Nama/Identitas: Unknown Character\n") {
		t.Fatalf("expected dangling character label, got:\n%s", got)
	}
	if !strings.Contains(got, "Interaksi: -\n") || strings.Contains(got, "pada Unknown Character") {
		t.Fatalf("expected dangling interaction target to render as -, got:\n%s", got)
	}
	if !strings.Contains(got, "Ekspresi wajah: Takut\n") {
		t.Fatalf("expected expression label, got:\n%s", got)
	}
}

func TestBuildWithNilSnapshot(t *testing.T) {
	got := Build(scene.Scene{Characters: []scene.Character{{CharacterID: "x"}}, Style: "noir-id"}, nil)
	if !strings.Contains(got, "Nama/Identitas: Unknown Character") {
		t.Fatalf("expected fallback name, got:\n%s", got)
	}
	if !strings.Contains(got, "Gaya artistik: noir-id\n") {
		t.Fatalf("expected literal style, got:\n%s", got)
	}
}

func TestInteractionRequiresVerbAndTarget(t *testing.T) {
	snap := library.NewSnapshot([]library.Character{character("a", "Ana", ""), character("b", "Bima", "")}, nil, nil, nil, nil)
	tests := []struct {
		name string
		sc   scene.Character
		want string
	}{
		{"verb only", scene.Character{CharacterID: "a", Interaction: "helping"}, "Interaksi: -\n"},
		{"target only", scene.Character{CharacterID: "a", InteractionTarget: "b"}, "Interaksi: -\n"},
		{"both with body part", scene.Character{CharacterID: "a", Interaction: "helping", InteractionTarget: "b", InteractionBodyPart: "hands"},
			"Interaksi: Ana melakukan 'Membantu' pada Bima (bagian: Tangan)\n"},
		{"free text verb", scene.Character{CharacterID: "a", Interaction: "memeluk", InteractionTarget: "b"},
			"Interaksi: Ana melakukan 'memeluk' pada Bima (bagian: -)\n"},
		{"unresolved target", scene.Character{CharacterID: "a", Interaction: "helping", InteractionTarget: "gone"}, "Interaksi: -\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(scene.Scene{Characters: []scene.Character{tt.sc}}, snap)
			if !strings.Contains(got, tt.want) {
				t.Fatalf("expected %q in:\n%s", tt.want, got)
			}
		})
	}
}

func TestSoundFXSentinels(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		custom string
		want   string
	}{
		{"custom", "custom", "Bzzzt", "Sound FX: Bzzzt\n"},
		{"custom without text", "custom", "", "Sound FX: -\n"},
		{"none", "none", "Bzzzt", "Sound FX: -\n"},
		{"catalog", "boom", "", "Sound FX: Boom\n"},
		{"free text", "kring", "", "Sound FX: kring\n"},
		{"empty", "", "", "Sound FX: -\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(scene.Scene{SoundFXScene: tt.value, SoundFXSceneCustom: tt.custom}, nil)
			if !strings.Contains(got, tt.want) {
				t.Fatalf("expected %q in:\n%s", tt.want, got)
			}
		})
	}
}

func TestStyleLibraryPrecedence(t *testing.T) {
	styles := []library.ArtStyle{{
		Meta:            library.Meta{ID: "anime"},
		Name:            "Shonen Tebal",
		Description:     "garis tebal",
		Characteristics: []string{"speed lines", "kontras"},
		Examples:        []string{"Naruto"},
	}}
	snap := library.NewSnapshot(nil, nil, styles, nil, nil)

	got := Build(scene.Scene{Style: "anime"}, snap)
	for _, want := range []string{
		"Gaya artistik (library): Shonen Tebal\n",
		"Deskripsi gaya: garis tebal\n",
		"Karakteristik: speed lines, kontras\n",
		"Contoh: Naruto\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Gaya artistik: Anime") {
		t.Fatalf("library style fell through to the catalog:\n%s", got)
	}

	catalogOnly := Build(scene.Scene{Style: "anime"}, nil)
	if !strings.Contains(catalogOnly, "Gaya artistik: Anime\n") {
		t.Fatalf("expected catalog label without library match:\n%s", catalogOnly)
	}
}

func TestBackgroundResolution(t *testing.T) {
	bgs := []library.Background{{Meta: library.Meta{ID: "bg-1"}, Name: "Atap sekolah", Description: "pagar kawat berkarat"}}
	snap := library.NewSnapshot(nil, bgs, nil, nil, nil)

	tests := []struct {
		name  string
		scene scene.Scene
		want  []string
	}{
		{"catalog", scene.Scene{Background: "pantai"}, []string{"Nama lokasi: Pantai\n", "Detail visual: -\n"}},
		{"library falls back to description", scene.Scene{Background: "bg-1"},
			[]string{"Nama lokasi: Atap sekolah\n", "Detail visual: pagar kawat berkarat\n"}},
		{"scene detail wins", scene.Scene{Background: "bg-1", DetailVisual: "senja oranye"},
			[]string{"Detail visual: senja oranye\n"}},
		{"literal", scene.Scene{Background: "Kapal selam"}, []string{"Nama lokasi: Kapal selam\n"}},
		{"empty", scene.Scene{}, []string{"Nama lokasi: -\n"}},
		{"labels", scene.Scene{Time: "dusk", Atmosphere: "foggy", LatarOrang: "none", Lighting: "noir"},
			[]string{"Waktu: Senja\n", "Cuaca: Berkabut\n", "Orang sekitar: Tidak ada orang\n", "Pencahayaan: Noir\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.scene, snap)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Fatalf("expected %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestPropertiesAndEffects(t *testing.T) {
	snap := library.NewSnapshot(nil, nil, nil,
		[]library.Effect{{Meta: library.Meta{ID: "fx-1"}, Name: "Kilat biru", Type: library.EffectVisual}},
		[]library.Property{{Meta: library.Meta{ID: "p-1"}, Name: "Payung"}},
	)
	s := scene.Scene{
		Characters:           []scene.Character{{CharacterID: "x", InteraksiProperties: []string{"p-1", "", "tas"}}},
		BackgroundProperties: []string{"p-1"},
		Effects:              []string{"fx-1", "none", "smoke", "asap ungu"},
		VFX:                  "none",
		MotionFX:             "speed_lines",
	}
	got := Build(s, snap)
	for _, want := range []string{
		"Property: Payung, tas\n",
		"Property di background: Payung\n",
		"Efek library: Kilat biru, Asap, asap ungu\n",
		"Visual FX (VFX): -\n",
		"Motion FX: Speed Lines\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
}

func TestGerakanTubuhOnlyWhenSet(t *testing.T) {
	s := scene.Scene{Characters: []scene.Character{{CharacterID: "x"}, {CharacterID: "y"}}}
	if got := Build(s, nil); strings.Contains(got, "Gerakan tubuh") {
		t.Fatalf("unexpected body movement line:\n%s", got)
	}
	s.GerakanTubuh = "melompat tinggi"
	got := Build(s, nil)
	if strings.Count(got, "Gerakan tubuh: melompat tinggi\n") != 2 {
		t.Fatalf("expected body movement for each character:\n%s", got)
	}
}

func TestRenderInstruction(t *testing.T) {
	if got := Build(scene.Scene{}, nil); strings.Contains(got, HeaderRender) {
		t.Fatalf("render block emitted without render quality")
	}

	got := Build(scene.Scene{RenderQuality: "high_detail"}, nil)
	want := "\n" + HeaderRender + "\nBuat gambar dengan gaya high_detail, pastikan untuk menekankan karakteristik unik dari gaya tersebut."
	if !strings.HasSuffix(got, want) {
		t.Fatalf("expected generic instruction suffix, got:\n%s", got)
	}
	if !strings.Contains(got, "Render quality: high_detail\n") {
		t.Fatalf("expected raw render quality value:\n%s", got)
	}

	for _, quality := range RenderQualities {
		if !KnownRenderQuality(quality) {
			t.Fatalf("%q listed but has no instruction", quality)
		}
		text := Instruction(quality)
		if strings.Count(text, "\n") != 5 || strings.HasSuffix(text, "\n") {
			t.Fatalf("instruction for %q should be six lines without trailing newline", quality)
		}
	}
}

func TestBuildFormMergesInlineCharacters(t *testing.T) {
	snap := library.NewSnapshot([]library.Character{character("c1", "Hiro", "tinggi")}, nil, nil, nil, nil)
	form := scene.FormState{
		Characters: []library.Character{character("c1", "Palsu", ""), character("c2", "Yuki", "pendek")},
		Scenes: []scene.Scene{{Characters: []scene.Character{
			{CharacterID: "c1"},
			{CharacterID: "c2"},
		}}},
	}
	got := BuildForm(form, snap)
	if !strings.Contains(got, "Nama/Identitas: Hiro\n") || strings.Contains(got, "Palsu") {
		t.Fatalf("stored character should win:\n%s", got)
	}
	if !strings.Contains(got, "Nama/Identitas: Yuki\nDeskripsi fisik: pendek\n") {
		t.Fatalf("inline character should resolve:\n%s", got)
	}
}

func TestEmptyRoster(t *testing.T) {
	got := Build(scene.Scene{}, nil)
	want := HeaderCharacters + "\n\n-\n\n" + HeaderBackground
	if !strings.Contains(got, want) {
		t.Fatalf("expected placeholder roster, got:\n%s", got)
	}
}
