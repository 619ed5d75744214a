// Package scene defines the form state a prompt is built from and reads it
// from YAML or JSON scene files.
package scene

import (
	"panelprompt/internal/library"
)

type FormState struct {
	Characters []library.Character `json:"characters" yaml:"characters" jsonschema:"description=Characters defined inline; stored library records win on id clash"`
	Scenes     []Scene             `json:"scenes" yaml:"scenes" jsonschema:"required"`
}

// Active returns the scene the form is editing. The form only ever holds one.
func (f FormState) Active() Scene {
	if len(f.Scenes) == 0 {
		return Scene{}
	}
	return f.Scenes[0]
}

type BackgroundSource string

const (
	SourceDefault BackgroundSource = "default"
	SourceLibrary BackgroundSource = "library"
)

type Character struct {
	CharacterID         string   `json:"characterId" yaml:"characterId" jsonschema:"required"`
	Expression          string   `json:"expression" yaml:"expression"`
	Action              string   `json:"action" yaml:"action"`
	Interaction         string   `json:"interaction" yaml:"interaction"`
	InteractionTarget   string   `json:"interactionTarget" yaml:"interactionTarget" jsonschema:"description=Id of the character being interacted with"`
	InteractionBodyPart string   `json:"interactionBodyPart" yaml:"interactionBodyPart"`
	Dialog              string   `json:"dialog" yaml:"dialog"`
	SpeechBubbleType    string   `json:"speechBubbleType" yaml:"speechBubbleType"`
	InteraksiObjek      string   `json:"interaksiObjek" yaml:"interaksiObjek" jsonschema:"description=Free text describing how the character handles an object"`
	InteraksiProperties []string `json:"interaksiProperties" yaml:"interaksiProperties" jsonschema:"description=Property ids or names held by the character"`
}

type Scene struct {
	ID         string      `json:"id" yaml:"id"`
	Characters []Character `json:"characters" yaml:"characters"`

	Background           string           `json:"background" yaml:"background" jsonschema:"description=Background catalog value or background library id"`
	BackgroundSource     BackgroundSource `json:"backgroundSource" yaml:"backgroundSource"`
	BackgroundProperties []string         `json:"backgroundProperties" yaml:"backgroundProperties"`
	Time                 string           `json:"time" yaml:"time"`
	Atmosphere           string           `json:"atmosphere" yaml:"atmosphere"`
	LatarOrang           string           `json:"latarOrang" yaml:"latarOrang"`
	DetailVisual         string           `json:"detailVisual" yaml:"detailVisual"`
	DetailLatar          string           `json:"detailLatar" yaml:"detailLatar"`
	Lighting             string           `json:"lighting" yaml:"lighting"`
	PencahayaanDetail    string           `json:"pencahayaanDetail" yaml:"pencahayaanDetail"`
	ArahPencahayaan      string           `json:"arahPencahayaan" yaml:"arahPencahayaan"`

	Style         string `json:"style" yaml:"style" jsonschema:"description=Art style library id or style catalog value"`
	StyleCustom   string `json:"styleCustom" yaml:"styleCustom"`
	RenderQuality string `json:"renderQuality" yaml:"renderQuality"`
	Texture       string `json:"texture" yaml:"texture"`
	DetailTekstur string `json:"detailTekstur" yaml:"detailTekstur"`
	DetailWarna   string `json:"detailWarna" yaml:"detailWarna"`
	DetailGaya    string `json:"detailGaya" yaml:"detailGaya"`

	JenisPanel        string `json:"jenisPanel" yaml:"jenisPanel"`
	UkuranPanel       string `json:"ukuranPanel" yaml:"ukuranPanel"`
	RasioPanel        string `json:"rasioPanel" yaml:"rasioPanel"`
	OrientasiPanel    string `json:"orientasiPanel" yaml:"orientasiPanel"`
	CameraAngle       string `json:"cameraAngle" yaml:"cameraAngle"`
	KomposisiVisual   string `json:"komposisiVisual" yaml:"komposisiVisual"`
	KomposisiKarakter string `json:"komposisiKarakter" yaml:"komposisiKarakter"`
	FokusKamera       string `json:"fokusKamera" yaml:"fokusKamera"`
	EfekMotionBlur    string `json:"efekMotionBlur" yaml:"efekMotionBlur"`
	EfekDepth         string `json:"efekDepth" yaml:"efekDepth"`
	GerakanTubuh      string `json:"gerakanTubuh" yaml:"gerakanTubuh"`
	GayaTeksDialog    string `json:"gayaTeksDialog" yaml:"gayaTeksDialog"`
	LetakDialog       string `json:"letakDialog" yaml:"letakDialog"`
	WarnaDialog       string `json:"warnaDialog" yaml:"warnaDialog"`

	VFX                string   `json:"vfx" yaml:"vfx"`
	DetailVFX          string   `json:"detailVFX" yaml:"detailVFX"`
	MotionFX           string   `json:"motionFX" yaml:"motionFX"`
	DetailMotionFX     string   `json:"detailMotionFX" yaml:"detailMotionFX"`
	SoundFXScene       string   `json:"soundFXScene" yaml:"soundFXScene" jsonschema:"description=Sound catalog value; custom reads soundFXSceneCustom and none means no sound"`
	SoundFXSceneCustom string   `json:"soundFXSceneCustom" yaml:"soundFXSceneCustom"`
	DetailSoundFX      string   `json:"detailSoundFX" yaml:"detailSoundFX"`
	EfekSuaraCustom    string   `json:"efekSuaraCustom" yaml:"efekSuaraCustom"`
	Effects            []string `json:"effects" yaml:"effects" jsonschema:"description=Effect library ids"`
}
