package library

import (
	"fmt"
	"strings"
)

const (
	KeyCharacters  = "comic_characters"
	KeyBackgrounds = "comic_backgrounds"
	KeyArtStyles   = "comic_art_styles"
	KeyDialogs     = "comic_dialogs"
	KeyEffects     = "effects"
	KeyProperties  = "propertyLibrary"
)

type Character struct {
	Meta `yaml:",inline"`
	Name         string `json:"name" yaml:"name"`
	Physical     string `json:"physical" yaml:"physical"`
	Clothing     string `json:"clothing,omitempty" yaml:"clothing,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	IsBackground bool   `json:"isBackground" yaml:"isBackground"`
}

func (c *Character) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("character name is required")
	}
	return nil
}

type Background struct {
	Meta `yaml:",inline"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

func (b *Background) validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("background name is required")
	}
	return nil
}

type ArtStyle struct {
	Meta `yaml:",inline"`
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Characteristics []string `json:"characteristics" yaml:"characteristics"`
	Examples        []string `json:"examples" yaml:"examples"`
}

func (a *ArtStyle) validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("art style name is required")
	}
	return nil
}

func (a *ArtStyle) normalize() {
	if a.Characteristics == nil {
		a.Characteristics = []string{}
	}
	if a.Examples == nil {
		a.Examples = []string{}
	}
}

type BubbleType string

const (
	BubbleSpeech  BubbleType = "speech"
	BubbleThought BubbleType = "thought"
	BubbleWhisper BubbleType = "whisper"
	BubbleShout   BubbleType = "shout"
)

func (b BubbleType) Valid() bool {
	switch b {
	case BubbleSpeech, BubbleThought, BubbleWhisper, BubbleShout:
		return true
	}
	return false
}

type Dialog struct {
	Meta `yaml:",inline"`
	CharacterID string     `json:"characterId" yaml:"characterId"`
	Text        string     `json:"text" yaml:"text"`
	BubbleType  BubbleType `json:"bubbleType" yaml:"bubbleType"`
	Emotion     string     `json:"emotion" yaml:"emotion"`
}

func (d *Dialog) validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return fmt.Errorf("dialog text is required")
	}
	if !d.BubbleType.Valid() {
		return fmt.Errorf("invalid bubble type %q", d.BubbleType)
	}
	return nil
}

func (d *Dialog) normalize() {
	if d.BubbleType == "" {
		d.BubbleType = BubbleSpeech
	}
}

type EffectType string

const (
	EffectVisual     EffectType = "visual"
	EffectSound      EffectType = "sound"
	EffectTransition EffectType = "transition"
)

func (e EffectType) Valid() bool {
	switch e {
	case EffectVisual, EffectSound, EffectTransition:
		return true
	}
	return false
}

type Effect struct {
	Meta `yaml:",inline"`
	Name        string     `json:"name" yaml:"name"`
	Type        EffectType `json:"type" yaml:"type"`
	Description string     `json:"description" yaml:"description"`
}

func (e *Effect) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("effect name is required")
	}
	if !e.Type.Valid() {
		return fmt.Errorf("invalid effect type %q", e.Type)
	}
	return nil
}

type Property struct {
	Meta `yaml:",inline"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Year        string `json:"year" yaml:"year"`
	Special     string `json:"special" yaml:"special"`
}

func (p *Property) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("property name is required")
	}
	return nil
}
