// Package library holds the user-built asset collections: characters,
// backgrounds, art styles, dialogs, effects and properties.
package library

import (
	"context"
	"fmt"
	"strings"

	"panelprompt/internal/kv"
)

type Kind string

const (
	KindCharacter  Kind = "character"
	KindBackground Kind = "background"
	KindArtStyle   Kind = "style"
	KindDialog     Kind = "dialog"
	KindEffect     Kind = "effect"
	KindProperty   Kind = "property"
)

var Kinds = []Kind{KindCharacter, KindBackground, KindArtStyle, KindDialog, KindEffect, KindProperty}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case "artstyle", "art_style", "art-style":
		return KindArtStyle, nil
	}
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown asset kind %q", s)
}

type Library struct {
	Characters  *Collection[Character, *Character]
	Backgrounds *Collection[Background, *Background]
	ArtStyles   *Collection[ArtStyle, *ArtStyle]
	Dialogs     *DialogCollection
	Effects     *Collection[Effect, *Effect]
	Properties  *Collection[Property, *Property]
}

func New(store kv.Store) *Library {
	return &Library{
		Characters:  NewCollection[Character](store, KeyCharacters),
		Backgrounds: NewCollection[Background](store, KeyBackgrounds),
		ArtStyles:   NewCollection[ArtStyle](store, KeyArtStyles),
		Dialogs:     &DialogCollection{NewCollection[Dialog](store, KeyDialogs)},
		Effects:     NewCollection[Effect](store, KeyEffects),
		Properties:  NewCollection[Property](store, KeyProperties),
	}
}

type DialogCollection struct {
	*Collection[Dialog, *Dialog]
}

// ByCharacter returns the dialogs written for one character. Dialogs whose
// character was deleted are still returned for that id.
func (d *DialogCollection) ByCharacter(ctx context.Context, characterID string) ([]Dialog, error) {
	all, err := d.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Dialog, 0)
	for _, dialog := range all {
		if dialog.CharacterID == characterID {
			out = append(out, dialog)
		}
	}
	return out, nil
}
