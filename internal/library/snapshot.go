package library

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Snapshot is a read-only view of the collections the prompt assembler
// resolves against.
type Snapshot struct {
	Characters  []Character
	Backgrounds []Background
	ArtStyles   []ArtStyle
	Effects     []Effect
	Properties  []Property

	characterIdx  map[string]int
	backgroundIdx map[string]int
	artStyleIdx   map[string]int
	effectIdx     map[string]int
	propertyIdx   map[string]int
}

func NewSnapshot(characters []Character, backgrounds []Background, styles []ArtStyle, effects []Effect, properties []Property) *Snapshot {
	s := &Snapshot{
		Characters:  characters,
		Backgrounds: backgrounds,
		ArtStyles:   styles,
		Effects:     effects,
		Properties:  properties,
	}
	s.characterIdx = index(characters)
	s.backgroundIdx = index(backgrounds)
	s.artStyleIdx = index(styles)
	s.effectIdx = index(effects)
	s.propertyIdx = index(properties)
	return s
}

func index[T any, P interface {
	*T
	entity
}](items []T) map[string]int {
	idx := make(map[string]int, len(items))
	for i := range items {
		id := P(&items[i]).meta().ID
		if id == "" {
			continue
		}
		// first record wins on duplicate ids, as Array.find does
		if _, seen := idx[id]; !seen {
			idx[id] = i
		}
	}
	return idx
}

func (l *Library) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	var (
		characters  []Character
		backgrounds []Background
		styles      []ArtStyle
		effects     []Effect
		properties  []Property
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		characters, err = l.Characters.All(gctx)
		return err
	})
	g.Go(func() (err error) {
		backgrounds, err = l.Backgrounds.All(gctx)
		return err
	})
	g.Go(func() (err error) {
		styles, err = l.ArtStyles.All(gctx)
		return err
	})
	g.Go(func() (err error) {
		effects, err = l.Effects.All(gctx)
		return err
	})
	g.Go(func() (err error) {
		properties, err = l.Properties.All(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading library snapshot: %w", err)
	}

	return NewSnapshot(characters, backgrounds, styles, effects, properties), nil
}

// WithCharacters returns a snapshot that also knows the given characters.
// Records already in the snapshot win when ids clash.
func (s *Snapshot) WithCharacters(extra []Character) *Snapshot {
	if s == nil {
		return NewSnapshot(extra, nil, nil, nil, nil)
	}
	merged := make([]Character, 0, len(s.Characters)+len(extra))
	merged = append(merged, s.Characters...)
	for _, c := range extra {
		if _, ok := s.characterIdx[c.ID]; ok {
			continue
		}
		merged = append(merged, c)
	}
	return NewSnapshot(merged, s.Backgrounds, s.ArtStyles, s.Effects, s.Properties)
}

func (s *Snapshot) Character(id string) (Character, bool) {
	if s == nil {
		return Character{}, false
	}
	i, ok := s.characterIdx[id]
	if !ok {
		return Character{}, false
	}
	return s.Characters[i], true
}

func (s *Snapshot) Background(id string) (Background, bool) {
	if s == nil {
		return Background{}, false
	}
	i, ok := s.backgroundIdx[id]
	if !ok {
		return Background{}, false
	}
	return s.Backgrounds[i], true
}

func (s *Snapshot) ArtStyle(id string) (ArtStyle, bool) {
	if s == nil {
		return ArtStyle{}, false
	}
	i, ok := s.artStyleIdx[id]
	if !ok {
		return ArtStyle{}, false
	}
	return s.ArtStyles[i], true
}

func (s *Snapshot) Effect(id string) (Effect, bool) {
	if s == nil {
		return Effect{}, false
	}
	i, ok := s.effectIdx[id]
	if !ok {
		return Effect{}, false
	}
	return s.Effects[i], true
}

func (s *Snapshot) Property(id string) (Property, bool) {
	if s == nil {
		return Property{}, false
	}
	i, ok := s.propertyIdx[id]
	if !ok {
		return Property{}, false
	}
	return s.Properties[i], true
}
