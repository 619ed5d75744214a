// Package catalog holds the built-in option lists offered by the scene form.
// Values are stored in scene files; labels are what ends up in prompts.
package catalog

import (
	"fmt"
	"sort"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Catalog struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

func (c Catalog) Lookup(value string) (string, bool) {
	for _, opt := range c.Options {
		if opt.Value == value {
			return opt.Label, true
		}
	}
	return "", false
}

func (c Catalog) Contains(value string) bool {
	_, ok := c.Lookup(value)
	return ok
}

func (c Catalog) Values() []string {
	values := make([]string, len(c.Options))
	for i, opt := range c.Options {
		values[i] = opt.Value
	}
	return values
}

// Sentinel values carry meaning beyond their label.
type Sentinel string

const (
	SentinelNone   Sentinel = "none"
	SentinelCustom Sentinel = "custom"
)

func (s Sentinel) Is(value string) bool {
	return value == string(s)
}

var registry = map[string]Catalog{}

func register(name string, options ...Option) Catalog {
	c := Catalog{Name: name, Options: options}
	registry[name] = c
	return c
}

func ByName(name string) (Catalog, error) {
	c, ok := registry[name]
	if !ok {
		return Catalog{}, fmt.Errorf("unknown catalog %q", name)
	}
	return c, nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func All() []Catalog {
	names := Names()
	out := make([]Catalog, len(names))
	for i, name := range names {
		out[i] = registry[name]
	}
	return out
}
