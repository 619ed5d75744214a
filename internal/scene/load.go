package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrEmptyFile = errors.New("scene file is empty")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

func Load(path string) (FormState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FormState{}, fmt.Errorf("reading scene file: %w", err)
	}
	form, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return FormState{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return form, nil
}

// Decode reads a full form state or a bare scene document. A document
// without a top-level "scenes" key is taken to be a single scene.
func Decode(data []byte, format Format) (FormState, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(data)) == 0 {
		return FormState{}, ErrEmptyFile
	}

	unmarshal := yaml.Unmarshal
	if format == FormatJSON {
		unmarshal = json.Unmarshal
	}

	var probe map[string]any
	if err := unmarshal(data, &probe); err != nil {
		return FormState{}, fmt.Errorf("parsing %s: %w", format, err)
	}

	if _, ok := probe["scenes"]; ok {
		var form FormState
		if err := unmarshal(data, &form); err != nil {
			return FormState{}, fmt.Errorf("parsing form state: %w", err)
		}
		return form, nil
	}

	var s Scene
	if err := unmarshal(data, &s); err != nil {
		return FormState{}, fmt.Errorf("parsing scene: %w", err)
	}
	return FormState{Scenes: []Scene{s}}, nil
}

func Encode(form FormState, format Format) ([]byte, error) {
	if format == FormatJSON {
		return json.MarshalIndent(form, "", "  ")
	}
	return yaml.Marshal(form)
}
