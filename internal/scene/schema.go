package scene

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"panelprompt/internal/library"
)

func JSONSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(&FormState{})
	schema.Title = "panelprompt scene"

	raw, err := schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshaling scene schema: %w", err)
	}
	var pretty map[string]any
	if err := json.Unmarshal(raw, &pretty); err != nil {
		return nil, fmt.Errorf("decoding scene schema: %w", err)
	}
	return json.MarshalIndent(pretty, "", "  ")
}

// Template is the scene form's initial state with one empty character slot.
func Template() FormState {
	return FormState{
		Characters: []library.Character{},
		Scenes: []Scene{{
			Characters: []Character{{
				InteraksiProperties: []string{},
			}},
			BackgroundSource:     SourceDefault,
			BackgroundProperties: []string{},
			Effects:              []string{},
		}},
	}
}
