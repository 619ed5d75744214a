package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"panelprompt/internal/catalog"
	"panelprompt/internal/library"
	"panelprompt/internal/project"
	"panelprompt/internal/prompt"
	"panelprompt/internal/scene"
	"panelprompt/internal/validate"
)

type KindInput struct {
	Kind string `json:"kind" jsonschema:"character, background, style, dialog, effect or property"`
}

type AssetInput struct {
	Kind string `json:"kind" jsonschema:"asset kind"`
	ID   string `json:"id" jsonschema:"asset id"`
}

type SaveAssetInput struct {
	Kind   string         `json:"kind" jsonschema:"asset kind"`
	ID     string         `json:"id,omitempty" jsonschema:"id of the asset to update; omit to create"`
	Fields map[string]any `json:"fields" jsonschema:"asset fields in their stored camelCase form"`
}

type SceneInput struct {
	Scene  string `json:"scene" jsonschema:"scene or form state document"`
	Format string `json:"format,omitempty" jsonschema:"yaml (default) or json"`
}

type BuildPromptInput struct {
	Scene  string `json:"scene" jsonschema:"scene or form state document"`
	Format string `json:"format,omitempty" jsonschema:"yaml (default) or json"`
	Save   bool   `json:"save,omitempty" jsonschema:"append the prompt to the saved prompt history"`
}

type SavePromptInput struct {
	Prompt string `json:"prompt" jsonschema:"prompt text"`
}

type CatalogInput struct {
	Name string `json:"name" jsonschema:"catalog name, for example expression or cameraAngle"`
}

type EmptyInput struct{}

type ListAssetsOutput struct {
	Kind   string           `json:"kind"`
	Assets []map[string]any `json:"assets"`
}

type AssetOutput struct {
	Kind    string         `json:"kind"`
	Asset   map[string]any `json:"asset"`
	Created bool           `json:"created,omitempty"`
}

type DeleteAssetOutput struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type OptionOutput struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type CatalogOutput struct {
	Name    string         `json:"name"`
	Options []OptionOutput `json:"options"`
}

type ListCatalogsOutput struct {
	Catalogs []CatalogOutput `json:"catalogs"`
}

type PromptOutput struct {
	Prompt string `json:"prompt"`
	Saved  bool   `json:"saved,omitempty"`
}

type SavedPromptOutput struct {
	Prompt string `json:"prompt"`
	Date   string `json:"date"`
}

type ListSavedPromptsOutput struct {
	Prompts []SavedPromptOutput `json:"prompts"`
}

type ValidateSceneOutput struct {
	Issues    []validate.Issue `json:"issues"`
	HasErrors bool             `json:"has_errors"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_assets",
		Description: "List every asset of one kind",
	}, s.handleListAssets)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_asset",
		Description: "Retrieve one asset by id",
	}, s.handleGetAsset)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "save_asset",
		Description: "Create an asset, or update the given fields of an existing one",
	}, s.handleSaveAsset)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "delete_asset",
		Description: "Delete an asset by id",
	}, s.handleDeleteAsset)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_catalogs",
		Description: "List the option catalogs of the scene form",
	}, s.handleListCatalogs)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_catalog",
		Description: "Return the options of one catalog",
	}, s.handleGetCatalog)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "build_prompt",
		Description: "Assemble the comic panel prompt for a scene",
	}, s.handleBuildPrompt)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "save_prompt",
		Description: "Append a prompt to the saved prompt history",
	}, s.handleSavePrompt)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_saved_prompts",
		Description: "Return the saved prompt history",
	}, s.handleListSavedPrompts)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "validate_scene",
		Description: "Report dangling references and incomplete fields in a scene",
	}, s.handleValidateScene)
}

func (s *Server) assets(kind string) (library.Assets, error) {
	if kind == "" {
		return nil, fmt.Errorf("kind is required")
	}
	k, err := library.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return s.lib.Assets(k)
}

func (s *Server) handleListAssets(ctx context.Context, req *sdk.CallToolRequest, input KindInput) (*sdk.CallToolResult, ListAssetsOutput, error) {
	assets, err := s.assets(input.Kind)
	if err != nil {
		return nil, ListAssetsOutput{}, err
	}
	records, err := assets.List(ctx)
	if err != nil {
		return nil, ListAssetsOutput{}, err
	}
	output := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		output = append(output, rec)
	}
	return nil, ListAssetsOutput{Kind: string(assets.Kind()), Assets: output}, nil
}

func (s *Server) handleGetAsset(ctx context.Context, req *sdk.CallToolRequest, input AssetInput) (*sdk.CallToolResult, AssetOutput, error) {
	if input.ID == "" {
		return nil, AssetOutput{}, fmt.Errorf("id is required")
	}
	assets, err := s.assets(input.Kind)
	if err != nil {
		return nil, AssetOutput{}, err
	}
	rec, err := assets.Get(ctx, input.ID)
	if err != nil {
		return nil, AssetOutput{}, err
	}
	return nil, AssetOutput{Kind: string(assets.Kind()), Asset: rec}, nil
}

func (s *Server) handleSaveAsset(ctx context.Context, req *sdk.CallToolRequest, input SaveAssetInput) (*sdk.CallToolResult, AssetOutput, error) {
	if len(input.Fields) == 0 {
		return nil, AssetOutput{}, fmt.Errorf("fields are required")
	}
	assets, err := s.assets(input.Kind)
	if err != nil {
		return nil, AssetOutput{}, err
	}
	if input.ID == "" {
		rec, err := assets.Create(ctx, input.Fields)
		if err != nil {
			return nil, AssetOutput{}, err
		}
		return nil, AssetOutput{Kind: string(assets.Kind()), Asset: rec, Created: true}, nil
	}
	rec, err := assets.Patch(ctx, input.ID, input.Fields)
	if err != nil {
		return nil, AssetOutput{}, err
	}
	return nil, AssetOutput{Kind: string(assets.Kind()), Asset: rec}, nil
}

func (s *Server) handleDeleteAsset(ctx context.Context, req *sdk.CallToolRequest, input AssetInput) (*sdk.CallToolResult, DeleteAssetOutput, error) {
	if input.ID == "" {
		return nil, DeleteAssetOutput{}, fmt.Errorf("id is required")
	}
	assets, err := s.assets(input.Kind)
	if err != nil {
		return nil, DeleteAssetOutput{}, err
	}
	if err := assets.Delete(ctx, input.ID); err != nil {
		return nil, DeleteAssetOutput{}, err
	}
	return nil, DeleteAssetOutput{Kind: string(assets.Kind()), ID: input.ID}, nil
}

func (s *Server) handleListCatalogs(ctx context.Context, req *sdk.CallToolRequest, input EmptyInput) (*sdk.CallToolResult, ListCatalogsOutput, error) {
	all := catalog.All()
	output := make([]CatalogOutput, 0, len(all))
	for _, c := range all {
		output = append(output, catalogOutput(c))
	}
	return nil, ListCatalogsOutput{Catalogs: output}, nil
}

func (s *Server) handleGetCatalog(ctx context.Context, req *sdk.CallToolRequest, input CatalogInput) (*sdk.CallToolResult, CatalogOutput, error) {
	if input.Name == "" {
		return nil, CatalogOutput{}, fmt.Errorf("name is required")
	}
	c, err := catalog.ByName(input.Name)
	if err != nil {
		return nil, CatalogOutput{}, err
	}
	return nil, catalogOutput(c), nil
}

func (s *Server) handleBuildPrompt(ctx context.Context, req *sdk.CallToolRequest, input BuildPromptInput) (*sdk.CallToolResult, PromptOutput, error) {
	form, err := decodeScene(input.Scene, input.Format)
	if err != nil {
		return nil, PromptOutput{}, err
	}
	snap, err := s.lib.LoadSnapshot(ctx)
	if err != nil {
		return nil, PromptOutput{}, fmt.Errorf("failed to build prompt: %w", err)
	}
	text := prompt.BuildForm(form, snap)
	if !input.Save {
		return nil, PromptOutput{Prompt: text}, nil
	}
	if _, err := s.project.SavePrompt(ctx, text); err != nil {
		return nil, PromptOutput{}, err
	}
	return nil, PromptOutput{Prompt: text, Saved: true}, nil
}

func (s *Server) handleSavePrompt(ctx context.Context, req *sdk.CallToolRequest, input SavePromptInput) (*sdk.CallToolResult, SavedPromptOutput, error) {
	saved, err := s.project.SavePrompt(ctx, input.Prompt)
	if err != nil {
		return nil, SavedPromptOutput{}, err
	}
	return nil, SavedPromptOutput{Prompt: saved.Prompt, Date: saved.Date}, nil
}

func (s *Server) handleListSavedPrompts(ctx context.Context, req *sdk.CallToolRequest, input EmptyInput) (*sdk.CallToolResult, ListSavedPromptsOutput, error) {
	prompts, err := s.project.SavedPrompts(ctx)
	if err != nil {
		return nil, ListSavedPromptsOutput{}, err
	}
	output := make([]SavedPromptOutput, 0, len(prompts))
	for _, p := range prompts {
		output = append(output, savedPromptOutput(p))
	}
	return nil, ListSavedPromptsOutput{Prompts: output}, nil
}

func (s *Server) handleValidateScene(ctx context.Context, req *sdk.CallToolRequest, input SceneInput) (*sdk.CallToolResult, ValidateSceneOutput, error) {
	form, err := decodeScene(input.Scene, input.Format)
	if err != nil {
		return nil, ValidateSceneOutput{}, err
	}
	snap, err := s.lib.LoadSnapshot(ctx)
	if err != nil {
		return nil, ValidateSceneOutput{}, err
	}
	report := validate.Run(form.Active(), snap.WithCharacters(form.Characters))
	return nil, ValidateSceneOutput{Issues: report.Issues, HasErrors: report.HasErrors()}, nil
}

func decodeScene(text, format string) (scene.FormState, error) {
	if text == "" {
		return scene.FormState{}, fmt.Errorf("scene is required")
	}
	f := scene.FormatYAML
	switch format {
	case "", string(scene.FormatYAML):
	case string(scene.FormatJSON):
		f = scene.FormatJSON
	default:
		return scene.FormState{}, fmt.Errorf("unsupported scene format %q", format)
	}
	return scene.Decode([]byte(text), f)
}

func catalogOutput(c catalog.Catalog) CatalogOutput {
	options := make([]OptionOutput, 0, len(c.Options))
	for _, o := range c.Options {
		options = append(options, OptionOutput{Value: o.Value, Label: o.Label})
	}
	return CatalogOutput{Name: c.Name, Options: options}
}

func savedPromptOutput(p project.SavedPrompt) SavedPromptOutput {
	return SavedPromptOutput{Prompt: p.Prompt, Date: p.Date}
}
