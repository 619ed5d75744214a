package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"panelprompt/internal/library"
)

type fieldKind int

const (
	fieldString fieldKind = iota
	fieldBool
	fieldList
)

type assetField struct {
	key   string
	flag  string
	kind  fieldKind
	usage string
}

type assetSpec struct {
	kind    library.Kind
	aliases []string
	short   string
	fields  []assetField
}

var assetSpecs = []assetSpec{
	{
		kind:  library.KindCharacter,
		short: "Manage the character library",
		fields: []assetField{
			{key: "name", flag: "name", usage: "Character name"},
			{key: "physical", flag: "physical", usage: "Physical description"},
			{key: "clothing", flag: "clothing", usage: "Clothing"},
			{key: "description", flag: "description", usage: "Free description"},
			{key: "isBackground", flag: "background", kind: fieldBool, usage: "Mark as a background character"},
		},
	},
	{
		kind:  library.KindBackground,
		short: "Manage the background library",
		fields: []assetField{
			{key: "name", flag: "name", usage: "Location name"},
			{key: "description", flag: "description", usage: "Visual description"},
		},
	},
	{
		kind:    library.KindArtStyle,
		aliases: []string{"artstyle"},
		short:   "Manage the art style library",
		fields: []assetField{
			{key: "name", flag: "name", usage: "Style name"},
			{key: "description", flag: "description", usage: "Style description"},
			{key: "characteristics", flag: "characteristic", kind: fieldList, usage: "Characteristic (repeatable)"},
			{key: "examples", flag: "example", kind: fieldList, usage: "Example work (repeatable)"},
		},
	},
	{
		kind:  library.KindDialog,
		short: "Manage the dialog library",
		fields: []assetField{
			{key: "characterId", flag: "character", usage: "Speaking character id or name"},
			{key: "text", flag: "text", usage: "Dialog text"},
			{key: "bubbleType", flag: "bubble", usage: "speech, thought, whisper or shout"},
			{key: "emotion", flag: "emotion", usage: "Emotion"},
		},
	},
	{
		kind:  library.KindEffect,
		short: "Manage the effect library",
		fields: []assetField{
			{key: "name", flag: "name", usage: "Effect name"},
			{key: "type", flag: "type", usage: "visual, sound or transition"},
			{key: "description", flag: "description", usage: "Effect description"},
		},
	},
	{
		kind:  library.KindProperty,
		short: "Manage the property library",
		fields: []assetField{
			{key: "name", flag: "name", usage: "Property name"},
			{key: "description", flag: "description", usage: "Property description"},
			{key: "year", flag: "year", usage: "Year or era"},
			{key: "special", flag: "special", usage: "Special traits"},
		},
	},
}

func assetCmd(spec assetSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:     string(spec.kind),
		Aliases: spec.aliases,
		Short:   spec.short,
	}
	cmd.AddCommand(assetListCmd(spec))
	cmd.AddCommand(assetShowCmd(spec))
	cmd.AddCommand(assetAddCmd(spec))
	cmd.AddCommand(assetUpdateCmd(spec))
	cmd.AddCommand(assetDeleteCmd(spec))
	return cmd
}

func withAssets(kind library.Kind, fn func(ctx context.Context, ws *workspace, assets library.Assets) error) error {
	ctx := context.Background()

	ws, err := openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.Close(ctx)

	assets, err := ws.lib.Assets(kind)
	if err != nil {
		return err
	}
	return fn(ctx, ws, assets)
}

func assetListCmd(spec assetSpec) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s assets", spec.kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAssets(spec.kind, func(ctx context.Context, ws *workspace, assets library.Assets) error {
				records, err := assets.List(ctx)
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintf(os.Stdout, "No %s assets found.\n", spec.kind)
					return nil
				}
				for _, rec := range records {
					fmt.Fprintf(os.Stdout, "%s  %s\n", rec.ID(), rec.Label())
				}
				return nil
			})
		},
	}
}

func assetShowCmd(spec assetSpec) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: fmt.Sprintf("Display one %s asset", spec.kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAssets(spec.kind, func(ctx context.Context, ws *workspace, assets library.Assets) error {
				rec, err := assets.Get(ctx, args[0])
				if err != nil {
					return err
				}
				out, err := yaml.Marshal(map[string]any(rec))
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(out)
				return err
			})
		},
	}
}

func assetAddCmd(spec assetSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Add a %s asset", spec.kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAssets(spec.kind, func(ctx context.Context, ws *workspace, assets library.Assets) error {
				fields, err := changedFields(ctx, ws, spec, cmd.Flags())
				if err != nil {
					return err
				}
				rec, err := assets.Create(ctx, fields)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "Created %s %s\n", spec.kind, rec.ID())
				return nil
			})
		},
	}
	registerFieldFlags(cmd, spec)
	return cmd
}

func assetUpdateCmd(spec assetSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: fmt.Sprintf("Update the given fields of a %s asset", spec.kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAssets(spec.kind, func(ctx context.Context, ws *workspace, assets library.Assets) error {
				fields, err := changedFields(ctx, ws, spec, cmd.Flags())
				if err != nil {
					return err
				}
				if len(fields) == 0 {
					return fmt.Errorf("nothing to update")
				}
				if _, err := assets.Patch(ctx, args[0], fields); err != nil {
					if errors.Is(err, library.ErrNotFound) {
						return fmt.Errorf("no %s with id %s", spec.kind, args[0])
					}
					return err
				}
				fmt.Fprintf(os.Stdout, "Updated %s %s\n", spec.kind, args[0])
				return nil
			})
		},
	}
	registerFieldFlags(cmd, spec)
	return cmd
}

func assetDeleteCmd(spec assetSpec) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s asset", spec.kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAssets(spec.kind, func(ctx context.Context, ws *workspace, assets library.Assets) error {
				if err := assets.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "Deleted %s %s\n", spec.kind, args[0])
				return nil
			})
		},
	}
}

func registerFieldFlags(cmd *cobra.Command, spec assetSpec) {
	for _, f := range spec.fields {
		switch f.kind {
		case fieldBool:
			cmd.Flags().Bool(f.flag, false, f.usage)
		case fieldList:
			cmd.Flags().StringSlice(f.flag, nil, f.usage)
		default:
			cmd.Flags().String(f.flag, "", f.usage)
		}
	}
}

// changedFields collects only the flags the user set, so an update leaves
// every other field alone.
func changedFields(ctx context.Context, ws *workspace, spec assetSpec, flags *pflag.FlagSet) (library.Record, error) {
	fields := library.Record{}
	for _, f := range spec.fields {
		if !flags.Changed(f.flag) {
			continue
		}
		var (
			value any
			err   error
		)
		switch f.kind {
		case fieldBool:
			value, err = flags.GetBool(f.flag)
		case fieldList:
			value, err = flags.GetStringSlice(f.flag)
		default:
			value, err = flags.GetString(f.flag)
		}
		if err != nil {
			return nil, err
		}
		fields[f.key] = value
	}

	if ref, ok := fields["characterId"].(string); ok && spec.kind == library.KindDialog {
		id, err := resolveCharacter(ctx, ws.lib, ref)
		if err != nil {
			return nil, err
		}
		fields["characterId"] = id
	}
	return fields, nil
}

func resolveCharacter(ctx context.Context, lib *library.Library, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil
	}
	c, ok, err := lib.Characters.Find(ctx, func(c library.Character) bool {
		return c.ID == ref || strings.EqualFold(c.Name, ref)
	})
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("character %q not found", ref)
	}
	return c.ID, nil
}
