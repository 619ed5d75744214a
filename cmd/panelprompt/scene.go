package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"panelprompt/internal/scene"
)

func sceneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Scene file helpers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a scene file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := scene.JSONSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(out))
			return nil
		},
	})

	var format string
	template := &cobra.Command{
		Use:   "template",
		Short: "Print an empty scene file with every field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := scene.Format(format)
			if f != scene.FormatYAML && f != scene.FormatJSON {
				return fmt.Errorf("unsupported format %q", format)
			}
			out, err := scene.Encode(scene.Template(), f)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}
	template.Flags().StringVar(&format, "format", string(scene.FormatYAML), "yaml or json")
	cmd.AddCommand(template)
	return cmd
}
