package main

import (
	"os"

	"github.com/spf13/cobra"

	"panelprompt/internal/config"
)

var (
	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:   "panelprompt",
		Short: "Comic panel prompt authoring tool",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Project config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(initCmd())
	root.AddCommand(versionCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(importCmd())
	root.AddCommand(validateCmd())
	for _, spec := range assetSpecs {
		root.AddCommand(assetCmd(spec))
	}
	root.AddCommand(promptCmd())
	root.AddCommand(projectCmd())
	root.AddCommand(outlineCmd())
	root.AddCommand(catalogCmd())
	root.AddCommand(sceneCmd())
	root.AddCommand(storageCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
