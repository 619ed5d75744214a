package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"panelprompt/internal/config"
)

func initCmd() *cobra.Command {
	var projectName string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new panelprompt project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(projectName)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	return cmd
}

func runInit(projectName string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}
	if err := os.WriteFile(configPath, []byte(config.Default(projectName)), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}
	if err := os.MkdirAll("assets", 0o755); err != nil {
		return fmt.Errorf("creating assets directory: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Created %s\n", configPath)
	return nil
}
