package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"panelprompt/internal/prompt"
	"panelprompt/internal/scene"
)

func promptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Build prompts and manage the saved prompt history",
	}
	cmd.AddCommand(promptBuildCmd())
	cmd.AddCommand(promptHistoryCmd())
	cmd.AddCommand(promptClearHistoryCmd())
	return cmd
}

func promptBuildCmd() *cobra.Command {
	var save bool
	var out string
	cmd := &cobra.Command{
		Use:   "build <scene-file>",
		Short: "Assemble the prompt for a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPromptBuild(args[0], save, out)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "Append the prompt to the saved history")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the prompt to a file instead of stdout")
	return cmd
}

func runPromptBuild(path string, save bool, out string) error {
	ctx := context.Background()

	form, err := scene.Load(path)
	if err != nil {
		return err
	}

	ws, err := openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.Close(ctx)

	snap, err := ws.lib.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to build prompt: %w", err)
	}
	text := prompt.BuildForm(form, snap)

	if save {
		if _, err := ws.project.SavePrompt(ctx, text); err != nil {
			return err
		}
	}

	if out == "" {
		fmt.Fprintln(os.Stdout, text)
		return nil
	}
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(os.Stdout, "Prompt written to %s\n", out)
	return nil
}

func promptHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print the saved prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ws, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer ws.Close(ctx)

			saved, err := ws.project.SavedPrompts(ctx)
			if err != nil {
				return err
			}
			if len(saved) == 0 {
				fmt.Fprintln(os.Stdout, "No saved prompts.")
				return nil
			}
			for i, p := range saved {
				if i > 0 {
					fmt.Fprintln(os.Stdout, "")
				}
				fmt.Fprintf(os.Stdout, "#%d  %s\n%s\n", i+1, p.Date, p.Prompt)
			}
			return nil
		},
	}
}

func promptClearHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-history",
		Short: "Delete every saved prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ws, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer ws.Close(ctx)

			if err := ws.project.ClearSavedPrompts(ctx); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "Saved prompts cleared.")
			return nil
		},
	}
}
