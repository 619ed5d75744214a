package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Show or edit the project info",
	}
	cmd.AddCommand(projectInfoCmd())
	cmd.AddCommand(projectClearCmd())
	return cmd
}

func projectInfoCmd() *cobra.Command {
	var name, description, creator string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the project info, updating any field given as a flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ws, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer ws.Close(ctx)

			info, err := ws.project.Info(ctx)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("name") || flags.Changed("description") || flags.Changed("creator") {
				if flags.Changed("name") {
					info.Name = name
				}
				if flags.Changed("description") {
					info.Description = description
				}
				if flags.Changed("creator") {
					info.Creator = creator
				}
				if err := ws.project.SetInfo(ctx, info); err != nil {
					return err
				}
			}

			if info.Empty() {
				fmt.Fprintln(os.Stdout, "No project info set.")
				return nil
			}
			fmt.Fprintf(os.Stdout, "Name: %s\n", info.Name)
			fmt.Fprintf(os.Stdout, "Description: %s\n", info.Description)
			fmt.Fprintf(os.Stdout, "Creator: %s\n", info.Creator)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&creator, "creator", "", "Project creator")
	return cmd
}

func projectClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the project info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ws, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer ws.Close(ctx)

			if err := ws.project.ClearInfo(ctx); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "Project info cleared.")
			return nil
		},
	}
}

func outlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Manage the story outline",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOutline(func(ctx context.Context, ws *workspace) ([]string, error) {
				return ws.project.Outline(ctx)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Append an outline entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOutline(func(ctx context.Context, ws *workspace) ([]string, error) {
				return ws.project.AddOutline(ctx, args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "edit <number> <text>",
		Short: "Replace an outline entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := outlineIndex(args[0])
			if err != nil {
				return err
			}
			return withOutline(func(ctx context.Context, ws *workspace) ([]string, error) {
				return ws.project.EditOutline(ctx, idx, args[1])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <number>",
		Short: "Remove an outline entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := outlineIndex(args[0])
			if err != nil {
				return err
			}
			return withOutline(func(ctx context.Context, ws *workspace) ([]string, error) {
				return ws.project.RemoveOutline(ctx, idx)
			})
		},
	})
	return cmd
}

// Outline entries are numbered from 1 on the command line.
func outlineIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid outline number %q", arg)
	}
	return n - 1, nil
}

func withOutline(fn func(ctx context.Context, ws *workspace) ([]string, error)) error {
	ctx := context.Background()

	ws, err := openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.Close(ctx)

	outline, err := fn(ctx, ws)
	if err != nil {
		return err
	}
	if len(outline) == 0 {
		fmt.Fprintln(os.Stdout, "Outline is empty.")
		return nil
	}
	for i, entry := range outline {
		fmt.Fprintf(os.Stdout, "%d. %s\n", i+1, entry)
	}
	return nil
}
