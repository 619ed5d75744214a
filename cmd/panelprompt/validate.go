package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"panelprompt/internal/scene"
	"panelprompt/internal/validate"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [scene-file]",
		Short: "Check a scene and the dialog library for dangling references",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate,
	}
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	ws, err := openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.Close(ctx)

	snap, err := ws.lib.LoadSnapshot(ctx)
	if err != nil {
		return err
	}

	dialogs, err := ws.lib.Dialogs.All(ctx)
	if err != nil {
		return err
	}
	issues := validate.Dialogs(dialogs, snap).Issues

	if len(args) == 1 {
		form, err := scene.Load(args[0])
		if err != nil {
			return err
		}
		report := validate.Run(form.Active(), snap.WithCharacters(form.Characters))
		issues = append(report.Issues, issues...)
	}

	var errorIssues []validate.Issue
	var warnIssues []validate.Issue
	for _, issue := range issues {
		switch issue.Severity {
		case validate.SeverityError:
			errorIssues = append(errorIssues, issue)
		case validate.SeverityWarn:
			warnIssues = append(warnIssues, issue)
		}
	}

	if len(errorIssues) == 0 && len(warnIssues) == 0 {
		fmt.Fprintln(os.Stdout, "No issues found.")
		return nil
	}

	if len(errorIssues) > 0 {
		fmt.Fprintf(os.Stdout, "Errors (%d):\n", len(errorIssues))
		printIssues(os.Stdout, errorIssues)
	}
	if len(warnIssues) > 0 {
		if len(errorIssues) > 0 {
			fmt.Fprintln(os.Stdout, "")
		}
		fmt.Fprintf(os.Stdout, "Warnings (%d):\n", len(warnIssues))
		printIssues(os.Stdout, warnIssues)
	}

	if len(errorIssues) > 0 {
		return fmt.Errorf("validation found errors")
	}
	return nil
}

func printIssues(out io.Writer, issues []validate.Issue) {
	for _, issue := range issues {
		location := issue.Field
		if location == "" {
			location = issue.Entity
		}
		if location == "" {
			location = "scene"
		}
		fmt.Fprintf(out, "  - %s: %s (%s)\n", location, issue.Message, issue.Code)
	}
}
