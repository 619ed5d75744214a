package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"panelprompt/internal/ingest"
)

var importFull bool

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import markdown asset files into the library",
		RunE:  runImport,
	}
	cmd.Flags().BoolVar(&importFull, "full", false, "Re-import every file (ignore incremental hashes)")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	ws, err := openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.Close(ctx)

	result, err := ingest.Run(ctx, ws.cfg, ws.lib, ws.store, ingest.Options{Full: importFull})
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Import complete.")
	fmt.Fprintf(os.Stdout, "  Created:       %d\n", result.Created)
	fmt.Fprintf(os.Stdout, "  Updated:       %d\n", result.Updated)
	fmt.Fprintf(os.Stdout, "  Files skipped: %d\n", result.FilesSkipped)

	if len(result.Errors) > 0 {
		fmt.Fprintf(os.Stdout, "\nErrors (%d):\n", len(result.Errors))
		for _, item := range result.Errors {
			fmt.Fprintf(os.Stdout, "  - %v\n", item)
		}
		return fmt.Errorf("import completed with errors")
	}

	return nil
}
