package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"panelprompt/internal/kv"
)

func storageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Back up or restore every stored key",
	}

	var out string
	dump := &cobra.Command{
		Use:   "dump",
		Short: "Export all keys as one JSON object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ws, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer ws.Close(ctx)

			data, err := kv.Dump(ctx, ws.store)
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(os.Stdout, string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			return nil
		},
	}
	dump.Flags().StringVarP(&out, "out", "o", "", "Write the dump to a file instead of stdout")
	cmd.AddCommand(dump)

	cmd.AddCommand(&cobra.Command{
		Use:   "restore <file>",
		Short: "Load keys from a dump, overwriting existing values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			ws, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer ws.Close(ctx)

			n, err := kv.Restore(ctx, ws.store, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Restored %d keys.\n", n)
			return nil
		},
	})
	return cmd
}
