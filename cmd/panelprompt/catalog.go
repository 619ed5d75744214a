package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"panelprompt/internal/catalog"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the option catalogs of the scene form",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list [name]",
		Short: "List catalog names, or the options of one catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, c := range catalog.All() {
					fmt.Fprintf(os.Stdout, "%s (%d)\n", c.Name, len(c.Options))
				}
				return nil
			}
			c, err := catalog.ByName(args[0])
			if err != nil {
				return err
			}
			for _, o := range c.Options {
				fmt.Fprintf(os.Stdout, "%s\t%s\n", o.Value, o.Label)
			}
			return nil
		},
	})
	return cmd
}
