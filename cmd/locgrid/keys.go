package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"locgrid/internal/grid"
	"locgrid/internal/ui"
)

func newKeysCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the effective grid key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			gc, err := cfg.GridConfig()
			if err != nil {
				return fmt.Errorf("grid config: %w", err)
			}
			return printKeys(cmd.OutOrStdout(), gc)
		},
	}
}

// printKeys writes one line per bound key: the key, its group and what it does.
func printKeys(w io.Writer, cfg grid.Config) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tGROUP\tACTION")
	groups := []struct {
		name string
		m    map[string]int
	}{
		{"column", cfg.ColumnDirections},
		{"row", cfg.RowDirections},
		{"boundary", cfg.Boundaries},
	}
	bindings := ui.GridBindings(cfg)
	for _, b := range bindings {
		for _, g := range groups {
			for _, k := range b.Keys() {
				v, ok := g.m[k]
				if !ok {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", k, g.name, describe(g.name, v))
			}
		}
	}
	fmt.Fprintf(tw, "initial\tcursor\trow %d, column %d\n", cfg.Initial.Row, cfg.Initial.Column)
	return tw.Flush()
}

func describe(group string, v int) string {
	if group == "boundary" {
		if v < 0 {
			return "first"
		}
		return "last"
	}
	return fmt.Sprintf("%+d", v)
}
