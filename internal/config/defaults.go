package config

import "locgrid/internal/grid"

// Default returns the built-in configuration: arrow keys, home/end and a
// cursor at the first cell.
func Default() Config {
	gc := grid.DefaultConfig()
	return Config{
		Keys: KeySettings{
			Columns:    gc.ColumnDirections,
			Rows:       gc.RowDirections,
			Boundaries: gc.Boundaries,
		},
		Log: LogSettings{Level: "info"},
	}
}
