package config

import (
	"locgrid/internal/grid"
)

// Config is the full locgrid configuration.
type Config struct {
	Grid      GridSettings  `yaml:"grid" toml:"grid"`
	Keys      KeySettings   `yaml:"keys" toml:"keys"`
	Locations string        `yaml:"locations" toml:"locations" env:"LOCGRID_LOCATIONS"`
	Log       LogSettings   `yaml:"log" toml:"log"`
	Trace     TraceSettings `yaml:"trace" toml:"trace"`
}

// GridSettings configures the focus controller.
type GridSettings struct {
	Initial CursorSettings `yaml:"initial" toml:"initial"`
}

// CursorSettings is the initial cursor position.
type CursorSettings struct {
	Row    int `yaml:"row" toml:"row" env:"LOCGRID_INITIAL_ROW"`
	Column int `yaml:"column" toml:"column" env:"LOCGRID_INITIAL_COLUMN"`
}

// KeySettings maps Bubble Tea key names to signed steps or boundary intents.
// Entries in files are merged into the defaults.
type KeySettings struct {
	Columns    map[string]int `yaml:"columns" toml:"columns"`
	Rows       map[string]int `yaml:"rows" toml:"rows"`
	Boundaries map[string]int `yaml:"boundaries" toml:"boundaries"`
}

// LogSettings configures internal/logging.
type LogSettings struct {
	Level string `yaml:"level" toml:"level" env:"LOCGRID_LOG_LEVEL"`
	File  string `yaml:"file" toml:"file" env:"LOCGRID_LOG_FILE"`
}

// TraceSettings configures internal/trace.
type TraceSettings struct {
	ServiceName string `yaml:"service_name" toml:"service_name" env:"OTEL_SERVICE_NAME"`
}

// GridConfig converts the settings into a validated grid.Config.
func (c Config) GridConfig() (grid.Config, error) {
	gc := grid.Config{
		Initial: grid.Cursor{
			Row:    c.Grid.Initial.Row,
			Column: c.Grid.Initial.Column,
		},
		ColumnDirections: copyMap(c.Keys.Columns),
		RowDirections:    copyMap(c.Keys.Rows),
		Boundaries:       copyMap(c.Keys.Boundaries),
	}
	if err := gc.Validate(); err != nil {
		return grid.Config{}, err
	}
	return gc, nil
}

func copyMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
