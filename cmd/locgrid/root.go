package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"locgrid/internal/config"
	"locgrid/internal/location"
	"locgrid/internal/logging"
	"locgrid/internal/trace"
	"locgrid/internal/ui"
)

// rootOptions holds the persistent flags. Non-empty values override the
// loaded configuration.
type rootOptions struct {
	configFile string
	locations  string
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "locgrid",
		Short: "Browse locations in a keyboard-navigable grid",
		Long: `locgrid shows locations as rows of cells: name, coordinates and tags.
Arrow keys move between cells, home/end jump to the first or last cell of
a row, and "/" filters the rows by name or tag.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. a bad config file)
		SilenceUsage: true,
		Version:      version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), opts)
		},
	}
	root.SetVersionTemplate(`{{printf "locgrid version %s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (YAML or TOML), layered over ~/.config/locgrid and ./.locgrid")
	flags.StringVar(&opts.locations, "locations", "", "locations YAML file (default ~/.locgrid/locations.yaml, else built-in demo)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file (default: discard)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newBrowseCmd(opts))
	root.AddCommand(newKeysCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the location grid (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), opts)
		},
	}
}

// loadConfig loads the layered configuration and applies flag overrides.
func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return config.Config{}, err
	}
	if opts.locations != "" {
		cfg.Locations = opts.locations
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

// prepare resolves everything the program needs before the terminal is
// taken over, so configuration errors print normally.
func prepare(opts *rootOptions) (config.Config, ui.Options, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return config.Config{}, ui.Options{}, err
	}
	gc, err := cfg.GridConfig()
	if err != nil {
		return config.Config{}, ui.Options{}, fmt.Errorf("grid config: %w", err)
	}
	store, err := location.NewStore()
	if err != nil {
		return config.Config{}, ui.Options{}, fmt.Errorf("location store: %w", err)
	}
	locs, err := store.Load(cfg.Locations)
	if err != nil {
		return config.Config{}, ui.Options{}, err
	}
	return cfg, ui.Options{Locations: locs, Grid: gc}, nil
}

func runBrowse(ctx context.Context, opts *rootOptions) error {
	cfg, uiOpts, err := prepare(opts)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	closer, err := logging.InitFile(level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	tp, err := trace.NewProvider(ctx, cfg.Trace.ServiceName)
	if err != nil {
		logging.Warn("main", "tracing disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logging.Warn("main", "trace shutdown: %v", err)
		}
	}()
	uiOpts.Tracer = tp.Tracer()

	model, err := ui.NewAppModel(uiOpts)
	if err != nil {
		return err
	}
	logging.Info("main", "browsing %d locations", len(uiOpts.Locations))

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
