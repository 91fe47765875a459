package location

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	// DataDirEnv is the env var override for the ~/.locgrid base (for testing).
	DataDirEnv = "LOCGRID_DATA_DIR"
	// DefaultDataBase is the default base directory under the user's home.
	DefaultDataBase = ".locgrid"
	// DefaultFile is the fixture file read when no path is given.
	DefaultFile = "locations.yaml"
)

// Store reads location fixtures.
// Layout: ~/.locgrid/locations.yaml
type Store struct {
	baseDir string
}

type fixture struct {
	Locations []Location `yaml:"locations"`
}

// NewStore creates a store rooted at the user's home + DefaultDataBase,
// or at the path in LOCGRID_DATA_DIR if set.
func NewStore() (*Store, error) {
	base := os.Getenv(DataDirEnv)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, DefaultDataBase)
	}
	return &Store{baseDir: base}, nil
}

// NewStoreAt creates a store rooted at dir.
func NewStoreAt(dir string) *Store {
	return &Store{baseDir: dir}
}

// Path resolves a fixture path. Empty means the default file; relative
// paths are taken as given (relative to the working directory).
func (s *Store) Path(path string) string {
	if path == "" {
		return filepath.Join(s.baseDir, DefaultFile)
	}
	return path
}

// Load reads locations from path (see Path). A missing default file yields
// the demo set; a missing explicit file is an error. Locations without an
// ID get a random one.
func (s *Store) Load(path string) ([]Location, error) {
	resolved := s.Path(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		if path == "" && errors.Is(err, os.ErrNotExist) {
			return Demo(), nil
		}
		return nil, fmt.Errorf("read locations %s: %w", resolved, err)
	}
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse locations %s: %w", resolved, err)
	}
	for i := range f.Locations {
		if f.Locations[i].Name == "" {
			return nil, fmt.Errorf("parse locations %s: entry %d has no name", resolved, i)
		}
		if f.Locations[i].ID == "" {
			f.Locations[i].ID = uuid.NewString()
		}
	}
	return f.Locations, nil
}
