package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/standardbeagle/thar/internal/cluster"
	"github.com/standardbeagle/thar/internal/debug"
	tharerrors "github.com/standardbeagle/thar/internal/errors"
	"github.com/standardbeagle/thar/internal/ingest"
)

// FileName is the per-project configuration file.
const FileName = ".thar.kdl"

type Config struct {
	Version  int
	Path     string // file the project settings came from; empty when only defaults apply
	Cluster  Cluster
	Input    Input
	Export   Export
	Taxonomy Taxonomy
	Watch    Watch
	Logging  Logging
}

type Cluster struct {
	Threshold float64
}

type Input struct {
	Column         string // CSV header holding the surname
	LastToken      bool   // values are full names; keep the last token
	FoldDiacritics bool
	SQLiteQuery    string
}

type Export struct {
	Format string // csv, json, text or sqlite
	Output string // empty means stdout
}

type Taxonomy struct {
	Overlay string // TOML file of extra known surnames
}

type Watch struct {
	DebounceMs int
}

type Logging struct {
	Debug bool
	File  bool // write debug output to a file in the temp dir
}

// Default returns the built-in settings.
func Default() *Config {
	in := ingest.DefaultOptions()
	return &Config{
		Version: 1,
		Cluster: Cluster{Threshold: cluster.DefaultThreshold},
		Input: Input{
			Column:         in.Column,
			LastToken:      in.LastToken,
			FoldDiacritics: in.FoldDiacritics,
			SQLiteQuery:    in.SQLiteQuery,
		},
		Export: Export{Format: "csv"},
		Watch:  Watch{DebounceMs: 300},
	}
}

// IngestOptions converts the input section for the ingest package.
func (c *Config) IngestOptions() ingest.Options {
	return ingest.Options{
		Column:         c.Input.Column,
		LastToken:      c.Input.LastToken,
		FoldDiacritics: c.Input.FoldDiacritics,
		SQLiteQuery:    c.Input.SQLiteQuery,
	}
}

// Load reads the configuration. An explicit path must exist and is applied
// over the defaults. With an empty path, ~/.thar.kdl and then ./.thar.kdl
// are applied when present.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadWithRoot(".")
	}

	cfg := Default()
	if err := applyFile(cfg, path); err != nil {
		return nil, err
	}
	return validated(cfg)
}

// LoadWithRoot layers the global config from the home directory and the
// project config from rootDir over the defaults. Missing files are skipped.
func LoadWithRoot(rootDir string) (*Config, error) {
	cfg := Default()

	if homeDir, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(homeDir, FileName)
		if _, err := os.Stat(global); err == nil {
			if err := applyFile(cfg, global); err != nil {
				return nil, err
			}
		}
	}

	project := filepath.Join(rootDir, FileName)
	if _, err := os.Stat(project); err == nil {
		if err := applyFile(cfg, project); err != nil {
			return nil, err
		}
	} else {
		debug.Log("CONFIG", "no %s in %s, using defaults\n", FileName, rootDir)
	}

	return validated(cfg)
}

func applyFile(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return tharerrors.NewConfigError("file", path, err)
	}

	before := cfg.Taxonomy.Overlay
	if err := parseInto(cfg, string(content)); err != nil {
		return tharerrors.NewConfigError("file", path, err)
	}

	// overlay paths are relative to the file that names them
	if cfg.Taxonomy.Overlay != before && cfg.Taxonomy.Overlay != "" && !filepath.IsAbs(cfg.Taxonomy.Overlay) {
		cfg.Taxonomy.Overlay = filepath.Join(filepath.Dir(path), cfg.Taxonomy.Overlay)
	}

	cfg.Path = path
	debug.Log("CONFIG", "applied %s\n", path)
	return nil
}

func validated(cfg *Config) (*Config, error) {
	if err := NewValidator().ValidateAndSetDefaults(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
