package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/standardbeagle/thar/internal/debug"
	tharerrors "github.com/standardbeagle/thar/internal/errors"
	"github.com/standardbeagle/thar/internal/export"
)

// Validator validates configuration and sets smart defaults
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates configuration and applies smart defaults
// Returns an error if validation fails
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	v.checkCluster(&cfg.Cluster)

	if err := v.validateInputConfig(&cfg.Input); err != nil {
		return tharerrors.NewConfigError("input", "", err)
	}

	if err := v.validateExportConfig(&cfg.Export); err != nil {
		return tharerrors.NewConfigError("export", cfg.Export.Format, err)
	}

	if cfg.Watch.DebounceMs < 0 {
		return tharerrors.NewConfigError("watch.debounce_ms", fmt.Sprint(cfg.Watch.DebounceMs),
			errors.New("debounce cannot be negative"))
	}

	v.setSmartDefaults(cfg)
	return nil
}

// Thresholds outside 0..100 are legal: below 0 everything merges, above 100
// nothing does.
func (v *Validator) checkCluster(c *Cluster) {
	if c.Threshold < 0 || c.Threshold > 100 {
		debug.Log("CONFIG", "threshold %.1f is outside 0..100\n", c.Threshold)
	}
}

func (v *Validator) validateInputConfig(in *Input) error {
	if strings.TrimSpace(in.Column) == "" {
		return errors.New("csv column cannot be empty")
	}
	if strings.TrimSpace(in.SQLiteQuery) == "" {
		return errors.New("sqlite query cannot be empty")
	}
	return nil
}

func (v *Validator) validateExportConfig(exp *Export) error {
	_, err := export.ParseFormat(exp.Format)
	return err
}

func (v *Validator) setSmartDefaults(cfg *Config) {
	if format, err := export.ParseFormat(cfg.Export.Format); err == nil {
		cfg.Export.Format = string(format)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
}

// ValidateConfig is a convenience function for quick validation
func ValidateConfig(cfg *Config) error {
	validator := NewValidator()
	return validator.ValidateAndSetDefaults(cfg)
}
