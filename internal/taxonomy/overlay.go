package taxonomy

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	tharerrors "github.com/standardbeagle/thar/internal/errors"
)

// OverlayEntry is one extra known surname supplied by the user.
type OverlayEntry struct {
	Name       string `toml:"name"`
	Devanagari string `toml:"devanagari"`
	SubID      int    `toml:"sub_id"`
}

type overlayFile struct {
	Surname []OverlayEntry `toml:"surname"`
}

// LoadOverlay reads a TOML file of [[surname]] tables.
func LoadOverlay(path string) ([]OverlayEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tharerrors.NewInputError("read overlay", path, err)
	}
	return ParseOverlay(data)
}

// ParseOverlay decodes overlay entries from TOML.
func ParseOverlay(data []byte) ([]OverlayEntry, error) {
	var f overlayFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse overlay: %w", err)
	}
	return f.Surname, nil
}

// WithOverlay returns a new Taxonomy holding t's surnames plus entries.
// An entry whose key already exists replaces the built-in record. t itself is
// left unchanged. Every bad entry is reported, each as a TaxonomyError inside
// one MultiError.
func (t *Taxonomy) WithOverlay(entries []OverlayEntry) (*Taxonomy, error) {
	out := &Taxonomy{
		mains:    t.mains,
		subs:     t.subs,
		surnames: maps.Clone(t.surnames),
	}

	var errs []error
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if key == "" {
			errs = append(errs, tharerrors.NewTaxonomyError(e.Name, e.SubID, fmt.Errorf("empty surname")))
			continue
		}
		if e.Devanagari == "" {
			errs = append(errs, tharerrors.NewTaxonomyError(key, e.SubID, fmt.Errorf("missing devanagari form")))
			continue
		}
		rec, err := out.Record(e.Devanagari, e.SubID)
		if err != nil {
			errs = append(errs, tharerrors.NewTaxonomyError(key, e.SubID, err))
			continue
		}
		out.surnames[key] = rec
	}

	if err := tharerrors.NewMultiError(errs).ErrOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}
