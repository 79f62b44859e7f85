package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tharerrors "github.com/standardbeagle/thar/internal/errors"
	"github.com/standardbeagle/thar/internal/ingest"
)

func TestParseKDL_Defaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 85.0, cfg.Cluster.Threshold)
	assert.Equal(t, "surname", cfg.Input.Column)
	assert.True(t, cfg.Input.FoldDiacritics)
	assert.False(t, cfg.Input.LastToken)
	assert.Equal(t, ingest.DefaultSQLiteQuery, cfg.Input.SQLiteQuery)
	assert.Equal(t, "csv", cfg.Export.Format)
	assert.Equal(t, "", cfg.Export.Output)
	assert.Equal(t, 300, cfg.Watch.DebounceMs)
	assert.False(t, cfg.Logging.Debug)
}

func TestParseKDL_AllSections(t *testing.T) {
	kdlContent := `
cluster {
    threshold 80.5
}
input {
    column "last_name"
    last_token true
    fold_diacritics false
    sqlite_query "SELECT surname FROM voters"
}
export {
    format "json"
    output "clusters.json"
}
taxonomy {
    overlay "extra.toml"
}
watch {
    debounce_ms 50
}
logging {
    debug true
    file true
}
`
	cfg, err := Parse(kdlContent)
	require.NoError(t, err)

	assert.Equal(t, 80.5, cfg.Cluster.Threshold)
	assert.Equal(t, "last_name", cfg.Input.Column)
	assert.True(t, cfg.Input.LastToken)
	assert.False(t, cfg.Input.FoldDiacritics)
	assert.Equal(t, "SELECT surname FROM voters", cfg.Input.SQLiteQuery)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.Equal(t, "clusters.json", cfg.Export.Output)
	assert.Equal(t, "extra.toml", cfg.Taxonomy.Overlay)
	assert.Equal(t, 50, cfg.Watch.DebounceMs)
	assert.True(t, cfg.Logging.Debug)
	assert.True(t, cfg.Logging.File)
}

func TestParseKDL_IntegerThreshold(t *testing.T) {
	cfg, err := Parse("cluster {\n    threshold 90\n}\n")
	require.NoError(t, err)
	assert.Equal(t, 90.0, cfg.Cluster.Threshold)
}

func TestParseKDL_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse("input {\n    last_token true\n}\nunknown_section {\n    x 1\n}\n")
	require.NoError(t, err)
	assert.True(t, cfg.Input.LastToken)
	assert.Equal(t, "surname", cfg.Input.Column)
	assert.Equal(t, 85.0, cfg.Cluster.Threshold)
}

func TestParseKDL_WrongTypeIgnored(t *testing.T) {
	cfg, err := Parse("cluster {\n    threshold \"high\"\n}\n")
	require.NoError(t, err)
	assert.Equal(t, 85.0, cfg.Cluster.Threshold)
}

func TestParseKDL_Invalid(t *testing.T) {
	_, err := Parse("cluster {\n    threshold 80\n")
	assert.Error(t, err)
}

func TestToKDLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Cluster.Threshold = 77.5
	cfg.Input.Column = "थर"
	cfg.Export.Format = "text"
	cfg.Taxonomy.Overlay = "extra.toml"
	cfg.Logging.Debug = true

	parsed, err := Parse(ToKDL(cfg))
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.kdl")
	require.NoError(t, os.WriteFile(path, []byte(`
cluster {
    threshold 70
}
export {
    format "JSON"
}
taxonomy {
    overlay "extra.toml"
}
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 70.0, cfg.Cluster.Threshold)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.Equal(t, filepath.Join(dir, "extra.toml"), cfg.Taxonomy.Overlay)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.kdl"))
	var cfgErr *tharerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
}

func TestLoadWithRootWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadWithRoot(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Path)
	assert.Equal(t, 85.0, cfg.Cluster.Threshold)
}

func TestLoadWithRootLayersProjectOverGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, FileName),
		[]byte("cluster {\n    threshold 60\n}\nwatch {\n    debounce_ms 10\n}\n"), 0644))

	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, FileName),
		[]byte("cluster {\n    threshold 90\n}\n"), 0644))

	cfg, err := LoadWithRoot(project)
	require.NoError(t, err)
	assert.Equal(t, 90.0, cfg.Cluster.Threshold)
	assert.Equal(t, 10, cfg.Watch.DebounceMs)
	assert.Equal(t, filepath.Join(project, FileName), cfg.Path)
}

func TestIngestOptions(t *testing.T) {
	cfg := Default()
	cfg.Input.LastToken = true
	opts := cfg.IngestOptions()
	assert.Equal(t, ingest.Options{
		Column:         "surname",
		LastToken:      true,
		FoldDiacritics: true,
		SQLiteQuery:    ingest.DefaultSQLiteQuery,
	}, opts)
}
