package taxonomy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tharerrors "github.com/standardbeagle/thar/internal/errors"
)

const sampleOverlay = `
[[surname]]
name = "Kandel"
devanagari = "कँडेल"
sub_id = 101

[[surname]]
name = "magar"
devanagari = "मगर"
sub_id = 201
`

func TestParseOverlay(t *testing.T) {
	entries, err := ParseOverlay([]byte(sampleOverlay))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, OverlayEntry{Name: "Kandel", Devanagari: "कँडेल", SubID: 101}, entries[0])
}

func TestParseOverlayInvalid(t *testing.T) {
	_, err := ParseOverlay([]byte("[[surname]\nname = "))
	assert.Error(t, err)
}

func TestWithOverlay(t *testing.T) {
	base := Default()
	entries, err := ParseOverlay([]byte(sampleOverlay))
	require.NoError(t, err)

	tax, err := base.WithOverlay(entries)
	require.NoError(t, err)
	require.NoError(t, tax.Validate())

	rec, ok := tax.FindSurnameInfo("KANDEL")
	require.True(t, ok)
	assert.Equal(t, "कँडेल", rec.Devanagari)
	assert.Equal(t, 1, rec.MainID)
	assert.Equal(t, "ब्राह्मण (Bahun)", rec.SubName)
	assert.Equal(t, base.Len()+1, tax.Len())

	// the default taxonomy is untouched
	assert.False(t, base.Known("kandel"))
}

func TestWithOverlayUnknownSubID(t *testing.T) {
	_, err := Default().WithOverlay([]OverlayEntry{{Name: "Foo", Devanagari: "फू", SubID: 999}})
	require.Error(t, err)

	var taxErr *tharerrors.TaxonomyError
	require.True(t, errors.As(err, &taxErr))
	assert.Equal(t, "foo", taxErr.Key)
	assert.Equal(t, 999, taxErr.SubID)
}

func TestWithOverlayMissingFields(t *testing.T) {
	_, err := Default().WithOverlay([]OverlayEntry{{Name: " ", Devanagari: "फू", SubID: 101}})
	assert.Error(t, err)

	_, err = Default().WithOverlay([]OverlayEntry{{Name: "foo", SubID: 101}})
	assert.Error(t, err)
}

func TestWithOverlayReportsEveryBadEntry(t *testing.T) {
	_, err := Default().WithOverlay([]OverlayEntry{
		{Name: "Foo", Devanagari: "फू", SubID: 999},
		{Name: "Kandel", Devanagari: "कँडेल", SubID: 101},
		{Name: "bar", SubID: 101},
		{Name: " ", Devanagari: "बज", SubID: 101},
	})
	require.Error(t, err)

	var multi *tharerrors.MultiError
	require.True(t, errors.As(err, &multi))
	require.Len(t, multi.Errors, 3)

	var keys []string
	for _, e := range multi.Errors {
		var taxErr *tharerrors.TaxonomyError
		require.True(t, errors.As(e, &taxErr))
		keys = append(keys, taxErr.Key)
	}
	assert.Equal(t, []string{"foo", "bar", " "}, keys)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleOverlay), 0o644))

	entries, err := LoadOverlay(path)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = LoadOverlay(filepath.Join(t.TempDir(), "missing.toml"))
	var inErr *tharerrors.InputError
	assert.True(t, errors.As(err, &inErr))
}
