package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/thar/internal/taxonomy"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		variants []string
		want     string
	}{
		{"known beats unknown", []string{"SHARME", "SHARMA"}, "Sharma"},
		{"known beats longer", []string{"SHARMAA", "SHARMA"}, "Sharma"},
		{"abbreviation is known", []string{"K.C.", "KC"}, "Kc"},
		{"longer wins among unknowns", []string{"BHATARI", "BHATTARI"}, "Bhattari"},
		{"triple run loses", []string{"SHAAAR", "SHAR"}, "Shar"},
		{"tie keeps first", []string{"ABCD", "WXYZ"}, "Abcd"},
		{"single", []string{"thapa"}, "Thapa"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Find(tt.variants))
		})
	}
}

func TestFindDeterministic(t *testing.T) {
	variants := []string{"GURUNG", "GURUNGG", "GURUN", "GURRUNG"}
	first := Find(variants)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Find(variants))
	}
	assert.Equal(t, "Gurung", first)
}

func TestScore(t *testing.T) {
	s := New(nil)

	// 2 (no triple) + 2 (length) + 10 (known) + 1 (letters) + 0.6
	assert.InDelta(t, 15.6, s.Score("SHARMA"), 1e-9)
	// 2 + 2 + 0 + 1 + 0.6
	assert.InDelta(t, 5.6, s.Score("SHARME"), 1e-9)
	// too long for the length bonus: 2 + 0 + 0 + 1 + 1.1
	assert.InDelta(t, 4.1, s.Score("ABCDEFGHIJK"), 1e-9)
	// space is not a letter, but the key is known: 2 + 0 + 10 + 0 + 1.1
	assert.InDelta(t, 13.1, s.Score("Thapa Magar"), 1e-9)
}

func TestScoreRepeatedRunIgnoresCase(t *testing.T) {
	s := New(nil)
	assert.InDelta(t, 3.4, s.Score("aaab"), 1e-9)
	assert.InDelta(t, s.Score("aaab"), s.Score("Aaab"), 1e-9)
	assert.InDelta(t, s.Score("aaab"), s.Score("AAAB"), 1e-9)
}

func TestSelectorUsesItsTaxonomy(t *testing.T) {
	tax, err := taxonomy.Default().WithOverlay([]taxonomy.OverlayEntry{
		{Name: "bhatari", Devanagari: "भटारी", SubID: 101},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bhatari", New(tax).Find([]string{"BHATTARII", "BHATARI"}))
	assert.Equal(t, "Bhattarii", New(nil).Find([]string{"BHATTARII", "BHATARI"}))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Sharma", Capitalize("sHARMA"))
	assert.Equal(t, "K", Capitalize("k"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Thapa magar", Capitalize("THAPA MAGAR"))
}
