package guess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDevanagariWholeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Shrestha", "श्रेष्ठ"},
		{"Thapaliya", "थापा"},
		{"SHARMAJI", "शर्मा"},
		{"Kcthapa", "थापा"}, // thapa is listed before kc
		{"Bhattarai", "राई"}, // rai is listed before bhattarai
		{"Chhetri", "क्षेत्री"},
	}

	for _, tt := range tests {
		if got := Devanagari(tt.in); got != tt.want {
			t.Errorf("Devanagari(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDevanagariFallsBackToGlyphs(t *testing.T) {
	assert.Equal(t, "घाले", Devanagari("Ghale"))
	assert.Equal(t, "xयzzqq", Devanagari("Xyzzqq"))
}

func TestTransliterate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"kami", "कामि"},
		{"GHALE", "घाले"},
		{"...", "..."},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Transliterate(tt.in); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInferSubCategory(t *testing.T) {
	tests := []struct {
		in    string
		want  int
		found bool
	}{
		{"Sharmaji", 101, true},
		{"Ranamagar", 102, true}, // rana is tried before the magar rules
		{"Gurungg", 205, true},
		{"Kamiya", 401, true},
		{"Dasgupta", 301, true},
		{"Alina", 601, true},
		{"Bhandari", 0, false},
		{"Xyzzqq", 0, false},
	}

	for _, tt := range tests {
		got, ok := InferSubCategory(tt.in)
		assert.Equal(t, tt.found, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestGuess(t *testing.T) {
	g := New(nil)

	res := g.Guess("Sharmaji")
	assert.Equal(t, Result{
		Devanagari: "शर्मा",
		MainID:     1,
		MainName:   "खस-आर्य",
		SubID:      101,
		SubName:    "ब्राह्मण (Bahun)",
		Inferred:   true,
	}, res)

	res = g.Guess("Xyzzqq")
	assert.Equal(t, Result{
		Devanagari: "xयzzqq",
		MainID:     7,
		MainName:   "अन्य",
		SubID:      701,
		SubName:    "अन्य (Other)",
	}, res)
}
