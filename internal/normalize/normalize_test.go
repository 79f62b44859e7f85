package normalize

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sharma", "sharma"},
		{"SHARMAA", "sharma"},
		{"Thapa", "tapa"},
		{"Bhattarai", "battarai"},
		{"Ghimire", "gimire"},
		{"Khadka", "kadka"},
		{"Pokharel", "pokarel"},
		{"Dhakal", "dakal"},
		{"Gooroong", "gurung"},
		{"Tiwaree", "tiwari"},
		{"K.C.", "kc"},
		{"Thapa Magar", "tapamagar"},
		{"O'Neill-42", "oneill"},
		{"", ""},
		{"श्रेष्ठ", ""},
		{"Lamichhane", "lamichane"},
		{"Shhrestha", "shresta"},
	}

	for _, tt := range tests {
		if got := Key(tt.in); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKeyIsNotAFixedPoint(t *testing.T) {
	// "aaa" folds to "aa" in one pass; a second pass would fold further
	if got := Key("aaa"); got != "aa" {
		t.Errorf("Key(%q) = %q, want %q", "aaa", got, "aa")
	}
	if got := Key(Key("aaa")); got != "a" {
		t.Errorf("Key(Key(%q)) = %q, want %q", "aaa", got, "a")
	}
}

func TestKeyDeterministic(t *testing.T) {
	for _, s := range []string{"Bhandari", "Shrestha", "  rai  "} {
		if Key(s) != Key(s) {
			t.Errorf("Key(%q) not stable", s)
		}
	}
}
