// Package normalize folds Latin surname spellings to a comparison key.
package normalize

import "strings"

// foldings run once each, in this order. The output is not re-folded, so a
// digraph created by an earlier rewrite survives.
var foldings = []struct{ from, to string }{
	{"aa", "a"},
	{"ee", "i"},
	{"oo", "u"},
	{"th", "t"},
	{"bh", "b"},
	{"dh", "d"},
	{"gh", "g"},
	{"kh", "k"},
	{"ph", "p"},
	{"chh", "ch"},
	{"shh", "sh"},
}

// Key lowercases s, drops everything outside a-z and applies the spelling
// foldings. The result is only used for comparison and is never displayed.
func Key(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	key := b.String()
	for _, f := range foldings {
		key = strings.ReplaceAll(key, f.from, f.to)
	}
	return key
}
