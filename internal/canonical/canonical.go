// Package canonical picks the best-formed spelling out of a group of variants.
package canonical

import (
	"strings"
	"unicode/utf8"

	"github.com/standardbeagle/thar/internal/taxonomy"
)

// Scoring weights.
const (
	noTripleBonus  = 2.0
	lengthBonus    = 2.0
	knownBonus     = 10.0
	lettersBonus   = 1.0
	perRuneBonus   = 0.1
	minGoodLength  = 4
	maxGoodLength  = 10
	maxRepeatedRun = 2
)

// Selector scores variants against a taxonomy's known surnames.
type Selector struct {
	tax *taxonomy.Taxonomy
}

// New returns a Selector backed by tax. A nil tax uses the default taxonomy.
func New(tax *taxonomy.Taxonomy) *Selector {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Selector{tax: tax}
}

// Score rates a single variant. Higher is better.
func (s *Selector) Score(variant string) float64 {
	n := utf8.RuneCountInString(variant)
	score := 0.0
	if longestRun(strings.ToLower(variant)) <= maxRepeatedRun {
		score += noTripleBonus
	}
	if n >= minGoodLength && n <= maxGoodLength {
		score += lengthBonus
	}
	if s.tax.Known(strings.ToLower(variant)) {
		score += knownBonus
	}
	if onlyLatinLetters(variant) {
		score += lettersBonus
	}
	score += perRuneBonus * float64(n)
	return score
}

// Find returns the highest scoring variant, capitalized. Ties go to the
// earliest variant. An empty slice yields "".
func (s *Selector) Find(variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	best, bestScore := variants[0], s.Score(variants[0])
	for _, v := range variants[1:] {
		if sc := s.Score(v); sc > bestScore {
			best, bestScore = v, sc
		}
	}
	return Capitalize(best)
}

// Find picks a canonical spelling using the default taxonomy.
func Find(variants []string) string {
	return New(nil).Find(variants)
}

// Capitalize upper-cases the first character and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return strings.ToUpper(string(r)) + strings.ToLower(s[size:])
}

// longestRun returns the length of the longest run of one repeated rune.
func longestRun(s string) int {
	longest, run := 0, 0
	var prev rune = -1
	for _, r := range s {
		if r == prev {
			run++
		} else {
			run = 1
			prev = r
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func onlyLatinLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
