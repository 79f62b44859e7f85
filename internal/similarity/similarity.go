// Package similarity scores how alike two normalized surname keys are on a
// 0-100 scale.
package similarity

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Discounts applied to the partial and token-sort metrics before blending.
const (
	PartialWeight   = 0.95
	TokenSortWeight = 0.9
)

// Breakdown holds the individual metrics behind a blended score.
type Breakdown struct {
	Ratio     int     `json:"ratio"`
	Partial   int     `json:"partial_ratio"`
	TokenSort int     `json:"token_sort_ratio"`
	Score     float64 `json:"score"`
}

// Score blends the three metrics: max(ratio, partial*0.95, tokenSort*0.9).
func Score(a, b string) float64 {
	return Compare(a, b).Score
}

// Compare returns every metric along with the blended score.
func Compare(a, b string) Breakdown {
	r := Ratio(a, b)
	p := PartialRatio(a, b)
	ts := TokenSortRatio(a, b)
	return Breakdown{
		Ratio:     r,
		Partial:   p,
		TokenSort: ts,
		Score:     math.Max(float64(r), math.Max(float64(p)*PartialWeight, float64(ts)*TokenSortWeight)),
	}
}

// Ratio is the global alignment similarity: 100 * (lensum - indel) / lensum,
// where indel counts insertions and deletions only. Equivalently
// 200 * LCS / lensum. An empty input on either side scores 0.
func Ratio(a, b string) int {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0
	}
	if a == b {
		return 100
	}
	lcs := edlib.LCS(a, b)
	return round(200 * float64(lcs) / float64(la+lb))
}

// PartialRatio is the best Ratio of the shorter string against every window of
// the longer string with the same length.
func PartialRatio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == len(rb) {
		return Ratio(a, b)
	}

	short := string(ra)
	best := 0
	for i := 0; i+len(ra) <= len(rb); i++ {
		r := Ratio(short, string(rb[i:i+len(ra)]))
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// TokenSortRatio sorts the whitespace-separated tokens of each string before
// taking the Ratio. A single-token input scores the same as Ratio.
func TokenSortRatio(a, b string) int {
	return Ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// round rounds half away from zero; scores are never negative.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
