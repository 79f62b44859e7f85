// Package cluster groups raw surname spellings into canonical clusters and
// classifies each cluster against the taxonomy.
//
// Grouping is a single greedy pass over the sorted, de-duplicated input. Each
// unassigned string seeds a cluster and absorbs every later unassigned string
// whose normalized key scores at or above the threshold against the seed's
// key. Members are never compared with each other, so membership is not
// transitive and depends on the sort order.
//
// Lengths are counted in runes and the sort compares bytes, so inputs outside
// the Basic Multilingual Plane or in mixed scripts may filter and order
// differently than a UTF-16 based implementation would.
package cluster

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/standardbeagle/thar/internal/canonical"
	"github.com/standardbeagle/thar/internal/debug"
	"github.com/standardbeagle/thar/internal/guess"
	"github.com/standardbeagle/thar/internal/normalize"
	"github.com/standardbeagle/thar/internal/similarity"
	"github.com/standardbeagle/thar/internal/taxonomy"
)

// DefaultThreshold is the similarity (0-100) a candidate needs to join a seed.
const DefaultThreshold = 85.0

// Confidence says where a cluster's classification came from.
type Confidence string

const (
	// High means the canonical form was found in the taxonomy.
	High Confidence = "high"
	// Medium means a category rule matched the canonical form.
	Medium Confidence = "medium"
	// Low means nothing matched and the record is a pure guess.
	Low Confidence = "low"
)

// Provenance notes.
const (
	NoteMatched   = "Matched from database"
	NoteGenerated = "Auto-generated, needs verification"
)

// Cluster is one group of spellings believed to be the same surname.
type Cluster struct {
	ID               int        `json:"cluster_id"`
	CanonicalEnglish string     `json:"canonical_english"`
	Devanagari       string     `json:"devanagari"`
	MainID           int        `json:"main_id"`
	MainName         string     `json:"main_name_np"`
	SubID            int        `json:"sub_id"`
	SubName          string     `json:"sub_name_np"`
	Variations       []string   `json:"all_variations"`
	Confidence       Confidence `json:"confidence"`
	Notes            string     `json:"notes"`
}

// Engine clusters and classifies surnames against one taxonomy.
type Engine struct {
	tax      *taxonomy.Taxonomy
	selector *canonical.Selector
	guesser  *guess.Guesser
}

// NewEngine returns an Engine. A nil tax uses the default taxonomy.
func NewEngine(tax *taxonomy.Taxonomy) *Engine {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Engine{
		tax:      tax,
		selector: canonical.New(tax),
		guesser:  guess.New(tax),
	}
}

// Taxonomy returns the taxonomy the engine classifies against.
func (e *Engine) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}

// Cluster groups raw and classifies every group. Clusters come back in
// discovery order with IDs starting at 1.
func (e *Engine) Cluster(raw []string, threshold float64) []Cluster {
	prepared := Prepare(raw)
	groups := Group(prepared, threshold)

	clusters := make([]Cluster, 0, len(groups))
	for i, variations := range groups {
		clusters = append(clusters, e.Classify(i+1, variations))
	}
	sort.SliceStable(clusters, func(i, j int) bool { return clusters[i].ID < clusters[j].ID })

	debug.LogCluster("%d surnames -> %d unique -> %d clusters (threshold %.1f)\n",
		len(raw), len(prepared), len(clusters), threshold)
	return clusters
}

// Prepare drops strings shorter than two characters, upper-cases the rest,
// removes duplicates and sorts the result.
func Prepare(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if utf8.RuneCountInString(s) <= 1 {
			continue
		}
		up := strings.ToUpper(s)
		if _, dup := seen[up]; dup {
			continue
		}
		seen[up] = struct{}{}
		out = append(out, up)
	}
	sort.Strings(out)
	return out
}

// Group runs the greedy pass over already prepared strings. Each group starts
// with its seed, followed by its matches in input order.
func Group(prepared []string, threshold float64) [][]string {
	keys := make([]string, len(prepared))
	for i, s := range prepared {
		keys[i] = normalize.Key(s)
	}

	assigned := make([]bool, len(prepared))
	var groups [][]string
	for i, seed := range prepared {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		group := []string{seed}
		for j := i + 1; j < len(prepared); j++ {
			if assigned[j] {
				continue
			}
			if similarity.Score(keys[i], keys[j]) >= threshold {
				group = append(group, prepared[j])
				assigned[j] = true
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// Classify picks the canonical spelling of variations and fills in the
// classification, from the taxonomy when possible and the guesser otherwise.
func (e *Engine) Classify(id int, variations []string) Cluster {
	c := Cluster{
		ID:               id,
		CanonicalEnglish: e.selector.Find(variations),
		Variations:       variations,
	}

	if rec, ok := e.tax.FindSurnameInfo(c.CanonicalEnglish); ok {
		c.Devanagari = rec.Devanagari
		c.MainID, c.MainName = rec.MainID, rec.MainName
		c.SubID, c.SubName = rec.SubID, rec.SubName
		c.Confidence = High
		c.Notes = NoteMatched
		return c
	}

	g := e.guesser.Guess(c.CanonicalEnglish)
	c.Devanagari = g.Devanagari
	c.MainID, c.MainName = g.MainID, g.MainName
	c.SubID, c.SubName = g.SubID, g.SubName
	c.Confidence = Low
	if g.Inferred {
		c.Confidence = Medium
	}
	c.Notes = NoteGenerated
	return c
}

// Surnames clusters raw against the default taxonomy.
func Surnames(raw []string, threshold float64) []Cluster {
	return NewEngine(nil).Cluster(raw, threshold)
}
