// Package taxonomy holds the two-level caste/ethnicity category system and the
// curated table of known surnames classified against it.
//
// The built-in taxonomy is immutable and shared process-wide. Overlays produce
// a new Taxonomy and never touch the default one.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MainCategory is a top-level ethnic/social group.
type MainCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SubCategory is nested under exactly one main category (ID/100).
type SubCategory struct {
	ID     int    `json:"id"`
	MainID int    `json:"main_id"`
	Name   string `json:"name"`
}

// SurnameRecord is the full classification of a known surname.
type SurnameRecord struct {
	Devanagari string `json:"devanagari"`
	MainID     int    `json:"main_id"`
	MainName   string `json:"main_name"`
	SubID      int    `json:"sub_id"`
	SubName    string `json:"sub_name"`
}

// KnownSurname pairs a lowercase surname key with its record.
type KnownSurname struct {
	Key string `json:"key"`
	SurnameRecord
}

// Taxonomy is a read-only lookup structure. All methods are safe for
// concurrent use.
type Taxonomy struct {
	mains    map[int]string
	subs     map[int]string
	surnames map[string]SurnameRecord
}

var (
	defaultTaxonomy     *Taxonomy
	defaultTaxonomyOnce sync.Once
)

// Default returns the built-in taxonomy, built on first use.
func Default() *Taxonomy {
	defaultTaxonomyOnce.Do(func() {
		defaultTaxonomy = buildDefault()
	})
	return defaultTaxonomy
}

func buildDefault() *Taxonomy {
	t := &Taxonomy{
		mains:    make(map[int]string, len(mainCategoryNames)),
		subs:     make(map[int]string, len(subCategoryNames)),
		surnames: make(map[string]SurnameRecord, len(knownSurnames)),
	}
	for id, name := range mainCategoryNames {
		t.mains[id] = name
	}
	for id, name := range subCategoryNames {
		t.subs[id] = name
	}
	for key, e := range knownSurnames {
		rec, err := t.Record(e.devanagari, e.subID)
		if err != nil {
			// built-in data is covered by TestDefaultValidates
			panic(fmt.Sprintf("taxonomy: %s: %v", key, err))
		}
		t.surnames[key] = rec
	}
	return t
}

// MainIDOf returns the main category a sub-category id belongs to.
func MainIDOf(subID int) int {
	return subID / 100
}

// Record builds a SurnameRecord for the given sub-category, filling in the
// main category and both display names.
func (t *Taxonomy) Record(devanagari string, subID int) (SurnameRecord, error) {
	subName, ok := t.subs[subID]
	if !ok {
		return SurnameRecord{}, fmt.Errorf("unknown sub-category %d", subID)
	}
	mainID := MainIDOf(subID)
	mainName, ok := t.mains[mainID]
	if !ok {
		return SurnameRecord{}, fmt.Errorf("sub-category %d has no main category %d", subID, mainID)
	}
	return SurnameRecord{
		Devanagari: devanagari,
		MainID:     mainID,
		MainName:   mainName,
		SubID:      subID,
		SubName:    subName,
	}, nil
}

// MainName returns the display name of a main category.
func (t *Taxonomy) MainName(id int) (string, bool) {
	name, ok := t.mains[id]
	return name, ok
}

// SubName returns the display name of a sub-category.
func (t *Taxonomy) SubName(id int) (string, bool) {
	name, ok := t.subs[id]
	return name, ok
}

// Known reports whether key is an exact surname key. Keys are lowercase.
func (t *Taxonomy) Known(key string) bool {
	_, ok := t.surnames[key]
	return ok
}

// Lookup returns the record stored under an exact key.
func (t *Taxonomy) Lookup(key string) (SurnameRecord, bool) {
	rec, ok := t.surnames[key]
	return rec, ok
}

// FindSurnameInfo classifies a single surname. It tries the trimmed lowercase
// form first, then a fixed list of spelling rewrites, and returns the first hit.
func (t *Taxonomy) FindSurnameInfo(surname string) (SurnameRecord, bool) {
	key := strings.ToLower(strings.TrimSpace(surname))
	if rec, ok := t.Lookup(key); ok {
		return rec, true
	}
	for _, v := range spellingVariants(key) {
		if rec, ok := t.Lookup(v); ok {
			return rec, true
		}
	}
	return SurnameRecord{}, false
}

// spellingVariants lists the rewrites FindSurnameInfo tries, in order. Each
// rewrite is applied to the original key on its own.
func spellingVariants(key string) []string {
	return []string{
		replaceSuffix(key, "ee", "i"),
		replaceSuffix(key, "y", "i"),
		strings.ReplaceAll(key, "aa", "a"),
		strings.ReplaceAll(key, "ee", "i"),
		strings.ReplaceAll(key, "oo", "u"),
	}
}

func replaceSuffix(s, suffix, with string) string {
	if strings.HasSuffix(s, suffix) {
		return s[:len(s)-len(suffix)] + with
	}
	return s
}

// MainCategories returns every main category ordered by id.
func (t *Taxonomy) MainCategories() []MainCategory {
	out := make([]MainCategory, 0, len(t.mains))
	for id, name := range t.mains {
		out = append(out, MainCategory{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SubCategories returns every sub-category ordered by id.
func (t *Taxonomy) SubCategories() []SubCategory {
	out := make([]SubCategory, 0, len(t.subs))
	for id, name := range t.subs {
		out = append(out, SubCategory{ID: id, MainID: MainIDOf(id), Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Surnames returns every known surname ordered by key.
func (t *Taxonomy) Surnames() []KnownSurname {
	out := make([]KnownSurname, 0, len(t.surnames))
	for key, rec := range t.surnames {
		out = append(out, KnownSurname{Key: key, SurnameRecord: rec})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Len returns the number of known surnames.
func (t *Taxonomy) Len() int {
	return len(t.surnames)
}

// Validate checks the internal consistency of the taxonomy: every surname
// references existing categories, its sub-category sits under its main
// category, and the stored names match the category tables.
func (t *Taxonomy) Validate() error {
	for id := range t.subs {
		if _, ok := t.mains[MainIDOf(id)]; !ok {
			return fmt.Errorf("sub-category %d has no main category", id)
		}
	}
	for _, ks := range t.Surnames() {
		rec := ks.SurnameRecord
		if rec.Devanagari == "" {
			return fmt.Errorf("surname %q has no devanagari form", ks.Key)
		}
		subName, ok := t.subs[rec.SubID]
		if !ok {
			return fmt.Errorf("surname %q references unknown sub-category %d", ks.Key, rec.SubID)
		}
		mainName, ok := t.mains[rec.MainID]
		if !ok {
			return fmt.Errorf("surname %q references unknown main category %d", ks.Key, rec.MainID)
		}
		if MainIDOf(rec.SubID) != rec.MainID {
			return fmt.Errorf("surname %q: sub-category %d is not under main category %d", ks.Key, rec.SubID, rec.MainID)
		}
		if rec.SubName != subName || rec.MainName != mainName {
			return fmt.Errorf("surname %q: category names do not match the category tables", ks.Key)
		}
	}
	return nil
}

// FindSurnameInfo classifies a surname against the default taxonomy.
func FindSurnameInfo(surname string) (SurnameRecord, bool) {
	return Default().FindSurnameInfo(surname)
}
