// Package guess fills in best-effort classification for surnames the taxonomy
// does not know: an approximate Devanagari form and a category inferred from
// name fragments.
package guess

import (
	"regexp"
	"strings"

	"github.com/standardbeagle/thar/internal/taxonomy"
)

type categoryRule struct {
	pattern *regexp.Regexp
	subID   int
}

// categoryRules are tried in order; the first pattern found anywhere in the
// lowercased surname decides the sub-category.
var categoryRules = []categoryRule{
	{regexp.MustCompile(`acharya|aryal|bhattarai|dahal|dhakal|ghimire|koirala|lamichhane|neupane|pandey|paudel|pokharel|regmi|rijal|sharma|subedi|timalsina|tripathi|upadhyay`), 101},
	{regexp.MustCompile(`basnet|bista|bohara|budha|chhetri|chetri|dangi|gharti|karki|kc|khadka|khatri|kunwar|rana|rawat|rokaya|shah|shahi|thapa`), 102},
	{regexp.MustCompile(`magar|ale|pun|rana\s*magar|thapa\s*magar`), 201},
	{regexp.MustCompile(`tamang|lama|bomjan|ghalan|moktan|thing|waiba|yonjan`), 202},
	{regexp.MustCompile(`rai|bantawa|chamling|kulung|thulung`), 203},
	{regexp.MustCompile(`limbu|chemjong|subba|nembang|lingden`), 204},
	{regexp.MustCompile(`gurung|ghale|tamu`), 205},
	{regexp.MustCompile(`sherpa`), 206},
	{regexp.MustCompile(`shrestha|shakya|bajracharya|pradhan|manandhar|tuladhar|maharjan|sthapit|dangol|kansakar|chitrakar|tamrakar|amatya|rajbhandari|maskey`), 510},
	{regexp.MustCompile(`kami|bishwakarma|sunar|lohar|bk`), 401},
	{regexp.MustCompile(`damai|pariyar|darji`), 402},
	{regexp.MustCompile(`sarki|mijar`), 403},
	{regexp.MustCompile(`yadav|mahato|mandal|jha|sah|gupta|thakur|singh|chamar|paswan|das`), 301},
	{regexp.MustCompile(`khan|ansari|sheikh|siddiqui|miya|muslim|ahmad|ali`), 601},
}

// InferSubCategory returns the sub-category suggested by the first matching
// fragment rule.
func InferSubCategory(surname string) (int, bool) {
	lower := strings.ToLower(surname)
	for _, r := range categoryRules {
		if r.pattern.MatchString(lower) {
			return r.subID, true
		}
	}
	return 0, false
}

// Result is a guessed classification.
type Result struct {
	Devanagari string `json:"devanagari"`
	MainID     int    `json:"main_id"`
	MainName   string `json:"main_name"`
	SubID      int    `json:"sub_id"`
	SubName    string `json:"sub_name"`
	// Inferred is true when a category rule matched.
	Inferred bool `json:"inferred"`
}

// Guesser resolves guessed sub-categories to names from a taxonomy.
type Guesser struct {
	tax *taxonomy.Taxonomy
}

// New returns a Guesser. A nil tax uses the default taxonomy.
func New(tax *taxonomy.Taxonomy) *Guesser {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Guesser{tax: tax}
}

// Guess never fails. With no category rule matching, the result falls in the
// Other bucket.
func (g *Guesser) Guess(surname string) Result {
	res := Result{Devanagari: Devanagari(surname)}

	subID, ok := InferSubCategory(surname)
	if ok {
		if rec, err := g.tax.Record(res.Devanagari, subID); err == nil {
			res.MainID, res.MainName = rec.MainID, rec.MainName
			res.SubID, res.SubName = rec.SubID, rec.SubName
			res.Inferred = true
			return res
		}
	}

	res.MainID, res.SubID = taxonomy.OtherMainID, taxonomy.OtherSubID
	res.MainName, _ = g.tax.MainName(taxonomy.OtherMainID)
	res.SubName, _ = g.tax.SubName(taxonomy.OtherSubID)
	return res
}
