package guess

import (
	"regexp"
	"strings"
)

type glyphRule struct {
	pattern    *regexp.Regexp
	devanagari string
}

// wholeNameRules are tried in order against the lowercased surname; the first
// one found anywhere in it wins.
var wholeNameRules = []glyphRule{
	{regexp.MustCompile(`shrestha`), "श्रेष्ठ"},
	{regexp.MustCompile(`regmi`), "रेग्मी"},
	{regexp.MustCompile(`thapa`), "थापा"},
	{regexp.MustCompile(`tamang`), "तामाङ"},
	{regexp.MustCompile(`gurung`), "गुरुङ"},
	{regexp.MustCompile(`magar`), "मगर"},
	{regexp.MustCompile(`rai`), "राई"},
	{regexp.MustCompile(`limbu`), "लिम्बू"},
	{regexp.MustCompile(`sherpa`), "शेर्पा"},
	{regexp.MustCompile(`lama`), "लामा"},
	{regexp.MustCompile(`adhikari`), "अधिकारी"},
	{regexp.MustCompile(`sharma`), "शर्मा"},
	{regexp.MustCompile(`paudel`), "पौडेल"},
	{regexp.MustCompile(`pokharel`), "पोखरेल"},
	{regexp.MustCompile(`ghimire`), "घिमिरे"},
	{regexp.MustCompile(`bhattarai`), "भट्टराई"},
	{regexp.MustCompile(`bhandari`), "भण्डारी"},
	{regexp.MustCompile(`kc`), "के.सी."},
	{regexp.MustCompile(`gc`), "जी.सी."},
	{regexp.MustCompile(`bc`), "बी.सी."},
	{regexp.MustCompile(`bk`), "बि.क."},
	{regexp.MustCompile(`chhetri`), "क्षेत्री"},
	{regexp.MustCompile(`chetri`), "क्षेत्री"},
	{regexp.MustCompile(`kshetri`), "क्षेत्री"},
	{regexp.MustCompile(`khatri`), "खत्री"},
	{regexp.MustCompile(`basnet`), "बस्नेत"},
	{regexp.MustCompile(`bista`), "बिष्ट"},
	{regexp.MustCompile(`karki`), "कार्की"},
	{regexp.MustCompile(`khadka`), "खड्का"},
}

// glyphs are applied one after another, each to every occurrence. Digraphs
// come first, then vowels, then single consonants.
var glyphs = []struct{ latin, devanagari string }{
	{"shh", "श्"},
	{"chh", "छ"},
	{"th", "थ"},
	{"dh", "ध"},
	{"bh", "भ"},
	{"gh", "घ"},
	{"kh", "ख"},
	{"ph", "फ"},
	{"sh", "श"},
	{"ng", "ङ"},
	{"aa", "आ"},
	{"ee", "ई"},
	{"oo", "ऊ"},
	{"ai", "ाइ"},
	{"au", "ाउ"},
	{"a", "ा"},
	{"i", "ि"},
	{"u", "ु"},
	{"e", "े"},
	{"o", "ो"},
	{"k", "क"},
	{"g", "ग"},
	{"c", "च"},
	{"j", "ज"},
	{"t", "त"},
	{"d", "द"},
	{"n", "न"},
	{"p", "प"},
	{"b", "ब"},
	{"m", "म"},
	{"y", "य"},
	{"r", "र"},
	{"l", "ल"},
	{"v", "व"},
	{"w", "व"},
	{"s", "स"},
	{"h", "ह"},
}

// Devanagari returns an approximate Devanagari rendering of a Latin surname.
// A whole-name rule wins if one matches; otherwise the name is converted
// fragment by fragment. The output is a placeholder for human review and is
// often linguistically wrong.
func Devanagari(english string) string {
	lower := strings.ToLower(english)
	for _, r := range wholeNameRules {
		if r.pattern.MatchString(lower) {
			return r.devanagari
		}
	}
	return Transliterate(english)
}

// Transliterate applies only the fragment rules. An empty result falls back
// to the input.
func Transliterate(english string) string {
	out := strings.ToLower(english)
	for _, g := range glyphs {
		out = strings.ReplaceAll(out, g.latin, g.devanagari)
	}
	if out == "" {
		return english
	}
	return out
}
