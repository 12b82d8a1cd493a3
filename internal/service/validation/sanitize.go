package validation

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// termClass groups substitution table entries.
type termClass int

const (
	// classSevere terms are profanity redacted to "[removed]".
	classSevere termClass = iota
	// classMild terms are profanity softened to a milder synonym.
	classMild
	// classNegative terms are negative-intensity adjectives; they are not
	// profanity but are softened when correcting a negative tone.
	classNegative
)

const redactionMarker = "[removed]"

type substitution struct {
	term        string
	replacement string
	class       termClass
}

// substitutions is the sanitization table shared by the profanity rule and
// the negative-tone rule.
var substitutions = []substitution{
	{"fuck", redactionMarker, classSevere},
	{"fucking", redactionMarker, classSevere},
	{"motherfucker", redactionMarker, classSevere},
	{"shit", redactionMarker, classSevere},
	{"bullshit", redactionMarker, classSevere},
	{"bitch", redactionMarker, classSevere},
	{"bastard", redactionMarker, classSevere},
	{"asshole", redactionMarker, classSevere},
	{"cunt", redactionMarker, classSevere},
	{"dickhead", redactionMarker, classSevere},

	{"damn", "darn", classMild},
	{"hell", "heck", classMild},
	{"crap", "junk", classMild},
	{"crappy", "poor", classMild},
	{"sucks", "is disappointing", classMild},
	{"pissed", "annoyed", classMild},
	{"idiot", "person", classMild},
	{"idiotic", "unwise", classMild},
	{"stupid", "unwise", classMild},
	{"dumb", "unwise", classMild},

	{"terrible", "needs improvement", classNegative},
	{"awful", "could be better", classNegative},
	{"horrible", "unsatisfactory", classNegative},
	{"worst", "least satisfying", classNegative},
	{"hate", "dislike", classNegative},
	{"hated", "disliked", classNegative},
	{"useless", "not very helpful", classNegative},
	{"pathetic", "disappointing", classNegative},
	{"disgusting", "unpleasant", classNegative},
	{"atrocious", "poor", classNegative},
	{"dreadful", "subpar", classNegative},
	{"lousy", "mediocre", classNegative},
	{"garbage", "subpar", classNegative},
	{"ridiculous", "surprising", classNegative},
	{"incompetent", "inexperienced", classNegative},
}

// Sanitizer matches table terms on word boundaries, case-insensitively.
type Sanitizer struct {
	profanity   *regexp.Regexp
	all         *regexp.Regexp
	replacement map[string]string
}

// NewSanitizer compiles the substitution table.
func NewSanitizer() *Sanitizer {
	replacement := make(map[string]string, len(substitutions))
	var profane, all []string
	for _, s := range substitutions {
		replacement[s.term] = s.replacement
		all = append(all, s.term)
		if s.class != classNegative {
			profane = append(profane, s.term)
		}
	}
	return &Sanitizer{
		profanity:   compileTerms(profane),
		all:         compileTerms(all),
		replacement: replacement,
	}
}

func compileTerms(terms []string) *regexp.Regexp {
	sorted := append([]string(nil), terms...)
	// Longest first so "bullshit" wins over "shit".
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, t := range sorted {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// HasProfanity reports whether text contains a profane term.
func (s *Sanitizer) HasProfanity(text string) bool {
	return s.profanity.MatchString(text)
}

// HasAny reports whether text contains any table term.
func (s *Sanitizer) HasAny(text string) bool {
	return s.all.MatchString(text)
}

// CleanProfanity substitutes profane terms only.
func (s *Sanitizer) CleanProfanity(text string) string {
	return s.profanity.ReplaceAllStringFunc(text, s.replace)
}

// Clean substitutes every table term, profane or negative.
func (s *Sanitizer) Clean(text string) string {
	return s.all.ReplaceAllStringFunc(text, s.replace)
}

func (s *Sanitizer) replace(match string) string {
	r, ok := s.replacement[strings.ToLower(match)]
	if !ok {
		return match
	}
	if r == redactionMarker {
		return r
	}
	first, _ := utf8.DecodeRuneInString(match)
	if unicode.IsUpper(first) {
		return capitalize(r)
	}
	return r
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// sentenceCase upper-cases the first character and lower-cases the rest.
func sentenceCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
