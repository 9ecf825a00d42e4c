// Package textutil holds small stateless helpers used by text analyses.
package textutil

import (
	"io"
	"strings"
)

// Punctuation is the ASCII punctuation set.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// DefaultInsignificantTags are the tag suffixes FilterInsignificant drops when
// none are given: determiners, coordinating conjunctions and pronouns.
var DefaultInsignificantTags = []string{"DT", "CC", "PRP$", "PRP"}

// Tagged is a word with its label, e.g. a part-of-speech tag.
type Tagged struct {
	Word string
	Tag  string
}

// StripPunc trims surrounding whitespace, then removes punctuation from the
// ends of s, or from everywhere in s when all is true.
func StripPunc(s string, all bool) string {
	s = strings.TrimSpace(s)
	if all {
		return strings.Map(func(r rune) rune {
			if r < 0x80 && strings.ContainsRune(Punctuation, r) {
				return -1
			}
			return r
		}, s)
	}
	return strings.Trim(s, Punctuation)
}

// LowerStrip lower-cases s and strips it with StripPunc.
func LowerStrip(s string, all bool) string {
	return StripPunc(strings.ToLower(s), all)
}

// TreeToString joins the words of a chunk with concat, which defaults to a
// single space.
//
//	(NP a/DT beautiful/JJ dashboard/NN) -> "a beautiful dashboard"
func TreeToString(chunk []Tagged, concat ...string) string {
	sep := " "
	if len(concat) > 0 {
		sep = concat[0]
	}
	words := make([]string, len(chunk))
	for i, t := range chunk {
		words[i] = t.Word
	}
	return strings.Join(words, sep)
}

// FilterInsignificant drops every token whose tag ends with one of suffixes.
// With no suffixes DefaultInsignificantTags is used.
func FilterInsignificant(chunk []Tagged, suffixes ...string) []Tagged {
	if len(suffixes) == 0 {
		suffixes = DefaultInsignificantTags
	}
	good := make([]Tagged, 0, len(chunk))
	for _, t := range chunk {
		if !hasAnySuffix(t.Tag, suffixes) {
			good = append(good, t)
		}
	}
	return good
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// IsFileLike reports whether v can be read from.
func IsFileLike(v any) bool {
	_, ok := v.(io.Reader)
	return ok
}
