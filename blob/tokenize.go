package blob

import (
	"strings"
	"unicode"
)

// Tokenize splits text on whitespace and peels leading and trailing
// punctuation off every field as separate tokens.
//
//	"Hello, world!" -> ["Hello" "," "world" "!"]
func Tokenize(text string) ([]string, error) {
	var tokens []string
	for _, field := range strings.Fields(text) {
		rs := []rune(field)
		start, end := 0, len(rs)
		for start < end && unicode.IsPunct(rs[start]) {
			tokens = append(tokens, string(rs[start]))
			start++
		}
		var trailing []string
		for end > start && unicode.IsPunct(rs[end-1]) {
			trailing = append(trailing, string(rs[end-1]))
			end--
		}
		if start < end {
			tokens = append(tokens, string(rs[start:end]))
		}
		for i := len(trailing) - 1; i >= 0; i-- {
			tokens = append(tokens, trailing[i])
		}
	}
	return tokens, nil
}
