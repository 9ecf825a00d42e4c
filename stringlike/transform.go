package stringlike

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isSpace matches the characters a native string treats as whitespace, which
// adds the ASCII information separators to unicode.IsSpace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// Title returns a new host in which every character that follows an uncased
// character is title-cased and every other character is lower-cased. Words
// are therefore split at apostrophes and digits too: "they're" becomes
// "They'Re".
func (m Mixin[T]) Title() T {
	titler := cases.Title(language.Und, cases.NoLower)
	lowerer := cases.Lower(language.Und)

	var b strings.Builder
	prevCased := false
	for _, r := range m.key() {
		if prevCased {
			b.WriteString(lowerer.String(string(r)))
		} else {
			b.WriteString(titler.String(string(r)))
		}
		prevCased = isCased(r)
	}
	return m.wrap(b.String())
}

// Strip returns a new host without leading and trailing whitespace, or, when
// chars is given, without leading and trailing runes contained in chars.
func (m Mixin[T]) Strip(chars ...string) T {
	switch len(chars) {
	case 0:
		return m.wrap(strings.TrimFunc(m.key(), isSpace))
	case 1:
		return m.wrap(strings.Trim(m.key(), chars[0]))
	default:
		panic("stringlike: Strip takes at most one character set")
	}
}

// Upper returns a new host with full Unicode upper-case mapping applied.
func (m Mixin[T]) Upper() T {
	return m.wrap(cases.Upper(language.Und).String(m.key()))
}

// Lower returns a new host with full Unicode lower-case mapping applied.
func (m Mixin[T]) Lower() T {
	return m.wrap(cases.Lower(language.Und).String(m.key()))
}

// Join returns a new host holding parts separated by the canonical string.
func (m Mixin[T]) Join(parts ...string) T {
	return m.wrap(strings.Join(parts, m.key()))
}

// Replace returns a new host with occurrences of old replaced by new. An
// optional count limits the number of replacements; a negative count or none
// replaces all.
func (m Mixin[T]) Replace(old, new string, count ...int) T {
	n := -1
	switch len(count) {
	case 0:
	case 1:
		n = count[0]
	default:
		panic("stringlike: Replace takes at most one count")
	}
	return m.wrap(strings.Replace(m.key(), old, new, n))
}

// Format uses the canonical string as a fmt format and returns a new host
// holding the result. With no args the text is kept as is, so a literal %
// only needs escaping as %% when args are given.
func (m Mixin[T]) Format(args ...any) T {
	if len(args) == 0 {
		return m.wrap(m.key())
	}
	return m.wrap(fmt.Sprintf(m.key(), args...))
}

// Concat returns a new host holding the canonical string followed by other.
func (m Mixin[T]) Concat(other string) T {
	return m.wrap(m.key() + other)
}

// Split breaks the string around sep and returns plain strings. An empty sep
// splits around runs of whitespace and drops empty fields. An optional
// maxSplit caps the number of splits; the remainder is kept as the last field.
func (m Mixin[T]) Split(sep string, maxSplit ...int) []string {
	n := -1
	switch len(maxSplit) {
	case 0:
	case 1:
		n = maxSplit[0]
	default:
		panic("stringlike: Split takes at most one maxSplit")
	}
	if n == math.MaxInt {
		n = -1
	}

	if sep != "" {
		if n < 0 {
			return strings.Split(m.key(), sep)
		}
		return strings.SplitN(m.key(), sep, n+1)
	}
	return splitSpace(m.key(), n)
}

func splitSpace(s string, n int) []string {
	fields := []string{}
	for n != 0 {
		s = strings.TrimLeftFunc(s, isSpace)
		if s == "" {
			return fields
		}
		i := strings.IndexFunc(s, isSpace)
		if i < 0 {
			return append(fields, s)
		}
		fields = append(fields, s[:i])
		s = s[i:]
		if n > 0 {
			n--
		}
	}
	if s = strings.TrimLeftFunc(s, isSpace); s != "" {
		fields = append(fields, s)
	}
	return fields
}
