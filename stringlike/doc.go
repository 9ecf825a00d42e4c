// Package stringlike makes any type backed by a canonical string behave like
// that string.
//
// A host provides two things: StringKey, the text every operation works on,
// and FromString, which builds a new host from a single string. Embedding a
// Mixin bound to the host then promotes the familiar string operations onto it.
//
//	type Sentence struct {
//	    stringlike.Mixin[*Sentence]
//	    raw string
//	}
//
//	func NewSentence(raw string) *Sentence {
//	    s := &Sentence{raw: raw}
//	    s.Mixin = stringlike.Bind[*Sentence](s)
//	    return s
//	}
//
//	func (s *Sentence) StringKey() string               { return s.raw }
//	func (s *Sentence) FromString(raw string) *Sentence { return NewSentence(raw) }
//
// Operations that produce text (Slice, Title, Strip, Upper, Lower, Join,
// Replace, Format, Concat) return a new host of the same type. Operations that
// produce scalars (Len, At, Find, Index, StartsWith, Split, ...) return plain
// Go values.
//
// Positions and lengths count Unicode code points, not bytes, and every
// bounded search accepts optional start and end bounds that are adjusted the
// same way slice bounds are: negative values count from the end, values past
// the end are clamped. Omitted bounds mean the whole string.
package stringlike
