// Package blob provides Blob, a text value that behaves like a string, orders
// like its text and derives its analyses lazily.
//
// Analyses run through pluggable collaborators. A Tokenizer is always
// available; tagging needs a Tagger, and a Blob without one reports a
// *corpus.MissingCorpusError, just like a tagger whose model is absent.
package blob
