// Package corpus turns missing external resources into a dedicated error.
//
// Analyses that need a corpus or model report its absence with the generic
// ErrLookup signal (a missing file, fs.ErrNotExist, counts as well). Wrapping
// such an analysis with Requires converts that signal into a
// *MissingCorpusError, keeping the original error as its cause. Everything else
// passes through untouched.
package corpus
