// Package order derives a full set of comparisons from a single comparison key.
//
// A host implements Keyed once. Compare turns two hosts into an Ordering by
// comparing their keys; the operator helpers (Lt, Le, Eq, Ne, Ge, Gt) are all
// defined on top of that one result, so they can never disagree with each other.
//
// Keys are opaque values compared by CompareKeys: strings, byte slices, numbers
// of any kind, and slices or arrays of those compared element by element.
// Anything else, or two keys of different families, is Incomparable.
//
// Incomparable is a result, not an error. The operator helpers react to it by
// asking the other operand (the reflected comparison); only when neither side
// can decide do Lt/Le/Gt/Ge return ErrUnorderable, while Eq/Ne fall back to
// identity.
//
// Hosts that embed BlobMixin also compare directly against raw strings and byte
// slices, using their own key on one side and the raw value on the other.
package order
