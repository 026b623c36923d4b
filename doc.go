// Package wstring provides a buffer-backed wide string container with an
// explicit capacity policy and a Python-flavored operation set: search,
// classification, case conversion, padding, repetition and replacement.
//
// A String owns a contiguous, zero-terminated buffer of runes whose capacity
// is always a multiple of a fixed growth quantum. Every length-changing
// operation routes through a single resize primitive that preserves those
// invariants or fails without touching the receiver.
//
// Each transform exists in two forms: a package-level function that mutates
// a String in place, and a value method that returns a transformed copy.
// The copy form is always the in-place form applied to a clone.
//
// A String is not safe for concurrent mutation; callers serialize access.
// Storage is single-owner: assignment of a String value aliases the buffer
// and should be treated as a move, use [String.Clone] for a deep copy.
package wstring
