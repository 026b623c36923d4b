package wstring

import (
	"github.com/cpppgo/wstring/internal/unitbuf"
)

// NoPos is the "no position" sentinel. Find and RFind return it when the
// substring is absent, it stands for "through the end of the string" as a
// search window end, and for "no limit" as a Replace count.
const NoPos = -1

// MaxLen is the maximum logical length of a String.
const MaxLen = unitbuf.MaxLen

// String is a buffer-backed wide string. The zero value is an empty string
// with no allocated storage.
type String struct {
	buf unitbuf.Buffer[rune]
}

// New returns an empty String.
func New() String {
	return String{}
}

// From returns a String holding the runes of the given Go string.
func From(s string) String {
	return FromRunes([]rune(s))
}

// FromRunes returns a String holding a copy of the given units.
func FromRunes(units []rune) String {
	var s String
	s.mustSetUnits(units)

	return s
}

// FromRange returns a String holding a copy of the half-open range
// [begin, end) of the given units. The bounds are clamped.
func FromRange(units []rune, begin, end int) String {
	begin = max(0, min(begin, len(units)))
	if end == NoPos || end > len(units) {
		end = len(units)
	}
	end = max(begin, end)

	return FromRunes(units[begin:end])
}

// Adopt returns a String that takes ownership of the given storage without
// copying it. The caller must not use the slice afterwards.
func Adopt(units []rune) String {
	return String{buf: unitbuf.Adopt(units)}
}

// Clone returns a String with its own copy of the storage.
func (s String) Clone() String {
	return String{buf: s.buf.Clone()}
}

// Len returns the number of units in s, not counting the terminator.
func (s String) Len() int {
	return s.buf.Len()
}

// Cap returns the allocated capacity of s in units.
func (s String) Cap() int {
	return s.buf.Cap()
}

// IsEmpty reports whether s has no units.
func (s String) IsEmpty() bool {
	return s.buf.Len() == 0
}

// At returns the unit at offset i.
// It fails with an *IndexError when i is outside [0, Len).
func (s String) At(i int) (rune, error) {
	u, ok := s.buf.At(i)
	if !ok {
		return 0, &IndexError{Index: i, Len: s.buf.Len()}
	}

	return u, nil
}

// String implements fmt.Stringer.
func (s String) String() string {
	return string(s.buf.Units())
}

// Runes returns a copy of the units of s.
func (s String) Runes() []rune {
	units := s.buf.Units()
	out := make([]rune, len(units))
	copy(out, units)

	return out
}

// ---

// resize routes every length change through the buffer-sizing primitive,
// mapping its failure to *MemoryError.
func (s *String) resize(n int) error {
	if err := s.buf.Resize(n); err != nil {
		return &MemoryError{Requested: n}
	}

	return nil
}

// shrink truncates s to n units. The caller guarantees that n does not
// exceed the current length, so the resize cannot fail.
func (s *String) shrink(n int) {
	if err := s.resize(n); err != nil {
		panic(err)
	}
}

// setUnits replaces the content of s with the given units.
func (s *String) setUnits(units []rune) error {
	if err := s.resize(len(units)); err != nil {
		return err
	}
	copy(s.buf.Units(), units)

	return nil
}

// mustSetUnits is setUnits for units known to fit, such as a slice that
// already exists in memory at construction time.
func (s *String) mustSetUnits(units []rune) {
	if err := s.setUnits(units); err != nil {
		panic(err)
	}
}

// window clamps a [begin, end) search window to the logical range of s.
// An end of NoPos means the length of s.
func (s String) window(begin, end int) (int, int) {
	n := s.buf.Len()
	begin = max(0, min(begin, n))
	if end == NoPos || end > n {
		end = n
	}
	end = max(begin, end)

	return begin, end
}
