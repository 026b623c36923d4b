package wstring

import "slices"

// Append appends t to s in place.
func Append(s *String, t String) error {
	n, m := s.buf.Len(), t.buf.Len()
	if m == 0 {
		return nil
	}
	if m > MaxLen-n {
		return &MemoryError{Requested: -1}
	}

	// The view stays valid across the resize even when t aliases s:
	// a reallocation leaves the old storage intact.
	src := t.buf.Units()
	if err := s.resize(n + m); err != nil {
		return err
	}
	copy(s.buf.Units()[n:], src)

	return nil
}

// Concat returns the concatenation of s and t.
func (s String) Concat(t String) (String, error) {
	r := s.Clone()
	if err := Append(&r, t); err != nil {
		return String{}, err
	}

	return r, nil
}

// Remove deletes every occurrence of sub from s in place.
func Remove(s *String, sub String) error {
	return Replace(s, sub, String{}, NoPos)
}

// Remove returns a copy of s with every occurrence of sub deleted.
func (s String) Remove(sub String) (String, error) {
	r := s.Clone()
	if err := Remove(&r, sub); err != nil {
		return String{}, err
	}

	return r, nil
}

// Compare compares s and t lexicographically by unit value over the
// logical range, returning -1, 0 or +1.
func (s String) Compare(t String) int {
	return slices.Compare(s.buf.Units(), t.buf.Units())
}

// Equal reports whether s and t hold the same units.
func (s String) Equal(t String) bool {
	return slices.Equal(s.buf.Units(), t.buf.Units())
}

// Less reports whether s orders before t.
func (s String) Less(t String) bool {
	return s.Compare(t) < 0
}

// Greater reports whether s orders after t.
func (s String) Greater(t String) bool {
	return s.Compare(t) > 0
}
