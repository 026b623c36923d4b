package wstring

import "unicode"

// Every transform exists as a package-level function mutating its argument
// in place and as a value method returning a transformed copy. The method
// is always the in-place form applied to a clone of the receiver.

// Capitalize upper-cases the first unit of s and lower-cases the rest.
func Capitalize(s *String) {
	units := s.buf.Units()
	if len(units) == 0 {
		return
	}

	units[0] = unicode.ToUpper(units[0])
	for i := 1; i < len(units); i++ {
		units[i] = unicode.ToLower(units[i])
	}
}

// Capitalize returns a capitalized copy of s.
func (s String) Capitalize() String {
	r := s.Clone()
	Capitalize(&r)

	return r
}

// Lower converts s to lower case.
func Lower(s *String) {
	units := s.buf.Units()
	for i, u := range units {
		units[i] = unicode.ToLower(u)
	}
}

// Lower returns a lower-cased copy of s.
func (s String) Lower() String {
	r := s.Clone()
	Lower(&r)

	return r
}

// Upper converts s to upper case.
func Upper(s *String) {
	units := s.buf.Units()
	for i, u := range units {
		units[i] = unicode.ToUpper(u)
	}
}

// Upper returns an upper-cased copy of s.
func (s String) Upper() String {
	r := s.Clone()
	Upper(&r)

	return r
}

// Center pads s with the fill unit on both sides up to the given width.
// When the padding is odd, the extra unit goes on the right.
// It is a no-op when width does not exceed the length of s.
func Center(s *String, width int, fill rune) error {
	n := s.buf.Len()
	if width <= n {
		return nil
	}

	left := (width - n) / 2
	if err := s.resize(width); err != nil {
		return err
	}

	units := s.buf.Units()
	copy(units[left:], units[:n])
	for i := 0; i < left; i++ {
		units[i] = fill
	}
	for i := left + n; i < width; i++ {
		units[i] = fill
	}

	return nil
}

// Center returns a copy of s centered in a field of the given width.
func (s String) Center(width int, fill rune) (String, error) {
	r := s.Clone()
	if err := Center(&r, width, fill); err != nil {
		return String{}, err
	}

	return r, nil
}

// ExpandTabs replaces each tab unit with enough spaces to reach the next
// multiple of tabsize columns. The column counter resets on newline and
// carriage return units. A tabsize of zero or less removes tabs.
func ExpandTabs(s *String, tabsize int) error {
	units := s.buf.Units()
	out := make([]rune, 0, len(units))
	col := 0

	for _, u := range units {
		switch u {
		case '\t':
			if tabsize > 0 {
				pad := tabsize - col%tabsize
				for i := 0; i < pad; i++ {
					out = append(out, ' ')
				}
				col += pad
			}
		case '\n', '\r':
			out = append(out, u)
			col = 0
		default:
			out = append(out, u)
			col++
		}
	}

	return s.setUnits(out)
}

// ExpandTabs returns a copy of s with tabs expanded using spaces.
func (s String) ExpandTabs(tabsize int) (String, error) {
	r := s.Clone()
	if err := ExpandTabs(&r, tabsize); err != nil {
		return String{}, err
	}

	return r, nil
}

// RemoveSuffix truncates s by the length of suffix when s ends with a
// non-empty suffix, and leaves s unchanged otherwise.
func RemoveSuffix(s *String, suffix String) {
	n := suffix.buf.Len()
	if n == 0 || !s.EndsWith(suffix) {
		return
	}

	s.shrink(s.buf.Len() - n)
}

// RemoveSuffix returns a copy of s with the given suffix removed if present.
func (s String) RemoveSuffix(suffix String) String {
	r := s.Clone()
	RemoveSuffix(&r, suffix)

	return r
}

// Repeat replaces s with n concatenated copies of itself.
// A count of zero or less empties s.
func Repeat(s *String, n int) error {
	if n <= 0 {
		s.shrink(0)

		return nil
	}

	length := s.buf.Len()
	if length == 0 || n == 1 {
		return nil
	}
	if n > MaxLen/length {
		return &MemoryError{Requested: -1}
	}

	newLen := length * n
	if err := s.resize(newLen); err != nil {
		return err
	}

	// Double the written prefix until the whole buffer is filled.
	units := s.buf.Units()
	for written := length; written < newLen; written *= 2 {
		copy(units[written:], units[:written])
	}

	return nil
}

// Repeat returns n concatenated copies of s.
func (s String) Repeat(n int) (String, error) {
	r := s.Clone()
	if err := Repeat(&r, n); err != nil {
		return String{}, err
	}

	return r, nil
}

// Replace replaces up to count non-overlapping occurrences of from with to,
// scanning left to right. A count of NoPos replaces all occurrences. An
// empty from matches at every offset including the end of s.
func Replace(s *String, from, to String, count int) error {
	if count == 0 {
		return nil
	}

	units := s.buf.Units()
	f, t := from.buf.Units(), to.buf.Units()
	out := make([]rune, 0, len(units))
	replaced := 0

	for i := 0; i < len(units); {
		if (count < 0 || replaced < count) && matchAt(units, f, i) {
			out = append(out, t...)
			replaced++
			if len(f) == 0 {
				out = append(out, units[i])
				i++
			} else {
				i += len(f)
			}
		} else {
			out = append(out, units[i])
			i++
		}
	}
	if len(f) == 0 && (count < 0 || replaced < count) {
		out = append(out, t...)
	}

	return s.setUnits(out)
}

// Replace returns a copy of s with up to count occurrences of from
// replaced by to.
func (s String) Replace(from, to String, count int) (String, error) {
	r := s.Clone()
	if err := Replace(&r, from, to, count); err != nil {
		return String{}, err
	}

	return r, nil
}

// ZFill pads s with zeros on the left up to the given width. A leading sign
// unit stays first and the zeros are inserted after it. The string is never
// truncated.
func ZFill(s *String, width int) error {
	n := s.buf.Len()
	if width <= n {
		return nil
	}

	units := s.buf.Units()
	start := 0
	if n > 0 && (units[0] == '+' || units[0] == '-') {
		start = 1
	}

	if err := s.resize(width); err != nil {
		return err
	}

	pad := width - n
	units = s.buf.Units()
	copy(units[start+pad:], units[start:n])
	for i := start; i < start+pad; i++ {
		units[i] = '0'
	}

	return nil
}

// ZFill returns a copy of s padded with zeros on the left to the given
// width.
func (s String) ZFill(width int) (String, error) {
	r := s.Clone()
	if err := ZFill(&r, width); err != nil {
		return String{}, err
	}

	return r, nil
}
