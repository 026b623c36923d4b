package wstring

import "slices"

// Find returns the lowest offset at which sub occurs in s,
// or NoPos when it does not.
func (s String) Find(sub String) int {
	return s.FindIn(sub, 0, NoPos)
}

// FindIn is Find restricted to the window [begin, end).
// An empty sub is found at the clamped begin.
func (s String) FindIn(sub String, begin, end int) int {
	begin, end = s.window(begin, end)
	units, needle := s.buf.Units(), sub.buf.Units()
	if len(needle) == 0 {
		return begin
	}

	for i := begin; i+len(needle) <= end; i++ {
		if matchAt(units, needle, i) {
			return i
		}
	}

	return NoPos
}

// RFind returns the highest offset at which sub occurs in s,
// or NoPos when it does not.
func (s String) RFind(sub String) int {
	return s.RFindIn(sub, 0, NoPos)
}

// RFindIn is RFind restricted to the window [begin, end).
// An empty sub is found at the clamped end.
func (s String) RFindIn(sub String, begin, end int) int {
	begin, end = s.window(begin, end)
	units, needle := s.buf.Units(), sub.buf.Units()
	if len(needle) == 0 {
		return end
	}

	for i := end - len(needle); i >= begin; i-- {
		if matchAt(units, needle, i) {
			return i
		}
	}

	return NoPos
}

// Index is Find that fails with a *ValueError when sub is absent.
func (s String) Index(sub String) (int, error) {
	return s.IndexIn(sub, 0, NoPos)
}

// IndexIn is Index restricted to the window [begin, end).
func (s String) IndexIn(sub String, begin, end int) (int, error) {
	if i := s.FindIn(sub, begin, end); i != NoPos {
		return i, nil
	}

	return NoPos, &ValueError{Op: "index", Sub: sub.String()}
}

// RIndex is RFind that fails with a *ValueError when sub is absent.
func (s String) RIndex(sub String) (int, error) {
	return s.RIndexIn(sub, 0, NoPos)
}

// RIndexIn is RIndex restricted to the window [begin, end).
func (s String) RIndexIn(sub String, begin, end int) (int, error) {
	if i := s.RFindIn(sub, begin, end); i != NoPos {
		return i, nil
	}

	return NoPos, &ValueError{Op: "rindex", Sub: sub.String()}
}

// Count returns the number of non-overlapping occurrences of sub in s.
func (s String) Count(sub String) int {
	return s.CountIn(sub, 0, NoPos)
}

// CountIn is Count restricted to the window [begin, end). Occurrences are
// counted left to right, advancing past each match by its length. An empty
// sub matches at every offset of the window including its end.
func (s String) CountIn(sub String, begin, end int) int {
	begin, end = s.window(begin, end)
	units, needle := s.buf.Units(), sub.buf.Units()
	if len(needle) == 0 {
		return end - begin + 1
	}

	count := 0
	for i := begin; i+len(needle) <= end; {
		if matchAt(units, needle, i) {
			count++
			i += len(needle)
		} else {
			i++
		}
	}

	return count
}

// Has reports whether sub occurs anywhere in s.
func (s String) Has(sub String) bool {
	return s.Find(sub) != NoPos
}

// StartsWith reports whether s starts with the given prefix.
func (s String) StartsWith(prefix String) bool {
	return s.StartsWithIn(prefix, 0, NoPos)
}

// StartsWithIn is StartsWith over the window [begin, end).
func (s String) StartsWithIn(prefix String, begin, end int) bool {
	begin, end = s.window(begin, end)
	needle := prefix.buf.Units()
	if begin+len(needle) > end {
		return false
	}

	return matchAt(s.buf.Units(), needle, begin)
}

// EndsWith reports whether s ends with the given suffix.
func (s String) EndsWith(suffix String) bool {
	return s.EndsWithIn(suffix, 0, NoPos)
}

// EndsWithIn is EndsWith over the window [begin, end).
func (s String) EndsWithIn(suffix String, begin, end int) bool {
	begin, end = s.window(begin, end)
	needle := suffix.buf.Units()
	if end-len(needle) < begin {
		return false
	}

	return matchAt(s.buf.Units(), needle, end-len(needle))
}

// ---

func matchAt(units, needle []rune, i int) bool {
	return i+len(needle) <= len(units) && slices.Equal(units[i:i+len(needle)], needle)
}
