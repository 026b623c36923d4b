package wstring

import "unicode"

// The predicate family scans every unit once and delegates the per-unit
// category test to the fixed unicode tables. Every predicate is false on an
// empty string except IsASCII, which is vacuously true.

// IsAlpha reports whether s is non-empty and all units are letters.
func (s String) IsAlpha() bool {
	return s.all(unicode.IsLetter)
}

// IsDecimal reports whether s is non-empty and all units are decimal
// digits (category Nd).
func (s String) IsDecimal() bool {
	return s.all(unicode.IsDigit)
}

// IsDigit reports whether s is non-empty and all units are digits
// (category Nd or No).
func (s String) IsDigit() bool {
	return s.all(func(u rune) bool {
		return unicode.IsDigit(u) || unicode.Is(unicode.No, u)
	})
}

// IsNumeric reports whether s is non-empty and all units are numeric
// (category N).
func (s String) IsNumeric() bool {
	return s.all(unicode.IsNumber)
}

// IsAlnum reports whether s is non-empty and all units are letters or
// numeric.
func (s String) IsAlnum() bool {
	return s.all(func(u rune) bool {
		return unicode.IsLetter(u) || unicode.IsNumber(u)
	})
}

// IsLower reports whether s is non-empty and all units are lower case.
func (s String) IsLower() bool {
	return s.all(unicode.IsLower)
}

// IsUpper reports whether s is non-empty and all units are upper case.
func (s String) IsUpper() bool {
	return s.all(unicode.IsUpper)
}

// IsSpace reports whether s is non-empty and all units are whitespace.
func (s String) IsSpace() bool {
	return s.all(unicode.IsSpace)
}

// IsASCII reports whether all units of s are ASCII.
// It is true on an empty string.
func (s String) IsASCII() bool {
	for _, u := range s.buf.Units() {
		if u > unicode.MaxASCII {
			return false
		}
	}

	return true
}

// IsPrintable reports whether s is non-empty and all units are printable.
func (s String) IsPrintable() bool {
	return s.all(unicode.IsPrint)
}

// IsTitle reports whether s is title-cased: an upper or title case unit may
// only follow an uncased unit, a lower case unit may only follow a cased
// one, and at least one cased unit is present.
func (s String) IsTitle() bool {
	cased := false
	prevCased := false

	for _, u := range s.buf.Units() {
		switch {
		case unicode.IsUpper(u) || unicode.IsTitle(u):
			if prevCased {
				return false
			}
			cased = true
			prevCased = true
		case unicode.IsLower(u):
			if !prevCased {
				return false
			}
			cased = true
		default:
			prevCased = false
		}
	}

	return cased
}

// ---

func (s String) all(pred func(rune) bool) bool {
	units := s.buf.Units()
	if len(units) == 0 {
		return false
	}

	for _, u := range units {
		if !pred(u) {
			return false
		}
	}

	return true
}
