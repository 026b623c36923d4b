package wstring

import "fmt"

// MemoryError reports that the resize primitive could not satisfy a
// capacity request. The receiver of the failed operation is left unchanged.
type MemoryError struct {
	// Requested is the requested logical length in units,
	// or a negative value when the length computation overflowed.
	Requested int
}

// Error implements the error interface.
func (e *MemoryError) Error() string {
	if e.Requested < 0 {
		return "wstring: buffer length overflow"
	}

	return fmt.Sprintf("wstring: cannot grow buffer to %d units", e.Requested)
}

// IndexError reports positional access outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("wstring: index %d out of range [0, %d)", e.Index, e.Len)
}

// ValueError reports that a substring required by Index or RIndex
// was not found.
type ValueError struct {
	Op  string
	Sub string
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	return fmt.Sprintf("wstring: %s: substring %q not found", e.Op, e.Sub)
}
