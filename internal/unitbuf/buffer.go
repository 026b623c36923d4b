package unitbuf

import (
	"errors"
	"math"
)

// GrowthQuantum is the fixed allocation increment.
// Every capacity is a multiple of it.
const GrowthQuantum = 10

// MaxLen is the maximum logical length a Buffer accepts.
// It leaves headroom for the terminator slot and quantum rounding.
const MaxLen = math.MaxInt/8 - GrowthQuantum

// ErrTooLarge is returned by Resize when the requested length is negative
// or exceeds MaxLen.
var ErrTooLarge = errors.New("unitbuf: length out of range")

// Unit is a fixed-width code unit of a Buffer.
type Unit interface {
	~uint8 | ~uint16 | ~int32
}

// Buffer is an exclusively owned, zero-terminated array of code units with
// explicit capacity tracking. The zero value is an empty buffer with no
// allocated storage.
//
// After every successful Resize the following holds: the capacity is a
// multiple of GrowthQuantum, a capacity of zero means no storage is
// allocated, and every unit in [length, capacity) is zero, which includes
// the terminator slot at offset length.
type Buffer[U Unit] struct {
	data   []U // len(data) is the capacity
	length int
}

// Of returns a Buffer holding a copy of the given units.
func Of[U Unit](units []U) (Buffer[U], error) {
	var b Buffer[U]
	if err := b.Resize(len(units)); err != nil {
		return Buffer[U]{}, err
	}
	copy(b.data, units)

	return b, nil
}

// Adopt returns a Buffer that takes ownership of the given storage without
// copying it. The caller must not use the slice afterwards. The adopted
// storage is used as is until the first Resize restores the capacity
// invariants.
func Adopt[U Unit](units []U) Buffer[U] {
	return Buffer[U]{data: units, length: len(units)}
}

// Resize sets the logical length to n, reallocating the storage so that the
// capacity is the smallest multiple of GrowthQuantum of at least n+1 units.
// A length of zero releases the storage entirely. All units in
// [n, capacity) are zeroed. This is the single allocation choke-point:
// every length-changing operation goes through it exactly once.
//
// Resize fails with ErrTooLarge when n is negative or exceeds MaxLen;
// the buffer is left untouched in that case.
func (b *Buffer[U]) Resize(n int) error {
	if n < 0 || n > MaxLen {
		return ErrTooLarge
	}

	if n == 0 {
		b.data = nil
		b.length = 0

		return nil
	}

	newCap := (n/GrowthQuantum + 1) * GrowthQuantum
	if newCap != len(b.data) {
		data := make([]U, newCap)
		copy(data, b.data[:min(b.length, n)])
		b.data = data
	}

	b.length = n
	clear(b.data[n:])

	return nil
}

// Len returns the logical length in units, not counting the terminator.
func (b *Buffer[U]) Len() int {
	return b.length
}

// Cap returns the allocated capacity in units.
func (b *Buffer[U]) Cap() int {
	return len(b.data)
}

// Units returns a view of the logical window [0, length).
func (b *Buffer[U]) Units() []U {
	return b.data[:b.length]
}

// Raw returns the whole allocated storage including the terminator and the
// zero-filled tail. It is nil when no storage is allocated.
func (b *Buffer[U]) Raw() []U {
	return b.data
}

// At returns the unit at offset i and whether i is inside [0, length).
func (b *Buffer[U]) At(i int) (U, bool) {
	if i < 0 || i >= b.length {
		var zero U

		return zero, false
	}

	return b.data[i], true
}

// Clone returns a Buffer with its own copy of the storage.
func (b *Buffer[U]) Clone() Buffer[U] {
	if b.length == 0 {
		return Buffer[U]{}
	}

	c := Buffer[U]{data: make([]U, len(b.data)), length: b.length}
	copy(c.data, b.data[:b.length])

	return c
}
