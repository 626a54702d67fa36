package ringbuf

import (
	"slices"

	"github.com/pkg/errors"
)

// RingBuffer is an immutable fixed-capacity FIFO container.
// Appending past capacity evicts the oldest element. Every operation returns
// a new instance and leaves the receiver untouched, so instances may be
// shared freely across goroutines without synchronization. Each operation
// copies the contents, O(n) in the number of elements held.
//
// The zero value is a zero-capacity buffer that discards every add.
type RingBuffer[A any] struct {
	maxLength int
	items     []A // oldest first; len(items) <= maxLength; never mutated
}

// New creates a buffer of capacity maxLength containing elem as its sole
// element. Returns ErrInvalidCapacity if maxLength < 1.
func New[A any](maxLength int, elem A) (RingBuffer[A], error) {
	if maxLength < 1 {
		return RingBuffer[A]{}, errors.Wrapf(ErrInvalidCapacity, "New maxLength %d", maxLength)
	}
	return RingBuffer[A]{
		maxLength: maxLength,
		items:     []A{elem},
	}, nil
}

// From creates a buffer whose capacity equals len(elems) and whose contents
// are exactly elems, oldest first. The input slice is copied. Returns
// ErrInvalidCapacity if elems is empty.
func From[A any](elems []A) (RingBuffer[A], error) {
	if len(elems) == 0 {
		return RingBuffer[A]{}, errors.Wrap(ErrInvalidCapacity, "From requires at least one element")
	}
	return RingBuffer[A]{
		maxLength: len(elems),
		items:     slices.Clone(elems),
	}, nil
}

// Add appends elems in order, each as the newest element, evicting the
// oldest element whenever an append would exceed capacity. Returns the
// buffer after the whole batch; calling with no elements returns the
// receiver unchanged.
func (rb RingBuffer[A]) Add(elems ...A) RingBuffer[A] {
	if len(elems) == 0 {
		return rb
	}

	// Appending one at a time with eviction keeps the newest maxLength
	// elements of the combined sequence.
	drop := len(rb.items) + len(elems) - rb.maxLength
	if drop < 0 {
		drop = 0
	}

	next := make([]A, 0, len(rb.items)+len(elems)-drop)
	if drop < len(rb.items) {
		next = append(next, rb.items[drop:]...)
		next = append(next, elems...)
	} else {
		next = append(next, elems[drop-len(rb.items):]...)
	}
	return RingBuffer[A]{maxLength: rb.maxLength, items: next}
}

// Read removes the count oldest elements and returns them oldest first,
// together with a buffer holding the remaining elements at the same
// capacity. count is clamped: a non-positive count reads nothing and a count
// past the current length reads everything. Read never errors and never
// evicts.
func (rb RingBuffer[A]) Read(count int) ([]A, RingBuffer[A]) {
	if count < 0 {
		count = 0
	}
	if count > len(rb.items) {
		count = len(rb.items)
	}

	read := slices.Clone(rb.items[:count])
	rest := RingBuffer[A]{
		maxLength: rb.maxLength,
		items:     slices.Clone(rb.items[count:]),
	}
	return read, rest
}

// Extend returns a buffer with the same contents and capacity raised to
// newMaxLength. Capacity never shrinks: returns ErrInvalidCapacity if
// newMaxLength is below the current maxLength.
func (rb RingBuffer[A]) Extend(newMaxLength int) (RingBuffer[A], error) {
	if newMaxLength < rb.maxLength {
		return RingBuffer[A]{}, errors.Wrapf(ErrInvalidCapacity, "Extend from %d to %d", rb.maxLength, newMaxLength)
	}
	return RingBuffer[A]{
		maxLength: newMaxLength,
		items:     slices.Clone(rb.items),
	}, nil
}

// Len returns the number of elements currently held.
func (rb RingBuffer[A]) Len() int { return len(rb.items) }

// MaxLength returns the capacity ceiling.
func (rb RingBuffer[A]) MaxLength() int { return rb.maxLength }

// Items returns a copy of the contents, oldest to newest.
func (rb RingBuffer[A]) Items() []A { return slices.Clone(rb.items) }

// IsEmpty reports whether the buffer holds no elements.
func (rb RingBuffer[A]) IsEmpty() bool { return len(rb.items) == 0 }

// IsFull reports whether the buffer is at capacity.
func (rb RingBuffer[A]) IsFull() bool { return len(rb.items) == rb.maxLength }
