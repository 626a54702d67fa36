package ringbuf

import (
	"fmt"
	"slices"
)

// Equal reports whether x and y have the same maxLength and the same
// ordered contents.
func Equal[A comparable](x, y RingBuffer[A]) bool {
	return x.maxLength == y.maxLength && slices.Equal(x.items, y.items)
}

// EqualFunc is Equal for element types that are not comparable, or for
// buffers over different element types; eq is applied to each pair of
// elements in order.
func EqualFunc[A, B any](x RingBuffer[A], y RingBuffer[B], eq func(A, B) bool) bool {
	return x.maxLength == y.maxLength && slices.EqualFunc(x.items, y.items, eq)
}

// String renders the capacity and the contents oldest to newest.
// Diagnostic only; the format is not stable.
func (rb RingBuffer[A]) String() string {
	return fmt.Sprintf("RingBuffer(maxLength=%d, items=%v)", rb.maxLength, rb.items)
}
