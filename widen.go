package ringbuf

// Widen converts a buffer to a broader element type. conv is applied to each
// element in order and the result keeps the same maxLength and contents. Go
// generics carry no subtype variance, so the widening conversion is explicit:
//
//	wide := ringbuf.Widen(rb, func(n int) any { return n })
//	wide = wide.Add("mixed")
func Widen[B, A any](rb RingBuffer[A], conv func(A) B) RingBuffer[B] {
	items := make([]B, len(rb.items))
	for i, a := range rb.items {
		items[i] = conv(a)
	}
	return RingBuffer[B]{maxLength: rb.maxLength, items: items}
}
