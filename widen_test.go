package ringbuf

import (
	"slices"
	"testing"
)

// =============================================================================
// Widen()
// =============================================================================

func TestWiden(t *testing.T) {
	t.Run("to_any_then_mixed_add", func(t *testing.T) {
		rb, err := New(3, 1)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		rb = rb.Add(2, 3)

		wide := Widen(rb, func(n int) any { return n })
		if wide.MaxLength() != 3 {
			t.Fatalf("Widen() maxLength = %d; want 3", wide.MaxLength())
		}
		if got := wide.Items(); !slices.Equal(got, []any{1, 2, 3}) {
			t.Fatalf("Widen() items = %v; want [1 2 3]", got)
		}

		// The widened buffer accepts the broader type and still evicts FIFO.
		wide = wide.Add("four")
		if got := wide.Items(); !slices.Equal(got, []any{2, 3, "four"}) {
			t.Errorf("Add on widened buffer = %v; want [2 3 four]", got)
		}
	})

	t.Run("numeric_widening", func(t *testing.T) {
		rb, _ := From([]int32{1, 2})
		wide := Widen(rb, func(n int32) int64 { return int64(n) })
		if got := wide.Items(); !slices.Equal(got, []int64{1, 2}) {
			t.Errorf("Widen() items = %v; want [1 2]", got)
		}
	})

	t.Run("original_unchanged", func(t *testing.T) {
		rb, _ := From([]int{1, 2})
		_ = Widen(rb, func(n int) any { return n })
		if got := rb.Items(); !slices.Equal(got, []int{1, 2}) {
			t.Errorf("receiver items = %v after Widen; want [1 2]", got)
		}
	})

	t.Run("drained_buffer", func(t *testing.T) {
		rb, _ := From([]int{1})
		_, drained := rb.Read(1)
		wide := Widen(drained, func(n int) any { return n })
		if !wide.IsEmpty() || wide.MaxLength() != 1 {
			t.Errorf("Widen(drained) len=%d maxLength=%d; want 0, 1", wide.Len(), wide.MaxLength())
		}
	})
}
