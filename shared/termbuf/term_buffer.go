package termbuf

import (
	"errors"
	"fmt"
)

var ErrOutOfOrder = errors.New("term out of order")

type CompareFunc[T any] func(a, b T) int

// Buffer is an append-only run of computed terms.
// When a compare function is set, every appended value must be strictly
// greater than the one before it.
// Buffer is not safe for concurrent use; owners serialise access.
type Buffer[T any] struct {
	data    []T
	compare CompareFunc[T]
}

func New[T any](capacity int, cmp CompareFunc[T]) *Buffer[T] {
	return &Buffer[T]{
		data:    make([]T, 0, capacity),
		compare: cmp,
	}
}

// Append adds vals in order. The whole batch is checked before the buffer
// is touched, so a rejected batch leaves it unchanged.
func (b *Buffer[T]) Append(vals ...T) error {
	if b.compare != nil {
		for i, v := range vals {
			var prev T
			switch {
			case i > 0:
				prev = vals[i-1]
			case len(b.data) > 0:
				prev = b.data[len(b.data)-1]
			default:
				continue
			}
			if b.compare(prev, v) >= 0 {
				return fmt.Errorf("%w: %v after %v at position %d", ErrOutOfOrder, v, prev, len(b.data)+i)
			}
		}
	}
	b.data = append(b.data, vals...)
	return nil
}

func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// At panics when i is outside [0, Len()).
func (b *Buffer[T]) At(i int) T {
	return b.data[i]
}

// Head copies the first n terms. n is clamped to Len().
func (b *Buffer[T]) Head(n int) []T {
	if n > len(b.data) {
		n = len(b.data)
	}
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	copy(out, b.data[:n])
	return out
}
