package strategy

import "math/big"

type TermFunc func(k int) (*big.Int, error)

// Stateless recomputes on every call and holds no mutable state.
type Stateless struct {
	fn TermFunc
}

func NewStateless(fn TermFunc) *Stateless {
	return &Stateless{fn: fn}
}

func (s *Stateless) Term(k int) (*big.Int, error) {
	if err := checkIndex(k); err != nil {
		return nil, err
	}
	return s.fn(k)
}

func (s *Stateless) Prefix(n int) ([]*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}
	out := make([]*big.Int, 0, n)
	for k := 0; k < n; k++ {
		v, err := s.fn(k)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Shift adapts a formula written against the public index n of a sequence
// starting at offset.
func Shift(offset int, fn func(n int) (*big.Int, error)) TermFunc {
	return func(k int) (*big.Int, error) {
		return fn(k + offset)
	}
}
