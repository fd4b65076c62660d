package strategy

import (
	"fmt"
	"math/big"
)

// Generator produces the terms of a recurrence one at a time.
// A failed Next must leave the generator as it was, so that a retry
// produces the same term.
type Generator interface {
	Next() (*big.Int, error)
}

// StepFunc computes the term at absolute index n from the trailing window,
// oldest first. It must not retain or modify window.
type StepFunc func(n int, window []*big.Int) (*big.Int, error)

// Window is a Generator whose whole state is explicit: the seed terms, the
// last len(seeds) terms produced, and the absolute index of the next term.
type Window struct {
	seeds  []*big.Int
	window []*big.Int
	base   int
	next   int
	step   StepFunc
}

// NewWindow returns a generator whose first term has absolute index base.
// The seeds are emitted first and fix the order of the recurrence.
func NewWindow(base int, seeds []*big.Int, step StepFunc) *Window {
	if len(seeds) == 0 {
		panic("window generator needs at least one seed")
	}
	own := make([]*big.Int, len(seeds))
	for i, s := range seeds {
		own[i] = new(big.Int).Set(s)
	}
	return &Window{
		seeds:  own,
		window: make([]*big.Int, 0, len(seeds)),
		base:   base,
		next:   base,
		step:   step,
	}
}

func (w *Window) Next() (*big.Int, error) {
	var v *big.Int
	if i := w.next - w.base; i < len(w.seeds) {
		v = new(big.Int).Set(w.seeds[i])
	} else {
		var err error
		v, err = w.step(w.next, w.window)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", w.next, err)
		}
	}

	if len(w.window) == len(w.seeds) {
		copy(w.window, w.window[1:])
		w.window[len(w.window)-1] = v
	} else {
		w.window = append(w.window, v)
	}
	w.next++
	return new(big.Int).Set(v), nil
}

// Linear2 is a(n) = c1*a(n-1) + c2*a(n-2).
func Linear2(a0, a1, c1, c2 int64) *Window {
	return BigLinear2(big.NewInt(a0), big.NewInt(a1), c1, c2)
}

// BigLinear2 is Linear2 for seeds that do not fit in an int64.
func BigLinear2(a0, a1 *big.Int, c1, c2 int64) *Window {
	k1, k2 := big.NewInt(c1), big.NewInt(c2)
	return NewWindow(0, []*big.Int{a0, a1}, func(_ int, w []*big.Int) (*big.Int, error) {
		v := new(big.Int).Mul(k1, w[1])
		return v.Add(v, new(big.Int).Mul(k2, w[0])), nil
	})
}

// Linear3 is a(n) = c1*a(n-1) + c2*a(n-2) + c3*a(n-3).
func Linear3(a0, a1, a2, c1, c2, c3 int64) *Window {
	seeds := []*big.Int{big.NewInt(a0), big.NewInt(a1), big.NewInt(a2)}
	k1, k2, k3 := big.NewInt(c1), big.NewInt(c2), big.NewInt(c3)
	return NewWindow(0, seeds, func(_ int, w []*big.Int) (*big.Int, error) {
		v := new(big.Int).Mul(k1, w[2])
		v.Add(v, new(big.Int).Mul(k2, w[1]))
		v.Add(v, new(big.Int).Mul(k3, w[0]))
		return v, nil
	})
}

// Inhomogeneous2 is a(n) = c1*a(n-1) + c2*a(n-2) + forcing(n).
func Inhomogeneous2(a0, a1, c1, c2 int64, forcing func(n int) *big.Int) *Window {
	seeds := []*big.Int{big.NewInt(a0), big.NewInt(a1)}
	k1, k2 := big.NewInt(c1), big.NewInt(c2)
	return NewWindow(0, seeds, func(n int, w []*big.Int) (*big.Int, error) {
		v := new(big.Int).Mul(k1, w[1])
		v.Add(v, new(big.Int).Mul(k2, w[0]))
		v.Add(v, forcing(n))
		return v, nil
	})
}

// IndexedLinear2 is a(n) = c1(n)*a(n-1) + c2(n)*a(n-2) with a(base) = a0
// and a(base+1) = a1.
func IndexedLinear2(base int, a0, a1 int64, coeffs func(n int) (c1, c2 int64)) *Window {
	seeds := []*big.Int{big.NewInt(a0), big.NewInt(a1)}
	return NewWindow(base, seeds, func(n int, w []*big.Int) (*big.Int, error) {
		c1, c2 := coeffs(n)
		v := new(big.Int).Mul(big.NewInt(c1), w[1])
		v.Add(v, new(big.Int).Mul(big.NewInt(c2), w[0]))
		return v, nil
	})
}
