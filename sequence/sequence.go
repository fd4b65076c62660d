// Package sequence defines the contract every integer sequence in the catalog
// follows: a fixed offset, single-term evaluation, prefix listing, and
// bounded slicing over absolute positions.
//
// A Sequence owns exactly one strategy.Strategy and translates a public
// index n into the strategy's own index n - offset. Values handed to callers
// are always copies, so no caller can corrupt a cache.
package sequence

import (
	"fmt"
	"iter"
	"math/big"
	"strconv"

	"github.com/on-the-ground/intseq/strategy"
)

// Sequence is a named integer sequence starting at its offset.
type Sequence struct {
	name        string
	description string
	offset      int
	strategy    strategy.Strategy
}

// New panics on a negative offset.
func New(name, description string, offset int, s strategy.Strategy) *Sequence {
	if offset < 0 {
		panic(fmt.Sprintf("sequence %s: offset should be non-negative, got %d", name, offset))
	}
	return &Sequence{
		name:        name,
		description: description,
		offset:      offset,
		strategy:    s,
	}
}

func (s *Sequence) Name() string        { return s.name }
func (s *Sequence) Description() string { return s.description }
func (s *Sequence) Offset() int         { return s.offset }

func (s *Sequence) Strategy() strategy.Strategy { return s.strategy }

func (s *Sequence) String() string { return s.description }

// Eval returns the term at index n.
func (s *Sequence) Eval(n int) (*big.Int, error) {
	if n < s.offset {
		return nil, &DomainError{Input: strconv.Itoa(n), Offset: s.offset}
	}
	v, err := s.strategy.Term(n - s.offset)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", s.name, n, err)
	}
	return new(big.Int).Set(v), nil
}

// At is Eval for an index of any numeric type; see ToIndex.
func (s *Sequence) At(v any) (*big.Int, error) {
	n, err := ToIndex(v)
	if err != nil {
		return nil, err
	}
	return s.Eval(n)
}

// List returns the first count terms, starting at the offset.
func (s *Sequence) List(count int) ([]*big.Int, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count (=%d) must be non-negative", ErrDomain, count)
	}
	vals, err := s.strategy.Prefix(count)
	if err != nil {
		return nil, fmt.Errorf("%s list(%d): %w", s.name, count, err)
	}
	return copyAll(vals), nil
}

// Terms iterates over the first count terms. Iteration stops after the
// first error, which is yielded with a nil value.
func (s *Sequence) Terms(count int) iter.Seq2[*big.Int, error] {
	return func(yield func(*big.Int, error) bool) {
		for n := s.offset; n < s.offset+count; n++ {
			v, err := s.Eval(n)
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// All always fails: a sequence has no end, so it cannot be iterated whole.
func (s *Sequence) All() (iter.Seq2[*big.Int, error], error) {
	return nil, fmt.Errorf("%s: %w", s.name, ErrUnbounded)
}

func copyAll(vals []*big.Int) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = new(big.Int).Set(v)
	}
	return out
}
