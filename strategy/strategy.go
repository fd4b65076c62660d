// Package strategy holds the ways a sequence can produce and keep its terms.
//
// A Strategy is indexed from its own zero: the owning sequence translates a
// public index n into k = n - offset before asking. Three strategies exist:
//
//   - Stateless recomputes every term from a closed form.
//   - Recurrence keeps every term produced so far and resumes a Generator
//     to extend the run.
//   - Scan keeps every member found so far and searches the integers in
//     fixed-size blocks for more.
package strategy

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrNegativeIndex = errors.New("negative term index")
	// ErrScanExhausted is returned when a scan with a limit reaches it
	// before finding the requested member.
	ErrScanExhausted = errors.New("scan limit reached")
	ErrOutOfBlock    = errors.New("filter returned a value outside its block")
)

// Values returned by a Strategy may be shared with its cache; callers must
// not modify them.
type Strategy interface {
	// Term is the k-th raw value, k >= 0.
	Term(k int) (*big.Int, error)
	// Prefix is the first n raw values. n == 0 gives an empty slice.
	Prefix(n int) ([]*big.Int, error)
}

func checkIndex(k int) error {
	if k < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIndex, k)
	}
	return nil
}

func compareBig(a, b *big.Int) int {
	return a.Cmp(b)
}
