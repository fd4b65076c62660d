package arith

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrUndefined is returned when an operation is not defined for its input,
	// e.g. factoring zero or a negative number.
	ErrUndefined = errors.New("operation undefined for input")

	ErrNotBinary = errors.New("matrix is not a (0,1)-matrix")
	ErrTooLarge  = errors.New("input too large")
)

// PrimePower is one factor p^e of a factorization.
type PrimePower struct {
	Prime *big.Int
	Exp   int
}

// Matrix is a dense row-major integer matrix.
type Matrix [][]int

func (m Matrix) String() string {
	return fmt.Sprint([][]int(m))
}

// Oracle is the arithmetic capability every sequence formula is built on.
// Implementations must be pure: the same inputs always give the same output.
// They may be arbitrarily slow.
type Oracle interface {
	// DivisorCount is tau(n).
	DivisorCount(n *big.Int) (*big.Int, error)
	// DivisorSum is sigma_k(n), the sum of the k-th powers of the divisors of n.
	// k == 0 gives tau(n).
	DivisorSum(n *big.Int, k int) (*big.Int, error)
	// Totient is Euler's phi(n).
	Totient(n *big.Int) (*big.Int, error)
	IsPrime(n *big.Int) bool
	// PrimeRange lists the primes p with lo <= p < hi in increasing order.
	PrimeRange(lo, hi int64) ([]*big.Int, error)
	// Factor returns the prime factorization of n > 0 ordered by prime.
	// Factor(1) is empty.
	Factor(n *big.Int) ([]PrimePower, error)
	Binomial(n, k int64) *big.Int
	Factorial(n int64) (*big.Int, error)
	// PartitionCount is p(n), the number of partitions of n.
	PartitionCount(n int64) (*big.Int, error)
	// Permanent of a (0,1)-matrix with no more rows than columns.
	Permanent(m Matrix) (*big.Int, error)
	Pow(base *big.Int, exp int64) (*big.Int, error)
}
