package arith

import "math/big"

// Op names reported by Observe.
const (
	OpDivisorCount   = "divisor_count"
	OpDivisorSum     = "divisor_sum"
	OpTotient        = "totient"
	OpIsPrime        = "is_prime"
	OpPrimeRange     = "prime_range"
	OpFactor         = "factor"
	OpBinomial       = "binomial"
	OpFactorial      = "factorial"
	OpPartitionCount = "partition_count"
	OpPermanent      = "permanent"
	OpPow            = "pow"
)

// Observe wraps o so that fn is called with the operation name before each call.
func Observe(o Oracle, fn func(op string)) Oracle {
	return &observed{inner: o, fn: fn}
}

type observed struct {
	inner Oracle
	fn    func(op string)
}

func (o *observed) DivisorCount(n *big.Int) (*big.Int, error) {
	o.fn(OpDivisorCount)
	return o.inner.DivisorCount(n)
}

func (o *observed) DivisorSum(n *big.Int, k int) (*big.Int, error) {
	o.fn(OpDivisorSum)
	return o.inner.DivisorSum(n, k)
}

func (o *observed) Totient(n *big.Int) (*big.Int, error) {
	o.fn(OpTotient)
	return o.inner.Totient(n)
}

func (o *observed) IsPrime(n *big.Int) bool {
	o.fn(OpIsPrime)
	return o.inner.IsPrime(n)
}

func (o *observed) PrimeRange(lo, hi int64) ([]*big.Int, error) {
	o.fn(OpPrimeRange)
	return o.inner.PrimeRange(lo, hi)
}

func (o *observed) Factor(n *big.Int) ([]PrimePower, error) {
	o.fn(OpFactor)
	return o.inner.Factor(n)
}

func (o *observed) Binomial(n, k int64) *big.Int {
	o.fn(OpBinomial)
	return o.inner.Binomial(n, k)
}

func (o *observed) Factorial(n int64) (*big.Int, error) {
	o.fn(OpFactorial)
	return o.inner.Factorial(n)
}

func (o *observed) PartitionCount(n int64) (*big.Int, error) {
	o.fn(OpPartitionCount)
	return o.inner.PartitionCount(n)
}

func (o *observed) Permanent(m Matrix) (*big.Int, error) {
	o.fn(OpPermanent)
	return o.inner.Permanent(m)
}

func (o *observed) Pow(base *big.Int, exp int64) (*big.Int, error) {
	o.fn(OpPow)
	return o.inner.Pow(base, exp)
}
