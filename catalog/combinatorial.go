package catalog

import (
	"math/big"

	"github.com/on-the-ground/intseq/registry"
	"github.com/on-the-ground/intseq/strategy"
)

// stirlingSum generates a(n) = sum_k x^k S(n,k) over the Stirling numbers
// of the second kind. It keeps row n of the triangle between calls.
type stirlingSum struct {
	x   int64
	row []*big.Int
}

func newStirlingSum(x int64) *stirlingSum {
	return &stirlingSum{x: x, row: []*big.Int{big.NewInt(1)}}
}

func (s *stirlingSum) Next() (*big.Int, error) {
	sum := new(big.Int)
	xk := big.NewInt(1)
	x := big.NewInt(s.x)
	for _, v := range s.row {
		sum.Add(sum, new(big.Int).Mul(xk, v))
		xk.Mul(xk, x)
	}

	next := make([]*big.Int, len(s.row)+1)
	next[0] = new(big.Int)
	for k := 1; k < len(next); k++ {
		v := new(big.Int)
		if k < len(s.row) {
			v.Mul(big.NewInt(int64(k)), s.row[k])
		}
		next[k] = v.Add(v, s.row[k-1])
	}
	s.row = next
	return sum, nil
}

func combinatorial() []def {
	return []def{
		closed("A000142", "Factorial numbers n! = 1*2*3*4*...*n (order of symmetric group S_n, number of permutations of n letters).", 0, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.Factorial(int64(n))
		}),
		closed("A000165", "Double factorial of even numbers: (2n)!! = 2^n*n!.", 0, func(env registry.Env, n int) (*big.Int, error) {
			f, err := env.Oracle.Factorial(int64(n))
			if err != nil {
				return nil, err
			}
			return f.Lsh(f, uint(n)), nil
		}),
		closed("A001147", "Double factorial of odd numbers: a(n) = (2*n-1)!! = 1*3*5*...*(2*n-1).", 0, func(env registry.Env, n int) (*big.Int, error) {
			num, err := env.Oracle.Factorial(int64(2 * n))
			if err != nil {
				return nil, err
			}
			den, err := env.Oracle.Factorial(int64(n))
			if err != nil {
				return nil, err
			}
			den.Lsh(den, uint(n))
			return num.Quo(num, den), nil
		}),
		closed("A000984", "Central binomial coefficients: binomial(2*n,n) = (2*n)!/(n!)^2.", 0, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.Binomial(int64(2*n), int64(n)), nil
		}),
		closed("A001405", "a(n) = binomial(n, floor(n/2)).", 0, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.Binomial(int64(n), int64(n/2)), nil
		}),
		closed("A000108", "Catalan numbers: C(n) = binomial(2n,n)/(n+1) = (2n)!/(n!(n+1)!).", 0, func(env registry.Env, n int) (*big.Int, error) {
			c := env.Oracle.Binomial(int64(2*n), int64(n))
			return c.Quo(c, bn(n+1)), nil
		}),
		closed("A000041", "a(n) = number of partitions of n (the partition numbers).", 0, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.PartitionCount(int64(n))
		}),
		recurrence("A000110", "Bell or exponential numbers: number of ways to partition a set of n labeled elements.", 0, 0, func() strategy.Generator {
			return newStirlingSum(1)
		}),
		recurrence("A000587", "Rao Uppuluri-Carpenter numbers (or complementary Bell numbers).", 0, 0, func() strategy.Generator {
			return newStirlingSum(-1)
		}),
	}
}
