package catalog

import (
	"fmt"
	"math/big"

	"github.com/on-the-ground/intseq/registry"
)

// sumOfAdjacent is first at n = 1 and dep(n+shift) + dep(n+shift-1) after.
func sumOfAdjacent(name, desc, dep string, first int64, shift int) def {
	return crossRef(name, desc, 1, []string{dep}, func(env registry.Env, n int) (*big.Int, error) {
		if n == 1 {
			return big.NewInt(first), nil
		}
		a, err := resolve(env, dep, n+shift)
		if err != nil {
			return nil, err
		}
		b, err := resolve(env, dep, n+shift-1)
		if err != nil {
			return nil, err
		}
		return a.Add(a, b), nil
	})
}

// mersenne is 2^p - 1 for the n-th Mersenne exponent p, and p.
func mersenne(env registry.Env, n int) (*big.Int, uint, error) {
	p, err := resolve(env, "A000043", n)
	if err != nil {
		return nil, 0, err
	}
	m := new(big.Int).Lsh(big.NewInt(1), uint(p.Uint64()))
	return m.Sub(m, big.NewInt(1)), uint(p.Uint64()), nil
}

func crossReferences() []def {
	return []def{
		crossRef("A000100", "a(n) is the number of compositions of n in which the maximum part size is 3.", 0, []string{"A000045", "A000073"}, func(env registry.Env, n int) (*big.Int, error) {
			sum := new(big.Int)
			for i := 0; i < n-2; i++ {
				f, err := resolve(env, "A000045", i+1)
				if err != nil {
					return nil, err
				}
				t, err := resolve(env, "A000073", n-i-1)
				if err != nil {
					return nil, err
				}
				sum.Add(sum, f.Mul(f, t))
			}
			return sum, nil
		}),
		crossRef("A046660", "Excess of n = number of prime divisors (with multiplicity) - number of prime divisors (without multiplicity).", 1, []string{"A001222", "A001221"}, func(env registry.Env, n int) (*big.Int, error) {
			total, err := resolve(env, "A001222", n)
			if err != nil {
				return nil, err
			}
			distinct, err := resolve(env, "A001221", n)
			if err != nil {
				return nil, err
			}
			return total.Sub(total, distinct), nil
		}),
		sumOfAdjacent("A090012", "Permanent of (0,1)-matrix of size n X (n+d) with d=2 and n zeros not on a line.", "A000153", 3, 1),
		sumOfAdjacent("A090013", "Permanent of (0,1)-matrix of size n X (n+d) with d=3 and n zeros not on a line.", "A000261", 4, 2),
		sumOfAdjacent("A090014", "Permanent of (0,1)-matrix of size n X (n+d) with d=4 and n zeros not on a line.", "A001909", 5, 3),
		sumOfAdjacent("A090015", "Permanent of (0,1)-matrix of size n X (n+d) with d=5 and n zeros not on a line.", "A001910", 6, 4),
		sumOfAdjacent("A090016", "Permanent of (0,1)-matrix of size n X (n+d) with d=6 and n zeros not on a line.", "A090010", 7, 0),
		crossRef("A002110", "Primorial numbers (first definition): product of first n primes. Sometimes written prime(n)#.", 0, []string{"A000040"}, func(env registry.Env, n int) (*big.Int, error) {
			primes, err := env.Resolver.Get("A000040")
			if err != nil {
				return nil, err
			}
			ps, err := primes.List(n)
			if err != nil {
				return nil, fmt.Errorf("resolve A000040 list(%d): %w", n, err)
			}
			prod := big.NewInt(1)
			for _, p := range ps {
				prod.Mul(prod, p)
			}
			return prod, nil
		}),
		crossRef("A000668", "Mersenne primes (primes of the form 2^n - 1).", 1, []string{"A000043"}, func(env registry.Env, n int) (*big.Int, error) {
			m, _, err := mersenne(env, n)
			return m, err
		}),
		crossRef("A000396", "Perfect numbers k: k is equal to the sum of the proper divisors of k.", 1, []string{"A000043"}, func(env registry.Env, n int) (*big.Int, error) {
			m, p, err := mersenne(env, n)
			if err != nil {
				return nil, err
			}
			return m.Lsh(m, p-1), nil
		}),
	}
}
