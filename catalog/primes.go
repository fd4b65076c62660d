package catalog

import (
	"math/big"

	"github.com/on-the-ground/intseq/arith"
	"github.com/on-the-ground/intseq/registry"
	"github.com/on-the-ground/intseq/strategy"
)

// knownMersenneExponents are the exponents of the first 39 Mersenne primes.
// Lucas-Lehmer takes over after the last of them.
var knownMersenneExponents = []int64{
	2, 3, 5, 7, 13, 17, 19, 31, 61, 89,
	107, 127, 521, 607, 1279, 2203, 2281, 3217, 4253, 4423,
	9689, 9941, 11213, 19937, 21701, 23209, 44497, 86243, 110503, 132049,
	216091, 756839, 859433, 1257787, 1398269, 2976221, 3021377, 6972593, 13466917,
}

const mersenneScanStart = 13466918

// lucasLehmer reports whether 2^p - 1 is prime for a prime p.
func lucasLehmer(p int64) bool {
	if p == 2 {
		return true
	}
	m := new(big.Int).Lsh(big.NewInt(1), uint(p))
	m.Sub(m, big.NewInt(1))
	s := big.NewInt(4)
	two := big.NewInt(2)
	for range p - 2 {
		s.Mul(s, s)
		s.Sub(s, two)
		s.Mod(s, m)
	}
	return s.Sign() == 0
}

// factored builds a scan filter from a test on the factorization.
func factored(env registry.Env, test func(x *big.Int, pp []arith.PrimePower) bool) strategy.Filter {
	return member(func(x *big.Int) (bool, error) {
		pp, err := env.Oracle.Factor(x)
		if err != nil {
			return false, err
		}
		return test(x, pp), nil
	})
}

func primes() []def {
	return []def{
		scan("A000040", "The prime numbers.", scanDef{start: 2}, func(env registry.Env) strategy.Filter {
			return strategy.FilterFunc(env.Oracle.PrimeRange)
		}),
		scan("A002808", "The composite numbers: numbers n of the form x*y for x > 1 and y > 1.", scanDef{start: 4}, func(env registry.Env) strategy.Filter {
			return member(func(x *big.Int) (bool, error) {
				return !env.Oracle.IsPrime(x), nil
			})
		}),
		scan("A005100", "Deficient numbers: numbers n such that sigma(n) < 2n.", scanDef{start: 1}, func(env registry.Env) strategy.Filter {
			return member(func(x *big.Int) (bool, error) {
				s, err := env.Oracle.DivisorSum(x, 1)
				if err != nil {
					return false, err
				}
				return s.Cmp(new(big.Int).Lsh(x, 1)) < 0, nil
			})
		}),
		scan("A005101", "Abundant numbers (sum of divisors of n exceeds 2n).", scanDef{start: 1}, func(env registry.Env) strategy.Filter {
			return member(func(x *big.Int) (bool, error) {
				s, err := env.Oracle.DivisorSum(x, 1)
				if err != nil {
					return false, err
				}
				return s.Cmp(new(big.Int).Lsh(x, 1)) > 0, nil
			})
		}),
		scan("A000961", "Powers of primes. Alternatively, 1 and the prime powers (p^k, p prime, k >= 1).", scanDef{start: 2, seeds: []int64{1}}, func(env registry.Env) strategy.Filter {
			return factored(env, func(_ *big.Int, pp []arith.PrimePower) bool {
				return len(pp) == 1
			})
		}),
		scan("A005117", "Squarefree numbers: numbers that are not divisible by a square greater than 1.", scanDef{start: 1}, func(env registry.Env) strategy.Filter {
			return factored(env, func(_ *big.Int, pp []arith.PrimePower) bool {
				for _, f := range pp {
					if f.Exp > 1 {
						return false
					}
				}
				return true
			})
		}),
		scan("A001694", "Powerful numbers, definition (1): if a prime p divides n then p^2 must also divide n.", scanDef{start: 1}, func(env registry.Env) strategy.Filter {
			return factored(env, func(_ *big.Int, pp []arith.PrimePower) bool {
				for _, f := range pp {
					if f.Exp < 2 {
						return false
					}
				}
				return true
			})
		}),
		scan("A001358", "Semiprimes (or biprimes): products of two primes.", scanDef{start: 1}, func(env registry.Env) strategy.Filter {
			return factored(env, func(_ *big.Int, pp []arith.PrimePower) bool {
				total := 0
				for _, f := range pp {
					total += f.Exp
				}
				return total == 2
			})
		}),
		scan("A001836", "Numbers n such that phi(2n-1) < phi(2n).", scanDef{start: 1}, func(env registry.Env) strategy.Filter {
			return member(func(x *big.Int) (bool, error) {
				even := new(big.Int).Lsh(x, 1)
				odd := new(big.Int).Sub(even, big.NewInt(1))
				a, err := env.Oracle.Totient(odd)
				if err != nil {
					return false, err
				}
				b, err := env.Oracle.Totient(even)
				if err != nil {
					return false, err
				}
				return a.Cmp(b) < 0, nil
			})
		}),
		scan("A111774", "Numbers that can be written as a sum of at least three consecutive positive integers.", scanDef{start: 1}, func(env registry.Env) strategy.Filter {
			return strategy.Predicate(func(x int64) (bool, error) {
				return !isPowerOfTwo(int(x)) && !env.Oracle.IsPrime(big.NewInt(x)), nil
			})
		}),
		scan("A000043", "Mersenne exponents: primes p such that 2^p - 1 is prime.", scanDef{start: mersenneScanStart, seeds: knownMersenneExponents, blockSize: 512}, func(env registry.Env) strategy.Filter {
			return strategy.FilterFunc(func(lo, hi int64) ([]*big.Int, error) {
				ps, err := env.Oracle.PrimeRange(lo, hi)
				if err != nil {
					return nil, err
				}
				out := make([]*big.Int, 0, 4)
				for _, p := range ps {
					if lucasLehmer(p.Int64()) {
						out = append(out, p)
					}
				}
				return out, nil
			})
		}),
	}
}
