package catalog

import (
	"math/big"

	"github.com/on-the-ground/intseq/arith"
	"github.com/on-the-ground/intseq/registry"
)

func bn(n int) *big.Int {
	return big.NewInt(int64(n))
}

// oddDivisors lists the odd divisors of the number factored as pp.
func oddDivisors(pp []arith.PrimePower) []*big.Int {
	divs := []*big.Int{big.NewInt(1)}
	for _, f := range pp {
		if f.Prime.Bit(0) == 0 {
			continue
		}
		next := make([]*big.Int, 0, len(divs)*(f.Exp+1))
		for _, d := range divs {
			pk := new(big.Int).Set(d)
			next = append(next, pk)
			for e := 1; e <= f.Exp; e++ {
				pk = new(big.Int).Mul(pk, f.Prime)
				next = append(next, pk)
			}
		}
		divs = next
	}
	return divs
}

func countOddDivisors(pp []arith.PrimePower) int64 {
	count := int64(1)
	for _, f := range pp {
		if f.Prime.Bit(0) == 1 {
			count *= int64(f.Exp + 1)
		}
	}
	return count
}

func isPrimePower(env registry.Env, x *big.Int) (bool, error) {
	pp, err := env.Oracle.Factor(x)
	if err != nil {
		return false, err
	}
	return len(pp) == 1, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func arithmetic() []def {
	return []def{
		closed("A000005", "The integer sequence tau(n), which is the number of divisors of n.", 1, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.DivisorCount(bn(n))
		}),
		closed("A000010", "Euler's totient function", 1, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.Totient(bn(n))
		}),
		closed("A000203", "sigma(n) = sum of divisors of n. Also called sigma_1(n).", 1, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.DivisorSum(bn(n), 1)
		}),
		closed("A001157", "sigma_2(n): sum of squares of divisors of n", 1, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.DivisorSum(bn(n), 2)
		}),
		closed("A008683", "Moebius function mu(n).", 1, func(env registry.Env, n int) (*big.Int, error) {
			pp, err := env.Oracle.Factor(bn(n))
			if err != nil {
				return nil, err
			}
			for _, f := range pp {
				if f.Exp > 1 {
					return new(big.Int), nil
				}
			}
			if len(pp)%2 == 1 {
				return big.NewInt(-1), nil
			}
			return big.NewInt(1), nil
		}),
		closed("A001221", "Number of distinct primes dividing n (also called omega(n)).", 1, func(env registry.Env, n int) (*big.Int, error) {
			pp, err := env.Oracle.Factor(bn(n))
			if err != nil {
				return nil, err
			}
			return big.NewInt(int64(len(pp))), nil
		}),
		closed("A001222", "Number of prime divisors of n (counted with multiplicity).", 1, func(env registry.Env, n int) (*big.Int, error) {
			pp, err := env.Oracle.Factor(bn(n))
			if err != nil {
				return nil, err
			}
			total := 0
			for _, f := range pp {
				total += f.Exp
			}
			return bn(total), nil
		}),
		closed("A001227", "Number of odd divisors of n", 1, func(env registry.Env, n int) (*big.Int, error) {
			pp, err := env.Oracle.Factor(bn(n))
			if err != nil {
				return nil, err
			}
			return big.NewInt(countOddDivisors(pp)), nil
		}),
		closed("A006530", "Largest prime dividing n (with a(1)=1).", 1, func(env registry.Env, n int) (*big.Int, error) {
			pp, err := env.Oracle.Factor(bn(n))
			if err != nil {
				return nil, err
			}
			if len(pp) == 0 {
				return big.NewInt(1), nil
			}
			return pp[len(pp)-1].Prime, nil
		}),
		closed("A000720", "pi(n), the number of primes <= n. Sometimes called PrimePi(n)", 1, func(env registry.Env, n int) (*big.Int, error) {
			ps, err := env.Oracle.PrimeRange(2, int64(n)+1)
			if err != nil {
				return nil, err
			}
			return bn(len(ps)), nil
		}),
		closed("A000015", "Smallest prime power >= n.", 1, func(env registry.Env, n int) (*big.Int, error) {
			if n == 1 {
				return big.NewInt(1), nil
			}
			for m := bn(n); ; m.Add(m, big.NewInt(1)) {
				ok, err := isPrimePower(env, m)
				if err != nil {
					return nil, err
				}
				if ok {
					return m, nil
				}
			}
		}),
		closed("A000016", "a(n) = number of distinct binary necklaces of length n with an odd number of 1's, up to rotation.", 0, func(env registry.Env, n int) (*big.Int, error) {
			if n == 0 {
				return big.NewInt(1), nil
			}
			pp, err := env.Oracle.Factor(bn(n))
			if err != nil {
				return nil, err
			}
			sum := new(big.Int)
			for _, d := range oddDivisors(pp) {
				phi, err := env.Oracle.Totient(d)
				if err != nil {
					return nil, err
				}
				p, err := env.Oracle.Pow(big.NewInt(2), int64(n)/d.Int64())
				if err != nil {
					return nil, err
				}
				sum.Add(sum, phi.Mul(phi, p))
			}
			return sum.Quo(sum, bn(2*n)), nil
		}),
		closed("A111775", "Number of ways n can be written as a sum of at least three consecutive integers.", 0, func(env registry.Env, n int) (*big.Int, error) {
			if n <= 1 {
				return new(big.Int), nil
			}
			pp, err := env.Oracle.Factor(bn(n))
			if err != nil {
				return nil, err
			}
			k := countOddDivisors(pp)
			if n%2 == 0 {
				return big.NewInt(k - 1), nil
			}
			return big.NewInt(k - 2), nil
		}),
		closed("A111776", "a(n) is the largest k such that n can be written as sum of k consecutive integers.", 0, func(env registry.Env, n int) (*big.Int, error) {
			if n <= 1 {
				return big.NewInt(1), nil
			}
			pp, err := env.Oracle.Factor(bn(n))
			if err != nil {
				return nil, err
			}
			best := new(big.Int)
			for _, d := range oddDivisors(pp) {
				k := new(big.Int).Quo(bn(2*n), d)
				if d.Cmp(k) < 0 {
					k = d
				}
				if k.Cmp(best) > 0 {
					best = k
				}
			}
			return best, nil
		}),
		closed("A111787", "a(n) is the least k >= 3 such that n can be written as sum of k consecutive integers. a(n)=0 if such a k does not exist.", 1, func(env registry.Env, n int) (*big.Int, error) {
			if isPowerOfTwo(n) || env.Oracle.IsPrime(bn(n)) {
				return new(big.Int), nil
			}
			pp, err := env.Oracle.Factor(bn(n))
			if err != nil {
				return nil, err
			}
			for _, f := range pp {
				if f.Prime.Bit(0) == 1 {
					k := new(big.Int).Quo(bn(2*n), f.Prime)
					if f.Prime.Cmp(k) < 0 {
						return f.Prime, nil
					}
					return k, nil
				}
			}
			return new(big.Int), nil
		}),
	}
}
