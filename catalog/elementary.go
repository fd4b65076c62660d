package catalog

import (
	"math/big"
	"math/bits"
	"strconv"

	"github.com/on-the-ground/intseq/registry"
)

func poly(n int, f func(n int64) int64) (*big.Int, error) {
	return big.NewInt(f(int64(n))), nil
}

// power is base^n through the oracle.
func power(base int64) Formula {
	return func(env registry.Env, n int) (*big.Int, error) {
		return env.Oracle.Pow(big.NewInt(base), int64(n))
	}
}

func elementary() []def {
	return []def{
		closed("A000027", "The natural numbers.", 1, func(_ registry.Env, n int) (*big.Int, error) {
			return big.NewInt(int64(n)), nil
		}),
		// Must never consult the oracle.
		closed("A000004", "The zero sequence.", 0, func(registry.Env, int) (*big.Int, error) {
			return new(big.Int), nil
		}),
		closed("A000012", "The all 1's sequence.", 0, func(registry.Env, int) (*big.Int, error) {
			return big.NewInt(1), nil
		}),
		closed("A001477", "The nonnegative integers.", 0, func(_ registry.Env, n int) (*big.Int, error) {
			return big.NewInt(int64(n)), nil
		}),
		closed("A004526", "The nonnegative integers repeated.", 0, func(_ registry.Env, n int) (*big.Int, error) {
			return poly(n, func(n int64) int64 { return n / 2 })
		}),
		closed("A005408", "The odd numbers a(n) = 2n + 1.", 0, func(_ registry.Env, n int) (*big.Int, error) {
			return poly(n, func(n int64) int64 { return 2*n + 1 })
		}),
		closed("A000007", "The characteristic function of 0: a(n) = 0^n.", 0, power(0)),
		closed("A000079", "Powers of 2: a(n) = 2^n.", 0, power(2)),
		closed("A000244", "Powers of 3: a(n) = 3^n.", 0, power(3)),
		closed("A000302", "Powers of 4: a(n) = 4^n.", 0, power(4)),
		closed("A000225", "2^n - 1.", 0, func(env registry.Env, n int) (*big.Int, error) {
			v, err := power(2)(env, n)
			if err != nil {
				return nil, err
			}
			return v.Sub(v, big.NewInt(1)), nil
		}),
		closed("A002275", "Repunits: (10^n - 1)/9. Often denoted by R_n.", 0, func(env registry.Env, n int) (*big.Int, error) {
			v, err := power(10)(env, n)
			if err != nil {
				return nil, err
			}
			v.Sub(v, big.NewInt(1))
			return v.Quo(v, big.NewInt(9)), nil
		}),
		closed("A000169", "Number of labeled rooted trees with n nodes: n^(n-1).", 1, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.Pow(big.NewInt(int64(n)), int64(n-1))
		}),
		closed("A000272", "Number of labeled rooted trees with n nodes: n^(n-2).", 1, func(env registry.Env, n int) (*big.Int, error) {
			if n <= 2 {
				return big.NewInt(1), nil
			}
			return env.Oracle.Pow(big.NewInt(int64(n)), int64(n-2))
		}),
		closed("A000312", "Number of labeled mappings from n points to themselves (endofunctions): n^n.", 0, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.Pow(big.NewInt(int64(n)), int64(n))
		}),
		closed("A000290", "The squares: a(n) = n^2.", 0, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.Pow(big.NewInt(int64(n)), 2)
		}),
		closed("A000578", "The cubes: n^3", 0, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.Pow(big.NewInt(int64(n)), 3)
		}),
		closed("A000326", "Pentagonal numbers: n(3n-1)/2.", 0, func(_ registry.Env, n int) (*big.Int, error) {
			v := mulInts(n, 3*n-1)
			return v.Rsh(v, 1), nil
		}),
		closed("A002378", "Oblong (or pronic, or heteromecic) numbers: n(n+1).", 0, func(_ registry.Env, n int) (*big.Int, error) {
			return mulInts(n, n+1), nil
		}),
		closed("A002620", "Quarter-squares: floor(n/2)*ceiling(n/2). Equivalently, floor(n^2/4).", 0, func(_ registry.Env, n int) (*big.Int, error) {
			return mulInts(n/2, (n+1)/2), nil
		}),
		closed("A000217", "Triangular numbers: a(n) = C(n+1,2) = n(n+1)/2 = 0+1+2+...+n.", 0, func(_ registry.Env, n int) (*big.Int, error) {
			v := mulInts(n, n+1)
			return v.Rsh(v, 1), nil
		}),
		closed("A000292", "Tetrahedral (or pyramidal) numbers: C(n+2,3) = n(n+1)(n+2)/6.", 0, func(env registry.Env, n int) (*big.Int, error) {
			return env.Oracle.Binomial(int64(n+2), 3), nil
		}),
		closed("A000330", "Square pyramidal numbers: 0^2+1^2+2^2+...+n^2 = n(n+1)(2n+1)/6.", 0, func(_ registry.Env, n int) (*big.Int, error) {
			v := mulInts(n, n+1, 2*n+1)
			return v.Quo(v, big.NewInt(6)), nil
		}),
		closed("A000120", "1's-counting sequence: number of 1's in binary expansion of n.", 0, func(_ registry.Env, n int) (*big.Int, error) {
			return big.NewInt(int64(bits.OnesCount(uint(n)))), nil
		}),
		closed("A000030", "Initial digit of n", 0, func(_ registry.Env, n int) (*big.Int, error) {
			return big.NewInt(int64(strconv.Itoa(n)[0] - '0')), nil
		}),
	}
}

func mulInts(factors ...int) *big.Int {
	v := big.NewInt(1)
	for _, f := range factors {
		v.Mul(v, big.NewInt(int64(f)))
	}
	return v
}
