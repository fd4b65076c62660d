package catalog

import (
	"math/big"

	"github.com/on-the-ground/intseq/strategy"
)

func linear2(name, desc string, a0, a1, c1, c2 int64) def {
	return recurrence(name, desc, 0, 0, func() strategy.Generator {
		return strategy.Linear2(a0, a1, c1, c2)
	})
}

// fibonacciLike is a(n) = a(n-1) + a(n-2) from two large seeds.
func fibonacciLike(name, desc, a0, a1 string) def {
	x, ok := new(big.Int).SetString(a0, 10)
	if !ok {
		panic("bad seed " + a0)
	}
	y, ok := new(big.Int).SetString(a1, 10)
	if !ok {
		panic("bad seed " + a1)
	}
	return recurrence(name, desc, 0, 0, func() strategy.Generator {
		return strategy.BigLinear2(x, y, 1, 1)
	})
}

func recurrences() []def {
	return []def{
		recurrence("A000045", "Fibonacci numbers with index n >= 0", 0, 1, func() strategy.Generator {
			return strategy.Linear2(0, 1, 1, 1)
		}),
		linear2("A000032", "Lucas numbers beginning at 2: L(n) = L(n-1) + L(n-2), L(0) = 2, L(1) = 1.", 2, 1, 1, 1),
		recurrence("A000204", "Lucas numbers beginning with 1: L(n) = L(n-1) + L(n-2) with L(1) = 1, L(2) = 3.", 1, 0, func() strategy.Generator {
			return strategy.Linear2(1, 3, 1, 1)
		}),
		linear2("A001906", "F(2n) = bisection of Fibonacci sequence: a(n) = 3*a(n-1) - a(n-2).", 0, 1, 3, -1),
		linear2("A001045", "Jacobsthal sequence: a(n) = a(n-1) + 2*a(n-2), with a(0) = 0, a(1) = 1.", 0, 1, 1, 2),
		linear2("A000129", "Pell numbers: a(0) = 0, a(1) = 1; for n > 1, a(n) = 2*a(n-1) + a(n-2).", 0, 1, 2, 1),
		linear2("A001109", "a(n)^2 is a triangular number: a(n) = 6*a(n-1) - a(n-2) with a(0)=0, a(1)=1.", 0, 1, 6, -1),
		linear2("A015521", "Linear 2nd order recurrence, a(n) = 3 a(n-1) + 4 a(n-2).", 0, 1, 3, 4),
		linear2("A015523", "Linear 2nd order recurrence, a(n) = 3 a(n-1) + 5 a(n-2).", 0, 1, 3, 5),
		linear2("A015530", "Linear 2nd order recurrence, a(n) = 4 a(n-1) + 3 a(n-2).", 0, 1, 4, 3),
		linear2("A015531", "Linear 2nd order recurrence, a(n) = 4 a(n-1) + 5 a(n-2).", 0, 1, 4, 5),
		linear2("A015551", "Linear 2nd order recurrence, a(n) = 6 a(n-1) + 5 a(n-2).", 0, 1, 6, 5),
		linear2("A061084", "Fibonacci-like sequence in which each term is the difference of the two preceding terms.", 1, 2, -1, 1),
		recurrence("A000073", "Tribonacci numbers: a(n) = a(n-1) + a(n-2) + a(n-3) with a(0)=a(1)=0, a(2)=1.", 0, 0, func() strategy.Generator {
			return strategy.Linear3(0, 0, 1, 1, 1, 1)
		}),
		recurrence("A000213", "Tribonacci numbers: a(n) = a(n-1) + a(n-2) + a(n-3) with a(0)=a(1)=a(2)=1.", 0, 0, func() strategy.Generator {
			return strategy.Linear3(1, 1, 1, 1, 1, 1)
		}),
		fibonacciLike("A082411", "Second column of the Fibonacci-like primefree array.",
			"407389224418", "76343678551"),
		fibonacciLike("A083103", "Primefree Fibonacci-like sequence found by Knuth.",
			"1786772701928802632268715130455793", "1059683225053915111058165141686995"),
		fibonacciLike("A083104", "Primefree Fibonacci-like sequence with seeds found by Knuth.",
			"331635635998274737472200656430763", "1510028911088401971189590305498785"),
		fibonacciLike("A083105", "Primefree Fibonacci-like sequence found by Nicol.",
			"62638280004239857", "49463435743205655"),
		fibonacciLike("A083216", "Primefree Fibonacci-like sequence found by Wilf.",
			"20615674205555510", "3794765361567513"),
		recurrence("A001110", "Square triangular numbers: numbers that are both triangular and square.", 0, 0, func() strategy.Generator {
			return strategy.Inhomogeneous2(0, 1, 34, -1, func(int) *big.Int { return big.NewInt(2) })
		}),
		recurrence("A051959", "Linear 2nd order recurrence, a(n) = 2 a(n-1) + a(n-2) + 7n + 1.", 0, 0, func() strategy.Generator {
			return strategy.Inhomogeneous2(1, 10, 2, 1, func(n int) *big.Int { return big.NewInt(int64(7*n + 1)) })
		}),
		recurrence("A006882", "Double factorials n!!: a(n) = n*a(n-2) for n > 1, a(0) = a(1) = 1.", 0, 0, func() strategy.Generator {
			return strategy.IndexedLinear2(0, 1, 1, func(n int) (int64, int64) { return 0, int64(n) })
		}),
		recurrence("A000166", "Subfactorial or rencontres numbers, or derangements: number of permutations of n elements with no fixed points.", 0, 0, func() strategy.Generator {
			return strategy.IndexedLinear2(0, 1, 0, func(n int) (int64, int64) { return int64(n - 1), int64(n - 1) })
		}),
	}
}
