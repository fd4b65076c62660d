package catalog

import (
	"math/big"

	"github.com/on-the-ground/intseq/arith"
	"github.com/on-the-ground/intseq/pure"
	"github.com/on-the-ground/intseq/registry"
	"github.com/on-the-ground/intseq/strategy"
)

// menage is the permanent recurrence a(n) = n*a(n-1) + (n-d)*a(n-2)
// shared by the permanents of the (0,1)-matrices with d zeros per row.
func menage(name, desc string, offset int, a0, a1 int64, d int) def {
	return recurrence(name, desc, offset, 0, func() strategy.Generator {
		return strategy.IndexedLinear2(offset, a0, a1, func(n int) (int64, int64) {
			return int64(n), int64(n - d)
		})
	})
}

// bandMatrix is the m x (m+h) matrix with ones at i <= j <= i+h.
func bandMatrix(m, h int) arith.Matrix {
	rows := make(arith.Matrix, m)
	for i := range rows {
		rows[i] = make([]int, m+h)
		for j := i; j <= i+h; j++ {
			rows[i][j] = 1
		}
	}
	return rows
}

// dancingSchool counts the ways n girls and n+h boys pair up when girl i
// may dance with boys i through i+h.
func dancingSchool(name, desc string, h int) def {
	return def{
		name:   name,
		desc:   desc,
		offset: 1,
		build: func(env registry.Env) (strategy.Strategy, error) {
			perm := pure.Tableize2(func(m, width int) (*big.Int, error) {
				return env.Oracle.Permanent(bandMatrix(m, width))
			}, max(env.Settings.Memo.TableSize, 1))
			return strategy.NewStateless(strategy.Shift(1, func(n int) (*big.Int, error) {
				return perm(n, h)
			})), nil
		},
	}
}

func permanents() []def {
	return []def{
		menage("A000153", "a(n) = n*a(n-1) + (n-2)*a(n-2), with a(0) = 0, a(1) = 1.", 0, 0, 1, 2),
		menage("A000255", "a(n) = n*a(n-1) + (n-1)*a(n-2), a(0) = 1, a(1) = 1.", 0, 1, 1, 1),
		menage("A000261", "a(n) = n*a(n-1) + (n-3)*a(n-2), with a(1) = 0, a(2) = 1.", 1, 0, 1, 3),
		menage("A001909", "a(n) = n*a(n-1) + (n-4)*a(n-2), a(2) = 0, a(3) = 1.", 2, 0, 1, 4),
		menage("A001910", "a(n) = n*a(n-1) + (n-5)*a(n-2), a(3) = 0, a(4) = 1.", 3, 0, 1, 5),
		recurrence("A090010", "Permanent of (0,1)-matrix of size n X (n+d) with d=6 and n-1 zeros not on a line.", 1, 0, func() strategy.Generator {
			return strategy.IndexedLinear2(1, 6, 43, func(n int) (int64, int64) {
				return int64(n + 5), int64(n - 1)
			})
		}),
		recurrence("A055790", "a(n) = n*a(n-1) + (n-2)*a(n-2) for n > 1; a(0) = 0, a(1) = 2.", 0, 0, func() strategy.Generator {
			return strategy.IndexedLinear2(0, 0, 2, func(n int) (int64, int64) {
				return int64(n), int64(n - 2)
			})
		}),
		dancingSchool("A079922", "Solution to the Dancing School Problem with n girls and n+3 boys.", 3),
		dancingSchool("A079923", "Solution to the Dancing School Problem with n girls and n+4 boys.", 4),
	}
}
