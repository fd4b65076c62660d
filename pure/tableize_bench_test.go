package pure_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/on-the-ground/intseq/pure"
)

func naivePartitions(n int) *big.Int {
	if n < 0 {
		return big.NewInt(0)
	}
	if n == 0 {
		return big.NewInt(1)
	}
	sum := new(big.Int)
	for k := 1; ; k++ {
		g1 := k * (3*k - 1) / 2
		if g1 > n {
			break
		}
		g2 := k * (3*k + 1) / 2
		term := new(big.Int).Add(naivePartitions(n-g1), naivePartitions(n-g2))
		if k%2 == 1 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
	}
	return sum
}

func BenchmarkNaivePartitions25(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naivePartitions(25)
	}
}

func BenchmarkTableizedPartitions(b *testing.B) {
	sizes := []int{8, 64, 1024}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("TableSize_%d", size), func(b *testing.B) {
			var partitions func(int) (*big.Int, error)
			partitions = pure.Tableize1(func(n int) (*big.Int, error) {
				if n < 0 {
					return big.NewInt(0), nil
				}
				if n == 0 {
					return big.NewInt(1), nil
				}
				sum := new(big.Int)
				for k := 1; ; k++ {
					g1 := k * (3*k - 1) / 2
					if g1 > n {
						break
					}
					g2 := k * (3*k + 1) / 2
					p1, _ := partitions(n - g1)
					p2, _ := partitions(n - g2)
					term := new(big.Int).Add(p1, p2)
					if k%2 == 1 {
						sum.Add(sum, term)
					} else {
						sum.Sub(sum, term)
					}
				}
				return sum, nil
			}, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = partitions(25)
			}
		})
	}
}

func BenchmarkTableKeyBigInt(b *testing.B) {
	n := new(big.Int).Lsh(big.NewInt(1), 200)
	for i := 0; i < b.N; i++ {
		_ = pure.TableKey(n, 3)
	}
}
