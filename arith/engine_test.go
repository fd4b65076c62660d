package arith_test

import (
	"math/big"
	"testing"

	"github.com/on-the-ground/intseq/arith"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigs(vals []*big.Int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return out
}

func TestEngine_DivisorCount(t *testing.T) {
	e := arith.NewEngine()
	for n, want := range map[int64]string{1: "1", 6: "4", 12: "6", 100: "9", 97: "2"} {
		got, err := e.DivisorCount(big.NewInt(n))
		require.NoError(t, err)
		assert.Equalf(t, want, got.String(), "tau(%d)", n)
	}

	_, err := e.DivisorCount(big.NewInt(0))
	assert.ErrorIs(t, err, arith.ErrUndefined)
	_, err = e.DivisorCount(big.NewInt(-4))
	assert.ErrorIs(t, err, arith.ErrUndefined)
}

func TestEngine_DivisorSum(t *testing.T) {
	e := arith.NewEngine()

	got, err := e.DivisorSum(big.NewInt(12), 1)
	require.NoError(t, err)
	assert.Equal(t, "28", got.String())

	got, err = e.DivisorSum(big.NewInt(6), 2)
	require.NoError(t, err)
	assert.Equal(t, "50", got.String()) // 1 + 4 + 9 + 36

	_, err = e.DivisorSum(big.NewInt(6), -1)
	assert.ErrorIs(t, err, arith.ErrUndefined)
}

func TestEngine_Totient(t *testing.T) {
	e := arith.NewEngine()
	for n, want := range map[int64]string{1: "1", 9: "6", 10: "4", 36: "12", 97: "96"} {
		got, err := e.Totient(big.NewInt(n))
		require.NoError(t, err)
		assert.Equalf(t, want, got.String(), "phi(%d)", n)
	}
}

func TestEngine_Factor(t *testing.T) {
	e := arith.NewEngine()

	pp, err := e.Factor(big.NewInt(1))
	require.NoError(t, err)
	assert.Empty(t, pp)

	pp, err = e.Factor(big.NewInt(360))
	require.NoError(t, err)
	require.Len(t, pp, 3)
	assert.Equal(t, "2", pp[0].Prime.String())
	assert.Equal(t, 3, pp[0].Exp)
	assert.Equal(t, "3", pp[1].Prime.String())
	assert.Equal(t, 2, pp[1].Exp)
	assert.Equal(t, "5", pp[2].Prime.String())
	assert.Equal(t, 1, pp[2].Exp)

	// 2^61 - 1 is prime
	m61 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))
	pp, err = e.Factor(m61)
	require.NoError(t, err)
	require.Len(t, pp, 1)
	assert.Equal(t, m61.String(), pp[0].Prime.String())

	// beyond uint64: 2^70 * 3
	huge := new(big.Int).Mul(new(big.Int).Lsh(big.NewInt(1), 70), big.NewInt(3))
	pp, err = e.Factor(huge)
	require.NoError(t, err)
	require.Len(t, pp, 2)
	assert.Equal(t, 70, pp[0].Exp)
	assert.Equal(t, "3", pp[1].Prime.String())
}

func TestEngine_FactorReturnsCopies(t *testing.T) {
	e := arith.NewEngine()
	pp, err := e.Factor(big.NewInt(12))
	require.NoError(t, err)
	pp[0].Prime.SetInt64(99)

	again, err := e.Factor(big.NewInt(12))
	require.NoError(t, err)
	assert.Equal(t, "2", again[0].Prime.String())
}

func TestEngine_PrimeRange(t *testing.T) {
	e := arith.NewEngine()

	got, err := e.PrimeRange(0, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "5", "7", "11", "13", "17", "19", "23", "29"}, bigs(got))

	got, err = e.PrimeRange(1000, 1050)
	require.NoError(t, err)
	assert.Equal(t, []string{"1009", "1013", "1019", "1021", "1031", "1033", "1039", "1049"}, bigs(got))

	got, err = e.PrimeRange(20, 20)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = e.PrimeRange(0, 1<<40)
	assert.ErrorIs(t, err, arith.ErrTooLarge)
}

func TestEngine_IsPrime(t *testing.T) {
	e := arith.NewEngine()
	assert.True(t, e.IsPrime(big.NewInt(2)))
	assert.True(t, e.IsPrime(big.NewInt(7919)))
	assert.False(t, e.IsPrime(big.NewInt(1)))
	assert.False(t, e.IsPrime(big.NewInt(0)))
	assert.False(t, e.IsPrime(big.NewInt(561)))
}

func TestEngine_Combinatorics(t *testing.T) {
	e := arith.NewEngine()

	assert.Equal(t, "252", e.Binomial(10, 5).String())
	assert.Equal(t, "0", e.Binomial(3, 5).String())
	assert.Equal(t, "0", e.Binomial(3, -1).String())

	f, err := e.Factorial(0)
	require.NoError(t, err)
	assert.Equal(t, "1", f.String())
	f, err = e.Factorial(20)
	require.NoError(t, err)
	assert.Equal(t, "2432902008176640000", f.String())
	_, err = e.Factorial(-1)
	assert.ErrorIs(t, err, arith.ErrUndefined)

	p, err := e.PartitionCount(100)
	require.NoError(t, err)
	assert.Equal(t, "190569292", p.String())
	p, err = e.PartitionCount(0)
	require.NoError(t, err)
	assert.Equal(t, "1", p.String())

	pw, err := e.Pow(big.NewInt(0), 0)
	require.NoError(t, err)
	assert.Equal(t, "1", pw.String())
	_, err = e.Pow(big.NewInt(2), -1)
	assert.ErrorIs(t, err, arith.ErrUndefined)
}

func band(m, h int) arith.Matrix {
	rows := make(arith.Matrix, m)
	for i := range rows {
		rows[i] = make([]int, m+h)
		for j := i; j <= i+h; j++ {
			rows[i][j] = 1
		}
	}
	return rows
}

func TestEngine_Permanent(t *testing.T) {
	e := arith.NewEngine(arith.WithMemoSize(8))

	got, err := e.Permanent(band(3, 3))
	require.NoError(t, err)
	assert.Equal(t, "36", got.String())

	got, err = e.Permanent(band(3, 4))
	require.NoError(t, err)
	assert.Equal(t, "76", got.String())

	got, err = e.Permanent(arith.Matrix{{1, 1}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, "2", got.String())

	got, err = e.Permanent(arith.Matrix{})
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())

	_, err = e.Permanent(arith.Matrix{{2, 0}, {0, 1}})
	assert.ErrorIs(t, err, arith.ErrNotBinary)

	_, err = e.Permanent(arith.Matrix{{1}, {1}})
	assert.ErrorIs(t, err, arith.ErrUndefined)

	_, err = e.Permanent(arith.Matrix{make([]int, 25)})
	assert.ErrorIs(t, err, arith.ErrTooLarge)
}

func TestObserve(t *testing.T) {
	var ops []string
	o := arith.Observe(arith.NewEngine(), func(op string) {
		ops = append(ops, op)
	})

	_, _ = o.DivisorCount(big.NewInt(6))
	_ = o.IsPrime(big.NewInt(7))
	_, _ = o.PrimeRange(2, 10)

	assert.Equal(t, []string{arith.OpDivisorCount, arith.OpIsPrime, arith.OpPrimeRange}, ops)
}
