package sequence_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/on-the-ground/intseq/sequence"
	"github.com/on-the-ground/intseq/strategy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naturals() *sequence.Sequence {
	return sequence.New("A000027", "The natural numbers.", 1,
		strategy.NewStateless(strategy.Shift(1, func(n int) (*big.Int, error) {
			return big.NewInt(int64(n)), nil
		})))
}

func squaresFromZero() *sequence.Sequence {
	return sequence.New("A000290", "The squares: a(n) = n^2.", 0,
		strategy.NewStateless(func(k int) (*big.Int, error) {
			return big.NewInt(int64(k * k)), nil
		}))
}

func strs(vals []*big.Int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return out
}

func TestNew_NegativeOffsetPanics(t *testing.T) {
	assert.Panics(t, func() {
		sequence.New("bad", "", -1, strategy.NewStateless(nil))
	})
}

func TestEval_DomainErrors(t *testing.T) {
	_, err := naturals().Eval(0)
	require.ErrorIs(t, err, sequence.ErrDomain)
	assert.EqualError(t, err, "input n (=0) must be a positive integer")

	var de *sequence.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.Offset)

	_, err = squaresFromZero().Eval(-3)
	require.ErrorIs(t, err, sequence.ErrDomain)
	assert.EqualError(t, err, "input n (=-3) must be an integer >= 0")

	twoBased := sequence.New("x", "x", 2, strategy.NewStateless(func(k int) (*big.Int, error) {
		return big.NewInt(int64(k)), nil
	}))
	_, err = twoBased.Eval(1)
	assert.EqualError(t, err, "input n (=1) must be an integer >= 2")
}

func TestEval_TranslatesOffset(t *testing.T) {
	v, err := naturals().Eval(7)
	require.NoError(t, err)
	assert.Equal(t, "7", v.String())

	v, err = squaresFromZero().Eval(0)
	require.NoError(t, err)
	assert.Equal(t, "0", v.String())
}

func TestEval_ReturnsCopies(t *testing.T) {
	r, err := strategy.NewRecurrence(strategy.Linear2(0, 1, 1, 1))
	require.NoError(t, err)
	fib := sequence.New("A000045", "Fibonacci numbers.", 0, r)

	v, err := fib.Eval(10)
	require.NoError(t, err)
	v.SetInt64(-1)

	list, err := fib.List(11)
	require.NoError(t, err)
	assert.Equal(t, "55", list[10].String())
	list[10].SetInt64(-1)

	v, err = fib.Eval(10)
	require.NoError(t, err)
	assert.Equal(t, "55", v.String())
}

func TestAt(t *testing.T) {
	seq := naturals()
	for _, in := range []any{5, int64(5), uint8(5), big.NewInt(5), big.NewRat(10, 2), 5.0, "5", "10/2"} {
		v, err := seq.At(in)
		require.NoErrorf(t, err, "input %v", in)
		assert.Equal(t, "5", v.String())
	}

	for _, in := range []any{2.5, big.NewRat(1, 3), "1/3", "x", struct{}{}} {
		_, err := seq.At(in)
		assert.ErrorIsf(t, err, sequence.ErrNotInteger, "input %v", in)
	}

	// integral but out of range: a domain failure, not a type failure
	_, err := seq.At(0.0)
	assert.ErrorIs(t, err, sequence.ErrDomain)
	assert.NotErrorIs(t, err, sequence.ErrNotInteger)

	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	_, err = seq.At(huge)
	assert.ErrorIs(t, err, sequence.ErrIndexRange)
}

func TestList(t *testing.T) {
	vals, err := squaresFromZero().List(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "4", "9", "16"}, strs(vals))

	vals, err = naturals().List(0)
	require.NoError(t, err)
	assert.Empty(t, vals)

	_, err = naturals().List(-1)
	assert.ErrorIs(t, err, sequence.ErrDomain)
}

func TestList_MatchesEval(t *testing.T) {
	seq := squaresFromZero()
	list, err := seq.List(50)
	require.NoError(t, err)
	for i, v := range list {
		got, err := seq.Eval(seq.Offset() + i)
		require.NoError(t, err)
		assert.Equal(t, v.String(), got.String())
	}
}

func TestSlice(t *testing.T) {
	seq := naturals()

	vals, err := seq.Slice(sequence.Span(0, 3))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, strs(vals))

	vals, err = seq.Slice(sequence.Span(3, 6))
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4", "5"}, strs(vals))

	spec, err := sequence.ParseSlice("2:12:3")
	require.NoError(t, err)
	vals, err = seq.Slice(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "5", "8", "11"}, strs(vals))

	spec, err = sequence.ParseSlice("5:0:-2")
	require.NoError(t, err)
	vals, err = seq.Slice(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "3", "1"}, strs(vals))

	spec, err = sequence.ParseSlice(":4")
	require.NoError(t, err)
	vals, err = squaresFromZero().Slice(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "4", "9"}, strs(vals))

	vals, err = seq.Slice(sequence.Span(10, 5))
	require.NoError(t, err)
	assert.Empty(t, vals)
}

func TestSlice_NegativeIndicesCountFromCeiling(t *testing.T) {
	spec, err := sequence.ParseSlice("-2:")
	require.NoError(t, err)
	vals, err := naturals().Slice(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"99998", "99999"}, strs(vals))
}

func TestSlice_Ceiling(t *testing.T) {
	seq := naturals()

	vals, err := seq.Slice(sequence.Span(0, sequence.SliceCeiling))
	require.NoError(t, err)
	assert.Len(t, vals, sequence.SliceCeiling-1) // position 0 is below the offset

	_, err = seq.Slice(sequence.Span(0, sequence.SliceCeiling+1))
	assert.ErrorIs(t, err, sequence.ErrSliceTooLong)

	_, err = seq.Slice(sequence.SliceSpec{})
	assert.ErrorIs(t, err, sequence.ErrSliceTooLong)
}

func TestSlice_ZeroStep(t *testing.T) {
	zero := 0
	_, err := naturals().Slice(sequence.SliceSpec{Step: &zero})
	assert.ErrorIs(t, err, sequence.ErrDomain)
}

func TestParseSlice_Invalid(t *testing.T) {
	for _, in := range []string{"", "5", "1:2:3:4", "a:b"} {
		_, err := sequence.ParseSlice(in)
		assert.Errorf(t, err, "input %q", in)
	}
}

func TestTerms(t *testing.T) {
	var got []string
	for v, err := range squaresFromZero().Terms(4) {
		require.NoError(t, err)
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"0", "1", "4", "9"}, got)

	// early break
	count := 0
	for range naturals().Terms(100) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestTerms_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	seq := sequence.New("x", "x", 0, strategy.NewStateless(func(k int) (*big.Int, error) {
		if k == 2 {
			return nil, boom
		}
		return big.NewInt(int64(k)), nil
	}))

	var errs []error
	seen := 0
	for _, err := range seq.Terms(10) {
		seen++
		if err != nil {
			errs = append(errs, err)
		}
	}
	assert.Equal(t, 3, seen)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], boom)
}

func TestAll_IsUnbounded(t *testing.T) {
	it, err := naturals().All()
	assert.Nil(t, it)
	assert.ErrorIs(t, err, sequence.ErrUnbounded)
}

func TestAccessors(t *testing.T) {
	seq := naturals()
	assert.Equal(t, "A000027", seq.Name())
	assert.Equal(t, 1, seq.Offset())
	assert.Equal(t, "The natural numbers.", seq.String())
	assert.Equal(t, seq.Description(), seq.String())
	assert.NotNil(t, seq.Strategy())
}
