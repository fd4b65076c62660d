package arith

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/on-the-ground/intseq/pure"
)

const (
	defaultMemoSize = 4096

	// maxPermanentCols bounds the 2^cols state table of Permanent.
	maxPermanentCols = 24
	// maxSieveSpan bounds a single PrimeRange segment.
	maxSieveSpan = 1 << 26
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Engine is the math/big implementation of Oracle.
// Factor, PartitionCount and Permanent are memoized; everything else is
// recomputed on every call. Engine is safe for concurrent use.
type Engine struct {
	factor     func(*big.Int) ([]PrimePower, error)
	partitions func(int64) (*big.Int, error)
	permanent  func(Matrix) (*big.Int, error)
}

type EngineOption func(*engineOptions)

type engineOptions struct {
	memoSize int
}

// WithMemoSize sets the size of each memo table generation.
func WithMemoSize(size int) EngineOption {
	return func(o *engineOptions) {
		if size > 0 {
			o.memoSize = size
		}
	}
}

func NewEngine(opts ...EngineOption) *Engine {
	o := engineOptions{memoSize: defaultMemoSize}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		factor:     pure.Tableize1(factor, o.memoSize),
		partitions: pure.Tableize1(partitionCount, o.memoSize),
		permanent:  pure.Tableize1(permanent, o.memoSize),
	}
}

var _ Oracle = (*Engine)(nil)

func (e *Engine) Factor(n *big.Int) ([]PrimePower, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: factor(%v)", ErrUndefined, n)
	}
	cached, err := e.factor(n)
	if err != nil {
		return nil, err
	}
	// the memo table owns cached; hand out a copy
	out := make([]PrimePower, len(cached))
	for i, pp := range cached {
		out[i] = PrimePower{Prime: new(big.Int).Set(pp.Prime), Exp: pp.Exp}
	}
	return out, nil
}

func (e *Engine) DivisorCount(n *big.Int) (*big.Int, error) {
	return e.DivisorSum(n, 0)
}

func (e *Engine) DivisorSum(n *big.Int, k int) (*big.Int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: sigma_%d", ErrUndefined, k)
	}
	factors, err := e.Factor(n)
	if err != nil {
		return nil, err
	}
	result := big.NewInt(1)
	for _, pp := range factors {
		if k == 0 {
			result.Mul(result, big.NewInt(int64(pp.Exp+1)))
			continue
		}
		pk := new(big.Int).Exp(pp.Prime, big.NewInt(int64(k)), nil)
		sum := big.NewInt(1)
		term := big.NewInt(1)
		for i := 0; i < pp.Exp; i++ {
			term.Mul(term, pk)
			sum.Add(sum, term)
		}
		result.Mul(result, sum)
	}
	return result, nil
}

func (e *Engine) Totient(n *big.Int) (*big.Int, error) {
	factors, err := e.Factor(n)
	if err != nil {
		return nil, err
	}
	result := big.NewInt(1)
	for _, pp := range factors {
		result.Mul(result, new(big.Int).Sub(pp.Prime, one))
		if pp.Exp > 1 {
			result.Mul(result, new(big.Int).Exp(pp.Prime, big.NewInt(int64(pp.Exp-1)), nil))
		}
	}
	return result, nil
}

// IsPrime is exact below 2^64 and probabilistic above.
func (e *Engine) IsPrime(n *big.Int) bool {
	return n != nil && n.Sign() > 0 && n.ProbablyPrime(20)
}

func (e *Engine) PrimeRange(lo, hi int64) ([]*big.Int, error) {
	if lo < 2 {
		lo = 2
	}
	if hi <= lo {
		return []*big.Int{}, nil
	}
	if hi-lo > maxSieveSpan {
		return nil, fmt.Errorf("%w: prime range [%d, %d) spans more than %d integers", ErrTooLarge, lo, hi, maxSieveSpan)
	}
	return segmentedSieve(lo, hi), nil
}

func (e *Engine) Binomial(n, k int64) *big.Int {
	if k < 0 || n < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(n, k)
}

func (e *Engine) Factorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: factorial(%d)", ErrUndefined, n)
	}
	return new(big.Int).MulRange(1, n), nil
}

func (e *Engine) PartitionCount(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: partitions(%d)", ErrUndefined, n)
	}
	v, err := e.partitions(n)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(v), nil
}

func (e *Engine) Permanent(m Matrix) (*big.Int, error) {
	v, err := e.permanent(m)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(v), nil
}

func (e *Engine) Pow(base *big.Int, exp int64) (*big.Int, error) {
	if exp < 0 {
		return nil, fmt.Errorf("%w: negative exponent %d", ErrUndefined, exp)
	}
	return new(big.Int).Exp(base, big.NewInt(exp), nil), nil
}

// factor is trial division with a primality shortcut on the cofactor.
func factor(n *big.Int) ([]PrimePower, error) {
	if n.IsUint64() {
		return factorUint64(n.Uint64()), nil
	}

	var out []PrimePower
	m := new(big.Int).Set(n)
	q, r := new(big.Int), new(big.Int)
	for d := big.NewInt(2); ; {
		if m.Cmp(one) == 0 {
			break
		}
		if m.ProbablyPrime(20) {
			out = append(out, PrimePower{Prime: m, Exp: 1})
			break
		}
		if new(big.Int).Mul(d, d).Cmp(m) > 0 {
			out = append(out, PrimePower{Prime: m, Exp: 1})
			break
		}
		exp := 0
		for {
			q.QuoRem(m, d, r)
			if r.Sign() != 0 {
				break
			}
			m.Set(q)
			exp++
		}
		if exp > 0 {
			out = append(out, PrimePower{Prime: new(big.Int).Set(d), Exp: exp})
		}
		if d.Cmp(two) == 0 {
			d.SetInt64(3)
		} else {
			d.Add(d, two)
		}
	}
	return out, nil
}

func factorUint64(n uint64) []PrimePower {
	var out []PrimePower
	push := func(p uint64, e int) {
		out = append(out, PrimePower{Prime: new(big.Int).SetUint64(p), Exp: e})
	}
	isPrime := func(v uint64) bool { return new(big.Int).SetUint64(v).ProbablyPrime(0) }
	if n > 3 && isPrime(n) {
		push(n, 1)
		return out
	}
	for d := uint64(2); d <= n/d; {
		exp := 0
		for n%d == 0 {
			n /= d
			exp++
		}
		if exp > 0 {
			push(d, exp)
			if n > d && isPrime(n) {
				break
			}
		}
		if d == 2 {
			d = 3
		} else {
			d += 2
		}
	}
	if n > 1 {
		push(n, 1)
	}
	return out
}

func segmentedSieve(lo, hi int64) []*big.Int {
	limit := isqrt(hi - 1)
	base := make([]bool, limit+1) // true = composite
	var smallPrimes []int64
	for i := int64(2); i <= limit; i++ {
		if base[i] {
			continue
		}
		smallPrimes = append(smallPrimes, i)
		for j := i * i; j <= limit; j += i {
			base[j] = true
		}
	}

	composite := make([]bool, hi-lo)
	for _, p := range smallPrimes {
		start := max(p*p, (lo+p-1)/p*p)
		for j := start; j < hi; j += p {
			composite[j-lo] = true
		}
	}

	out := make([]*big.Int, 0)
	for i, c := range composite {
		if !c {
			out = append(out, big.NewInt(lo+int64(i)))
		}
	}
	return out
}

func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	r := int64(new(big.Int).Sqrt(big.NewInt(n)).Int64())
	return r
}

// partitionCount evaluates Euler's pentagonal number recurrence bottom-up.
func partitionCount(n int64) (*big.Int, error) {
	p := make([]*big.Int, n+1)
	p[0] = big.NewInt(1)
	for m := int64(1); m <= n; m++ {
		sum := new(big.Int)
		for k := int64(1); ; k++ {
			g1 := k * (3*k - 1) / 2
			if g1 > m {
				break
			}
			term := new(big.Int).Set(p[m-g1])
			if g2 := k * (3*k + 1) / 2; g2 <= m {
				term.Add(term, p[m-g2])
			}
			if k%2 == 1 {
				sum.Add(sum, term)
			} else {
				sum.Sub(sum, term)
			}
		}
		p[m] = sum
	}
	return p[n], nil
}

// permanent counts the ways to give every row a distinct column holding a 1.
// State: the set of columns used by the rows placed so far.
func permanent(m Matrix) (*big.Int, error) {
	rows := len(m)
	if rows == 0 {
		return big.NewInt(1), nil
	}
	cols := len(m[0])
	for _, row := range m {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: ragged matrix", ErrUndefined)
		}
		for _, v := range row {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("%w: entry %d", ErrNotBinary, v)
			}
		}
	}
	if rows > cols {
		return nil, fmt.Errorf("%w: %dx%d matrix has more rows than columns", ErrUndefined, rows, cols)
	}
	if cols > maxPermanentCols {
		return nil, fmt.Errorf("%w: %d columns exceeds %d", ErrTooLarge, cols, maxPermanentCols)
	}

	ways := make([]*big.Int, 1<<cols)
	ways[0] = big.NewInt(1)
	total := new(big.Int)
	for mask := 0; mask < len(ways); mask++ {
		w := ways[mask]
		if w == nil {
			continue
		}
		row := bits.OnesCount(uint(mask))
		if row == rows {
			total.Add(total, w)
			continue
		}
		for c := 0; c < cols; c++ {
			bit := 1 << c
			if mask&bit != 0 || m[row][c] == 0 {
				continue
			}
			next := mask | bit
			if ways[next] == nil {
				ways[next] = new(big.Int)
			}
			ways[next].Add(ways[next], w)
		}
	}
	return total, nil
}
