package strategy

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/on-the-ground/intseq/shared/termbuf"
	"go.uber.org/zap"
)

const DefaultBlockSize = 1000

// initialCapacity is the member buffer's starting size; it grows with append.
const initialCapacity = 64

// Filter reports the members of [lo, hi) in increasing order.
type Filter interface {
	Scan(lo, hi int64) ([]*big.Int, error)
}

type FilterFunc func(lo, hi int64) ([]*big.Int, error)

func (f FilterFunc) Scan(lo, hi int64) ([]*big.Int, error) {
	return f(lo, hi)
}

// Predicate builds a Filter from a membership test applied to every integer.
func Predicate(member func(x int64) (bool, error)) Filter {
	return FilterFunc(func(lo, hi int64) ([]*big.Int, error) {
		var found []*big.Int
		for x := lo; x < hi; x++ {
			ok, err := member(x)
			if err != nil {
				return nil, err
			}
			if ok {
				found = append(found, big.NewInt(x))
			}
		}
		return found, nil
	})
}

// Scan caches the members of an increasing sequence found by searching the
// integers block by block from a start cursor.
type Scan struct {
	mu     sync.Mutex
	buf    *termbuf.Buffer[*big.Int]
	cursor int64
	filter Filter

	blockSize int64
	limit     int64
	name      string
	onBlock   func(lo, hi int64, found int)
	logger    *zap.Logger
}

// ScanOption configures a Scan.
type ScanOption func(*scanOptions)

type scanOptions struct {
	blockSize int64
	limit     int64
	seeds     []int64
	name      string
	onBlock   func(lo, hi int64, found int)
	logger    *zap.Logger
}

// WithBlockSize panics on a non-positive size.
func WithBlockSize(size int64) ScanOption {
	if size <= 0 {
		panic(fmt.Sprintf("block size should be greater than 0, got %d", size))
	}
	return func(o *scanOptions) { o.blockSize = size }
}

// WithSeed places members below the start cursor that the filter would not find.
func WithSeed(terms ...int64) ScanOption {
	return func(o *scanOptions) { o.seeds = append(o.seeds, terms...) }
}

// WithLimit stops the scan once the cursor reaches limit. Zero means no limit.
func WithLimit(limit int64) ScanOption {
	return func(o *scanOptions) { o.limit = limit }
}

func OnBlock(fn func(lo, hi int64, found int)) ScanOption {
	return func(o *scanOptions) { o.onBlock = fn }
}

func WithScanLogger(name string, logger *zap.Logger) ScanOption {
	return func(o *scanOptions) {
		o.name = name
		o.logger = logger
	}
}

// NewScan panics if the seeds are not strictly increasing and below start.
func NewScan(start int64, filter Filter, opts ...ScanOption) *Scan {
	o := scanOptions{blockSize: DefaultBlockSize, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	buf := termbuf.New[*big.Int](len(o.seeds)+initialCapacity, compareBig)
	for _, s := range o.seeds {
		if s >= start {
			panic(fmt.Sprintf("seed %d is not below the scan start %d", s, start))
		}
		if err := buf.Append(big.NewInt(s)); err != nil {
			panic(err)
		}
	}

	return &Scan{
		buf:       buf,
		cursor:    start,
		filter:    filter,
		blockSize: o.blockSize,
		limit:     o.limit,
		name:      o.name,
		onBlock:   o.onBlock,
		logger:    o.logger,
	}
}

func (s *Scan) Term(k int) (*big.Int, error) {
	if err := checkIndex(k); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.extendLocked(k + 1); err != nil {
		return nil, err
	}
	return s.buf.At(k), nil
}

func (s *Scan) Prefix(n int) ([]*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.extendLocked(n); err != nil {
		return nil, err
	}
	return s.buf.Head(n), nil
}

// Cursor is the first integer not yet scanned.
func (s *Scan) Cursor() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *Scan) Cached() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Len()
}

func (s *Scan) extendLocked(n int) error {
	for s.buf.Len() < n {
		if s.limit > 0 && s.cursor >= s.limit {
			return fmt.Errorf("%w: found %d of %d members below %d", ErrScanExhausted, s.buf.Len(), n, s.limit)
		}
		lo, hi := s.cursor, s.cursor+s.blockSize
		if s.limit > 0 && hi > s.limit {
			hi = s.limit
		}

		found, err := s.filter.Scan(lo, hi)
		if err != nil {
			return fmt.Errorf("scan [%d, %d): %w", lo, hi, err)
		}
		for _, v := range found {
			if !v.IsInt64() || v.Int64() < lo || v.Int64() >= hi {
				return fmt.Errorf("%w: %v not in [%d, %d)", ErrOutOfBlock, v, lo, hi)
			}
		}
		if err := s.buf.Append(found...); err != nil {
			return err
		}
		s.cursor = hi

		s.logger.Debug("scanned block",
			zap.String("sequence", s.name),
			zap.Int64("lo", lo),
			zap.Int64("hi", hi),
			zap.Int("found", len(found)),
		)
		if s.onBlock != nil {
			s.onBlock(lo, hi, len(found))
		}
	}
	return nil
}
