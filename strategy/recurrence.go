package strategy

import (
	"math/big"
	"sync"

	"github.com/on-the-ground/intseq/shared/termbuf"
	"go.uber.org/zap"
)

// Recurrence caches every term its generator has produced.
// Extension is serialised per instance; reads of already cached terms take
// the same lock and never resume the generator.
type Recurrence struct {
	mu          sync.Mutex
	buf         *termbuf.Buffer[*big.Int]
	gen         Generator
	resumptions int

	name     string
	onResume func(k int)
	logger   *zap.Logger
}

type RecurrenceOption func(*recurrenceOptions)

type recurrenceOptions struct {
	primed   int
	name     string
	onResume func(k int)
	logger   *zap.Logger
}

// WithPrimed resumes the generator n times at construction.
func WithPrimed(n int) RecurrenceOption {
	return func(o *recurrenceOptions) { o.primed = n }
}

// OnResume registers fn to be called with the index of every new term.
func OnResume(fn func(k int)) RecurrenceOption {
	return func(o *recurrenceOptions) { o.onResume = fn }
}

func WithRecurrenceLogger(name string, logger *zap.Logger) RecurrenceOption {
	return func(o *recurrenceOptions) {
		o.name = name
		o.logger = logger
	}
}

// NewRecurrence fails only when priming fails.
func NewRecurrence(gen Generator, opts ...RecurrenceOption) (*Recurrence, error) {
	o := recurrenceOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	r := &Recurrence{
		buf:      termbuf.New[*big.Int](max(o.primed, 16), nil),
		gen:      gen,
		name:     o.name,
		onResume: o.onResume,
		logger:   o.logger,
	}
	if o.primed > 0 {
		r.mu.Lock()
		defer r.mu.Unlock()
		if err := r.extendLocked(o.primed); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recurrence) Term(k int) (*big.Int, error) {
	if err := checkIndex(k); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.extendLocked(k + 1); err != nil {
		return nil, err
	}
	return r.buf.At(k), nil
}

func (r *Recurrence) Prefix(n int) ([]*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.extendLocked(n); err != nil {
		return nil, err
	}
	return r.buf.Head(n), nil
}

// Resumptions counts the successful generator resumptions so far.
func (r *Recurrence) Resumptions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resumptions
}

// Cached is the number of terms held in the buffer.
func (r *Recurrence) Cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Len()
}

func (r *Recurrence) extendLocked(n int) error {
	from := r.buf.Len()
	for r.buf.Len() < n {
		v, err := r.gen.Next()
		if err != nil {
			return err
		}
		if err := r.buf.Append(v); err != nil {
			return err
		}
		r.resumptions++
		if r.onResume != nil {
			r.onResume(r.buf.Len() - 1)
		}
	}
	if r.buf.Len() > from {
		r.logger.Debug("extended recurrence",
			zap.String("sequence", r.name),
			zap.Int("from", from),
			zap.Int("to", r.buf.Len()),
		)
	}
	return nil
}
