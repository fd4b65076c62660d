// Package registry turns sequence names into lazily built singletons.
//
// A Registry is created from a static table of entries. Nothing is
// constructed up front: the first Get for a name runs that entry's
// constructor exactly once, even when many goroutines ask at the same time,
// and every later Get returns the same instance. A failed construction is
// remembered and returned again on every later Get.
//
// Constructors must not call Get for another sequence while constructing;
// sequences that are defined through other sequences resolve them through
// Env.Resolver when a term is evaluated, and declare them in DependsOn so
// that Validate can check the graph.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/intseq/arith"
	"github.com/on-the-ground/intseq/config"
	"github.com/on-the-ground/intseq/metrics"
	"github.com/on-the-ground/intseq/sequence"
	"github.com/on-the-ground/intseq/shared/helper"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

var (
	ErrNotFound  = errors.New("sequence not found")
	ErrDuplicate = errors.New("duplicate sequence name")
	ErrCycle     = errors.New("dependency cycle")
	ErrMissing   = errors.New("missing dependency")
)

// Resolver finds other sequences by name.
type Resolver interface {
	Get(name string) (*sequence.Sequence, error)
}

// Env is what a constructor gets to build its sequence with.
type Env struct {
	Oracle   arith.Oracle
	Resolver Resolver
	Logger   *zap.Logger
	Settings config.Settings
	Metrics  *metrics.Collectors
}

// Entry is one row of the constructor table.
type Entry struct {
	Name        string
	Description string
	DependsOn   []string
	New         func(env Env) (*sequence.Sequence, error)
}

// Info describes a constructed instance.
type Info struct {
	Name  string
	ID    uuid.UUID
	Built timespan.TimeSpan
}

type slot struct {
	once  sync.Once
	done  atomic.Bool
	seq   *sequence.Sequence
	err   error
	id    uuid.UUID
	built timespan.TimeSpan
}

// Registry hands out one lazily built instance per name.
type Registry struct {
	entries map[string]Entry
	names   []string
	slots   sync.Map // name -> *slot
	env     Env
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	oracle   arith.Oracle
	logger   *zap.Logger
	settings config.Settings
	metrics  *metrics.Collectors
}

func WithOracle(o arith.Oracle) Option {
	return func(opts *options) { opts.oracle = o }
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) { opts.logger = logger }
}

func WithSettings(s config.Settings) Option {
	return func(opts *options) { opts.settings = s }
}

func WithMetrics(m *metrics.Collectors) Option {
	return func(opts *options) { opts.metrics = m }
}

// New fails on an empty or duplicate name or a missing constructor.
func New(entries []Entry, opts ...Option) (*Registry, error) {
	o := options{
		logger:   zap.NewNop(),
		settings: config.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.oracle == nil {
		o.oracle = arith.NewEngine(arith.WithMemoSize(o.settings.Memo.TableSize))
	}
	if o.metrics != nil {
		o.oracle = arith.Observe(o.oracle, o.metrics.OracleCall)
	}

	r := &Registry{
		entries: make(map[string]Entry, len(entries)),
		names:   make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrDuplicate)
		}
		if e.New == nil {
			return nil, fmt.Errorf("sequence %s has no constructor", e.Name)
		}
		if _, exists := r.entries[e.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, e.Name)
		}
		r.entries[e.Name] = e
		r.names = append(r.names, e.Name)
	}
	slices.Sort(r.names)

	r.env = Env{
		Oracle:   o.oracle,
		Resolver: r,
		Logger:   o.logger,
		Settings: o.settings,
		Metrics:  o.metrics,
	}
	return r, nil
}

// Get returns the single instance of name, constructing it on first use.
func (r *Registry) Get(name string) (*sequence.Sequence, error) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	s, _ := helper.MustLoadOrStoreAs(&r.slots, name, &slot{})
	s.once.Do(func() {
		r.construct(entry, s)
	})
	return s.seq, s.err
}

func (r *Registry) construct(entry Entry, s *slot) {
	defer s.done.Store(true)
	defer func() {
		if p := recover(); p != nil {
			s.seq = nil
			s.err = fmt.Errorf("construct %s: panic: %v", entry.Name, p)
		}
	}()

	start := time.Now()
	seq, err := entry.New(r.env)
	end := time.Now()
	if err != nil {
		s.err = fmt.Errorf("construct %s: %w", entry.Name, err)
		r.env.Logger.Warn("failed to construct sequence", zap.String("name", entry.Name), zap.Error(err))
		return
	}

	s.seq = seq
	s.id = uuid.New()
	s.built = timespan.BetweenTimes(start, end)
	r.env.Metrics.Constructed(entry.Name, end.Sub(start))
	r.env.Logger.Sugar().Debugf("constructed sequence: name: %v, id: %v", entry.Name, s.id)
}

// TryGet is Get without the error.
func (r *Registry) TryGet(name string) (*sequence.Sequence, bool) {
	seq, err := r.Get(name)
	return seq, err == nil
}

// Names lists every name Get accepts, sorted. Nothing is constructed.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Describe returns the table entry for name without constructing it.
// The constructor is left out.
func (r *Registry) Describe(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	e.New = nil
	e.DependsOn = slices.Clone(e.DependsOn)
	return e, nil
}

// Constructed lists the instances built so far, sorted by name.
func (r *Registry) Constructed() []Info {
	var out []Info
	for _, name := range r.names {
		s, ok := helper.LoadAs[*slot](&r.slots, name)
		if !ok || !s.done.Load() || s.seq == nil {
			continue
		}
		out = append(out, Info{Name: name, ID: s.id, Built: s.built})
	}
	return out
}

// Env is the environment constructors receive.
func (r *Registry) Env() Env {
	return r.env
}
