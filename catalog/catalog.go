// Package catalog is the static table of concrete sequences.
//
// Every definition names a caching strategy and a term formula written on
// top of arith.Oracle. Formulas are plain arithmetic; the interesting part
// of each definition is the choice of strategy:
//
//   - closed forms and arithmetic functions are Stateless,
//   - recurrences keep their generator and buffer in a Recurrence,
//   - membership-defined sequences are found block by block with a Scan.
//
// Sequences defined through other sequences resolve them by name through
// the registry when a term is evaluated.
package catalog

import (
	"fmt"
	"math/big"

	"github.com/on-the-ground/intseq/registry"
	"github.com/on-the-ground/intseq/sequence"
	"github.com/on-the-ground/intseq/strategy"
)

type def struct {
	name   string
	desc   string
	offset int
	deps   []string
	build  func(env registry.Env) (strategy.Strategy, error)
}

func (d def) entry() registry.Entry {
	return registry.Entry{
		Name:        d.name,
		Description: d.desc,
		DependsOn:   d.deps,
		New: func(env registry.Env) (*sequence.Sequence, error) {
			s, err := d.build(env)
			if err != nil {
				return nil, err
			}
			return sequence.New(d.name, d.desc, d.offset, s), nil
		},
	}
}

// Formula computes the term at public index n.
type Formula func(env registry.Env, n int) (*big.Int, error)

func closed(name, desc string, offset int, f Formula) def {
	return def{
		name:   name,
		desc:   desc,
		offset: offset,
		build: func(env registry.Env) (strategy.Strategy, error) {
			return strategy.NewStateless(strategy.Shift(offset, func(n int) (*big.Int, error) {
				return f(env, n)
			})), nil
		},
	}
}

// crossRef is closed with declared dependencies.
func crossRef(name, desc string, offset int, deps []string, f Formula) def {
	d := closed(name, desc, offset, f)
	d.deps = deps
	return d
}

// recurrence primes at least primed terms, more if the settings ask for it.
func recurrence(name, desc string, offset, primed int, gen func() strategy.Generator) def {
	return def{
		name:   name,
		desc:   desc,
		offset: offset,
		build: func(env registry.Env) (strategy.Strategy, error) {
			return strategy.NewRecurrence(gen(),
				strategy.WithPrimed(max(primed, env.Settings.Recurrence.Primed)),
				strategy.OnResume(func(int) { env.Metrics.Resumed(name) }),
				strategy.WithRecurrenceLogger(name, env.Logger),
			)
		},
	}
}

type scanDef struct {
	start     int64
	seeds     []int64
	blockSize int64
}

// scan defines a sequence of offset 1 listing, in order, the integers from
// start that filter accepts, after the seeds.
func scan(name, desc string, sd scanDef, filter func(env registry.Env) strategy.Filter) def {
	return def{
		name:   name,
		desc:   desc,
		offset: 1,
		build: func(env registry.Env) (strategy.Strategy, error) {
			blockSize := env.Settings.Scan.BlockSize
			if sd.blockSize > 0 {
				blockSize = sd.blockSize
			}
			if blockSize <= 0 {
				blockSize = strategy.DefaultBlockSize
			}
			return strategy.NewScan(sd.start, filter(env),
				strategy.WithBlockSize(blockSize),
				strategy.WithSeed(sd.seeds...),
				strategy.WithLimit(env.Settings.Scan.Limit),
				strategy.OnBlock(func(_, _ int64, found int) { env.Metrics.Scanned(name, found) }),
				strategy.WithScanLogger(name, env.Logger),
			), nil
		},
	}
}

// member adapts a test on big integers to a per-integer scan predicate.
func member(test func(x *big.Int) (bool, error)) strategy.Filter {
	return strategy.Predicate(func(x int64) (bool, error) {
		return test(big.NewInt(x))
	})
}

// resolve evaluates another sequence of the catalog.
func resolve(env registry.Env, name string, n int) (*big.Int, error) {
	seq, err := env.Resolver.Get(name)
	if err != nil {
		return nil, err
	}
	v, err := seq.Eval(n)
	if err != nil {
		return nil, fmt.Errorf("resolve %s(%d): %w", name, n, err)
	}
	return v, nil
}

func themes() [][]def {
	return [][]def{
		elementary(),
		arithmetic(),
		combinatorial(),
		primes(),
		recurrences(),
		permanents(),
		crossReferences(),
	}
}

// Entries is the full table, grouped by theme.
func Entries() []registry.Entry {
	var out []registry.Entry
	for _, group := range themes() {
		for _, d := range group {
			out = append(out, d.entry())
		}
	}
	return out
}

func NewRegistry(opts ...registry.Option) (*registry.Registry, error) {
	return registry.New(Entries(), opts...)
}
