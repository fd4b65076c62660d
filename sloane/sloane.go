// Package sloane is the process-wide query surface over the catalog.
//
// The default registry is built on first use. Configure replaces it, which
// is only meaningful before any sequence has been asked for.
package sloane

import (
	"math/big"
	"sync"

	"github.com/on-the-ground/intseq/catalog"
	"github.com/on-the-ground/intseq/registry"
	"github.com/on-the-ground/intseq/sequence"
)

var (
	mu      sync.Mutex
	once    sync.Once
	current *registry.Registry
	initErr error
	opts    []registry.Option
)

// Configure sets the options the default registry is built with and drops
// any registry built so far.
func Configure(options ...registry.Option) {
	mu.Lock()
	defer mu.Unlock()
	opts = options
	once = sync.Once{}
	current, initErr = nil, nil
}

// Default returns the process-wide registry.
func Default() (*registry.Registry, error) {
	mu.Lock()
	defer mu.Unlock()
	once.Do(func() {
		current, initErr = catalog.NewRegistry(opts...)
	})
	return current, initErr
}

func Get(name string) (*sequence.Sequence, error) {
	r, err := Default()
	if err != nil {
		return nil, err
	}
	return r.Get(name)
}

func Eval(name string, n int) (*big.Int, error) {
	seq, err := Get(name)
	if err != nil {
		return nil, err
	}
	return seq.Eval(n)
}

// At accepts any index ToIndex accepts.
func At(name string, v any) (*big.Int, error) {
	seq, err := Get(name)
	if err != nil {
		return nil, err
	}
	return seq.At(v)
}

func List(name string, count int) ([]*big.Int, error) {
	seq, err := Get(name)
	if err != nil {
		return nil, err
	}
	return seq.List(count)
}

func Slice(name string, spec sequence.SliceSpec) ([]*big.Int, error) {
	seq, err := Get(name)
	if err != nil {
		return nil, err
	}
	return seq.Slice(spec)
}

// Names lists every known sequence without constructing any.
func Names() []string {
	r, err := Default()
	if err != nil {
		return nil
	}
	return r.Names()
}

func Describe(name string) (registry.Entry, error) {
	r, err := Default()
	if err != nil {
		return registry.Entry{}, err
	}
	return r.Describe(name)
}
