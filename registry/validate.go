package registry

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Validate checks that every declared dependency exists and that no
// sequence depends on itself, directly or through others.
func (r *Registry) Validate() error {
	var errs error
	for _, name := range r.names {
		for _, dep := range r.entries[name].DependsOn {
			if _, ok := r.entries[dep]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("%w: %s depends on %s", ErrMissing, name, dep))
			}
		}
	}

	const (
		unvisited = iota
		visiting
		visited
	)
	state := make(map[string]int, len(r.names))
	var path []string
	var visit func(name string)
	visit = func(name string) {
		switch state[name] {
		case visited:
			return
		case visiting:
			i := len(path) - 1
			for i > 0 && path[i] != name {
				i--
			}
			cycle := append(append([]string{}, path[i:]...), name)
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " -> ")))
			return
		}
		state[name] = visiting
		path = append(path, name)
		for _, dep := range r.entries[name].DependsOn {
			if _, ok := r.entries[dep]; ok {
				visit(dep)
			}
		}
		path = path[:len(path)-1]
		state[name] = visited
	}
	for _, name := range r.names {
		visit(name)
	}
	return errs
}

// Warm constructs the named sequences concurrently, or all of them when
// names is empty. It returns the first construction error.
func (r *Registry) Warm(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		names = r.names
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := r.Get(name)
			return err
		})
	}
	return g.Wait()
}
