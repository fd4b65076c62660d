package sloane_test

import (
	"testing"

	"github.com/on-the-ground/intseq/config"
	"github.com/on-the-ground/intseq/registry"
	"github.com/on-the-ground/intseq/sequence"
	"github.com/on-the-ground/intseq/sloane"
	"github.com/on-the-ground/intseq/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestDefault_IsBuiltOnce(t *testing.T) {
	sloane.Configure()

	regs := make([]*registry.Registry, 32)
	var g errgroup.Group
	for i := range regs {
		g.Go(func() error {
			r, err := sloane.Default()
			regs[i] = r
			return err
		})
	}
	require.NoError(t, g.Wait())
	for _, r := range regs {
		assert.Same(t, regs[0], r)
	}
}

func TestQueries(t *testing.T) {
	sloane.Configure()

	v, err := sloane.Eval("A000045", 11)
	require.NoError(t, err)
	assert.Equal(t, "89", v.String())

	v, err = sloane.At("A000005", "100")
	require.NoError(t, err)
	assert.Equal(t, "9", v.String())

	list, err := sloane.List("A000040", 5)
	require.NoError(t, err)
	assert.Len(t, list, 5)
	assert.Equal(t, "11", list[4].String())

	vals, err := sloane.Slice("A000027", sequence.Span(0, 3))
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.Equal(t, "1", vals[0].String())

	_, err = sloane.Eval("A000045", -1)
	assert.ErrorIs(t, err, sequence.ErrDomain)

	_, err = sloane.Eval("nope", 1)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestNamesAndDescribe(t *testing.T) {
	sloane.Configure()

	names := sloane.Names()
	assert.Contains(t, names, "A000004")
	assert.IsNonDecreasing(t, names)

	e, err := sloane.Describe("A000100")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A000045", "A000073"}, e.DependsOn)

	r, err := sloane.Default()
	require.NoError(t, err)
	assert.Empty(t, r.Constructed())
}

func TestGet_ReturnsTheSameInstance(t *testing.T) {
	sloane.Configure()

	a, err := sloane.Get("A000045")
	require.NoError(t, err)
	b, err := sloane.Get("A000045")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestConfigure_ReplacesTheDefault(t *testing.T) {
	settings := config.Default()
	settings.Scan.BlockSize = 10
	settings.Scan.Limit = 10
	sloane.Configure(registry.WithSettings(settings))
	t.Cleanup(func() { sloane.Configure() })

	_, err := sloane.Eval("A000040", 4)
	require.NoError(t, err)
	_, err = sloane.Eval("A000040", 5)
	assert.ErrorIs(t, err, strategy.ErrScanExhausted)

	sloane.Configure()
	v, err := sloane.Eval("A000040", 5)
	require.NoError(t, err)
	assert.Equal(t, "11", v.String())
}
