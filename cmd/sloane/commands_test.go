package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/on-the-ground/intseq/config"
	"github.com/on-the-ground/intseq/metrics"
	"github.com/on-the-ground/intseq/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "A000045", "11")
	require.NoError(t, err)
	assert.Equal(t, "89\n", out)

	_, err = run(t, "eval", "A000005", "0")
	assert.ErrorContains(t, err, "must be a positive integer")
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "A000040", "5")
	require.NoError(t, err)
	assert.Equal(t, "2, 3, 5, 7, 11\n", out)

	_, err = run(t, "list", "A000040", "many")
	assert.Error(t, err)
}

func TestSlice(t *testing.T) {
	out, err := run(t, "slice", "A000027", "3:6")
	require.NoError(t, err)
	assert.Equal(t, "3, 4, 5\n", out)
}

func TestNamesAndDescribe(t *testing.T) {
	out, err := run(t, "names")
	require.NoError(t, err)
	assert.Contains(t, out, "A000045\n")

	out, err = run(t, "describe", "A000100")
	require.NoError(t, err)
	assert.Contains(t, out, "A000100: ")
	assert.Contains(t, out, "depends on: A000045, A000073")

	_, err = run(t, "describe", "nope")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "dependency graph ok")
}

func TestStats(t *testing.T) {
	out, err := run(t, "stats", "--terms", "12", "A000045")
	require.NoError(t, err)
	assert.Contains(t, out, metrics.GeneratorResumptionsMetric+`{sequence="A000045"} 12`)
	assert.Contains(t, out, metrics.ConstructionsMetric+`{sequence="A000045"} 1`)
}

func TestConfig(t *testing.T) {
	out, err := run(t, "--block-size", "7", "config")
	require.NoError(t, err)
	assert.Contains(t, out, config.ScanBlockSize+" = 7\n")
	for _, key := range config.Keys {
		assert.Contains(t, out, key+" = ")
	}

	out, err = run(t, "--block-size", "7", "config", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "block_size: 7")

	path := filepath.Join(t.TempDir(), "sloane.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), loaded.Scan.BlockSize)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	settings := config.Default()
	settings.Scan.Limit = 10
	data, err := settings.Marshal()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "sloane.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err = run(t, "--config", path, "eval", "A000040", "5")
	assert.ErrorIs(t, err, strategy.ErrScanExhausted)

	out, err := run(t, "--config", path, "--block-size", "3", "eval", "A000040", "4")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	_, err = run(t, "--block-size", "0", "names")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "--log-level", "loud", "names")
	assert.Error(t, err)
}
