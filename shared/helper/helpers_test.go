package helper_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/intseq/shared/helper"
	"github.com/stretchr/testify/assert"
)

func TestLoadAs(t *testing.T) {
	m := &sync.Map{}
	m.Store("a", 1)
	m.Store("b", "two")

	v, ok := helper.LoadAs[int](m, "a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = helper.LoadAs[int](m, "b")
	assert.False(t, ok)

	_, ok = helper.LoadAs[int](m, "missing")
	assert.False(t, ok)
}

func TestLoadOrStoreAs(t *testing.T) {
	m := &sync.Map{}

	v, loaded, err := helper.LoadOrStoreAs(m, "k", 10)
	assert.NoError(t, err)
	assert.False(t, loaded)
	assert.Equal(t, 10, v)

	v, loaded, err = helper.LoadOrStoreAs(m, "k", 20)
	assert.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, 10, v)

	m.Store("s", "str")
	_, _, err = helper.LoadOrStoreAs(m, "s", 1)
	assert.Error(t, err)

	assert.Panics(t, func() {
		helper.MustLoadOrStoreAs(m, "s", 1)
	})
}
