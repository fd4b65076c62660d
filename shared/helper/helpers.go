package helper

import (
	"fmt"
	"sync"
)

// LoadAs loads key from m and asserts the stored value to T.
// ok is false when the key is absent or holds another type.
func LoadAs[T any](m *sync.Map, key any) (res T, ok bool) {
	var raw any
	if raw, ok = m.Load(key); ok {
		res, ok = raw.(T)
	}
	return
}

// LoadOrStoreAs is LoadOrStore with the result asserted to T.
// Returns an error if the stored value has an unexpected type.
func LoadOrStoreAs[T any](m *sync.Map, key any, value T) (T, bool, error) {
	var zero T

	raw, loaded := m.LoadOrStore(key, value)
	val, ok := raw.(T)
	if !ok {
		return zero, loaded, fmt.Errorf("unexpected type: %T", raw)
	}
	return val, loaded, nil
}

// MustLoadOrStoreAs is the panic-on-failure variant of LoadOrStoreAs.
// Use when the map is private and only ever holds T.
func MustLoadOrStoreAs[T any](m *sync.Map, key any, value T) (T, bool) {
	res, loaded, err := LoadOrStoreAs(m, key, value)
	if err != nil {
		panic(err)
	}
	return res, loaded
}
